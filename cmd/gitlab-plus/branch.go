package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBranchCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branch",
		Short: "Branch operations",
	}

	cmd.AddCommand(newBranchCreateCommand(a))

	return cmd
}

func newBranchCreateCommand(a *app) *cobra.Command {
	var ref string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a branch from a ref",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			project := client.Project()
			if ref == "" {
				ref = project.DefaultBranch()
			}

			branch, err := project.CreateBranch(cmd.Context(), args[0], ref)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created branch %s from %s (%s)\n",
				branch.Name(), ref, branch.CommitSHA())
			return nil
		},
	}

	cmd.Flags().StringVar(&ref, "ref", "", "branch, tag, or commit SHA to branch from (defaults to the project default branch)")

	return cmd
}
