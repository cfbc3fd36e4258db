package main

import (
	"fmt"

	"github.com/spf13/cobra"

	gitlab "github.com/aviz92/gitlab-plus"
)

func newTagCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Tag operations",
	}

	cmd.AddCommand(newTagCreateCommand(a))

	return cmd
}

func newTagCreateCommand(a *app) *cobra.Command {
	var (
		ref     string
		message string
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a tag from a ref",
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

			var opts []gitlab.TagOption
			if message != "" {
				opts = append(opts, gitlab.WithTagMessage(message))
			}

			tag, err := project.CreateTag(cmd.Context(), args[0], ref, opts...)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created tag %s at %s\n", tag.Name(), tag.CommitSHA())
			return nil
		},
	}

	cmd.Flags().StringVar(&ref, "ref", "", "branch, tag, or commit SHA to tag (defaults to the project default branch)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "annotation message (creates an annotated tag)")

	return cmd
}
