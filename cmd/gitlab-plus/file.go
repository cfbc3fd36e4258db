package main

import (
	"github.com/spf13/cobra"
)

func newFileCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Repository file operations",
	}

	cmd.AddCommand(newFileGetCommand(a))

	return cmd
}

func newFileGetCommand(a *app) *cobra.Command {
	var ref string

	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "Print the raw content of a repository file",
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

			content, err := project.GetFileContent(cmd.Context(), ref, args[0])
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(content)
			return err
		},
	}

	cmd.Flags().StringVar(&ref, "ref", "", "branch, tag, or commit SHA (defaults to the project default branch)")

	return cmd
}
