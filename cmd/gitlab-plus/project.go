package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProjectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "project",
		Short: "Show the configured project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			data := client.Project().Data()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:             %d\n", data.ID)
			fmt.Fprintf(out, "Path:           %s\n", data.PathWithNamespace)
			fmt.Fprintf(out, "Default branch: %s\n", data.DefaultBranch)
			fmt.Fprintf(out, "Visibility:     %s\n", data.Visibility)
			fmt.Fprintf(out, "URL:            %s\n", data.WebURL)
			if data.Description != "" {
				fmt.Fprintf(out, "Description:    %s\n", data.Description)
			}
			return nil
		},
	}
}
