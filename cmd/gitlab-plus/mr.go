package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	gitlab "github.com/aviz92/gitlab-plus"
	"github.com/aviz92/gitlab-plus/errors"
)

func newMergeRequestCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mr",
		Aliases: []string{"merge-request"},
		Short:   "Merge request operations",
	}

	cmd.AddCommand(
		newMergeRequestCreateCommand(a),
		newMergeRequestListCommand(a),
		newMergeRequestWaitCommand(a),
	)

	return cmd
}

func newMergeRequestCreateCommand(a *app) *cobra.Command {
	var opts gitlab.CreateMergeRequestOptions

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a merge request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			project := client.Project()
			if opts.TargetBranch == "" {
				opts.TargetBranch = project.DefaultBranch()
			}

			mr, err := project.CreateMergeRequest(cmd.Context(), opts)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created merge request !%d: %s\n", mr.IID(), mr.WebURL())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Title, "title", "", "merge request title")
	flags.StringVar(&opts.Description, "description", "", "merge request description")
	flags.StringVar(&opts.SourceBranch, "source", "", "source branch")
	flags.StringVar(&opts.TargetBranch, "target", "", "target branch (defaults to the project default branch)")
	flags.StringSliceVar(&opts.Labels, "label", nil, "label to apply (repeatable)")
	flags.BoolVar(&opts.Draft, "draft", false, "create as draft")
	flags.BoolVar(&opts.RemoveSourceBranch, "remove-source-branch", false, "delete the source branch after merging")
	flags.BoolVar(&opts.Squash, "squash", false, "squash commits when merging")

	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func newMergeRequestListCommand(a *app) *cobra.Command {
	var (
		state  string
		source string
		target string
		author string
		labels []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List merge requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			filters := []gitlab.MergeRequestFilterOption{gitlab.WithMRState(state)}
			if source != "" {
				filters = append(filters, gitlab.WithSourceBranch(source))
			}
			if target != "" {
				filters = append(filters, gitlab.WithTargetBranch(target))
			}
			if author != "" {
				filters = append(filters, gitlab.WithAuthor(author))
			}
			if len(labels) > 0 {
				filters = append(filters, gitlab.WithMRLabels(labels...))
			}

			mrs, err := client.Project().ListMergeRequests(cmd.Context(), filters...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, mr := range mrs {
				fmt.Fprintf(out, "!%d\t%s\t%s -> %s\t%s\n",
					mr.IID(), mr.State().Label(), mr.SourceBranch(), mr.TargetBranch(), mr.Title())
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&state, "state", "opened", "filter by state: opened, closed, merged, locked, or all")
	flags.StringVar(&source, "source", "", "filter by source branch")
	flags.StringVar(&target, "target", "", "filter by target branch")
	flags.StringVar(&author, "author", "", "filter by author username")
	flags.StringSliceVar(&labels, "label", nil, "filter by label (repeatable, all must match)")

	return cmd
}

func newMergeRequestWaitCommand(a *app) *cobra.Command {
	var (
		interval time.Duration
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "wait <iid>",
		Short: "Poll a merge request until it merges, closes, or locks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iid, err := strconv.Atoi(args[0])
			if err != nil {
				parseErr := errors.Wrap(err, errors.CodeInvalidInput, "merge request IID must be a number")
				return errors.WithContext(parseErr, "iid", args[0])
			}

			client, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			mr, err := client.Project().GetMergeRequest(cmd.Context(), iid)
			if err != nil {
				return err
			}

			waitOpts := []gitlab.WaitOption{gitlab.WithPollInterval(interval)}
			if timeout > 0 {
				waitOpts = append(waitOpts, gitlab.WithWaitTimeout(timeout))
			}

			if err := mr.Wait(cmd.Context(), waitOpts...); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "merge request !%d finished: %s\n", mr.IID(), mr.State().Label())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.DurationVar(&interval, "interval", 10*time.Second, "poll interval")
	flags.DurationVar(&timeout, "timeout", 0, "maximum time to wait (0 means wait forever)")

	return cmd
}
