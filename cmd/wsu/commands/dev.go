package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/wsu/internal/app"
	"go.trai.ch/wsu/internal/core/domain"
)

func (c *CLI) newDevCmd() *cobra.Command {
	var filter string
	var concurrency int

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Run the dev script in every matching package until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := currentDir()
			if err != nil {
				return err
			}
			summary, err := c.app.Dev(cmd.Context(), cwd, app.DevOptions{
				Filter:      filter,
				Concurrency: concurrency,
			})
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), summary, c.ascii)
			if summary.Failed() {
				return domain.ErrProcessFailure
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "shell-glob filter on package name")
	cmd.Flags().IntVar(&concurrency, "concurrency", app.DefaultConcurrency, "maximum concurrent dev processes")

	return cmd
}
