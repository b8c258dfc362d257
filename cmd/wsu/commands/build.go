package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/wsu/internal/app"
	"go.trai.ch/wsu/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	var filter string
	var concurrency int
	var noSkipUnchanged bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build packages in dependency order, skipping unchanged ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := currentDir()
			if err != nil {
				return err
			}
			summary, err := c.app.Build(cmd.Context(), cwd, app.BuildOptions{
				Filter:        filter,
				Concurrency:   concurrency,
				SkipUnchanged: !noSkipUnchanged,
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
	cmd.Flags().IntVar(&concurrency, "concurrency", app.DefaultConcurrency, "maximum concurrent processes per batch")
	cmd.Flags().BoolVar(&noSkipUnchanged, "no-skip-unchanged", false, "rebuild every selected package regardless of cache validity")

	return cmd
}
