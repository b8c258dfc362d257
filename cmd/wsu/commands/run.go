package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/wsu/internal/app"
	"go.trai.ch/wsu/internal/core/domain"
)

func (c *CLI) newRunCmd() *cobra.Command {
	var filter string
	var concurrency int
	var sequential bool

	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run a script across workspace packages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := currentDir()
			if err != nil {
				return err
			}
			summary, err := c.app.Run(cmd.Context(), cwd, args[0], app.RunOptions{
				Filter:      filter,
				Concurrency: concurrency,
				Sequential:  sequential,
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
	cmd.Flags().IntVar(&concurrency, "concurrency", app.DefaultConcurrency, "maximum concurrent processes")
	cmd.Flags().BoolVar(&sequential, "sequential", false, "run packages one at a time, stopping at the first failure")

	return cmd
}
