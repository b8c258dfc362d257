package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/wsu/internal/app"
	"go.trai.ch/wsu/internal/core/domain"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove build output for workspace packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := currentDir()
			if err != nil {
				return err
			}
			summary, err := c.app.Clean(cmd.Context(), cwd, app.CleanOptions{Filter: filter})
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

	return cmd
}
