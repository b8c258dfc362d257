package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cache [status|clear]",
		Short: "Inspect or clear the build cache",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			action := "status"
			if len(args) > 0 {
				action = args[0]
			}

			cwd, err := currentDir()
			if err != nil {
				return err
			}

			switch action {
			case "status":
				stats, statErr := c.app.CacheStatus(cmd.Context(), cwd)
				if statErr != nil {
					return statErr
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%d cached packages, %d bytes on disk\n", len(stats.CachedPackages), stats.DiskBytes)
				for _, name := range stats.CachedPackages {
					fmt.Fprintf(out, "  %s\n", name)
				}
				return nil
			case "clear":
				if clearErr := c.app.CacheClear(cmd.Context(), cwd); clearErr != nil {
					return clearErr
				}
				fmt.Fprintln(cmd.OutOrStdout(), "cache cleared")
				return nil
			default:
				return fmt.Errorf("unknown cache action %q, expected status or clear", action)
			}
		},
	}
}
