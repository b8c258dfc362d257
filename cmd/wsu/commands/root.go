// Package commands implements the wsu CLI's cobra command tree.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/wsu/internal/app"
	"go.trai.ch/wsu/internal/build"
)

// CLI is the cobra-backed command tree wired against a single *app.App.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
	ascii   bool
}

// New builds the full wsu command tree (run/build/dev/clean/cache/version)
// over a.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	c.rootCmd = &cobra.Command{
		Use:           "wsu",
		Short:         "Script orchestrator for JavaScript-ecosystem monorepos",
		Version:       build.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.rootCmd.PersistentFlags().Bool("ascii", asciiFromEnv(), "force plain-text symbols in output (defaults from WSU_ASCII/WSU_UNICODE)")
	c.rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		ascii, err := cmd.Flags().GetBool("ascii")
		if err != nil {
			return err
		}
		c.ascii = ascii
		return nil
	}

	c.rootCmd.AddCommand(
		c.newRunCmd(),
		c.newBuildCmd(),
		c.newDevCmd(),
		c.newCleanCmd(),
		c.newCacheCmd(),
		c.newVersionCmd(),
	)

	return c
}

// Execute runs the root command with ctx, returning whatever error the
// selected subcommand returned (possibly domain.ErrProcessFailure for a
// non-fatal child failure).
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments the root command parses. Used by main and by tests.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects the CLI's stdout/stderr streams.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
}

func currentDir() (string, error) {
	return os.Getwd()
}

// asciiFromEnv resolves the --ascii flag's default from WSU_ASCII/WSU_UNICODE
// (spec.md §6) so scripting environments can fix symbol style without
// threading a flag through every invocation. WSU_ASCII wins if both are set;
// an explicit --ascii flag always overrides either.
func asciiFromEnv() bool {
	if v, ok := os.LookupEnv("WSU_ASCII"); ok {
		return isTruthy(v)
	}
	if v, ok := os.LookupEnv("WSU_UNICODE"); ok {
		return !isTruthy(v)
	}
	return false
}

func isTruthy(v string) bool {
	switch v {
	case "", "0", "false", "False", "FALSE":
		return false
	default:
		return true
	}
}
