// Package main is the entry point for the wsu CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/wsu/cmd/wsu/commands"
	"go.trai.ch/wsu/internal/app"
	"go.trai.ch/wsu/internal/core/domain"
	_ "go.trai.ch/wsu/internal/wiring"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, _, err := graft.ExecuteFor[*app.App](ctx)
	if err != nil {
		fmt.Fprintf(stderr, "%+v\n", err)
		return 1
	}

	cli := commands.New(a)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrProcessFailure) {
			return 1
		}
		fmt.Fprintf(stderr, "%+v\n", err)
		return 1
	}
	return 0
}
