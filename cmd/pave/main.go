// Package main is the entry point for the pave CLI.
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
	"go.trai.ch/pave/cmd/pave/commands"
	"go.trai.ch/pave/internal/app"
	"go.trai.ch/pave/internal/build"
	"go.trai.ch/pave/internal/core/domain"
	_ "go.trai.ch/pave/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(ctx context.Context, args []string, stderr io.Writer, provider ComponentProvider) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// version needs no components, so it keeps working outside any project
	// tree where configuration discovery would fail.
	if len(args) == 1 && args[0] == "version" {
		_, _ = fmt.Fprintln(os.Stdout, build.String())
		return 0
	}

	components, err := provider(ctx)
	if err != nil {
		// Logger is not available if initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrExecutionFailed) || errors.Is(err, domain.ErrFormatFailed) {
			// Already surfaced through the results surface.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
