package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/rngraph/internal/app"
	"github.com/katalvlaran/rngraph/internal/cli"
	"github.com/katalvlaran/rngraph/internal/ctxlog"
)

// main is the entrypoint for the rngraph tool.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.CodeRuntime)
	}
}

// run parses args and executes one job. Logs go to errW.
func run(inR io.Reader, outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	a, err := app.New(*cfg, inR, outW, errW)
	if err != nil {
		return err
	}
	if err := a.Run(ctx); err != nil {
		return &cli.ExitError{Code: cli.CodeRuntime, Message: err.Error()}
	}

	return nil
}
