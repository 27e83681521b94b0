package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/allpairs/internal/app"
	"github.com/katalvlaran/allpairs/internal/cli"
)

// main is the entrypoint for the allpairs tool.
func main() {
	// Minimal logger until the configured one exists.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the application logic for easier testing.
func run(outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, errW)

	return app.NewApp(outW, errW, cfg, logger).Run()
}
