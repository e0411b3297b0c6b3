package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/spacesedan/sentilex/config"
	"github.com/spacesedan/sentilex/internal/logging"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	cfg, err := config.Load()
	if err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
	logging.InitLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, cfg, ui)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, cfg *config.Config, ui UI) int {
	app := newApp(cfg, ui)

	err := app.RunContext(ctx, args)
	if err == nil {
		return 0
	}

	fprintErr(ui.Err, err)

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	slog.Debug("[Main] Command failed", slog.String("error", err.Error()))
	return 1
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "sentilex: %v\n", err)
}
