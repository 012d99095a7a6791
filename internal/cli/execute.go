package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wflint/internal/config"
	"wflint/internal/ctxlog"
	"wflint/internal/discovery"
	"wflint/internal/output"
	"wflint/internal/validate"
)

// ExecuteResult is the outcome of a command run.
type ExecuteResult struct {
	ExitCode int
	Err      error
}

// NewApp wires the production dependencies for cfg.
func NewApp(cfg *config.Config) (*App, error) {
	logger, err := ctxlog.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	printer := output.NewPrinter()
	if !cfg.Output.Color {
		printer.DisableColor()
	}

	return &App{
		Config:    cfg,
		Finder:    discovery.NewOSFinder(),
		Validator: validate.NewOSValidator(),
		Printer:   printer,
		Logger:    logger,
	}, nil
}

// RunWithApp executes the command with the given arguments and converts the
// outcome into an exit code. Cancelling ctx stops validation before the next file.
func RunWithApp(ctx context.Context, app *App, args []string) ExecuteResult {
	cmd := NewRootCommand(app)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if code, ok := IsExitError(err); ok {
			return ExecuteResult{ExitCode: code, Err: err}
		}
		app.Printer.Error(err)
		return ExecuteResult{ExitCode: 1, Err: err}
	}
	return ExecuteResult{}
}

// RunWithConfig runs the command against the real filesystem using cfg.
func RunWithConfig(ctx context.Context, cfg *config.Config, args []string) ExecuteResult {
	app, err := NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExecuteResult{ExitCode: 1, Err: err}
	}
	return RunWithApp(ctx, app, args)
}

// Execute loads configuration, runs the command and exits the process.
// SIGINT and SIGTERM cancel the run between files.
func Execute() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	result := RunWithConfig(ctx, cfg, os.Args[1:])
	stop()
	os.Exit(result.ExitCode)
}
