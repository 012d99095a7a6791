package cli

import (
	"context"

	"github.com/spf13/cobra"

	"wflint/internal/ctxlog"
)

// NewRootCommand builds the wflint command around app.
func NewRootCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "wflint",
		Short: "Validate YAML syntax of CI workflow files",
		Long: `Validate the YAML syntax of every .github/workflows/*.yml file
under the current directory (node_modules is skipped).

Prints one line per file and exits 1 if any file fails to parse.
Exits 0 when every file parses or when no files are found.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), app)
		},
	}
}

func runValidate(ctx context.Context, app *App) error {
	logger := app.Logger
	if logger == nil {
		logger = ctxlog.Discard()
	}
	ctx = ctxlog.WithLogger(ctx, logger)

	cfg := app.Config
	files, err := app.Finder.Find(cfg.Discovery.Pattern, cfg.Discovery.Ignore)
	if err != nil {
		app.Printer.Error(err)
		return NewExitError(1)
	}
	logger.Debug("discovered files", "pattern", cfg.Discovery.Pattern, "count", len(files))

	if len(files) == 0 {
		app.Printer.NoFiles()
		return nil
	}

	report, err := app.Validator.ValidateAll(ctx, files, app.Printer.Result)
	if err != nil {
		app.Printer.Error(err)
		return NewExitError(1)
	}

	if cfg.Output.Summary {
		app.Printer.Summary(report)
	}

	logger.Debug("validation finished", "passed", report.Passed(), "failed", report.FailedCount())

	if report.Failed() {
		return NewExitError(1)
	}
	return nil
}
