// Package cli implements the wflint command.
//
// The command takes no arguments. It discovers workflow files with the
// configured pattern, validates each one, prints a line per file and exits
// 1 if any file failed.
//
// Dependencies are injected through [App] so tests can run the command
// against an in-memory filesystem and capture output.
package cli

import (
	"context"
	"log/slog"

	"wflint/internal/config"
	"wflint/internal/output"
	"wflint/internal/validate"
)

// FileFinder discovers the files to validate.
// The [discovery.Finder] type implements this interface.
type FileFinder interface {
	Find(pattern string, ignore []string) ([]string, error)
}

// FileValidator validates discovered files in order.
// The [validate.Validator] type implements this interface.
type FileValidator interface {
	ValidateAll(ctx context.Context, paths []string, onResult func(validate.Result)) (*validate.Report, error)
}

// App holds the dependencies of the command.
type App struct {
	Config    *config.Config
	Finder    FileFinder
	Validator FileValidator
	Printer   *output.Printer
	Logger    *slog.Logger
}
