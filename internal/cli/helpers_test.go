package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"wflint/internal/config"
	"wflint/internal/discovery"
	"wflint/internal/output"
	"wflint/internal/validate"
)

// testApp bundles an App over an in-memory filesystem with captured output.
type testApp struct {
	*App
	fs     afero.Fs
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	fs := afero.NewMemMapFs()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	return &testApp{
		App: &App{
			Config:    config.DefaultConfig(),
			Finder:    discovery.NewFinder(fs),
			Validator: validate.NewValidator(fs),
			Printer:   output.NewPrinterWithWriters(out, errOut),
		},
		fs:     fs,
		out:    out,
		errOut: errOut,
	}
}

// writeWorkflow creates name under .github/workflows with the given content.
func (a *testApp) writeWorkflow(t *testing.T, name, content string) string {
	t.Helper()

	p := filepath.Join(".github", "workflows", name)
	require.NoError(t, afero.WriteFile(a.fs, p, []byte(content), 0644))
	return p
}

// MockFinder returns a fixed file list or error.
type MockFinder struct {
	Files []string
	Err   error
}

func (m *MockFinder) Find(pattern string, ignore []string) ([]string, error) {
	return m.Files, m.Err
}

// contextRecorder is a FileValidator that records the context it was given.
type contextRecorder struct {
	ctx context.Context
}

func (c *contextRecorder) ValidateAll(ctx context.Context, paths []string, onResult func(validate.Result)) (*validate.Report, error) {
	c.ctx = ctx
	return &validate.Report{}, nil
}
