// Package output renders validation results to the terminal.
//
// Pass and informational lines go to the out writer; fail lines go to the
// error writer. Markers are styled with lipgloss. Each writer gets its own
// renderer, so styling is dropped automatically when the writer is not a
// terminal and the text is identical either way.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"wflint/internal/validate"
)

const (
	passMark = "✓"
	failMark = "✗"
)

// NoFilesMessage is printed when discovery matches nothing.
const NoFilesMessage = "No YAML files found."

// Printer writes result lines.
type Printer struct {
	out    io.Writer
	errOut io.Writer

	passStyle lipgloss.Style
	failStyle lipgloss.Style
	dimStyle  lipgloss.Style
}

// NewPrinter creates a [Printer] on stdout and stderr.
func NewPrinter() *Printer {
	return NewPrinterWithWriters(os.Stdout, os.Stderr)
}

// NewPrinterWithWriter creates a [Printer] that writes everything to w.
func NewPrinterWithWriter(w io.Writer) *Printer {
	return NewPrinterWithWriters(w, w)
}

// NewPrinterWithWriters creates a [Printer] with separate pass and fail streams.
func NewPrinterWithWriters(out, errOut io.Writer) *Printer {
	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)

	return &Printer{
		out:       out,
		errOut:    errOut,
		passStyle: outR.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		failStyle: errR.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		dimStyle:  outR.NewStyle().Faint(true),
	}
}

// DisableColor removes all styling.
func (p *Printer) DisableColor() {
	p.passStyle = lipgloss.NewStyle()
	p.failStyle = lipgloss.NewStyle()
	p.dimStyle = lipgloss.NewStyle()
}

// Pass prints "✓ <path>".
func (p *Printer) Pass(path string) {
	fmt.Fprintf(p.out, "%s %s\n", p.passStyle.Render(passMark), path)
}

// Fail prints "✗ <path> : <message>".
func (p *Printer) Fail(path string, err error) {
	fmt.Fprintf(p.errOut, "%s %s : %v\n", p.failStyle.Render(failMark), path, err)
}

// Result prints the pass or fail line for res.
func (p *Printer) Result(res validate.Result) {
	if res.OK() {
		p.Pass(res.Path)
		return
	}
	p.Fail(res.Path, res.Err)
}

// NoFiles prints the empty-discovery notice.
func (p *Printer) NoFiles() {
	fmt.Fprintln(p.out, NoFilesMessage)
}

// Summary prints the pass/fail totals of report.
func (p *Printer) Summary(report *validate.Report) {
	line := fmt.Sprintf("%d passed, %d failed", report.Passed(), report.FailedCount())
	fmt.Fprintln(p.out, p.dimStyle.Render(line))
}

// Error prints a run-level error that is not tied to a single file.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.errOut, "Error: %v\n", err)
}
