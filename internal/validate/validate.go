// Package validate checks that workflow files are syntactically valid YAML.
//
// Validation is syntax only: a file passes when it holds at most one document,
// that document parses, and no mapping repeats a key. Schema and semantics are
// never inspected.
//
// Key types:
//   - [Validator] reads files through an afero filesystem and parses them
//   - [Result] is the outcome for one file
//   - [Report] collects results in processing order
package validate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"wflint/internal/ctxlog"
)

// ErrRead marks failures to read a file.
var ErrRead = errors.New("read failed")

// ErrParse marks failures to parse file content as YAML.
var ErrParse = errors.New("parse failed")

// Validator reads and parses workflow files.
type Validator struct {
	fs afero.Fs
}

// NewValidator creates a [Validator] that reads through fs.
func NewValidator(fs afero.Fs) *Validator {
	return &Validator{fs: fs}
}

// NewOSValidator creates a [Validator] over the real filesystem.
func NewOSValidator() *Validator {
	return NewValidator(afero.NewOsFs())
}

// ValidateFile reads path and parses it. The returned [Result] carries the
// failure, if any; read and parse failures are both reported as failures.
func (v *Validator) ValidateFile(path string) Result {
	data, err := afero.ReadFile(v.fs, path)
	if err != nil {
		return Result{Path: path, Kind: KindRead, Err: fmt.Errorf("%w: %w", ErrRead, err)}
	}

	if err := ValidateBytes(data); err != nil {
		return Result{Path: path, Kind: KindParse, Err: fmt.Errorf("%w: %w", ErrParse, err)}
	}

	return Result{Path: path}
}

// ValidateAll validates paths sequentially in the given order. A failing file
// never stops the scan. onResult, when non-nil, is called with each result as
// soon as it is known. The context is checked between files; on cancellation
// the partial report is returned together with ctx.Err().
func (v *Validator) ValidateAll(ctx context.Context, paths []string, onResult func(Result)) (*Report, error) {
	logger := ctxlog.FromContext(ctx)
	report := &Report{Results: make([]Result, 0, len(paths))}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res := v.ValidateFile(p)
		if res.Err != nil {
			logger.Debug("file failed", "path", p, "kind", res.Kind, "error", res.Err)
		} else {
			logger.Debug("file passed", "path", p)
		}
		report.Results = append(report.Results, res)
		if onResult != nil {
			onResult(res)
		}
	}

	return report, nil
}

// ErrMultipleDocuments is returned for streams holding more than one document.
var ErrMultipleDocuments = errors.New("yaml: expected a single document in the stream, but found more")

// ValidateBytes parses data as a single YAML document. Empty input passes;
// a stream with a second document fails.
func ValidateBytes(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node
	err := dec.Decode(&doc)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}

	// A syntax error in a trailing document wins over the document count.
	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return err
	default:
		return ErrMultipleDocuments
	}

	return checkDuplicateKeys(&doc)
}

// checkDuplicateKeys rejects mappings that define the same scalar key twice.
// Keys compare by their text, so 1 and "1" collide. Merge keys ("<<") may repeat.
func checkDuplicateKeys(n *yaml.Node) error {
	if n == nil {
		return nil
	}

	if n.Kind == yaml.MappingNode {
		seen := make(map[string]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode || k.ShortTag() == "!!merge" {
				continue
			}
			if line, ok := seen[k.Value]; ok {
				return fmt.Errorf("yaml: line %d: mapping key %q already defined at line %d", k.Line, k.Value, line)
			}
			seen[k.Value] = k.Line
		}
	}

	// Aliases point back into the tree; their targets are checked in place.
	if n.Kind == yaml.AliasNode {
		return nil
	}

	for _, c := range n.Content {
		if err := checkDuplicateKeys(c); err != nil {
			return err
		}
	}
	return nil
}
