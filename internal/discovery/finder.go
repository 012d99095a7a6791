// Package discovery finds the workflow files to validate.
//
// Discovery is a single glob evaluated against an [afero.Fs], followed by an
// ignore filter. The glob is evaluated relative to the working directory so
// reported paths look exactly like the pattern that produced them
// (".github/workflows/ci.yml").
package discovery

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrBadPattern is returned when the discovery pattern or an ignore pattern
// is malformed.
var ErrBadPattern = errors.New("bad discovery pattern")

// Finder evaluates discovery patterns against a filesystem.
type Finder struct {
	fs afero.Fs
}

// NewFinder creates a [Finder] over the given filesystem.
func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

// NewOSFinder creates a [Finder] over the real filesystem. Relative patterns
// resolve against the process working directory.
func NewOSFinder() *Finder {
	return NewFinder(afero.NewOsFs())
}

// Find returns the non-directory files matching pattern, minus those matching
// any ignore pattern, in glob order.
//
// An ignore pattern ending in "/**" drops every path beneath the directory it
// names; any other ignore pattern must match the whole path. A wildcard never
// matches a leading dot: ".hidden.yml" is found only by a pattern segment
// that itself starts with ".".
func (f *Finder) Find(pattern string, ignore []string) ([]string, error) {
	for _, pat := range ignore {
		if _, err := path.Match(strings.TrimSuffix(strings.TrimPrefix(pat, "./"), "/**"), ""); err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrBadPattern, pat, err)
		}
	}

	matches, err := afero.Glob(f.fs, filepath.FromSlash(pattern))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrBadPattern, pattern, err)
	}

	patSegs := strings.Split(strings.TrimPrefix(filepath.ToSlash(pattern), "./"), "/")

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if matchesDotfile(patSegs, filepath.ToSlash(m)) {
			continue
		}

		ignored, err := isIgnored(filepath.ToSlash(m), ignore)
		if err != nil {
			return nil, err
		}
		if ignored {
			continue
		}

		// Unstattable entries are kept so validation reports them.
		if info, err := f.fs.Stat(m); err == nil && info.IsDir() {
			continue
		}

		files = append(files, m)
	}

	return files, nil
}

// matchesDotfile reports whether a wildcard segment of the pattern matched a
// name starting with ".".
func matchesDotfile(patSegs []string, p string) bool {
	segs := strings.Split(strings.TrimPrefix(p, "./"), "/")
	if len(segs) != len(patSegs) {
		return false
	}
	for i, seg := range segs {
		if strings.HasPrefix(seg, ".") && !strings.HasPrefix(patSegs[i], ".") {
			return true
		}
	}
	return false
}

func isIgnored(p string, ignore []string) (bool, error) {
	p = strings.TrimPrefix(p, "./")

	for _, pat := range ignore {
		pat = strings.TrimPrefix(pat, "./")

		if dir, ok := strings.CutSuffix(pat, "/**"); ok {
			n := strings.Count(dir, "/") + 1
			segs := strings.Split(p, "/")
			if len(segs) <= n {
				continue
			}
			matched, err := path.Match(dir, strings.Join(segs[:n], "/"))
			if err != nil {
				return false, fmt.Errorf("%w %q: %v", ErrBadPattern, pat, err)
			}
			if matched {
				return true, nil
			}
			continue
		}

		matched, err := path.Match(pat, p)
		if err != nil {
			return false, fmt.Errorf("%w %q: %v", ErrBadPattern, pat, err)
		}
		if matched {
			return true, nil
		}
	}

	return false, nil
}
