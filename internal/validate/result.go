package validate

// FailureKind classifies why a file failed.
type FailureKind int

const (
	// KindNone means the file passed.
	KindNone FailureKind = iota
	// KindRead means the file could not be read.
	KindRead
	// KindParse means the content is not valid YAML.
	KindParse
)

func (k FailureKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindRead:
		return "read"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Result is the validation outcome for a single file.
type Result struct {
	// Path is the file path as produced by discovery.
	Path string

	// Kind is KindNone on success.
	Kind FailureKind

	// Err is nil on success and wraps [ErrRead] or [ErrParse] otherwise.
	Err error
}

// OK reports whether the file passed.
func (r Result) OK() bool {
	return r.Err == nil
}

// Report holds every [Result] of a run in processing order.
type Report struct {
	Results []Result
}

// Failed reports whether any file failed. This decides the exit code.
func (r *Report) Failed() bool {
	return r.FailedCount() > 0
}

// Passed returns the number of files that passed.
func (r *Report) Passed() int {
	return len(r.Results) - r.FailedCount()
}

// FailedCount returns the number of files that failed.
func (r *Report) FailedCount() int {
	n := 0
	for _, res := range r.Results {
		if !res.OK() {
			n++
		}
	}
	return n
}
