package wordcross

import "fmt"

// InputFormatError reports an unparseable word file, force file, or
// relative-force file line.
type InputFormatError struct {
	Source string // e.g. "force file", "relative-force file"
	Line   string
	Reason string
}

func (e InputFormatError) Error() string {
	return fmt.Sprintf("%s: invalid line %q: %s", e.Source, e.Line, e.Reason)
}

// BoundsError reports a dimension, lower bound, or cardinality that's
// out of range.
type BoundsError struct {
	Reason string
}

func (e BoundsError) Error() string {
	return e.Reason
}

// internalInvariantViolation aggregates "should never happen" failures,
// mirroring operator-lifecycle-manager's lit_mapping.go accumulation
// pattern: failures are collected during construction rather than
// returned individually, then surfaced as one aggregate error so callers
// don't need to thread error returns through every accumulator call.
type internalInvariantViolation []string

func (e internalInvariantViolation) Error() string {
	return fmt.Sprintf("internal invariant violation (%d): %v", len(e), []string(e))
}

func (e *internalInvariantViolation) add(format string, args ...interface{}) {
	*e = append(*e, fmt.Sprintf(format, args...))
}
