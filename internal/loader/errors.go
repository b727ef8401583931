package loader

import "fmt"

// FormatError reports a malformed process line. The whole load fails on the
// first one.
type FormatError struct {
	Source string
	Line   int
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: line %d: format error in %q: %s", e.Source, e.Line, e.Text, e.Reason)
}

// SourceUnavailableError reports that the process list could not be read.
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("process source %s unavailable: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }
