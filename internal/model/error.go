package model

import "fmt"

// ErrKind names the closed set of per-URL failure classes. Each class is
// non-fatal to the batch: the dispatcher turns it into a KindFailed Outcome
// for that one target and keeps going.
type ErrKind int

const (
	// ErrFetch covers network, TLS, timeout, and body-read failures.
	ErrFetch ErrKind = iota
	// ErrURLParse covers syntactically malformed target URLs.
	ErrURLParse
	// ErrDecoding covers invalid percent-encoding in a parameter value.
	ErrDecoding
)

// ScanError is the per-URL failure carried inside a KindFailed Outcome.
type ScanError struct {
	Kind ErrKind
	Err  error
}

// Error renders the failure description shown after "Error: " in the
// result line.
func (e *ScanError) Error() string {
	switch e.Kind {
	case ErrURLParse:
		return fmt.Sprintf("invalid URL: %v", e.Err)
	case ErrDecoding:
		return fmt.Sprintf("decoding error: %v", e.Err)
	default:
		return fmt.Sprintf("request failed: %v", e.Err)
	}
}

func (e *ScanError) Unwrap() error { return e.Err }
