package model

// Param is one query parameter of a target URL, in appearance order.
// Key and Raw are kept exactly as written in the query string; only the
// value gets percent-decoded.
type Param struct {
	Key   string
	Raw   string
	Value string
}

// Kind classifies the outcome of a single scan.
type Kind int

const (
	// KindNotReflected means the URL was fetched and no candidate tag
	// appeared literally in the response body.
	KindNotReflected Kind = iota
	// KindReflected means at least one candidate tag from a decoded
	// parameter value reappeared unmodified in the body.
	KindReflected
	// KindFailed means the scan ended in a per-URL error before a
	// reflection verdict was possible.
	KindFailed
)

// Outcome is the final result for a single scanned target. Every target
// produces exactly one Outcome.
type Outcome struct {
	Target     string
	Kind       Kind
	Tag        string // matched candidate, set only for KindReflected
	Status     string // status line text such as "200 OK", empty if the request never completed
	StatusCode int
	Err        *ScanError // set only for KindFailed
}
