package config

import "fmt"

// Quoting mode names accepted from the command line or a config file.
const (
	QuoteAll        = "quote_all"
	QuoteMinimal    = "quote_minimal"
	QuoteNonNumeric = "quote_nonnumeric"
	QuoteNone       = "quote_none"
)

// DefaultMaxFreq bounds the number of distinct values tracked per field
// when no explicit cap is configured.
const DefaultMaxFreq = 1000000

// Options holds everything the profiling engine consumes. The CLI layer
// builds it; the engine treats it as read-only. Empty string attributes
// mean "sniff this from the data".
type Options struct {
	Delimiter    string // single-character field delimiter
	QuoteChar    string // single-character quote, default `"`
	EscapeChar   string // single-character escape, default none
	Quoting      string // one of the Quote* constants
	RecDelimiter string // record terminator override, default newline

	// HasHeader and HasNoHeader form the tri-state header override:
	// neither set means the header heuristic decides.
	HasHeader   bool
	HasNoHeader bool

	ReadLimit int // max records to read; < 0 means unlimited
	MaxFreq   int // max distinct values tracked per field
}

// New returns Options with engine defaults applied.
func New() Options {
	return Options{
		ReadLimit: -1,
		MaxFreq:   DefaultMaxFreq,
	}
}

// Header resolves the tri-state header override. It returns nil when the
// caller left header detection to the engine.
func (o Options) Header() *bool {
	if o.HasHeader {
		v := true
		return &v
	}
	if o.HasNoHeader {
		v := false
		return &v
	}
	return nil
}

// ConflictError reports contradictory or malformed overrides. It is raised
// before the engine runs; the engine itself never sees an invalid Options.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return "conflicting options: " + e.Msg
}

// Validate checks the option set for internal contradictions.
func (o Options) Validate() error {
	if o.HasHeader && o.HasNoHeader {
		return &ConflictError{Msg: "both hasheader and hasnoheader were set"}
	}
	if len(o.Delimiter) > 1 {
		return &ConflictError{Msg: fmt.Sprintf("delimiter must be a single character, got %q", o.Delimiter)}
	}
	if len(o.QuoteChar) > 1 {
		return &ConflictError{Msg: fmt.Sprintf("quotechar must be a single character, got %q", o.QuoteChar)}
	}
	if len(o.EscapeChar) > 1 {
		return &ConflictError{Msg: fmt.Sprintf("escapechar must be a single character, got %q", o.EscapeChar)}
	}
	switch o.Quoting {
	case "", QuoteAll, QuoteMinimal, QuoteNonNumeric, QuoteNone:
	default:
		return &ConflictError{Msg: fmt.Sprintf("unknown quoting mode %q", o.Quoting)}
	}
	if o.MaxFreq < 1 {
		return &ConflictError{Msg: fmt.Sprintf("max-freq must be positive, got %d", o.MaxFreq)}
	}
	return nil
}
