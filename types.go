package jsonapi

// Severity expresses how a decode-time condition is treated.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	// OnDuplicateKey decides what happens when an object repeats a member
	// name. Under Ignore and Warn the last value wins.
	OnDuplicateKey Severity
}

// ParseOpt bundles decoding options. The zero value disables every check.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int   // Maximum container nesting; 0 means unlimited.
	MaxBytes   int64 // Maximum input size; 0 means unlimited.
	// OnWarning receives non-fatal decode issues, such as duplicate keys
	// under Warn.
	OnWarning func(*DecodeError)
}

func lastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) == 0 {
		return ParseOpt{}
	}
	return opts[len(opts)-1]
}
