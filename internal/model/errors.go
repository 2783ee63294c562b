package model

import "fmt"

// ValidationError describes a single constraint violation at
// construction time. It is fatal to that construction attempt only.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// FormatError describes structurally malformed import data: missing
// keys, bad delimiters, non-numeric fields, unknown row types. It
// aborts the whole decode, never a single row.
type FormatError struct {
	Msg string
	Err error
}

func (e FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e FormatError) Unwrap() error { return e.Err }

// Formatf builds a FormatError from a format string.
func Formatf(format string, args ...any) FormatError {
	return FormatError{Msg: fmt.Sprintf(format, args...)}
}
