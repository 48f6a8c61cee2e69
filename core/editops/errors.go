package editops

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange marks a position or range bound outside its sequence.
	ErrOutOfRange = errors.New("index out of range")
	// ErrMalformedScript marks a script whose records are unordered,
	// overlapping, non-contiguous or of an unknown kind.
	ErrMalformedScript = errors.New("malformed edit script")
)

// ScriptError reports the record that made a script unusable.
type ScriptError struct {
	Form   string // "editops" or "opcodes"
	Index  int    // record index within the script
	Detail string
	Err    error // ErrOutOfRange or ErrMalformedScript
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("%s[%d]: %v: %s", e.Form, e.Index, e.Err, e.Detail)
}

func (e *ScriptError) Unwrap() error { return e.Err }

func outOfRange(form string, i int, format string, a ...any) error {
	return &ScriptError{Form: form, Index: i, Err: ErrOutOfRange, Detail: fmt.Sprintf(format, a...)}
}

func malformed(form string, i int, format string, a ...any) error {
	return &ScriptError{Form: form, Index: i, Err: ErrMalformedScript, Detail: fmt.Sprintf(format, a...)}
}
