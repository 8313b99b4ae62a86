package inputstream

import (
	"errors"
	"fmt"
)

// Kind classifies a scan failure. Exactly one kind is produced per
// failed call.
type Kind uint8

const (
	// KindUnexpectedEOF: the stream ended before a token was found.
	KindUnexpectedEOF Kind = iota + 1
	// KindInvalidFormat: a token was found but does not match the
	// target type's grammar.
	KindInvalidFormat
	// KindOverflow: the token is grammatically valid but not
	// representable in the target width.
	KindOverflow
	// KindLimitExceeded: a bounded scan ran out of byte budget.
	KindLimitExceeded
	// KindIO: the underlying source's Read failed.
	KindIO
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindUnexpectedEOF:
		return "unexpected EOF"
	case KindInvalidFormat:
		return "invalid format"
	case KindOverflow:
		return "overflow"
	case KindLimitExceeded:
		return "limit exceeded"
	case KindIO:
		return "io"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Per-kind sentinels, matched through errors.Is.
var (
	ErrUnexpectedEOF = errors.New("inputstream: unexpected end of input")
	ErrInvalidFormat = errors.New("inputstream: invalid token format")
	ErrOverflow      = errors.New("inputstream: value out of range")
	ErrLimitExceeded = errors.New("inputstream: scan limit exceeded")
)

// Error is the concrete error returned by every failing scan.
type Error struct {
	Kind   Kind
	Target string // target type name ("int32", "float64", ...)
	Token  string // offending token, empty when none was collected
	Limit  int    // byte budget, set only for KindLimitExceeded
	Cause  error  // underlying read error, set only for KindIO
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnexpectedEOF:
		return fmt.Sprintf("inputstream: scan %s: unexpected end of input", e.Target)
	case KindInvalidFormat:
		return fmt.Sprintf("inputstream: scan %s: invalid token %q", e.Target, e.Token)
	case KindOverflow:
		return fmt.Sprintf("inputstream: scan %s: token %q out of range", e.Target, e.Token)
	case KindLimitExceeded:
		return fmt.Sprintf("inputstream: scan %s: limit of %d bytes exceeded", e.Target, e.Limit)
	case KindIO:
		return fmt.Sprintf("inputstream: scan %s: read: %v", e.Target, e.Cause)
	default:
		return fmt.Sprintf("inputstream: scan %s: %s", e.Target, e.Kind)
	}
}

// Is reports whether this error matches a per-kind sentinel.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnexpectedEOF:
		return e.Kind == KindUnexpectedEOF
	case ErrInvalidFormat:
		return e.Kind == KindInvalidFormat
	case ErrOverflow:
		return e.Kind == KindOverflow
	case ErrLimitExceeded:
		return e.Kind == KindLimitExceeded
	}
	return false
}

// Unwrap exposes the wrapped read error for KindIO.
func (e *Error) Unwrap() error {
	return e.Cause
}

func eofError(target string) *Error {
	return &Error{Kind: KindUnexpectedEOF, Target: target}
}

func formatError(target string, token []byte) *Error {
	return &Error{Kind: KindInvalidFormat, Target: target, Token: string(token)}
}

func overflowError(target string, token []byte) *Error {
	return &Error{Kind: KindOverflow, Target: target, Token: string(token)}
}

func limitError(target string, limit int) *Error {
	return &Error{Kind: KindLimitExceeded, Target: target, Limit: limit}
}

func ioError(target string, cause error) *Error {
	return &Error{Kind: KindIO, Target: target, Cause: cause}
}
