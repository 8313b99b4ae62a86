// Package inputstream implements istream-style formatted extraction over
// an io.Reader: whitespace-delimited tokens are scanned off a byte stream
// and converted to a requested value type.
//
// A Stream owns a read-ahead buffer and a cursor into it. Each call to
// Scan skips leading delimiter bytes, collects one maximal non-delimiter
// run (the token), and converts it:
//
//	s := inputstream.NewStream(strings.NewReader("  42 -17\n"))
//	a, _ := inputstream.Scan[int32](s) // 42
//	b, _ := inputstream.Scan[int32](s) // -17
//	s.AtEnd()                          // true
//
// # Supported Types
//
// The scannable type set is closed: the signed and unsigned integer
// types, float32/float64, string, []byte, and Char. Char consumes exactly
// one non-delimiter byte, matching `is >> c` in C++ rather than a
// whole-token read.
//
// # Bounded Scans
//
// ScanWithLimit behaves like Scan but aborts with ErrLimitExceeded once
// the call has consumed the given number of bytes, counting skipped
// delimiters and token bytes alike. This is the guard rail for untrusted
// input: a token with no trailing delimiter can otherwise force the
// buffer to grow without bound.
//
// # Errors
//
// Failures form a closed set, distinguished via errors.Is against the
// ErrUnexpectedEOF, ErrInvalidFormat, ErrOverflow and ErrLimitExceeded
// sentinels; read failures from the underlying source wrap the original
// error and are reachable through errors.As. A failed conversion still
// consumes its token: a scan never un-reads bytes.
//
// A Stream is not safe for concurrent use. There is no internal locking
// and no cancellation; blocking is the underlying Read's own.
package inputstream
