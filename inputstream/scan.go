package inputstream

// Char is the single-character scan target. Scanning a Char consumes
// exactly one non-delimiter byte, the way `is >> c` does in C++; it is
// a defined type so the conversion rules can tell it apart from uint8.
type Char byte

// Scannable is the closed set of scan target types. The set is exact by
// design: named types other than Char go through their own conversion
// decision at the call site, not through this registry.
type Scannable interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		string | []byte | Char
}

// Scan skips leading delimiter bytes, consumes one token and converts
// it to T. On failure the token stays consumed; the cursor is never
// rewound.
func Scan[T Scannable](s *Stream) (T, error) {
	return scanValue[T](s, budget{})
}

// ScanWithLimit is Scan with a per-call byte budget: once limit bytes
// have been consumed (skipped delimiters and token bytes both count),
// the scan aborts with ErrLimitExceeded instead of consuming more.
// Results are identical to Scan whenever Scan would consume at most
// limit bytes in total. A non-positive limit is a caller bug and
// panics.
func ScanWithLimit[T Scannable](s *Stream, limit int) (T, error) {
	if limit <= 0 {
		panic("inputstream: non-positive scan limit")
	}
	return scanValue[T](s, budget{limited: true, limit: limit})
}

// budget tracks the remaining byte allowance of one bounded scan. The
// zero value is unlimited.
type budget struct {
	limited bool
	limit   int
	used    int
}

// take claims one byte of budget, reporting false when it is spent.
func (b *budget) take() bool {
	if b.limited && b.used >= b.limit {
		return false
	}
	b.used++
	return true
}

func scanValue[T Scannable](s *Stream, b budget) (T, error) {
	var zero T
	target := typeName[T]()

	// Skip delimiters up to the first token byte.
	for {
		c, ok, err := s.peek()
		if err != nil {
			return zero, ioError(target, err)
		}
		if !ok {
			return zero, eofError(target)
		}
		if !s.isDelim(c) {
			break
		}
		if !b.take() {
			return zero, limitError(target, b.limit)
		}
		s.buf.advance()
	}

	// Char takes exactly the first byte of the run.
	if _, isChar := any(zero).(Char); isChar {
		c, _ := s.buf.peek()
		if !b.take() {
			return zero, limitError(target, b.limit)
		}
		s.buf.advance()
		return any(Char(c)).(T), nil
	}

	// Collect the maximal non-delimiter run. EOF ends the token; a
	// read failure mid-token is an I/O failure, not a short token.
	s.scratch = s.scratch[:0]
	for {
		c, ok, err := s.peek()
		if err != nil {
			return zero, ioError(target, err)
		}
		if !ok || s.isDelim(c) {
			break
		}
		if !b.take() {
			return zero, limitError(target, b.limit)
		}
		s.scratch = append(s.scratch, c)
		s.buf.advance()
	}

	return convert[T](target, s.scratch)
}

// typeName resolves the error-message name for a scan target.
func typeName[T Scannable]() string {
	var zero T
	switch any(zero).(type) {
	case int:
		return "int"
	case int8:
		return "int8"
	case int16:
		return "int16"
	case int32:
		return "int32"
	case int64:
		return "int64"
	case uint:
		return "uint"
	case uint8:
		return "uint8"
	case uint16:
		return "uint16"
	case uint32:
		return "uint32"
	case uint64:
		return "uint64"
	case float32:
		return "float32"
	case float64:
		return "float64"
	case string:
		return "string"
	case []byte:
		return "[]byte"
	case Char:
		return "char"
	default:
		return "?"
	}
}
