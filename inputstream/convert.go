package inputstream

import (
	"errors"
	"strconv"
)

// convert applies the per-type conversion rule to one collected token.
// The token grammar is validated here, not left to strconv, so that the
// accepted forms stay the closed set the scanner documents: strconv
// extras like "0x1p-2", "Inf" or underscore digit separators are
// InvalidFormat, and range failures are the only errors strconv is
// trusted to report.
func convert[T Scannable](target string, tok []byte) (T, error) {
	var zero T
	switch p := any(&zero).(type) {
	case *int:
		v, err := parseSigned(target, tok, strconv.IntSize)
		if err != nil {
			return zero, err
		}
		*p = int(v)
	case *int8:
		v, err := parseSigned(target, tok, 8)
		if err != nil {
			return zero, err
		}
		*p = int8(v)
	case *int16:
		v, err := parseSigned(target, tok, 16)
		if err != nil {
			return zero, err
		}
		*p = int16(v)
	case *int32:
		v, err := parseSigned(target, tok, 32)
		if err != nil {
			return zero, err
		}
		*p = int32(v)
	case *int64:
		v, err := parseSigned(target, tok, 64)
		if err != nil {
			return zero, err
		}
		*p = v
	case *uint:
		v, err := parseUnsigned(target, tok, strconv.IntSize)
		if err != nil {
			return zero, err
		}
		*p = uint(v)
	case *uint8:
		v, err := parseUnsigned(target, tok, 8)
		if err != nil {
			return zero, err
		}
		*p = uint8(v)
	case *uint16:
		v, err := parseUnsigned(target, tok, 16)
		if err != nil {
			return zero, err
		}
		*p = uint16(v)
	case *uint32:
		v, err := parseUnsigned(target, tok, 32)
		if err != nil {
			return zero, err
		}
		*p = uint32(v)
	case *uint64:
		v, err := parseUnsigned(target, tok, 64)
		if err != nil {
			return zero, err
		}
		*p = v
	case *float32:
		v, err := parseFloat(target, tok, 32)
		if err != nil {
			return zero, err
		}
		*p = float32(v)
	case *float64:
		v, err := parseFloat(target, tok, 64)
		if err != nil {
			return zero, err
		}
		*p = v
	case *string:
		*p = string(tok)
	case *[]byte:
		*p = append([]byte(nil), tok...)
	}
	return zero, nil
}

// parseSigned converts a token to a signed integer of the given width.
// Grammar: optional +/- sign, one or more ASCII digits, nothing else.
func parseSigned(target string, tok []byte, bits int) (int64, error) {
	if !validInteger(tok) {
		return 0, formatError(target, tok)
	}
	v, err := strconv.ParseInt(string(tok), 10, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, overflowError(target, tok)
		}
		return 0, formatError(target, tok)
	}
	return v, nil
}

// parseUnsigned converts a token to an unsigned integer of the given
// width. A grammatically valid negative token is Overflow (not
// representable) rather than InvalidFormat, except "-0" which is 0.
func parseUnsigned(target string, tok []byte, bits int) (uint64, error) {
	if !validInteger(tok) {
		return 0, formatError(target, tok)
	}
	digits := tok
	negative := false
	switch tok[0] {
	case '-':
		negative = true
		digits = tok[1:]
	case '+':
		digits = tok[1:]
	}
	v, err := strconv.ParseUint(string(digits), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, overflowError(target, tok)
		}
		return 0, formatError(target, tok)
	}
	if negative {
		if v != 0 {
			return 0, overflowError(target, tok)
		}
		return 0, nil
	}
	if bits < 64 && v >= 1<<uint(bits) {
		return 0, overflowError(target, tok)
	}
	return v, nil
}

// parseFloat converts a token to a float of the given width. Grammar:
// sign? digit+ ('.' digit+)? ([eE] sign? digit+)? — so ".5", "5.",
// "1e", "Inf" and "NaN" are all InvalidFormat.
func parseFloat(target string, tok []byte, bits int) (float64, error) {
	if !validFloat(tok) {
		return 0, formatError(target, tok)
	}
	v, err := strconv.ParseFloat(string(tok), bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, overflowError(target, tok)
		}
		return 0, formatError(target, tok)
	}
	return v, nil
}

// validInteger checks sign? digit+ with no trailing bytes.
func validInteger(tok []byte) bool {
	i := 0
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		i++
	}
	if i == len(tok) {
		return false // empty digit run, "-" alone included
	}
	for ; i < len(tok); i++ {
		if !isDigit(tok[i]) {
			return false
		}
	}
	return true
}

// validFloat checks sign? digit+ ('.' digit+)? ([eE] sign? digit+)?
// with no trailing bytes.
func validFloat(tok []byte) bool {
	i := 0
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		i++
	}
	start := i
	for i < len(tok) && isDigit(tok[i]) {
		i++
	}
	if i == start {
		return false
	}
	if i < len(tok) && tok[i] == '.' {
		i++
		start = i
		for i < len(tok) && isDigit(tok[i]) {
			i++
		}
		if i == start {
			return false
		}
	}
	if i < len(tok) && (tok[i] == 'e' || tok[i] == 'E') {
		i++
		if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
			i++
		}
		start = i
		for i < len(tok) && isDigit(tok[i]) {
			i++
		}
		if i == start {
			return false
		}
	}
	return i == len(tok)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
