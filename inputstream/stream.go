package inputstream

import "io"

// DefaultDelimiters is the standard delimiter set: ASCII space plus the
// 0x09..0x0D control range (tab, LF, VT, FF, CR).
const DefaultDelimiters = " \t\n\v\f\r"

// Stream is a scanning handle over an io.Reader. It owns the read-ahead
// buffer and the token scratch; create one per reader and use it from a
// single goroutine.
type Stream struct {
	src     source
	buf     buffer
	delim   [256]bool
	scratch []byte // current token's bytes, reused across scans
}

// Option configures a Stream.
type Option func(*Stream)

// WithBufferSize sets the initial read-ahead buffer capacity
// (default: DefaultBufferSize). The buffer still grows when a single
// token outsizes it.
func WithBufferSize(size int) Option {
	return func(s *Stream) {
		s.buf = newBuffer(size)
	}
}

// WithDelimiters replaces the delimiter byte set (default:
// DefaultDelimiters).
func WithDelimiters(set string) Option {
	return func(s *Stream) {
		s.delim = [256]bool{}
		for i := 0; i < len(set); i++ {
			s.delim[set[i]] = true
		}
	}
}

// NewStream creates a scanning stream over r.
func NewStream(r io.Reader, opts ...Option) *Stream {
	s := &Stream{
		src: source{r: r},
		buf: newBuffer(DefaultBufferSize),
	}
	for i := 0; i < len(DefaultDelimiters); i++ {
		s.delim[DefaultDelimiters[i]] = true
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// isDelim reports whether c belongs to the stream's delimiter set.
func (s *Stream) isDelim(c byte) bool {
	return s.delim[c]
}

// peek returns the byte at the cursor, refilling from the source as
// needed. ok is false at end of input; a read failure comes back as the
// error with ok false.
func (s *Stream) peek() (byte, bool, error) {
	for {
		if c, ok := s.buf.peek(); ok {
			return c, true, nil
		}
		if s.buf.atEnd(&s.src) {
			return 0, false, nil
		}
		got, err := s.buf.refill(&s.src)
		if err != nil {
			return 0, false, err
		}
		if !got {
			return 0, false, nil
		}
	}
}

// AtEnd reports whether another token exists. It consumes delimiter
// bytes while probing, so after the last token AtEnd skips the trailing
// whitespace and returns true. A source read failure also ends the
// stream; inspect Err to tell the cases apart.
func (s *Stream) AtEnd() bool {
	for {
		c, ok, err := s.peek()
		if err != nil || !ok {
			return true
		}
		if !s.isDelim(c) {
			return false
		}
		s.buf.advance()
	}
}

// Err returns the sticky error from the underlying source, nil if reads
// have only ever succeeded or cleanly reached EOF.
func (s *Stream) Err() error {
	return s.src.failure()
}

// Read drains buffered bytes first and then the source, so a Stream can
// be handed on as a plain io.Reader without losing read-ahead.
func (s *Stream) Read(p []byte) (int, error) {
	if w := s.buf.window(); len(w) > 0 {
		n := copy(p, w)
		s.buf.discard(n)
		return n, nil
	}
	if len(p) == 0 {
		return 0, nil
	}
	n, err := s.src.fill(p)
	if err != nil {
		return n, err
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}
