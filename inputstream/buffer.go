package inputstream

// DefaultBufferSize is the initial capacity of a stream's read-ahead
// buffer.
const DefaultBufferSize = 4096

// buffer is the owned byte region behind a Stream's cursor. Bytes in
// [pos, len(data)) are valid unread data; refilling appends past the
// filled length, compacting unread bytes to the front first when the
// capacity is exhausted.
type buffer struct {
	data []byte // filled region, len(data) is the filled length
	pos  int    // read offset, 0 <= pos <= len(data)
}

func newBuffer(size int) buffer {
	if size < 1 {
		size = DefaultBufferSize
	}
	return buffer{data: make([]byte, 0, size)}
}

// peek returns the byte at the cursor without consuming it.
func (b *buffer) peek() (byte, bool) {
	if b.pos >= len(b.data) {
		return 0, false
	}
	return b.data[b.pos], true
}

// advance consumes one byte.
func (b *buffer) advance() {
	if b.pos < len(b.data) {
		b.pos++
	}
}

// window returns the unread bytes without consuming them.
func (b *buffer) window() []byte {
	return b.data[b.pos:]
}

// discard consumes n unread bytes.
func (b *buffer) discard(n int) {
	if n > len(b.data)-b.pos {
		n = len(b.data) - b.pos
	}
	b.pos += n
}

// refill pulls more bytes from src into spare capacity and reports
// whether any new byte became available. Read failures propagate
// without retry.
func (b *buffer) refill(src *source) (bool, error) {
	// Fully consumed: rewind instead of growing.
	if b.pos == len(b.data) {
		b.data = b.data[:0]
		b.pos = 0
	}
	if len(b.data) == cap(b.data) {
		if b.pos > 0 {
			// Reclaim the consumed prefix.
			n := copy(b.data, b.data[b.pos:])
			b.data = b.data[:n]
			b.pos = 0
		} else {
			// Genuinely full of unread bytes: grow.
			grown := make([]byte, len(b.data), 2*cap(b.data))
			copy(grown, b.data)
			b.data = grown
		}
	}
	n, err := src.fill(b.data[len(b.data):cap(b.data)])
	if err != nil {
		return false, err
	}
	b.data = b.data[:len(b.data)+n]
	return n > 0, nil
}

// atEnd reports whether the cursor is exhausted: no unread bytes and a
// source that can produce no more.
func (b *buffer) atEnd(src *source) bool {
	return b.pos == len(b.data) && src.exhausted()
}
