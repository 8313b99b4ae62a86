package inputstream

import (
	"strings"
	"testing"
)

// ============================================================
// Cursor Primitives
// ============================================================

func TestBuffer_PeekAdvance(t *testing.T) {
	src := source{r: strings.NewReader("ab")}
	buf := newBuffer(8)

	if _, ok := buf.peek(); ok {
		t.Fatal("peek on empty buffer should report no byte")
	}
	got, err := buf.refill(&src)
	if err != nil || !got {
		t.Fatalf("refill = (%v, %v), want (true, nil)", got, err)
	}

	c, ok := buf.peek()
	if !ok || c != 'a' {
		t.Errorf("peek = (%q, %v), want ('a', true)", c, ok)
	}
	// Peek does not consume.
	c, _ = buf.peek()
	if c != 'a' {
		t.Errorf("second peek = %q, want 'a'", c)
	}

	buf.advance()
	c, ok = buf.peek()
	if !ok || c != 'b' {
		t.Errorf("peek after advance = (%q, %v), want ('b', true)", c, ok)
	}

	buf.advance()
	if _, ok := buf.peek(); ok {
		t.Error("peek past the filled region should report no byte")
	}
}

func TestBuffer_RefillReportsEOF(t *testing.T) {
	src := source{r: strings.NewReader("")}
	buf := newBuffer(8)

	got, err := buf.refill(&src)
	if err != nil {
		t.Fatalf("refill: %v", err)
	}
	if got {
		t.Error("refill on empty source should report no new byte")
	}
	if !buf.atEnd(&src) {
		t.Error("atEnd should be true after an empty refill")
	}
}

func TestBuffer_AtEndNeedsExhaustedSource(t *testing.T) {
	src := source{r: strings.NewReader("x")}
	buf := newBuffer(8)

	// Empty window alone is not the end: the source has not been
	// probed yet.
	if buf.atEnd(&src) {
		t.Error("atEnd before any refill should be false")
	}

	buf.refill(&src)
	buf.advance()
	if buf.atEnd(&src) {
		t.Error("atEnd with an unprobed source should be false")
	}

	buf.refill(&src)
	if !buf.atEnd(&src) {
		t.Error("atEnd after EOF refill should be true")
	}
}

// ============================================================
// Compaction and Growth
// ============================================================

func TestBuffer_CompactionReclaimsConsumedPrefix(t *testing.T) {
	// 4-byte capacity, 2 bytes consumed: the next refill must
	// shift the unread suffix to the front instead of growing.
	src := source{r: strings.NewReader("abcdef")}
	buf := newBuffer(4)

	buf.refill(&src) // "abcd"
	buf.advance()
	buf.advance() // pos=2, window "cd"

	if _, err := buf.refill(&src); err != nil {
		t.Fatalf("refill: %v", err)
	}
	if cap(buf.data) != 4 {
		t.Errorf("capacity = %d, want 4 (compaction, not growth)", cap(buf.data))
	}
	if got := string(buf.window()); got != "cdef" {
		t.Errorf("window = %q, want cdef", got)
	}
}

func TestBuffer_GrowthWhenFullOfUnreadBytes(t *testing.T) {
	src := source{r: strings.NewReader("abcdefgh")}
	buf := newBuffer(4)

	buf.refill(&src) // full, nothing consumed
	if _, err := buf.refill(&src); err != nil {
		t.Fatalf("refill: %v", err)
	}
	if cap(buf.data) < 8 {
		t.Errorf("capacity = %d, want >= 8 after growth", cap(buf.data))
	}
	if got := string(buf.window()); got != "abcdefgh" {
		t.Errorf("window = %q, want abcdefgh", got)
	}
}

func TestBuffer_WindowDiscard(t *testing.T) {
	src := source{r: strings.NewReader("hello")}
	buf := newBuffer(8)
	buf.refill(&src)

	if got := string(buf.window()); got != "hello" {
		t.Fatalf("window = %q, want hello", got)
	}
	buf.discard(3)
	if got := string(buf.window()); got != "lo" {
		t.Errorf("window after discard = %q, want lo", got)
	}
	// Over-discarding clamps.
	buf.discard(10)
	if got := buf.window(); len(got) != 0 {
		t.Errorf("window after over-discard = %q, want empty", got)
	}
}
