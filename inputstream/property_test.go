package inputstream

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// ============================================================
// Scan Properties
// ============================================================

// drawPadding generates a non-empty run of delimiter bytes.
func drawPadding(t *rapid.T, label string) string {
	return rapid.StringOfN(rapid.SampledFrom([]rune{' ', '\t', '\n', '\v', '\f', '\r'}), 1, 8, -1).Draw(t, label)
}

func TestScan_IntRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int64().Draw(t, "n")
		input := drawPadding(t, "lead") + strconv.FormatInt(n, 10) + drawPadding(t, "trail")

		s := NewStream(strings.NewReader(input))
		got, err := Scan[int64](s)
		if err != nil {
			t.Fatalf("scan %q: %v", input, err)
		}
		if got != n {
			t.Fatalf("scan %q = %d, want %d", input, got, n)
		}
	})
}

func TestScan_Int32RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int32().Draw(t, "n")
		s := NewStream(strings.NewReader(strconv.FormatInt(int64(n), 10)))
		got, err := Scan[int32](s)
		if err != nil {
			t.Fatalf("scan: %v", err)
		}
		if got != n {
			t.Fatalf("got %d, want %d", got, n)
		}
	})
}

func TestScan_Uint64RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Uint64().Draw(t, "n")
		s := NewStream(strings.NewReader(strconv.FormatUint(n, 10)))
		got, err := Scan[uint64](s)
		if err != nil {
			t.Fatalf("scan: %v", err)
		}
		if got != n {
			t.Fatalf("got %d, want %d", got, n)
		}
	})
}

func TestScan_CharRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := rapid.ByteRange(0x21, 0x7e).Draw(t, "c") // printable, non-delimiter
		input := drawPadding(t, "lead") + string(rune(c))

		s := NewStream(strings.NewReader(input))
		got, err := Scan[Char](s)
		if err != nil {
			t.Fatalf("scan: %v", err)
		}
		if byte(got) != c {
			t.Fatalf("got %q, want %q", byte(got), c)
		}
	})
}

func TestScan_WhitespaceOnlyIsEOFForEveryType(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := drawPadding(t, "ws")

		fail := func(err error) {
			if !errors.Is(err, ErrUnexpectedEOF) {
				t.Fatalf("%q: err = %v, want ErrUnexpectedEOF", input, err)
			}
		}
		_, err := Scan[int](NewStream(strings.NewReader(input)))
		fail(err)
		_, err = Scan[uint32](NewStream(strings.NewReader(input)))
		fail(err)
		_, err = Scan[float64](NewStream(strings.NewReader(input)))
		fail(err)
		_, err = Scan[string](NewStream(strings.NewReader(input)))
		fail(err)
		_, err = Scan[Char](NewStream(strings.NewReader(input)))
		fail(err)
	})
}

func TestScan_BoundedEqualsUnboundedWithinBudget(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lead := drawPadding(t, "lead")
		token := string(rapid.SliceOfN(rapid.ByteRange(0x21, 0x7e), 1, 32).Draw(t, "token"))
		input := lead + token + drawPadding(t, "trail")
		need := len(lead) + len(token)
		limit := need + rapid.IntRange(0, 16).Draw(t, "slack")

		a := NewStream(strings.NewReader(input))
		b := NewStream(strings.NewReader(input))

		want, wantErr := Scan[string](a)
		got, gotErr := ScanWithLimit[string](b, limit)
		if wantErr != nil || gotErr != nil {
			t.Fatalf("%q limit %d: errs (%v, %v)", input, limit, wantErr, gotErr)
		}
		if got != want {
			t.Fatalf("%q limit %d: bounded %q != unbounded %q", input, limit, got, want)
		}
	})
}

func TestScan_BoundedNeverConsumesPastLimit(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		body := string(rapid.SliceOfN(rapid.ByteRange(0x21, 0x7e), 1, 64).Draw(t, "body"))
		limit := rapid.IntRange(1, 16).Draw(t, "limit")

		s := NewStream(strings.NewReader(body))
		tok, err := ScanWithLimit[string](s, limit)

		if err == nil {
			// Success never hands back more than limit bytes.
			if len(tok) > limit {
				t.Fatalf("token %q longer than limit %d", tok, limit)
			}
			return
		}
		if !errors.Is(err, ErrLimitExceeded) {
			t.Fatalf("err = %v, want ErrLimitExceeded", err)
		}
		// Exactly limit bytes were consumed: the remainder of the
		// run must still be scannable.
		rest, err := Scan[string](s)
		if err != nil {
			t.Fatalf("scan rest: %v", err)
		}
		if want := body[limit:]; rest != want {
			t.Fatalf("rest = %q, want %q", rest, want)
		}
	})
}

func TestScan_SequenceEqualsSplitStreams(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Int64().Draw(t, "x")
		y := rapid.Int64().Draw(t, "y")
		sep := drawPadding(t, "sep")

		xs := strconv.FormatInt(x, 10)
		ys := strconv.FormatInt(y, 10)

		s := NewStream(strings.NewReader(xs + sep + ys))
		a1, err1 := Scan[int64](s)
		b1, err2 := Scan[int64](s)
		if err1 != nil || err2 != nil {
			t.Fatalf("sequence scans failed: %v, %v", err1, err2)
		}

		a2, _ := Scan[int64](NewStream(strings.NewReader(xs)))
		b2, _ := Scan[int64](NewStream(strings.NewReader(ys)))

		if a1 != a2 || b1 != b2 {
			t.Fatalf("sequence (%d, %d) != split (%d, %d)", a1, b1, a2, b2)
		}
	})
}

func TestScan_SmallBufferAgreesWithDefault(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := string(rapid.SliceOfN(rapid.ByteRange(0x20, 0x7e), 0, 128).Draw(t, "input"))

		a := NewStream(strings.NewReader(input))
		b := NewStream(strings.NewReader(input), WithBufferSize(2))

		for {
			va, ea := Scan[string](a)
			vb, eb := Scan[string](b)
			if (ea == nil) != (eb == nil) {
				t.Fatalf("%q: errs diverge (%v, %v)", input, ea, eb)
			}
			if ea != nil {
				break
			}
			if va != vb {
				t.Fatalf("%q: tokens diverge (%q, %q)", input, va, vb)
			}
		}
	})
}
