package bij256

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"sync"
	"testing"
)

func TestUnary_Empty(t *testing.T) {
	s, err := EncodeUnary(nil)
	if err != nil {
		t.Fatalf("EncodeUnary(empty): %v", err)
	}
	if s != "" {
		t.Fatalf("expected empty string, got %q", s)
	}
	b, err := DecodeUnary("")
	if err != nil {
		t.Fatalf("DecodeUnary(empty): %v", err)
	}
	if len(b) != 0 {
		t.Fatalf("expected empty bytes, got %x", b)
	}
}

func TestUnary_RoundTrip(t *testing.T) {
	p := DefaultProjector()
	inputs := [][]byte{{0x00}, {0x01}, {0xFF}, {0x00, 0x00}, {0x03, 0xC0}, {0x12, 0x34}}
	for _, in := range inputs {
		s, err := p.Encode(in)
		if err != nil {
			t.Fatalf("Encode(%x): %v", in, err)
		}
		if int64(len(s)) != EncodeInteger(in).Int64() {
			t.Fatalf("Encode(%x) has length %d, want %s", in, len(s), EncodeInteger(in))
		}
		if strings.Trim(s, "A") != "" {
			t.Fatalf("Encode(%x) contains non-marker bytes", in)
		}
		out, err := p.Decode(s)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if !bytes.Equal(out, in) {
			t.Fatalf("round trip mismatch: got %x want %x", out, in)
		}
	}
}

func TestUnary_Literal(t *testing.T) {
	s, err := EncodeUnary([]byte{0x01})
	if err != nil {
		t.Fatalf("EncodeUnary: %v", err)
	}
	if s != "AA" {
		t.Fatalf("EncodeUnary({0x01}) = %q, want %q", s, "AA")
	}
}

func TestUnary_CustomMarker(t *testing.T) {
	p := &Projector{Marker: '*'}
	s, err := p.Encode([]byte{0x02})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if s != "***" {
		t.Fatalf("Encode = %q, want %q", s, "***")
	}
	if _, err := p.Decode("AAA"); !IsKind(err, KindInvalidEncoding) {
		t.Fatalf("expected KindInvalidEncoding for default marker under '*', got %v", err)
	}
}

func TestUnary_InvalidEncoding(t *testing.T) {
	b, err := DecodeUnary("AAB")
	if b != nil {
		t.Fatalf("expected no partial result, got %x", b)
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if e.Kind != KindInvalidEncoding || e.RuleID != RuleUnaryMarker {
		t.Fatalf("unexpected error: kind=%s rule=%s", e.Kind, e.RuleID)
	}
	if e.Offset != 2 || e.Char != 'B' {
		t.Fatalf("offset/char = %d/%q, want 2/'B'", e.Offset, e.Char)
	}
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("expected errors.Is(err, ErrInvalidEncoding)")
	}
}

func TestUnary_RejectsMismatchAtAnyOffset(t *testing.T) {
	// A bad byte anywhere fails, even though the length alone would decode.
	s := []byte(strings.Repeat("A", 300))
	for _, off := range []int{0, 150, 299} {
		bad := append([]byte(nil), s...)
		bad[off] = 'a'
		_, err := DecodeUnary(string(bad))
		var e *Error
		if !errors.As(err, &e) || e.Offset != off {
			t.Fatalf("offset %d: got %v", off, err)
		}
	}
}

func TestUnary_TooLarge(t *testing.T) {
	p := &Projector{Ceiling: big.NewInt(1217)}

	// Exactly at the ceiling is refused.
	_, err := p.Encode([]byte{0x03, 0xC0})
	if !IsKind(err, KindTooLarge) {
		t.Fatalf("expected KindTooLarge, got %v", err)
	}
	if got := RequiredLength(err); got == nil || got.Int64() != 1217 {
		t.Fatalf("RequiredLength = %v, want 1217", got)
	}
	if RuleID(err) != RuleUnaryTooLarge {
		t.Fatalf("RuleID = %q", RuleID(err))
	}

	// One below passes.
	s, err := p.Encode([]byte{0x03, 0xBF})
	if err != nil {
		t.Fatalf("Encode below ceiling: %v", err)
	}
	if len(s) != 1216 {
		t.Fatalf("len = %d, want 1216", len(s))
	}
}

func TestUnary_TooLargeDefaultCeiling(t *testing.T) {
	in := bytes.Repeat([]byte{0x10}, 16)
	_, err := EncodeUnary(in)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	want := EncodeInteger(in)
	if got := RequiredLength(err); got == nil || got.Cmp(want) != 0 {
		t.Fatalf("RequiredLength = %v, want %s", got, want)
	}
	if got := DefaultProjector().Length(in); got.Cmp(want) != 0 {
		t.Fatalf("Length = %s, want %s", got, want)
	}
}

func TestUnary_EightBytesDefaultCeiling(t *testing.T) {
	in := []byte{0x1E, 0, 0, 0, 0, 0, 0, 0}
	_, err := EncodeUnary(in)
	if !IsKind(err, KindTooLarge) {
		t.Fatalf("expected KindTooLarge, got %v", err)
	}
	if got := RequiredLength(err); got == nil || got.Cmp(EncodeInteger(in)) != 0 {
		t.Fatalf("RequiredLength = %v", got)
	}
}

func TestUnary_CeilingBeyondAddressable(t *testing.T) {
	// A ceiling larger than any addressable length must still refuse.
	p := &Projector{Ceiling: BlockSize(40)}
	for _, in := range [][]byte{
		{0x1E, 0, 0, 0, 0, 0, 0, 0},
		bytes.Repeat([]byte{0x01}, 20),
	} {
		_, err := p.Encode(in)
		if !IsKind(err, KindTooLarge) {
			t.Fatalf("%x: expected KindTooLarge, got %v", in, err)
		}
		msg := err.Error()
		if !strings.Contains(msg, "addressable memory") || strings.Contains(msg, "ceiling") {
			t.Fatalf("%x: message = %q", in, msg)
		}
	}

	// Below the addressable bound the ceiling decides, and says so.
	_, err := (&Projector{Ceiling: big.NewInt(10)}).Encode([]byte{0x20})
	if err == nil || !strings.Contains(err.Error(), "exceeds ceiling 10") {
		t.Fatalf("err = %v", err)
	}
}

func TestDefaultCeiling(t *testing.T) {
	c := DefaultCeiling()
	switch PtrSize {
	case 32:
		if c.Int64() != 536870888 {
			t.Fatalf("ceiling = %s", c)
		}
	case 64:
		if c.String() != "140737488355304" {
			t.Fatalf("ceiling = %s", c)
		}
	default:
		t.Fatalf("unexpected PtrSize %d", PtrSize)
	}
	// Callers get a fresh value.
	c.SetInt64(1)
	if DefaultCeiling().Int64() == 1 {
		t.Fatalf("DefaultCeiling shares state")
	}
}

func TestProjector_ConcurrentUse(t *testing.T) {
	p := DefaultProjector()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := []byte{byte(i)}
			s, err := p.Encode(in)
			if err != nil {
				t.Errorf("Encode: %v", err)
				return
			}
			out, err := p.Decode(s)
			if err != nil || !bytes.Equal(out, in) {
				t.Errorf("round trip %x: %x, %v", in, out, err)
			}
		}(i)
	}
	wg.Wait()
}
