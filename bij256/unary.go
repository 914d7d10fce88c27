package bij256

import (
	"fmt"
	"math/big"
	"strings"
)

// DefaultMarker is the byte repeated in unary strings.
const DefaultMarker byte = 'A'

// Projector maps byte sequences to and from unary strings.
//
// The zero value uses DefaultMarker and DefaultCeiling. A Projector is not
// modified by any method and may be shared between goroutines.
type Projector struct {
	// Marker is the repeated byte. Zero means DefaultMarker.
	Marker byte

	// Ceiling is the exclusive upper bound on unary lengths.
	// Nil or non-positive means DefaultCeiling().
	Ceiling *big.Int
}

// DefaultProjector returns a Projector with the default marker and the
// host's default ceiling.
func DefaultProjector() *Projector {
	return &Projector{Marker: DefaultMarker, Ceiling: DefaultCeiling()}
}

func (p *Projector) marker() byte {
	if p == nil || p.Marker == 0 {
		return DefaultMarker
	}
	return p.Marker
}

func (p *Projector) ceiling() *big.Int {
	if p == nil || p.Ceiling == nil || p.Ceiling.Sign() <= 0 {
		return DefaultCeiling()
	}
	return p.Ceiling
}

// Length returns the unary length of b without building the string.
// Callers refused with KindTooLarge should use this instead.
func (p *Projector) Length(b []byte) *big.Int {
	return EncodeInteger(b)
}

// Encode returns the unary string for b: EncodeInteger(b) copies of the
// marker. It fails with KindTooLarge, before allocating, when that length
// reaches the ceiling.
func (p *Projector) Encode(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	n := EncodeInteger(b)
	var msg string
	switch {
	case n.Cmp(p.ceiling()) >= 0:
		msg = fmt.Sprintf("unary string of length %s exceeds ceiling %s; use the integer length instead", n, p.ceiling())
	case !n.IsInt64() || n.Int64() > MaxAddressable:
		msg = fmt.Sprintf("unary string of length %s exceeds addressable memory (%d bytes); use the integer length instead", n, MaxAddressable)
	}
	if msg != "" {
		e := newError(KindTooLarge, RuleUnaryTooLarge, msg)
		e.Required = n
		return "", e
	}
	return strings.Repeat(string(p.marker()), int(n.Int64())), nil
}

// Decode returns the byte sequence encoded by the unary string s.
// Every byte is checked; a string of valid length but foreign content fails
// with KindInvalidEncoding.
func (p *Projector) Decode(s string) ([]byte, error) {
	m := p.marker()
	for i := 0; i < len(s); i++ {
		if s[i] != m {
			e := newError(KindInvalidEncoding, RuleUnaryMarker,
				fmt.Sprintf("unexpected byte %q at offset %d, want %q", s[i], i, m))
			e.Offset = i
			e.Char = s[i]
			return nil, e
		}
	}
	return DecodeInteger(big.NewInt(int64(len(s))))
}

// EncodeUnary is DefaultProjector().Encode(b).
func EncodeUnary(b []byte) (string, error) {
	return DefaultProjector().Encode(b)
}

// DecodeUnary is DefaultProjector().Decode(s).
func DecodeUnary(s string) ([]byte, error) {
	return DefaultProjector().Decode(s)
}
