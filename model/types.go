package model

import (
	"math/big"

	"xdao.co/bij256/bij256"
	"xdao.co/bij256/cidutil"
)

// EncodeResponse is the boundary view of an encoded byte sequence.
type EncodeResponse struct {
	Integer string `json:"integer"`
	Width   int    `json:"width"`
	CID     string `json:"cid"`
}

// DecodeResponse is the boundary view of a decoded integer.
//
// JSON note: Bytes are encoded as base64 by encoding/json.
type DecodeResponse struct {
	Bytes []byte `json:"bytes"`
	Width int    `json:"width"`
	CID   string `json:"cid"`
}

// UnaryResponse describes a unary projection. Unary is omitted when only the
// length was requested.
type UnaryResponse struct {
	Length string `json:"length"`
	Marker string `json:"marker"`
	Unary  string `json:"unary,omitempty"`
}

// Encode describes b.
func Encode(b []byte) *EncodeResponse {
	return &EncodeResponse{
		Integer: FormatInteger(bij256.EncodeInteger(b)),
		Width:   len(b),
		CID:     cidutil.String(b),
	}
}

// Decode describes the byte sequence n decodes to.
func Decode(n *big.Int) (*DecodeResponse, error) {
	b, err := bij256.DecodeInteger(n)
	if err != nil {
		return nil, FromError(err)
	}
	return &DecodeResponse{Bytes: b, Width: len(b), CID: cidutil.String(b)}, nil
}

// DecodeDecimal is Decode over a base-10 string.
func DecodeDecimal(s string) (*DecodeResponse, error) {
	n, err := ParseInteger(s)
	if err != nil {
		return nil, FromError(err)
	}
	return Decode(n)
}

// Unary projects b with p (the default projector when nil). When lengthOnly
// is set the string is not built and the ceiling does not apply.
func Unary(p *bij256.Projector, b []byte, lengthOnly bool) (*UnaryResponse, error) {
	resp := &UnaryResponse{Length: FormatInteger(p.Length(b)), Marker: string(markerOf(p))}
	if lengthOnly {
		return resp, nil
	}
	s, err := p.Encode(b)
	if err != nil {
		return nil, FromError(err)
	}
	resp.Unary = s
	return resp, nil
}

func markerOf(p *bij256.Projector) byte {
	if p == nil || p.Marker == 0 {
		return bij256.DefaultMarker
	}
	return p.Marker
}
