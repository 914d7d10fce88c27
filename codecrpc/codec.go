// Package codecrpc serves the bij256 operations over gRPC.
package codecrpc

import (
	"math/big"

	"xdao.co/bij256/bij256"
)

// Codec is the operation set carried by the Codec service.
//
// Contract:
// - EncodeInteger never fails for a reachable implementation.
// - Errors are *bij256.Error values of the three core kinds, or transport errors.
// - Failing calls return no partial result.
type Codec interface {
	EncodeInteger(b []byte) (*big.Int, error)
	DecodeInteger(n *big.Int) ([]byte, error)
	EncodeUnary(b []byte) (string, error)
	DecodeUnary(s string) ([]byte, error)
}

// Local implements Codec in-process. A nil Projector uses the defaults.
type Local struct {
	Projector *bij256.Projector
}

func (l Local) EncodeInteger(b []byte) (*big.Int, error) { return bij256.EncodeInteger(b), nil }

func (l Local) DecodeInteger(n *big.Int) ([]byte, error) { return bij256.DecodeInteger(n) }

func (l Local) EncodeUnary(b []byte) (string, error) { return l.Projector.Encode(b) }

func (l Local) DecodeUnary(s string) ([]byte, error) { return l.Projector.Decode(s) }
