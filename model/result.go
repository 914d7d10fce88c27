package model

import (
	"math/big"

	"xdao.co/bij256/bij256"
)

// Result is a tagged outcome: exactly one of Value or Err is meaningful.
type Result[T any] struct {
	Value T
	Err   *CodedError
}

// OK reports whether the call succeeded.
func (r Result[T]) OK() bool { return r.Err == nil }

// Get converts the result back into the (value, error) convention.
func (r Result[T]) Get() (T, error) {
	if r.Err != nil {
		var zero T
		return zero, r.Err
	}
	return r.Value, nil
}

func result[T any](v T, err error) Result[T] {
	if err != nil {
		return Result[T]{Err: FromError(err)}
	}
	return Result[T]{Value: v}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// TryEncodeInteger never fails; it exists so callers can use one convention.
func TryEncodeInteger(b []byte) Result[*big.Int] {
	return Result[*big.Int]{Value: bij256.EncodeInteger(b)}
}

func TryDecodeInteger(n *big.Int) Result[[]byte] {
	return result(bij256.DecodeInteger(n))
}

// TryEncodeUnary uses p, or the default projector when p is nil.
func TryEncodeUnary(p *bij256.Projector, b []byte) Result[string] {
	return result(p.Encode(b))
}

// TryDecodeUnary uses p, or the default projector when p is nil.
func TryDecodeUnary(p *bij256.Projector, s string) Result[[]byte] {
	return result(p.Decode(s))
}

// MustDecodeInteger panics with the *bij256.Error on failure.
func MustDecodeInteger(n *big.Int) []byte {
	return must(bij256.DecodeInteger(n))
}

// MustEncodeUnary panics with the *bij256.Error on failure.
func MustEncodeUnary(p *bij256.Projector, b []byte) string {
	return must(p.Encode(b))
}

// MustDecodeUnary panics with the *bij256.Error on failure.
func MustDecodeUnary(p *bij256.Projector, s string) []byte {
	return must(p.Decode(s))
}
