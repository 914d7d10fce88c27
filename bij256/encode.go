package bij256

import "math/big"

var one = big.NewInt(1)

// BlockSize returns 256^l, the number of distinct byte sequences of length l.
func BlockSize(l int) *big.Int {
	if l < 0 {
		return new(big.Int)
	}
	return new(big.Int).Lsh(one, uint(l)*8)
}

// Offset returns the first integer of the length-l block, which is the
// count of all sequences shorter than l: 256^0 + ... + 256^(l-1).
func Offset(l int) *big.Int {
	if l <= 0 {
		return new(big.Int)
	}
	// (256^l - 1) / 255 is the repunit 0x0101...01 with l digits.
	buf := make([]byte, l)
	for i := range buf {
		buf[i] = 0x01
	}
	return new(big.Int).SetBytes(buf)
}

// EncodeInteger returns the bijective base-256 value of b.
// The empty sequence encodes to 0. It never fails.
func EncodeInteger(b []byte) *big.Int {
	if len(b) == 0 {
		return new(big.Int)
	}
	n := new(big.Int).SetBytes(b)
	return n.Add(n, Offset(len(b)))
}
