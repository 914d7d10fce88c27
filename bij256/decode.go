package bij256

import "math/big"

func checkLength(n *big.Int) error {
	if n == nil {
		return newError(KindInvalidLength, RuleMissingLength, "length is not an integer")
	}
	if n.Sign() < 0 {
		return newError(KindInvalidLength, RuleNegativeLength, "length "+n.String()+" is negative")
	}
	return nil
}

// split returns the width of the block n falls in and n's position inside
// that block. The width is seeded from the bit length and corrected against
// the closed-form offset, which is within one block of the estimate.
func split(n *big.Int) (int, *big.Int) {
	if n.Sign() == 0 {
		return 0, new(big.Int)
	}
	width := (n.BitLen()-1)/8 + 1
	for width > 0 && Offset(width).Cmp(n) > 0 {
		width--
	}
	for Offset(width+1).Cmp(n) <= 0 {
		width++
	}
	return width, new(big.Int).Sub(n, Offset(width))
}

// BlockWidth returns the length of the byte sequence that n decodes to.
func BlockWidth(n *big.Int) (int, error) {
	if err := checkLength(n); err != nil {
		return 0, err
	}
	width, _ := split(n)
	return width, nil
}

// DecodeInteger returns the unique byte sequence whose bijective base-256
// value is n. It fails with KindInvalidLength if n is nil or negative.
// Decoding 0 yields an empty, non-nil slice.
func DecodeInteger(n *big.Int) ([]byte, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	width, rem := split(n)
	// rem < 256^width, so it always fits.
	return rem.FillBytes(make([]byte, width)), nil
}
