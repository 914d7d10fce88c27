package model

import (
	"math/big"
	"strings"

	"xdao.co/bij256/bij256"
)

// ParseInteger parses a base-10 integer. Anything else is an InvalidLength
// error, since the text cannot name a length.
func ParseInteger(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, bij256.NewInvalidLength(bij256.RuleMalformedLength, "length "+quote(s)+" is not a decimal integer", nil)
	}
	return n, nil
}

// FormatInteger renders n in base 10. Nil renders as "0".
func FormatInteger(n *big.Int) string {
	if n == nil {
		return "0"
	}
	return n.Text(10)
}

func quote(s string) string {
	const limit = 32
	if len(s) > limit {
		s = s[:limit] + "..."
	}
	return `"` + s + `"`
}
