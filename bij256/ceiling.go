package bij256

import "math/big"

// PtrSize is the pointer width of the host in bits.
const PtrSize = 32 << (^uint(0) >> 63)

// Conservative unary ceilings per pointer width. Both stay clear of the
// largest contiguous allocation a runtime of that width can address.
const (
	Ceiling32 int64 = 1<<29 - 24
	Ceiling64 int64 = 1<<47 - 24
)

// MaxAddressable is the longest unary string Encode will build on this
// host, whatever the configured ceiling. The Go runtime refuses single
// allocations beyond its heap arena range (48-bit on 64-bit hosts).
const MaxAddressable int64 = 1<<(PtrSize/2+15) - 1

// DefaultCeiling returns the unary ceiling for the host pointer width.
func DefaultCeiling() *big.Int {
	if PtrSize == 32 {
		return big.NewInt(Ceiling32)
	}
	return big.NewInt(Ceiling64)
}
