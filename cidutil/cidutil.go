// Package cidutil binds byte sequences to content identifiers.
package cidutil

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Sum returns the CIDv1 (raw multicodec, sha2-256 multihash) of data.
func Sum(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// String is Sum(data).String(), or "" if hashing fails.
func String(data []byte) string {
	id, err := Sum(data)
	if err != nil {
		// multihash.Sum only errors for unknown codes or lengths.
		return ""
	}
	return id.String()
}

// Verify checks that want is the CID of data.
func Verify(want string, data []byte) error {
	id, err := cid.Decode(want)
	if err != nil || !id.Defined() {
		return fmt.Errorf("cidutil: invalid cid %q", want)
	}
	got, err := Sum(data)
	if err != nil {
		return err
	}
	if !got.Equals(id) {
		return fmt.Errorf("cidutil: cid mismatch: got %s want %s", got, id)
	}
	return nil
}
