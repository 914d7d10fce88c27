package bij256

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConformanceVectors(t *testing.T) {
	path := filepath.Join("..", "testdata", "conformance", "bij256", "vectors.txt")
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open vectors: %v", err)
	}
	defer f.Close()

	count := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			t.Fatalf("malformed vector line %q", line)
		}
		var in []byte
		if fields[0] != "-" {
			in, err = hex.DecodeString(fields[0])
			if err != nil {
				t.Fatalf("vector %q: %v", line, err)
			}
		}
		want, ok := new(big.Int).SetString(fields[1], 10)
		if !ok {
			t.Fatalf("vector %q: bad integer", line)
		}

		if got := EncodeInteger(in); got.Cmp(want) != 0 {
			t.Fatalf("EncodeInteger(%s) = %s, want %s", fields[0], got, want)
		}
		out, err := DecodeInteger(want)
		if err != nil {
			t.Fatalf("DecodeInteger(%s): %v", want, err)
		}
		if !bytes.Equal(out, in) {
			t.Fatalf("DecodeInteger(%s) = %x, want %s", want, out, fields[0])
		}
		count++
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if count == 0 {
		t.Fatalf("no vectors found")
	}
}
