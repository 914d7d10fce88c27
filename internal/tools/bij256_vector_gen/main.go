package main

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"xdao.co/bij256/bij256"
)

// Output format, one vector per line: <hex bytes or "-"> <decimal integer>
func main() {
	inputs := [][]byte{
		{},
		{0x00},
		{0x01},
		{0x7F},
		{0xFF},
		{0x00, 0x00},
		{0x00, 0x01},
		{0x03, 0xC0},
		{0xFF, 0xFF},
		{0x00, 0x00, 0x00},
		{0xDE, 0xAD, 0xBE, 0xEF},
		[]byte("bij256"),
		bytes.Repeat([]byte{0xFF}, 8),
		bytes.Repeat([]byte{0x00}, 9),
		bytes.Repeat([]byte{0xA5}, 32),
	}
	fmt.Println("# bij256 conformance vectors: <hex bytes or -> <decimal integer>")
	for _, in := range inputs {
		h := hex.EncodeToString(in)
		if h == "" {
			h = "-"
		}
		fmt.Printf("%s %s\n", h, bij256.EncodeInteger(in))
	}
}
