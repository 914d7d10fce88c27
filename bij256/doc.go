// Package bij256 implements bijective base-256 numeration.
//
// Every finite byte sequence maps to exactly one non-negative integer and
// back. Sequences of length L occupy the block of integers starting at
// offset(L) = 256^0 + 256^1 + ... + 256^(L-1), so the empty sequence is 0,
// {0x00} is 1, {0xFF} is 256 and {0x00, 0x00} is 257.
//
// The integer can additionally be projected to a unary string: a run of a
// single marker byte whose length is the integer. The projection is guarded
// by a configurable ceiling that is checked before anything is allocated.
//
// All functions are pure and safe for concurrent use.
package bij256
