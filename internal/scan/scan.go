// Package scan provides branch-light byte scanning primitives for the
// dictionary and matcher hot loops. Both functions use the SWAR (SIMD Within
// A Register) technique: 8 bytes are loaded as a uint64 and all 8 positions
// are tested in parallel with bitwise arithmetic.
//
// The engine only ever scans for two delimiters ('\n' during construction,
// ' ' during matching), so the package exposes exactly the two operations it
// needs instead of a general search API.
package scan

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// IndexByte returns the index of the first occurrence of c in b, or -1 if c
// is not present.
//
// Equivalent to bytes.IndexByte; kept here so the hot loops share one scanning
// discipline with CountByte and stay free of per-call dispatch.
func IndexByte(b []byte, c byte) int {
	n := len(b)

	// Byte-by-byte is faster below one word: no mask setup to amortize.
	if n < 8 {
		for i := 0; i < n; i++ {
			if b[i] == c {
				return i
			}
		}
		return -1
	}

	// Broadcast c into every byte of a uint64, e.g. 0x20 -> 0x2020202020202020.
	mask := uint64(c) * lo8

	i := 0
	for ; i+8 <= n; i += 8 {
		// XOR zeroes the bytes equal to c; the Hacker's Delight zero-byte
		// test sets the high bit of each zeroed byte.
		x := binary.LittleEndian.Uint64(b[i:]) ^ mask
		if z := (x - lo8) & ^x & hi8; z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}

	for ; i < n; i++ {
		if b[i] == c {
			return i
		}
	}
	return -1
}

// CountByte returns the number of occurrences of c in b.
//
// Used to pre-size the membership table to (newline count + 1) before
// construction, so insertion never rehashes.
//
// The subtraction-based zero test used by IndexByte is only exact up to the
// first match (its borrow can leak into higher lanes), so counting uses the
// carry-exact variant: adding 0x7f to the low 7 bits of a lane sets the
// lane's high bit iff any low bit was set, OR-ing the original value covers
// the 0x80 case, and the complemented high bits mark exactly the zero lanes.
func CountByte(b []byte, c byte) int {
	n := len(b)
	mask := uint64(c) * lo8

	count := 0
	i := 0
	for ; i+8 <= n; i += 8 {
		x := binary.LittleEndian.Uint64(b[i:]) ^ mask
		y := ((x & ^uint64(hi8)) + ^uint64(hi8)) | x
		count += bits.OnesCount64(^y & hi8)
	}

	for ; i < n; i++ {
		if b[i] == c {
			count++
		}
	}
	return count
}
