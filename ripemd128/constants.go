package ripemd128

// Size The size of a RIPEMD-128 checksum in bytes.
const Size = 16

// BlockSize The block size of the hash algorithm in bytes.
const BlockSize = 64

// Initialization values.
var iv = [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}

// boolean function selectors
const (
	f1 = iota
	f2
	f3
	f4
)

// schedule describes one of the two parallel lines.
type schedule struct {
	// word index of the message consumed at each step
	word [64]uint8
	// left rotation amount at each step
	shift [64]uint8
	// boolean function per round
	fn [4]uint8
	// additive constant per round
	k [4]uint32
}

var left = schedule{
	word: [64]uint8{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
		3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
		1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
	},
	shift: [64]uint8{
		11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
		7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
		11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
		11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
	},
	fn: [4]uint8{f1, f2, f3, f4},
	k:  [4]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc},
}

var right = schedule{
	word: [64]uint8{
		5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
		6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
		15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
		8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
	},
	shift: [64]uint8{
		8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
		9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
		9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
		15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
	},
	fn: [4]uint8{f4, f3, f2, f1},
	k:  [4]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x00000000},
}
