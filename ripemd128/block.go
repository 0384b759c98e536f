package ripemd128

import (
	"encoding/binary"
	"math/bits"
)

// registers holds the working variables a, b, c, d of one line.
type registers [4]uint32

func boolean(fn uint8, x, y, z uint32) uint32 {
	switch fn {
	case f1:
		return x ^ y ^ z
	case f2:
		return (x & y) | (^x & z)
	case f3:
		return (x | ^y) ^ z
	default:
		return (x & z) | (y &^ z)
	}
}

func (r registers) step(s *schedule, i int, x *[16]uint32) registers {
	round := i >> 4
	t := r[0] + boolean(s.fn[round], r[1], r[2], r[3]) + x[s.word[i]] + s.k[round]
	t = bits.RotateLeft32(t, int(s.shift[i]))
	return registers{r[3], t, r[1], r[2]}
}

func (r registers) run(s *schedule, x *[16]uint32) registers {
	for i := range 64 {
		r = r.step(s, i, x)
	}
	return r
}

// compress mixes one BlockSize chunk of p into h and returns the new chaining value.
func compress(h [4]uint32, p []byte) [4]uint32 {
	_ = p[BlockSize-1] // bounds check hint to compiler; see golang.org/issue/14808

	var x [16]uint32
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(p[i*4:])
	}

	l := registers(h).run(&left, &x)
	r := registers(h).run(&right, &x)

	// combine results
	return [4]uint32{
		h[1] + l[2] + r[3],
		h[2] + l[3] + r[0],
		h[3] + l[0] + r[1],
		h[0] + l[1] + r[2],
	}
}

// block compresses every whole block in p into d and returns the number of bytes consumed.
func block(d *Hasher, p []byte) (n int) {
	for len(p) >= BlockSize {
		d.h = compress(d.h, p[:BlockSize])
		d.blocks++
		p = p[BlockSize:]
		n += BlockSize
	}
	return n
}
