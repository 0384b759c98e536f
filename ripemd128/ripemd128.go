// Package ripemd128 implements the RIPEMD-128 hash function.
//
// RIPEMD-128 is considered weaker than RIPEMD-160 and should only be used where
// compatibility with existing formats requires it.
//
// The byte counter is a plain uint64. Messages of 2^61 bytes or more wrap the
// encoded bit length, same as the reference design.
package ripemd128

import (
	"encoding/binary"
	"errors"
	"hash"

	"git.gammaspectra.live/P2Pool/hashes/types"
	"git.gammaspectra.live/P2Pool/hashes/utils"
)

var ErrFinalized = errors.New("ripemd128: hasher already finalized")

var pad = [BlockSize]byte{0x80}

// Hasher represents the partial evaluation of a checksum.
type Hasher struct {
	h         [4]uint32       // current chain value
	x         [BlockSize]byte // buffer for data not yet compressed
	nx        int             // number of bytes in buffer
	len       uint64          // total count of bytes written
	blocks    uint64          // number of compressed blocks
	finalized bool
}

var _ hash.Hash = (*Hasher)(nil)

// New returns a new Hasher computing the RIPEMD-128 checksum.
func New() *Hasher {
	d := new(Hasher)
	d.Reset()
	return d
}

// Sum128 returns the RIPEMD-128 checksum of data.
func Sum128(data []byte) types.Digest {
	var d Hasher
	d.Reset()
	_, _ = d.Write(data)
	return d.checkSum()
}

// Reset discards all written data and clears the finalized state.
func (d *Hasher) Reset() {
	d.h = iv
	d.nx = 0
	d.len = 0
	d.blocks = 0
	d.finalized = false
}

func (d *Hasher) Size() int { return Size }

func (d *Hasher) BlockSize() int { return BlockSize }

// Len returns the number of bytes written since the last Reset.
func (d *Hasher) Len() uint64 { return d.len }

// Clone returns an independent copy of d which continues from the same point.
func (d *Hasher) Clone() *Hasher {
	d0 := *d
	return &d0
}

// Write feeds p to the hasher. It fails with ErrFinalized once Finalize was called.
func (d *Hasher) Write(p []byte) (nn int, err error) {
	if d.finalized {
		utils.Debugf("ripemd128", "rejected write of %d bytes to finalized hasher", len(p))
		return 0, ErrFinalized
	}
	nn = len(p)
	d.len += uint64(nn)
	d.write(p)
	return
}

func (d *Hasher) write(p []byte) {
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == BlockSize {
			block(d, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= BlockSize {
		p = p[block(d, p):]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
}

// Sum appends the current checksum to in without consuming the hasher.
// It panics with ErrFinalized if Finalize was already called.
func (d *Hasher) Sum(in []byte) []byte {
	if d.finalized {
		panic(ErrFinalized)
	}
	// Make a copy of d so that caller can keep writing and summing.
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:]...)
}

// Finalize pads the message and returns its checksum. The hasher is consumed,
// further Write or Finalize calls fail with ErrFinalized until Reset.
func (d *Hasher) Finalize() (types.Digest, error) {
	if d.finalized {
		return types.ZeroDigest, ErrFinalized
	}
	sum := d.checkSum()
	d.finalized = true
	utils.Debugf("ripemd128", "finalized %d bytes in %d blocks", d.len, d.blocks)
	return sum, nil
}

func (d *Hasher) checkSum() (out types.Digest) {
	// Length in bits.
	l := d.len << 3

	// Padding. Add a 1 bit and 0 bits until 56 bytes mod 64.
	if d.nx < 56 {
		d.write(pad[:56-d.nx])
	} else {
		d.write(pad[:BlockSize+56-d.nx])
	}

	var size [8]byte
	binary.LittleEndian.PutUint64(size[:], l)
	d.write(size[:])

	if d.nx != 0 {
		utils.Panicf("ripemd128: padding failed, %d bytes left in buffer", d.nx)
	}

	for i, s := range d.h {
		binary.LittleEndian.PutUint32(out[i*4:], s)
	}
	return out
}

func (d *Hasher) String() string {
	return "ripemd128.Hasher{ ... }"
}

func (d *Hasher) GoString() string {
	return d.String()
}
