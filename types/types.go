package types

import (
	"database/sql/driver"
	"errors"

	fasthex "github.com/tmthrgd/go-hex"
)

const DigestSize = 16

//nolint:recvcheck
type Digest [DigestSize]byte

var ZeroDigest Digest

func (d Digest) MarshalJSON() ([]byte, error) {
	var buf [DigestSize*2 + 2]byte
	buf[0] = '"'
	buf[DigestSize*2+1] = '"'
	fasthex.Encode(buf[1:], d[:])
	return buf[:], nil
}

func MustDigestFromString(s string) Digest {
	if d, err := DigestFromString(s); err != nil {
		panic(err)
	} else {
		return d
	}
}

func DigestFromString(s string) (Digest, error) {
	var d Digest
	if buf, err := fasthex.DecodeString(s); err != nil {
		return d, err
	} else {
		if len(buf) != DigestSize {
			return d, errors.New("wrong size")
		}
		copy(d[:], buf)
		return d, nil
	}
}

// DigestFromBytes returns the zero Digest if buf has the wrong size
func DigestFromBytes(buf []byte) (d Digest) {
	if len(buf) != DigestSize {
		return
	}
	copy(d[:], buf)
	return
}

func (d Digest) Slice() []byte {
	return d[:]
}

func (d Digest) String() string {
	return fasthex.EncodeToString(d[:])
}

func (d *Digest) Scan(src any) error {
	if src == nil {
		return nil
	} else if buf, ok := src.([]byte); ok {
		if len(buf) == 0 {
			return nil
		}
		if len(buf) != DigestSize {
			return errors.New("invalid digest size")
		}
		copy((*d)[:], buf)

		return nil
	}
	return errors.New("invalid type")
}

func (d *Digest) Value() (driver.Value, error) {
	if *d == ZeroDigest {
		return nil, nil //nolint:nilnil
	}
	return (*d)[:], nil
}

func (d *Digest) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || len(b) == 2 {
		return nil
	}

	if len(b) != DigestSize*2+2 {
		return errors.New("wrong digest size")
	}

	if _, err := fasthex.Decode(d[:], b[1:len(b)-1]); err != nil {
		return err
	}

	return nil
}
