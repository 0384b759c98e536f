package types

import (
	"testing"

	"git.gammaspectra.live/P2Pool/hashes/utils"
	"github.com/stretchr/testify/require"
)

const abcDigest = "c14a12199c66e4ba84636b0f69144c77"

func TestDigestFromString(t *testing.T) {
	d, err := DigestFromString(abcDigest)
	require.NoError(t, err)
	require.Equal(t, abcDigest, d.String())
	require.Equal(t, byte(0xc1), d[0])
	require.Equal(t, byte(0x77), d[DigestSize-1])

	_, err = DigestFromString(abcDigest[:30])
	require.Error(t, err)

	_, err = DigestFromString("zz" + abcDigest[2:])
	require.Error(t, err)

	require.Panics(t, func() {
		MustDigestFromString("00")
	})
}

func TestDigestFromBytes(t *testing.T) {
	d := MustDigestFromString(abcDigest)
	require.Equal(t, d, DigestFromBytes(d.Slice()))
	require.Equal(t, ZeroDigest, DigestFromBytes(d.Slice()[1:]))
}

func TestDigestJSON(t *testing.T) {
	type entry struct {
		Name   string `json:"name"`
		Digest Digest `json:"digest"`
	}

	e := entry{Name: "abc", Digest: MustDigestFromString(abcDigest)}
	buf, err := utils.MarshalJSON(e)
	require.NoError(t, err)
	require.Equal(t, `{"name":"abc","digest":"`+abcDigest+`"}`, string(buf))

	var decoded entry
	require.NoError(t, utils.UnmarshalJSON(buf, &decoded))
	require.Equal(t, e, decoded)

	var empty Digest
	require.NoError(t, empty.UnmarshalJSON([]byte(`""`)))
	require.Equal(t, ZeroDigest, empty)

	require.Error(t, empty.UnmarshalJSON([]byte(`"c14a"`)))
}

func TestDigestSQL(t *testing.T) {
	var d Digest
	v, err := d.Value()
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, d.Scan(nil))
	require.NoError(t, d.Scan([]byte{}))
	require.Equal(t, ZeroDigest, d)

	expected := MustDigestFromString(abcDigest)
	require.NoError(t, d.Scan(expected.Slice()))
	require.Equal(t, expected, d)

	v, err = d.Value()
	require.NoError(t, err)
	require.Equal(t, expected.Slice(), v)

	require.Error(t, d.Scan([]byte{1, 2, 3}))
	require.Error(t, d.Scan("c14a"))
}
