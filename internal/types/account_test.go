package types

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/lang-basics/internal/codec/borsh"
)

var aliceBytes = []byte{
	5, 0, 0, 0, 'A', 'l', 'i', 'c', 'e', // name
	30, 0, 0, 0, // age
	5, 0, 0, 0, 1, 2, 3, 4, 5, // pub_key
}

func TestAccount_MarshalBinary(t *testing.T) {
	a := Account{Name: "Alice", Age: 30, PubKey: []byte{1, 2, 3, 4, 5}}

	data, err := a.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, aliceBytes, data)
	assert.Equal(t, len(data), a.BinarySize())
}

func TestAccount_RoundTrip(t *testing.T) {
	for _, a := range []Account{
		{Name: "Alice", Age: 30, PubKey: []byte{1, 2, 3, 4, 5}},
		{Name: "", Age: 0, PubKey: nil},
		{Name: "ünïcødé", Age: 1<<32 - 1, PubKey: bytes.Repeat([]byte{0xff}, 300)},
	} {
		data, err := a.MarshalBinary()
		require.NoError(t, err)

		var got Account
		require.NoError(t, got.UnmarshalBinary(data))
		require.True(t, cmp.Equal(a, got), cmp.Diff(a, got))
	}
}

func TestAccount_WriteToReadFrom(t *testing.T) {
	a := Account{Name: "Alice", Age: 30, PubKey: []byte{1, 2, 3, 4, 5}}

	var buf bytes.Buffer
	n, err := a.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(a.BinarySize()), n)

	var got Account
	m, err := got.ReadFrom(&buf)
	require.NoError(t, err)
	assert.Equal(t, n, m)
	assert.True(t, a.Equal(got))
}

func TestAccount_UnmarshalMalformed(t *testing.T) {
	tests := map[string][]byte{
		"empty":          {},
		"short prefix":   {5, 0},
		"short name":     {5, 0, 0, 0, 'A', 'l'},
		"missing age":    aliceBytes[:9],
		"short key":      aliceBytes[:len(aliceBytes)-1],
		"trailing bytes": append(append([]byte{}, aliceBytes...), 0),
		"huge length":    {0xff, 0xff, 0xff, 0xff},
		"bad utf8":       {2, 0, 0, 0, 0xc3, 0x28, 0, 0, 0, 0, 0, 0, 0, 0},
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			original := Account{Name: "keep", Age: 7}
			got := original

			err := got.UnmarshalBinary(data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, borsh.ErrDecode), err.Error())
			assert.True(t, original.Equal(got), "failed decode must not modify the receiver")
		})
	}
}

func TestPoint_RoundTrip(t *testing.T) {
	p := Point{X: -1, Y: 2}

	data, err := p.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 2, 0, 0, 0}, data)

	var got Point
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Equal(t, p, got)
}

func TestProduct_RoundTrip(t *testing.T) {
	p := Product{ID: 1, Name: "Laptop", Price: 999.99}

	data, err := p.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 22)
	assert.Equal(t, []byte{1, 0, 0, 0, 6, 0, 0, 0}, data[:8])
	assert.Equal(t, "Laptop", string(data[8:14]))

	var got Product
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Equal(t, p, got)
}

func TestProduct_NaNPrice(t *testing.T) {
	_, err := Product{ID: 1, Name: "x", Price: math.NaN()}.MarshalBinary()
	require.Error(t, err)

	data := []byte{1, 0, 0, 0, 1, 0, 0, 0, 'x', 0, 0, 0, 0, 0, 0, 0xf8, 0x7f}
	got := Product{ID: 9}
	err = got.UnmarshalBinary(data)
	require.ErrorIs(t, err, borsh.ErrDecode)
	assert.Equal(t, Product{ID: 9}, got)
}

func TestStatus_Binary(t *testing.T) {
	for want, idx := range map[Status]byte{
		StatusActive:   0,
		StatusInactive: 1,
		StatusPending:  2,
	} {
		data, err := want.MarshalBinary()
		require.NoError(t, err, want)
		assert.Equal(t, []byte{idx}, data, want)

		var got Status
		require.NoError(t, got.UnmarshalBinary(data), want)
		assert.Equal(t, want, got)
	}
}

func TestStatus_BinaryUnknownVariant(t *testing.T) {
	_, err := Status(9).MarshalBinary()
	require.Error(t, err)

	got := StatusPending
	err = got.UnmarshalBinary([]byte{3})
	require.ErrorIs(t, err, borsh.ErrDecode)
	assert.Equal(t, StatusPending, got)

	err = got.UnmarshalBinary(nil)
	require.ErrorIs(t, err, borsh.ErrDecode)
}
