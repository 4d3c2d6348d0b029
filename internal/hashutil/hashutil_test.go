package hashutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase58RoundTrip(t *testing.T) {
	payload := []byte{0x00, 0x01, 0x02, 0x03, 0xff}
	encoded := Base58Encode(payload)
	assert.NotEmpty(t, encoded)
	assert.Equal(t, payload, Base58Decode(encoded))
}

func TestHexRoundTrip(t *testing.T) {
	payload := []byte("hello world")
	encoded := HexEncode(payload)

	decoded, err := HexDecode(encoded)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestHexDecodeMalformed(t *testing.T) {
	_, err := HexDecode("not-hex-zz")
	assert.ErrorIs(t, err, ErrMalformedHex)
}

func TestFixedWidthRoundTrip(t *testing.T) {
	assert.Equal(t, int32(-7), Int32BE(PutInt32BE(-7)))
	assert.Equal(t, uint64(123456789), Uint64BE(PutUint64BE(123456789)))
	assert.Equal(t, uint64(1_700_000_000_000_000_000), Uint128BE(PutUint128BE(1_700_000_000_000_000_000)))
	assert.InDelta(t, 12.5, Float64BE(PutFloat64BE(12.5)), 0)
}

func TestDoubleSHA256(t *testing.T) {
	a := SHA256([]byte("x"))
	b := SHA256(a[:])
	assert.Equal(t, b, DoubleSHA256([]byte("x")))
}
