package wallet

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everestp/blockchain/internal/hashutil"
)

func TestNewDerivesBase58Address(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	assert.NotEmpty(t, w.Address())
	assert.Len(t, w.PublicKeyStr(), 128)
	assert.Len(t, w.PrivateKeyStr(), 64)
}

// TestAddressDerivationVector is the S1 scenario from spec §8: a fixed
// public key must derive the same address as an independent
// implementation of the six derivation steps.
func TestAddressDerivationVector(t *testing.T) {
	x := new(big.Int).SetBytes(append(make([]byte, 31), 0x01))
	y := new(big.Int).SetBytes(append(make([]byte, 31), 0x02))

	xy := append(padTo32(x), padTo32(y)...)
	h1 := hashutil.SHA256(xy)
	h2 := hashutil.RIPEMD160(h1[:])
	v := make([]byte, 21)
	v[0] = 0x00
	copy(v[1:], h2[:])
	checksum := hashutil.DoubleSHA256(v)
	want := hashutil.Base58Encode(append(v, checksum[:4]...))

	got := deriveAddress(&ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y})
	assert.Equal(t, want, got)
}

func TestSignAndVerify(t *testing.T) {
	w, err := New()
	require.NoError(t, err)

	signed, err := w.Sign("recipient-address", 42)
	require.NoError(t, err)
	assert.True(t, Verify(signed))
}

func TestVerifyFailsAfterTamper(t *testing.T) {
	w, err := New()
	require.NoError(t, err)

	signed, err := w.Sign("bob", 5)
	require.NoError(t, err)
	assert.True(t, Verify(signed))

	signed.Amount = 6
	assert.False(t, Verify(signed))
}

func TestVerifyRejectsMalformedFields(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	signed, err := w.Sign("bob", 5)
	require.NoError(t, err)

	signed.Signature = "not-hex"
	assert.False(t, Verify(signed))

	signed2, err := w.Sign("bob", 5)
	require.NoError(t, err)
	signed2.PublicKey = "zz"
	assert.False(t, Verify(signed2))
}
