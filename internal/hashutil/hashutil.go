// Package hashutil collects the hashing and binary-encoding primitives
// shared by the wallet, transaction and chain layers: SHA-256,
// RIPEMD-160, Base58, hex and fixed-width big-endian integer/float
// layout.
package hashutil

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"math"

	"github.com/btcsuite/btcutil/base58"
	"golang.org/x/crypto/ripemd160"
)

// ErrMalformedHex is returned when decoding a hex string fails.
var ErrMalformedHex = errors.New("hashutil: malformed hex input")

// SHA256 returns the SHA-256 digest of b.
func SHA256(b []byte) [32]byte {
	return sha256.Sum256(b)
}

// DoubleSHA256 returns SHA256(SHA256(b)).
func DoubleSHA256(b []byte) [32]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}

// RIPEMD160 returns the RIPEMD-160 digest of b.
func RIPEMD160(b []byte) [20]byte {
	h := ripemd160.New()
	h.Write(b)
	var out [20]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Base58Encode encodes b using the Bitcoin Base58 alphabet.
func Base58Encode(b []byte) string {
	return base58.Encode(b)
}

// Base58Decode reverses Base58Encode.
func Base58Decode(s string) []byte {
	return base58.Decode(s)
}

// HexEncode lowercase hex-encodes b.
func HexEncode(b []byte) string {
	return hex.EncodeToString(b)
}

// HexDecode decodes a hex string, returning ErrMalformedHex on failure.
func HexDecode(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, ErrMalformedHex
	}
	return b, nil
}

// PutInt32BE writes v as 4 big-endian bytes.
func PutInt32BE(v int32) []byte {
	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, uint32(v))
	return out
}

// Int32BE reads 4 big-endian bytes as a signed int32.
func Int32BE(b []byte) int32 {
	return int32(binary.BigEndian.Uint32(b))
}

// PutUint64BE writes v as 8 big-endian bytes.
func PutUint64BE(v uint64) []byte {
	out := make([]byte, 8)
	binary.BigEndian.PutUint64(out, v)
	return out
}

// Uint64BE reads 8 big-endian bytes as a uint64.
func Uint64BE(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}

// PutUint128BE writes v (nanoseconds since epoch, always fits in the low
// 64 bits at realistic timestamps) as 16 big-endian bytes: an 8-byte
// high half (always zero) followed by an 8-byte low half.
func PutUint128BE(v uint64) []byte {
	out := make([]byte, 16)
	binary.BigEndian.PutUint64(out[8:], v)
	return out
}

// Uint128BE reads the low 64 bits back out of a 16-byte big-endian
// field written by PutUint128BE.
func Uint128BE(b []byte) uint64 {
	return binary.BigEndian.Uint64(b[8:])
}

// PutFloat64BE writes v as its IEEE-754 big-endian byte layout.
func PutFloat64BE(v float64) []byte {
	out := make([]byte, 8)
	binary.BigEndian.PutUint64(out, math.Float64bits(v))
	return out
}

// Float64BE reads 8 big-endian bytes as an IEEE-754 float64.
func Float64BE(b []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(b))
}
