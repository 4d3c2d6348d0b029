// Package wallet derives a Base58 blockchain address from a P-256
// ECDSA key pair and signs/verifies SignedTransaction values.
//
// Address derivation (spec §3), bit-exact:
//
//  1. Concatenate the uncompressed public point X‖Y (32 bytes each).
//  2. h1 = SHA256(X‖Y).
//  3. h2 = RIPEMD160(h1).
//  4. v = 0x00 ‖ h2 (version byte prepended).
//  5. checksum = SHA256(SHA256(v))[0:4].
//  6. addr = Base58(v ‖ checksum).
package wallet

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/everestp/blockchain/internal/hashutil"
	"github.com/everestp/blockchain/internal/txn"
)

// addressVersion is the mainnet version byte prepended before checksumming.
const addressVersion = 0x00

// Wallet owns a P-256 key pair and a derived, cached address. Once
// created it is read-only; the signing key never leaves the process
// except through PrivateKeyStr.
type Wallet struct {
	privateKey *ecdsa.PrivateKey
	publicKey  *ecdsa.PublicKey
	address    string
}

// New generates a fresh P-256 key pair from a cryptographically secure
// source and derives its address. RNG unavailability is fatal to the
// process (spec §7): the underlying ecdsa.GenerateKey error is only
// ever non-nil when crypto/rand itself cannot produce entropy.
func New() (*Wallet, error) {
	privateKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("wallet: generate key: %w", err)
	}

	w := &Wallet{
		privateKey: privateKey,
		publicKey:  &privateKey.PublicKey,
	}
	w.address = deriveAddress(w.publicKey)
	return w, nil
}

// FromKeys reconstructs a Wallet able to sign from hex-encoded key
// material a caller already holds — the private_key/public_key pair
// carried in the HTTP transaction request of spec §6, mirroring the
// teacher's wallet_server.CreateTransaction, which reassembles an
// ecdsa.PrivateKey from the same two hex fields before signing. The
// address is derived from publicKeyHex exactly as New derives it; it
// is never taken on faith from a caller-supplied address field.
func FromKeys(privateKeyHex, publicKeyHex string) (*Wallet, error) {
	privBytes, err := hashutil.HexDecode(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("wallet: malformed private key: %w", err)
	}
	pub, err := publicKeyFromHex(publicKeyHex)
	if err != nil {
		return nil, fmt.Errorf("wallet: malformed public key")
	}

	w := &Wallet{
		privateKey: &ecdsa.PrivateKey{
			PublicKey: *pub,
			D:         new(big.Int).SetBytes(privBytes),
		},
		publicKey: pub,
	}
	w.address = deriveAddress(pub)
	return w, nil
}

func deriveAddress(pub *ecdsa.PublicKey) string {
	xy := append(padTo32(pub.X), padTo32(pub.Y)...)

	h1 := hashutil.SHA256(xy)
	h2 := hashutil.RIPEMD160(h1[:])

	v := make([]byte, 21)
	v[0] = addressVersion
	copy(v[1:], h2[:])

	checksum := hashutil.DoubleSHA256(v)
	payload := append(v, checksum[:4]...)

	return hashutil.Base58Encode(payload)
}

// padTo32 left-pads a P-256 coordinate to its fixed 32-byte width.
func padTo32(n *big.Int) []byte {
	b := n.Bytes()
	if len(b) >= 32 {
		return b[len(b)-32:]
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}

// PublicKeyStr returns hex(X)‖hex(Y) with no 0x04 prefix.
func (w *Wallet) PublicKeyStr() string {
	return fmt.Sprintf("%s%s", hashutil.HexEncode(padTo32(w.publicKey.X)), hashutil.HexEncode(padTo32(w.publicKey.Y)))
}

// PrivateKeyStr returns hex of the 32-byte scalar. Exposed only for the
// external UI/CLI collaborator — the wallet never discloses it itself.
func (w *Wallet) PrivateKeyStr() string {
	return hashutil.HexEncode(padTo32(w.privateKey.D))
}

// Address returns the cached Base58 address.
func (w *Wallet) Address() string {
	return w.address
}

// String renders the wallet for diagnostic printing.
func (w *Wallet) String() string {
	return fmt.Sprintf("address: %s\npublic_key: %s", w.address, w.PublicKeyStr())
}

// Sign builds a SignedTransaction{sender: w.Address(), recipient,
// amount}, serializes it canonically with signature="", ECDSA-signs
// those bytes, and writes the raw 64-byte signature back as hex.
func (w *Wallet) Sign(recipient string, amount uint64) (txn.SignedTransaction, error) {
	t := txn.SignedTransaction{
		Sender:    w.address,
		Recipient: recipient,
		Amount:    amount,
		PublicKey: w.PublicKeyStr(),
	}

	msg, err := txn.SigningBytes(t)
	if err != nil {
		return txn.SignedTransaction{}, fmt.Errorf("wallet: serialize for signing: %w", err)
	}
	digest := hashutil.SHA256(msg)

	r, s, err := ecdsa.Sign(rand.Reader, w.privateKey, digest[:])
	if err != nil {
		return txn.SignedTransaction{}, fmt.Errorf("wallet: sign: %w", err)
	}

	sig := make([]byte, 64)
	rb, sb := r.Bytes(), s.Bytes()
	copy(sig[32-len(rb):32], rb)
	copy(sig[64-len(sb):64], sb)

	t.Signature = hashutil.HexEncode(sig)
	return t, nil
}

// Verify reconstructs the canonical serialization of t with
// signature="" and checks the hex-decoded 64-byte signature against
// the hex-decoded public key. Any decoding failure returns false
// rather than an error (spec §4.2/§7): a malformed signature is simply
// not a valid one.
func Verify(t txn.SignedTransaction) bool {
	msg, err := txn.SigningBytes(t)
	if err != nil {
		return false
	}
	digest := hashutil.SHA256(msg)

	sig, err := hashutil.HexDecode(t.Signature)
	if err != nil || len(sig) != 64 {
		return false
	}
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:])

	pub, err := publicKeyFromHex(t.PublicKey)
	if err != nil {
		return false
	}

	return ecdsa.Verify(pub, digest[:], r, s)
}

// publicKeyFromHex decodes hex(X)‖hex(Y) (32 bytes each half, 64 bytes
// in all, no 0x04 prefix) into a P-256 public key, mirroring the SEC1 uncompressed form
// with the 0x04 prefix implied rather than present.
func publicKeyFromHex(s string) (*ecdsa.PublicKey, error) {
	b, err := hashutil.HexDecode(s)
	if err != nil || len(b) != 64 {
		return nil, fmt.Errorf("wallet: malformed public key")
	}
	return &ecdsa.PublicKey{
		Curve: elliptic.P256(),
		X:     new(big.Int).SetBytes(b[:32]),
		Y:     new(big.Int).SetBytes(b[32:]),
	}, nil
}
