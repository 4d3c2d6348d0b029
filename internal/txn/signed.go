// Package txn implements the two transaction representations described
// in spec §3: SignedTransaction, the wire form a wallet signs and a
// client submits, and LedgerTransaction, the binary form stored in
// blocks and the mempool.
package txn

import "encoding/json"

// SignedTransaction is the wire form exchanged between a wallet and the
// chain. Field order is fixed (sender, recipient, amount, public_key,
// signature) so signer and verifier serialize identical bytes.
type SignedTransaction struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Amount    uint64 `json:"amount"`
	PublicKey string `json:"public_key"`
	Signature string `json:"signature"`
}

// canonicalJSON marshals t in the fixed field order with signature
// forced to empty, matching what the signer actually signs.
func canonicalJSON(t SignedTransaction) ([]byte, error) {
	t.Signature = ""
	return json.Marshal(struct {
		Sender    string `json:"sender"`
		Recipient string `json:"recipient"`
		Amount    uint64 `json:"amount"`
		PublicKey string `json:"public_key"`
		Signature string `json:"signature"`
	}{
		Sender:    t.Sender,
		Recipient: t.Recipient,
		Amount:    t.Amount,
		PublicKey: t.PublicKey,
		Signature: t.Signature,
	})
}

// SigningBytes returns the exact bytes an ECDSA signature over t must
// cover: the canonical JSON serialization with signature set to "".
func SigningBytes(t SignedTransaction) ([]byte, error) {
	return canonicalJSON(t)
}
