// Package block implements the chain's unit of record: a nonce,
// predecessor hash, nanosecond timestamp and an ordered list of
// already-encoded ledger transactions (spec §3/§4.4).
package block

import (
	"github.com/everestp/blockchain/internal/hashutil"
)

// Block bundles a nonce, previous-block hash, timestamp and the raw
// ledger-transaction encodings it carries. The only legitimate
// mutation after construction is the nonce increment performed during
// proof-of-work; once a chain appends a block it must not be mutated
// again.
type Block struct {
	nonce        int32
	previousHash []byte
	timestampNS  uint64
	transactions [][]byte
}

// New constructs a block with the given nonce and previous-block hash,
// stamped with now(), read as nanoseconds since the Unix epoch. The transaction list starts empty; use AddTransaction to
// fill it before mining.
func New(nonce int32, previousHash []byte, now func() int64) *Block {
	return &Block{
		nonce:        nonce,
		previousHash: previousHash,
		timestampNS:  uint64(now()),
		transactions: make([][]byte, 0),
	}
}

// AddTransaction appends an already-encoded LedgerTransaction.
func (b *Block) AddTransaction(encoded []byte) {
	b.transactions = append(b.transactions, encoded)
}

// IncrementNonce advances the nonce by one, the sole mutation PoW performs.
func (b *Block) IncrementNonce() {
	b.nonce++
}

// Nonce returns the current nonce.
func (b *Block) Nonce() int32 { return b.nonce }

// PreviousHash returns the predecessor block's hash.
func (b *Block) PreviousHash() []byte { return b.previousHash }

// TimestampNS returns the block's nanosecond timestamp.
func (b *Block) TimestampNS() uint64 { return b.timestampNS }

// Transactions returns the block's ordered ledger-transaction encodings.
func (b *Block) Transactions() [][]byte { return b.transactions }

// Hash computes SHA256(nonce_be(4) ‖ previous_hash ‖ time_stamps_be(16) ‖ concat(transactions)).
// Two blocks are equal iff their hashes are equal.
func (b *Block) Hash() [32]byte {
	buf := make([]byte, 0, 4+len(b.previousHash)+16+totalLen(b.transactions))
	buf = append(buf, hashutil.PutInt32BE(b.nonce)...)
	buf = append(buf, b.previousHash...)
	buf = append(buf, hashutil.PutUint128BE(b.timestampNS)...)
	for _, t := range b.transactions {
		buf = append(buf, t...)
	}
	return hashutil.SHA256(buf)
}

func totalLen(txs [][]byte) int {
	n := 0
	for _, t := range txs {
		n += len(t)
	}
	return n
}
