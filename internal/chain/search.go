package chain

import (
	"github.com/everestp/blockchain/internal/block"
	"github.com/everestp/blockchain/internal/hashutil"
)

// SearchCriterion selects how Search scans the chain, grounded on
// original_source's BlockSearch enum (index, previous-hash, block-hash,
// timestamp, nonce, transaction-present).
type SearchCriterion int

const (
	ByIndex SearchCriterion = iota
	ByPreviousHash
	ByBlockHash
	ByTimestamp
	ByNonce
	ByTransaction
)

// SearchQuery pairs a criterion with the value to match against it.
// Exactly one of the fields is meaningful for a given Criterion.
type SearchQuery struct {
	Criterion   SearchCriterion
	Index       int
	Hash        []byte
	TimestampNS uint64
	Nonce       int32
	Transaction []byte
}

// Search performs a linear scan and returns the first matching block in
// chain order, or a *SearchError wrapping ErrNotFound/ErrEmptyChain that
// carries q back, so a caller can report exactly which criterion/value
// missed (spec §4.5, §7).
func (c *Chain) Search(q SearchQuery) (*block.Block, error) {
	if len(c.blocks) == 0 {
		return nil, &SearchError{Query: q, Err: ErrEmptyChain}
	}

	for idx, b := range c.blocks {
		if matches(b, idx, q) {
			return b, nil
		}
	}
	return nil, &SearchError{Query: q, Err: ErrNotFound}
}

func matches(b *block.Block, idx int, q SearchQuery) bool {
	switch q.Criterion {
	case ByIndex:
		return idx == q.Index
	case ByPreviousHash:
		return string(b.PreviousHash()) == string(q.Hash)
	case ByBlockHash:
		h := b.Hash()
		return string(h[:]) == string(q.Hash)
	case ByTimestamp:
		return b.TimestampNS() == q.TimestampNS
	case ByNonce:
		return b.Nonce() == q.Nonce
	case ByTransaction:
		for _, t := range b.Transactions() {
			if string(t) == string(q.Transaction) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// BlockHashHex is a diagnostic helper returning the hex form of a
// block's content hash.
func BlockHashHex(b *block.Block) string {
	h := b.Hash()
	return hashutil.HexEncode(h[:])
}
