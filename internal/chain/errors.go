package chain

import (
	"errors"
	"fmt"
)

// Error kinds from spec §7. Admission and search report these as
// values; nothing in this package panics on a recoverable condition.
var (
	ErrInvalidSignature     = errors.New("chain: invalid signature")
	ErrInsufficientBalance  = errors.New("chain: insufficient balance")
	ErrSelfPayment          = errors.New("chain: sender cannot be the miner")
	ErrDuplicateTransaction = errors.New("chain: duplicate transaction")
	ErrNotFound             = errors.New("chain: no matching block")
	ErrEmptyChain           = errors.New("chain: chain is empty")
)

// SearchError reports a failed Search, carrying the SearchQuery back to
// the caller the way original_source's BlockSearchResult variants
// (FailOfIndex, FailOfPreviousHash, FailOfBlockHash, FailOfNonce,
// FailOfTimeStamp, FailOfTransaction) each carry their own criterion's
// value rather than a bare miss. Unwrap returns ErrNotFound/ErrEmptyChain
// so existing errors.Is(err, ErrNotFound) checks keep working.
type SearchError struct {
	Query SearchQuery
	Err   error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, describeQuery(e.Query))
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

func describeQuery(q SearchQuery) string {
	switch q.Criterion {
	case ByIndex:
		return fmt.Sprintf("index=%d", q.Index)
	case ByPreviousHash:
		return fmt.Sprintf("previous_hash=%x", q.Hash)
	case ByBlockHash:
		return fmt.Sprintf("block_hash=%x", q.Hash)
	case ByTimestamp:
		return fmt.Sprintf("timestamp_ns=%d", q.TimestampNS)
	case ByNonce:
		return fmt.Sprintf("nonce=%d", q.Nonce)
	case ByTransaction:
		return fmt.Sprintf("transaction=%x", q.Transaction)
	default:
		return "criterion=unknown"
	}
}
