package txn

import "errors"

// ErrCodec signals a malformed length-prefixed ledger encoding. Per
// spec §7, codec errors during block replay are fatal to the scan and
// must surface to the caller — they indicate corruption, not bad input.
var ErrCodec = errors.New("txn: malformed ledger transaction encoding")
