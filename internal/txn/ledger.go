package txn

import (
	"fmt"
	"strings"

	"github.com/everestp/blockchain/internal/hashutil"
)

// LedgerTransaction is the binary form stored inside blocks and the
// mempool. Two encodings are equal, byte-for-byte, iff the underlying
// transactions are equal — that byte equality is the identity used
// for mempool deduplication (spec §3).
type LedgerTransaction struct {
	SenderAddress    []byte
	RecipientAddress []byte
	Value            float64
}

// NewLedgerTransaction builds a LedgerTransaction from UTF-8 addresses.
func NewLedgerTransaction(sender, recipient string, value float64) LedgerTransaction {
	return LedgerTransaction{
		SenderAddress:    []byte(sender),
		RecipientAddress: []byte(recipient),
		Value:            value,
	}
}

// Serialize encodes t as:
//
//	len(sender)‖sender ‖ len(recipient)‖recipient ‖ len(value_bytes)‖value_bytes
//
// with every length a big-endian uint64.
func (t LedgerTransaction) Serialize() []byte {
	valueBytes := hashutil.PutFloat64BE(t.Value)

	out := make([]byte, 0, 8+len(t.SenderAddress)+8+len(t.RecipientAddress)+8+len(valueBytes))
	out = append(out, hashutil.PutUint64BE(uint64(len(t.SenderAddress)))...)
	out = append(out, t.SenderAddress...)
	out = append(out, hashutil.PutUint64BE(uint64(len(t.RecipientAddress)))...)
	out = append(out, t.RecipientAddress...)
	out = append(out, hashutil.PutUint64BE(uint64(len(valueBytes)))...)
	out = append(out, valueBytes...)
	return out
}

// DeserializeLedgerTransaction is the inverse of Serialize.
func DeserializeLedgerTransaction(b []byte) (LedgerTransaction, error) {
	pos := 0

	sender, n, err := readLengthPrefixed(b, pos)
	if err != nil {
		return LedgerTransaction{}, err
	}
	pos = n

	recipient, n, err := readLengthPrefixed(b, pos)
	if err != nil {
		return LedgerTransaction{}, err
	}
	pos = n

	valueBytes, n, err := readLengthPrefixed(b, pos)
	if err != nil {
		return LedgerTransaction{}, err
	}
	pos = n
	if len(valueBytes) != 8 {
		return LedgerTransaction{}, ErrCodec
	}

	return LedgerTransaction{
		SenderAddress:    sender,
		RecipientAddress: recipient,
		Value:            hashutil.Float64BE(valueBytes),
	}, nil
}

func readLengthPrefixed(b []byte, pos int) (field []byte, next int, err error) {
	if len(b) < pos+8 {
		return nil, 0, ErrCodec
	}
	length := hashutil.Uint64BE(b[pos : pos+8])
	pos += 8
	if uint64(len(b)-pos) < length {
		return nil, 0, ErrCodec
	}
	field = b[pos : pos+int(length)]
	pos += int(length)
	return field, pos, nil
}

// Equal reports whether t and other encode to identical bytes.
func (t LedgerTransaction) Equal(other LedgerTransaction) bool {
	return string(t.Serialize()) == string(other.Serialize())
}

// String renders t for diagnostic printing, in the teacher's
// dashed-separator style.
func (t LedgerTransaction) String() string {
	sep := strings.Repeat("-", 40)
	return fmt.Sprintf("%s\nsender address:     %s\nrecipient address:  %s\nvalue:              %.6f\n%s",
		sep, t.SenderAddress, t.RecipientAddress, t.Value, sep)
}
