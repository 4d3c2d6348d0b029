package txn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerTransactionRoundTrip(t *testing.T) {
	t1 := NewLedgerTransaction("alice", "bob", 10.0)
	encoded := t1.Serialize()

	decoded, err := DeserializeLedgerTransaction(encoded)
	require.NoError(t, err)
	assert.True(t, t1.Equal(decoded))
	assert.Equal(t, t1, decoded)
}

func TestSerializeIsDeterministic(t *testing.T) {
	t1 := NewLedgerTransaction("alice", "bob", 10.0)
	assert.Equal(t, t1.Serialize(), t1.Serialize())
}

func TestDeserializeMalformedInput(t *testing.T) {
	_, err := DeserializeLedgerTransaction([]byte{0, 0, 0})
	assert.ErrorIs(t, err, ErrCodec)
}

func TestDifferentTransactionsEncodeDifferently(t *testing.T) {
	a := NewLedgerTransaction("alice", "bob", 10.0)
	b := NewLedgerTransaction("alice", "bob", 11.0)
	assert.False(t, a.Equal(b))
}
