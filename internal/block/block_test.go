package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fixedClock() int64 { return 1_700_000_000_000_000_000 }

func TestHashChangesWithNonce(t *testing.T) {
	b := New(0, []byte{0x00, 0x20}, fixedClock)
	h1 := b.Hash()
	b.IncrementNonce()
	h2 := b.Hash()
	assert.NotEqual(t, h1, h2)
}

func TestHashStableForSameFields(t *testing.T) {
	a := New(5, []byte{0x01, 0x02}, fixedClock)
	b := New(5, []byte{0x01, 0x02}, fixedClock)
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestAddTransactionAffectsHash(t *testing.T) {
	b := New(0, []byte{0x00}, fixedClock)
	before := b.Hash()
	b.AddTransaction([]byte("tx-bytes"))
	after := b.Hash()
	assert.NotEqual(t, before, after)
}
