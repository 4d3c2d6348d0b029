package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everestp/blockchain/internal/txn"
	"github.com/everestp/blockchain/internal/wallet"
)

func fixedClock() int64 { return 1_700_000_000_000_000_000 }

// TestGenesisAndFirstMine is scenario S2 from spec §8.
func TestGenesisAndFirstMine(t *testing.T) {
	c := New("MINER", WithDifficulty(3), WithClock(fixedClock))

	require.Equal(t, 2, c.Len())
	require.Len(t, c.Blocks()[1].Transactions(), 1)

	decoded, err := txn.DeserializeLedgerTransaction(c.Blocks()[1].Transactions()[0])
	require.NoError(t, err)
	assert.Equal(t, []byte(MiningSender), decoded.SenderAddress)
	assert.Equal(t, []byte("MINER"), decoded.RecipientAddress)
	assert.Equal(t, 1.0, decoded.Value)

	assert.True(t, len(BlockHashHex(c.Blocks()[1])) > 3)
	assert.Equal(t, "000", BlockHashHex(c.Blocks()[1])[:3])
}

// TestBalanceAfterSequence is scenario S3 from spec §8. It exercises
// Balance directly over a hand-assembled mempool/chain, the same way
// the spec's scenario is stated in terms of raw ledger entries rather
// than wallet-signed submissions.
func TestBalanceAfterSequence(t *testing.T) {
	c := New("MINER", WithDifficulty(3), WithClock(fixedClock))

	c.mempool = append(c.mempool, txn.NewLedgerTransaction("A", "B", 10).Serialize())
	require.True(t, c.Mine())

	c.mempool = append(c.mempool, txn.NewLedgerTransaction("C", "D", 10).Serialize())
	c.mempool = append(c.mempool, txn.NewLedgerTransaction("X", "Y", 10).Serialize())
	require.True(t, c.Mine())

	minerBalance, err := c.Balance("MINER")
	require.NoError(t, err)
	assert.EqualValues(t, 3, minerBalance)

	aBalance, err := c.Balance("A")
	require.NoError(t, err)
	assert.EqualValues(t, -10, aBalance)

	bBalance, err := c.Balance("B")
	require.NoError(t, err)
	assert.EqualValues(t, 10, bBalance)

	cBalance, err := c.Balance("C")
	require.NoError(t, err)
	assert.EqualValues(t, -10, cBalance)

	dBalance, err := c.Balance("D")
	require.NoError(t, err)
	assert.EqualValues(t, 10, dBalance)
}

// TestDuplicateRejection is scenario S4.
func TestDuplicateRejection(t *testing.T) {
	c := New("MINER", WithDifficulty(1), WithClock(fixedClock))

	reward := txn.SignedTransaction{Sender: MiningSender, Recipient: "X", Amount: 1}

	ok, err := c.AddTransaction(reward)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, c.Mempool(), 1)

	ok, err = c.AddTransaction(reward)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrDuplicateTransaction)
	assert.Len(t, c.Mempool(), 1)
}

// TestSelfPaymentRejection is scenario S6.
func TestSelfPaymentRejection(t *testing.T) {
	c := New("MINER", WithDifficulty(1), WithClock(fixedClock))

	ok, err := c.AddTransaction(txn.SignedTransaction{Sender: "MINER", Recipient: "X", Amount: 1})
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrSelfPayment)
	assert.Empty(t, c.Mempool())
}

func TestAddTransactionInvalidSignature(t *testing.T) {
	c := New("MINER", WithDifficulty(1), WithClock(fixedClock))

	signed := txn.SignedTransaction{
		Sender:    "alice",
		Recipient: "bob",
		Amount:    1,
		PublicKey: "not-hex",
		Signature: "also-not-hex",
	}
	ok, err := c.AddTransaction(signed)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestAddTransactionInsufficientBalance(t *testing.T) {
	c := New("MINER", WithDifficulty(1), WithClock(fixedClock))

	w, err := wallet.New()
	require.NoError(t, err)

	signed, err := w.Sign("bob", 10)
	require.NoError(t, err)

	ok, err := c.AddTransaction(signed)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestMineEmptiesMempool(t *testing.T) {
	c := New("MINER", WithDifficulty(1), WithClock(fixedClock))
	c.mempool = append(c.mempool, txn.NewLedgerTransaction("A", "B", 1).Serialize())
	require.True(t, c.Mine())
	assert.Empty(t, c.Mempool())
}

func TestSearchByIndexAndEmptyChain(t *testing.T) {
	c := New("MINER", WithDifficulty(1), WithClock(fixedClock))

	b, err := c.Search(SearchQuery{Criterion: ByIndex, Index: 1})
	require.NoError(t, err)
	assert.Equal(t, c.Blocks()[1], b)

	_, err = c.Search(SearchQuery{Criterion: ByIndex, Index: 99})
	assert.ErrorIs(t, err, ErrNotFound)
	var searchErr *SearchError
	require.ErrorAs(t, err, &searchErr)
	assert.Equal(t, 99, searchErr.Query.Index)

	empty := &Chain{}
	_, err = empty.Search(SearchQuery{Criterion: ByIndex, Index: 0})
	assert.ErrorIs(t, err, ErrEmptyChain)
	require.ErrorAs(t, err, &searchErr)
	assert.Equal(t, ByIndex, searchErr.Query.Criterion)
}
