package core

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everestp/blockchain/internal/chain"
)

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

func TestNewWalletAndBalance(t *testing.T) {
	node := New("MINER", discardLogger(), chain.WithDifficulty(1))

	w, err := node.NewWallet()
	require.NoError(t, err)
	assert.NotEmpty(t, w.Address())

	balance, err := node.Balance("MINER")
	require.NoError(t, err)
	assert.EqualValues(t, 1, balance)
}

func TestBlockAtZeroIsGenesis(t *testing.T) {
	node := New("MINER", discardLogger(), chain.WithDifficulty(1))
	b, err := node.BlockAt(0)
	require.NoError(t, err)
	assert.Empty(t, b.Transactions())
}

func TestMineAdvancesChain(t *testing.T) {
	node := New("MINER", discardLogger(), chain.WithDifficulty(1))
	before := node.Chain.Len()
	assert.True(t, node.Mine())
	assert.Equal(t, before+1, node.Chain.Len())
}
