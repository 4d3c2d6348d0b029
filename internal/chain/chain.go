// Package chain implements the append-only block sequence, its
// mempool, proof-of-work mining and balance/search queries (spec §4.5).
package chain

import (
	"fmt"
	"strings"
	"time"

	"github.com/everestp/blockchain/internal/block"
	"github.com/everestp/blockchain/internal/hashutil"
	"github.com/everestp/blockchain/internal/txn"
	"github.com/everestp/blockchain/internal/wallet"
)

const (
	// DefaultDifficulty is the number of leading hex zero characters a
	// block hash must have. The historical source carries both 3 and 5;
	// SPEC_FULL resolves this open question to 3 (teacher's
	// MiningDifficulty, and the value the S2/S3 test vectors assume).
	DefaultDifficulty = 3

	// MiningSender is the reserved sender for reward emissions.
	MiningSender = "THE_BLOCKCHAIN"

	// MiningReward is the fixed block reward.
	MiningReward uint64 = 1

	// genesisPreviousHashByte0/1 is the fixed, deliberately odd genesis
	// seed from spec §3 — preserved byte-for-byte, not "corrected" to a
	// 32-byte zero vector.
	genesisPreviousHashByte0 = 0x00
	genesisPreviousHashByte1 = 0x20
)

// MineObserver is notified after every successful mine call. It is the
// adapted form of the teacher's per-mine neighbor-notification hooks
// (CreateBlock's DELETE-to-neighbors loop, Mining's PUT-/consensus
// loop) repurposed for single-process metrics publication instead of
// peer gossip, since peer-to-peer networking is a spec Non-goal.
type MineObserver func(chainLength int, mempoolSize int, powIterations int, elapsed time.Duration)

// Chain is the append-only sequence of blocks plus the pending-
// transaction pool, owned exclusively by this struct: all mutation
// goes through AddTransaction and Mine.
type Chain struct {
	blocks       []*block.Block
	mempool      [][]byte
	minerAddress string
	difficulty   int
	now          func() int64
	observer     MineObserver
}

// Option configures a Chain at construction.
type Option func(*Chain)

// WithDifficulty overrides DefaultDifficulty.
func WithDifficulty(d int) Option {
	return func(c *Chain) { c.difficulty = d }
}

// WithClock overrides the wall-clock source used to timestamp blocks,
// for deterministic tests.
func WithClock(now func() int64) Option {
	return func(c *Chain) { c.now = now }
}

// WithMineObserver registers a hook invoked after every successful Mine.
func WithMineObserver(obs MineObserver) Option {
	return func(c *Chain) { c.observer = obs }
}

// New constructs a chain for minerAddress: it pushes the genesis block
// (nonce=0, previous_hash=[0x00,0x20], empty transactions; no
// proof-of-work is run on it) and immediately calls Mine, which appends
// a second block carrying the initial miner reward. After
// construction the chain has exactly two blocks.
func New(minerAddress string, opts ...Option) *Chain {
	c := &Chain{
		minerAddress: minerAddress,
		difficulty:   DefaultDifficulty,
		now:          func() int64 { return time.Now().UnixNano() },
		mempool:      make([][]byte, 0),
	}
	for _, opt := range opts {
		opt(c)
	}

	genesis := block.New(0, []byte{genesisPreviousHashByte0, genesisPreviousHashByte1}, c.now)
	c.blocks = append(c.blocks, genesis)
	c.Mine()
	return c
}

// Blocks returns the chain's blocks in order.
func (c *Chain) Blocks() []*block.Block { return c.blocks }

// Len returns the number of blocks in the chain.
func (c *Chain) Len() int { return len(c.blocks) }

// Mempool returns the pending ledger-transaction encodings.
func (c *Chain) Mempool() [][]byte { return c.mempool }

// MinerAddress returns the address mining rewards are paid to.
func (c *Chain) MinerAddress() string { return c.minerAddress }

func (c *Chain) lastBlock() *block.Block {
	return c.blocks[len(c.blocks)-1]
}

// AddTransaction runs the admission checks of spec §4.5, in order:
//
//  1. reject if signed.Sender == miner address (ErrSelfPayment);
//  2. unless sender is MiningSender, verify the signature
//     (ErrInvalidSignature) and check the scanned balance
//     (ErrInsufficientBalance);
//  3. encode as a LedgerTransaction;
//  4. reject exact byte-duplicates already in the mempool
//     (ErrDuplicateTransaction);
//  5. append to the mempool.
//
// Mining-reward transactions bypass the signature/balance checks but
// still go through encoding, dedup and append.
func (c *Chain) AddTransaction(signed txn.SignedTransaction) (bool, error) {
	if signed.Sender == c.minerAddress {
		return false, ErrSelfPayment
	}

	if signed.Sender != MiningSender {
		if !wallet.Verify(signed) {
			return false, ErrInvalidSignature
		}
		balance, err := c.Balance(signed.Sender)
		if err != nil {
			return false, err
		}
		if balance < int64(signed.Amount) {
			return false, ErrInsufficientBalance
		}
	}

	ledger := txn.NewLedgerTransaction(signed.Sender, signed.Recipient, float64(signed.Amount))
	encoded := ledger.Serialize()

	for _, existing := range c.mempool {
		if string(existing) == string(encoded) {
			return false, ErrDuplicateTransaction
		}
	}

	c.mempool = append(c.mempool, encoded)
	return true, nil
}

// Mine drains the mempool into a new block after first admitting the
// miner-reward transaction, then runs proof-of-work and appends the
// block. The mempool is empty immediately after Mine returns.
func (c *Chain) Mine() bool {
	started := time.Now()

	reward := txn.SignedTransaction{
		Sender:    MiningSender,
		Recipient: c.minerAddress,
		Amount:    MiningReward,
	}
	// Always admitted: self-payment/signature/balance checks never
	// apply to sender==MiningSender, and MiningSender != minerAddress
	// in any real deployment.
	if _, err := c.AddTransaction(reward); err != nil {
		return false
	}

	prevHash := c.lastBlock().Hash()
	b := block.New(0, prevHash[:], c.now)
	for _, encoded := range c.mempool {
		b.AddTransaction(encoded)
	}
	c.mempool = c.mempool[:0]

	iterations := c.proofOfWork(b)

	c.blocks = append(c.blocks, b)

	if c.observer != nil {
		c.observer(len(c.blocks), len(c.mempool), iterations, time.Since(started))
	}
	return true
}

// proofOfWork repeatedly increments b's nonce until the hex encoding of
// its hash begins with c.difficulty zero characters, per spec §4.5 —
// the comparison is on hex characters, not bits.
func (c *Chain) proofOfWork(b *block.Block) int {
	zeros := strings.Repeat("0", c.difficulty)
	iterations := 0
	for {
		h := b.Hash()
		if strings.HasPrefix(hashutil.HexEncode(h[:]), zeros) {
			return iterations
		}
		b.IncrementNonce()
		iterations++
	}
}

// Balance scans every block and transaction, crediting recipients and
// debiting senders by the floor of the ledger value. A codec error
// while decoding a stored transaction indicates chain corruption, not
// bad input (spec §7), and is returned rather than silently absorbed.
func (c *Chain) Balance(address string) (int64, error) {
	var total int64
	addrBytes := []byte(address)

	for _, b := range c.blocks {
		for _, encoded := range b.Transactions() {
			t, err := txn.DeserializeLedgerTransaction(encoded)
			if err != nil {
				return 0, fmt.Errorf("chain: corrupt ledger transaction during balance scan: %w", err)
			}
			if string(t.RecipientAddress) == string(addrBytes) {
				total += int64(t.Value)
			}
			if string(t.SenderAddress) == string(addrBytes) {
				total -= int64(t.Value)
			}
		}
	}
	return total, nil
}
