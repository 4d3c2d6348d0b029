package httpapi

import (
	"github.com/everestp/blockchain/internal/block"
	"github.com/everestp/blockchain/internal/hashutil"
	"github.com/everestp/blockchain/internal/txn"
)

// blockResponse is the serializable view of a block returned by
// get-block-by-index, per spec §6.
type blockResponse struct {
	Nonce        int32           `json:"nonce"`
	PreviousHash string          `json:"previous_hash"`
	TimestampNS  uint64          `json:"time_stamps"`
	Hash         string          `json:"hash"`
	Transactions []ledgerTxnView `json:"transactions"`
}

type ledgerTxnView struct {
	Sender    string  `json:"sender_address"`
	Recipient string  `json:"recipient_address"`
	Value     float64 `json:"value"`
}

func blockView(b *block.Block) blockResponse {
	h := b.Hash()
	view := blockResponse{
		Nonce:        b.Nonce(),
		PreviousHash: hashutil.HexEncode(b.PreviousHash()),
		TimestampNS:  b.TimestampNS(),
		Hash:         hashutil.HexEncode(h[:]),
	}
	for _, encoded := range b.Transactions() {
		t, err := txn.DeserializeLedgerTransaction(encoded)
		if err != nil {
			continue
		}
		view.Transactions = append(view.Transactions, ledgerTxnView{
			Sender:    string(t.SenderAddress),
			Recipient: string(t.RecipientAddress),
			Value:     t.Value,
		})
	}
	return view
}
