package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/everestp/blockchain/internal/chain"
	"github.com/everestp/blockchain/internal/wallet"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// handleGenesisBlock serves GET / with the JSON of the block at index
// 0, the historical behavior spec §6 calls out explicitly.
func (s *Server) handleGenesisBlock(w http.ResponseWriter, r *http.Request) {
	b, err := s.node.BlockAt(0)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, blockView(b))
}

type walletResponse struct {
	PublicKey         string `json:"public_key"`
	PrivateKey        string `json:"private_key"`
	BlockchainAddress string `json:"blockchain_address"`
}

// handleGetWallet serves GET /get-wallet (and /wallet, see server.go).
func (s *Server) handleGetWallet(w http.ResponseWriter, r *http.Request) {
	wal, err := s.node.NewWallet()
	if err != nil {
		// Key generation only fails without entropy, which is fatal.
		s.log.WithError(err).Fatal("wallet generation failed")
		return
	}
	writeJSON(w, http.StatusOK, walletResponse{
		PublicKey:         wal.PublicKeyStr(),
		PrivateKey:        wal.PrivateKeyStr(),
		BlockchainAddress: wal.Address(),
	})
}

type amountResponse struct {
	Amount int64 `json:"amount"`
}

// handleAmount serves GET /amount/{address}.
func (s *Server) handleAmount(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")
	balance, err := s.node.Balance(address)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, amountResponse{Amount: balance})
}

// transactionRequest is the body spec §6 documents for POST
// /transaction: the caller's raw key material plus the transfer it
// wants signed, not a pre-signed envelope.
type transactionRequest struct {
	PrivateKey        string `json:"private_key"`
	PublicKey         string `json:"public_key"`
	BlockchainAddress string `json:"blockchain_address"`
	RecipientAddress  string `json:"recipient_address"`
	Amount            uint64 `json:"amount"`
}

// Validate reports whether every field CreateTransaction needs is
// present, in the teacher's TransactionRequest.Validate() style.
func (tr *transactionRequest) Validate() bool {
	return tr.PrivateKey != "" &&
		tr.PublicKey != "" &&
		tr.BlockchainAddress != "" &&
		tr.RecipientAddress != ""
}

type transactionResponse struct {
	OK bool `json:"ok"`
}

// handleCreateTransaction serves POST /transaction. Per spec §6 the
// server reconstructs a SignedTransaction from the request fields: it
// rebuilds the caller's signing key from private_key/public_key
// (wallet.FromKeys), signs recipient_address/amount itself — exactly
// as the teacher's wallet_server.CreateTransaction does before handing
// the result to the chain — and submits the result to the core façade.
func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, transactionResponse{OK: false})
		return
	}
	if !req.Validate() {
		writeJSON(w, http.StatusBadRequest, transactionResponse{OK: false})
		return
	}

	signer, err := wallet.FromKeys(req.PrivateKey, req.PublicKey)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, transactionResponse{OK: false})
		return
	}

	signed, err := signer.Sign(req.RecipientAddress, req.Amount)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, transactionResponse{OK: false})
		return
	}

	ok, err := s.node.SubmitSignedTransaction(signed)
	status := http.StatusCreated
	if !ok {
		status = statusForError(err)
	}
	writeJSON(w, status, transactionResponse{OK: ok})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, chain.ErrInvalidSignature), errors.Is(err, chain.ErrSelfPayment):
		return http.StatusUnauthorized
	case errors.Is(err, chain.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, chain.ErrDuplicateTransaction):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
