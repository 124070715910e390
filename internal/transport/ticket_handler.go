package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/ticketchain7000-backend/internal/ticket/model"
	"github.com/goodnatureofminers/ticketchain7000-backend/internal/ticket/service"
)

// TicketHandler serves the JSON API over the ticket ledger.
type TicketHandler struct {
	logger *zap.Logger
	ledger TicketLedger
}

// NewTicketHandler returns a TicketHandler instance.
func NewTicketHandler(ledger TicketLedger, logger *zap.Logger) (*TicketHandler, error) {
	if ledger == nil {
		return nil, errors.New("ticket handler ledger is required")
	}
	return &TicketHandler{
		logger: logger.Named("http"),
		ledger: ledger,
	}, nil
}

// Register installs the ledger routes on the mux.
func (h *TicketHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /issue", h.issue)
	mux.HandleFunc("POST /transfer", h.transfer)
	mux.HandleFunc("POST /redeem", h.redeem)
	mux.HandleFunc("POST /mine", h.mine)
	mux.HandleFunc("GET /verify/{ticketID}", h.verify)
	mux.HandleFunc("GET /chain", h.chain)
	mux.HandleFunc("GET /chain/validate", h.validate)
	mux.HandleFunc("GET /block/{index}", h.block)
}

type transactionResponse struct {
	Kind      string `json:"kind"`
	TicketID  string `json:"ticket_id"`
	Owner     string `json:"owner"`
	Event     string `json:"event,omitempty"`
	NewOwner  string `json:"new_owner,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

type blockResponse struct {
	Index        uint64                `json:"index"`
	Transactions []transactionResponse `json:"transactions"`
	Timestamp    int64                 `json:"timestamp"`
	PreviousHash string                `json:"previous_hash"`
	Nonce        uint64                `json:"nonce"`
	Hash         string                `json:"hash"`
}

type ticketResponse struct {
	Owner  string `json:"owner"`
	Status string `json:"status"`
	Event  string `json:"event"`
}

func (h *TicketHandler) issue(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Owner string `json:"owner"`
		Event string `json:"event"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Owner == "" || req.Event == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "owner and event are required"})
		return
	}

	ticketID := h.ledger.Issue(req.Owner, req.Event)
	h.writeJSON(w, http.StatusCreated, map[string]string{"ticket_id": ticketID})
}

func (h *TicketHandler) transfer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TicketID string `json:"ticket_id"`
		NewOwner string `json:"new_owner"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.TicketID == "" || req.NewOwner == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "ticket_id and new_owner are required"})
		return
	}

	ok := h.ledger.Transfer(req.TicketID, req.NewOwner)
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": ok})
}

func (h *TicketHandler) redeem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TicketID string `json:"ticket_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.TicketID == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "ticket_id is required"})
		return
	}

	ok := h.ledger.Redeem(req.TicketID)
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": ok})
}

func (h *TicketHandler) verify(w http.ResponseWriter, r *http.Request) {
	ticketID := r.PathValue("ticketID")

	ticket, ok := h.ledger.Verify(ticketID)
	if !ok {
		h.writeJSON(w, http.StatusNotFound, map[string]any{
			"valid":   false,
			"message": "ticket not found",
		})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"valid": ticket.Status == model.TicketValid,
		"ticket": ticketResponse{
			Owner:  ticket.Owner,
			Status: string(ticket.Status),
			Event:  ticket.Event,
		},
	})
}

func (h *TicketHandler) mine(w http.ResponseWriter, r *http.Request) {
	block, err := h.ledger.Mine(r.Context())
	switch {
	case errors.Is(err, service.ErrNoPendingTransactions):
		h.writeJSON(w, http.StatusOK, map[string]string{"message": "no transactions to mine"})
	case errors.Is(err, service.ErrChainCorrupted):
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	case err != nil:
		h.logger.Error("mine request failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "mining failed"})
	default:
		h.writeJSON(w, http.StatusOK, map[string]any{
			"index":        block.Index,
			"transactions": toTransactionResponses(block.Transactions),
			"hash":         block.Hash,
		})
	}
}

func (h *TicketHandler) chain(w http.ResponseWriter, _ *http.Request) {
	blocks := h.ledger.Blocks()
	out := make([]blockResponse, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, toBlockResponse(b))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *TicketHandler) validate(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.ValidateChain(r.Context()); err != nil {
		h.writeJSON(w, http.StatusOK, map[string]any{"valid": false, "error": err.Error()})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"valid": true})
}

func (h *TicketHandler) block(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.ParseUint(r.PathValue("index"), 10, 64)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid block index"})
		return
	}

	b, ok := h.ledger.Block(index)
	if !ok {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "block not found"})
		return
	}
	h.writeJSON(w, http.StatusOK, toBlockResponse(b))
}

func (h *TicketHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func toTransactionResponses(txs []model.Transaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, transactionResponse{
			Kind:      string(tx.Kind),
			TicketID:  tx.TicketID,
			Owner:     tx.Owner,
			Event:     tx.Event,
			NewOwner:  tx.NewOwner,
			Timestamp: tx.Timestamp,
		})
	}
	return out
}

func toBlockResponse(b model.Block) blockResponse {
	return blockResponse{
		Index:        b.Index,
		Transactions: toTransactionResponses(b.Transactions),
		Timestamp:    b.Timestamp,
		PreviousHash: b.PrevHash,
		Nonce:        b.Nonce,
		Hash:         b.Hash,
	}
}
