// Package chain implements the hash-linked block chain of the ticket ledger:
// canonical block hashing, the proof-of-work miner, and the append and
// validation rules.
package chain

import (
	"time"

	"github.com/goodnatureofminers/ticketchain7000-backend/internal/ticket/model"
)

// Draft is a block under construction. The miner mutates Nonce until the
// computed hash satisfies the difficulty predicate; Seal then freezes the
// result into an immutable model.Block. A Draft must never be appended to the
// chain directly.
type Draft struct {
	Index        uint64
	Transactions []model.Transaction
	Timestamp    int64
	PrevHash     string
	Nonce        uint64
}

// NewDraft builds a draft with nonce zero, stamped with the current time.
func NewDraft(index uint64, txs []model.Transaction, prevHash string) Draft {
	return Draft{
		Index:        index,
		Transactions: txs,
		Timestamp:    time.Now().UnixNano(),
		PrevHash:     prevHash,
	}
}

// ComputeHash returns the canonical SHA-256 digest of the draft's current
// field values as lowercase hex. It is pure: identical field values always
// produce the identical digest.
func (d Draft) ComputeHash() string {
	return digest(canonicalPayload(d.Index, d.Transactions, d.Timestamp, d.PrevHash, d.Nonce))
}

// Seal freezes the draft into a block carrying the given hash. The
// transaction slice is copied so later pool mutations cannot reach into the
// sealed block.
func (d Draft) Seal(hash string) model.Block {
	txs := make([]model.Transaction, len(d.Transactions))
	copy(txs, d.Transactions)
	return model.Block{
		Index:        d.Index,
		Transactions: txs,
		Timestamp:    d.Timestamp,
		PrevHash:     d.PrevHash,
		Nonce:        d.Nonce,
		Hash:         hash,
	}
}
