package chain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/goodnatureofminers/ticketchain7000-backend/internal/ticket/model"
)

// canonicalPayload renders block fields as nested maps so that encoding/json
// emits object keys in lexicographic order at every level. The resulting byte
// sequence, and therefore the digest, depends only on the logical field
// values, never on in-memory layout or construction order.
func canonicalPayload(index uint64, txs []model.Transaction, timestamp int64, prevHash string, nonce uint64) map[string]any {
	records := make([]map[string]any, 0, len(txs))
	for _, tx := range txs {
		records = append(records, map[string]any{
			"kind":      string(tx.Kind),
			"ticket_id": tx.TicketID,
			"owner":     tx.Owner,
			"event":     tx.Event,
			"new_owner": tx.NewOwner,
			"timestamp": tx.Timestamp,
		})
	}
	return map[string]any{
		"index":         index,
		"transactions":  records,
		"timestamp":     timestamp,
		"previous_hash": prevHash,
		"nonce":         nonce,
	}
}

// digest hashes the canonical payload with SHA-256 and renders it as
// lowercase hex.
func digest(payload map[string]any) string {
	// Marshalling maps of strings and integers cannot fail.
	data, _ := json.Marshal(payload)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// BlockHash recomputes the content hash of a mined block from its stored
// fields, ignoring the stored hash itself.
func BlockHash(b model.Block) string {
	return digest(canonicalPayload(b.Index, b.Transactions, b.Timestamp, b.PrevHash, b.Nonce))
}
