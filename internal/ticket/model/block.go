package model

// Block is a mined, frozen block of the ticket chain. Hash is assigned
// exactly once, after the proof-of-work search succeeds; until then the block
// only exists as a chain.Draft. Transactions are stored in submission order,
// which is also replay order.
type Block struct {
	Index        uint64
	Transactions []Transaction
	Timestamp    int64
	PrevHash     string
	Nonce        uint64
	Hash         string
}
