package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/ticketchain7000-backend/internal/ticket/model"
	"github.com/goodnatureofminers/ticketchain7000-backend/pkg/safe"
	"github.com/goodnatureofminers/ticketchain7000-backend/pkg/workerpool"
)

// GenesisPrevHash is the sentinel previous hash carried by the genesis block.
const GenesisPrevHash = "0"

// validateWorkers is the worker count for parallel hash recomputation during
// full-chain validation.
const validateWorkers = 4

// Chain is the append-only, ordered sequence of mined blocks. Index 0 is the
// genesis block; indices are contiguous. Blocks are never removed or mutated
// after being added. Chain is not safe for concurrent use; the ledger service
// serializes access to it.
type Chain struct {
	blocks     []model.Block
	difficulty int
}

// New creates a chain holding only the genesis block. Genesis carries no
// transactions and is exempt from proof-of-work; it is hashed once for
// linkage purposes.
func New(difficulty int) *Chain {
	genesis := NewDraft(0, nil, GenesisPrevHash)
	return &Chain{
		blocks:     []model.Block{genesis.Seal(genesis.ComputeHash())},
		difficulty: difficulty,
	}
}

// Difficulty returns the leading-zero requirement active for this chain.
func (c *Chain) Difficulty() int {
	return c.difficulty
}

// Length returns the number of blocks, genesis included.
func (c *Chain) Length() int {
	return len(c.blocks)
}

// Head returns the most recently appended block.
func (c *Chain) Head() model.Block {
	return c.blocks[len(c.blocks)-1]
}

// Block returns the block at the given index, if present.
func (c *Chain) Block(index uint64) (model.Block, bool) {
	i, err := safe.Int(index)
	if err != nil || i >= len(c.blocks) {
		return model.Block{}, false
	}
	return c.blocks[i], true
}

// Blocks returns a copy of the whole sequence in order.
func (c *Chain) Blocks() []model.Block {
	out := make([]model.Block, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// Append adds a fully mined block after checking it against the head: the
// index must be contiguous, the previous hash must match the head's hash, and
// the stored hash must both meet the difficulty predicate and equal the
// block's recomputed content hash.
func (c *Chain) Append(b model.Block) error {
	head := c.Head()
	if b.Index != head.Index+1 {
		return fmt.Errorf("block index %d does not follow head index %d", b.Index, head.Index)
	}
	if b.PrevHash != head.Hash {
		return fmt.Errorf("block %d previous hash %s does not match head hash %s", b.Index, b.PrevHash, head.Hash)
	}
	if !SatisfiesDifficulty(b.Hash, c.difficulty) {
		return fmt.Errorf("block %d hash %s does not meet difficulty %d", b.Index, b.Hash, c.difficulty)
	}
	if got := BlockHash(b); got != b.Hash {
		return fmt.Errorf("block %d stored hash %s does not match content hash %s", b.Index, b.Hash, got)
	}
	c.blocks = append(c.blocks, b)
	return nil
}

// Validate recomputes every block's hash from its stored fields and checks
// index contiguity, previous-hash linkage, and the difficulty predicate
// across the whole sequence. Any mismatch means the ledger can no longer be
// trusted. Hash recomputation runs on a worker pool since it dominates the
// cost on long chains.
func (c *Chain) Validate(ctx context.Context) error {
	if len(c.blocks) == 0 {
		return errors.New("chain is empty")
	}
	if c.blocks[0].PrevHash != GenesisPrevHash {
		return fmt.Errorf("genesis previous hash %s, want %s", c.blocks[0].PrevHash, GenesisPrevHash)
	}
	if c.blocks[0].Index != 0 {
		return fmt.Errorf("genesis index %d, want 0", c.blocks[0].Index)
	}

	for i := 1; i < len(c.blocks); i++ {
		current, previous := c.blocks[i], c.blocks[i-1]
		if current.Index != previous.Index+1 {
			return fmt.Errorf("block %d: index %d does not follow %d", i, current.Index, previous.Index)
		}
		if current.PrevHash != previous.Hash {
			return fmt.Errorf("block %d: previous hash %s does not match block %d hash %s", i, current.PrevHash, i-1, previous.Hash)
		}
		if !SatisfiesDifficulty(current.Hash, c.difficulty) {
			return fmt.Errorf("block %d: hash %s does not meet difficulty %d", i, current.Hash, c.difficulty)
		}
	}

	blocks := c.blocks
	indexes := make([]int, len(blocks))
	for i := range indexes {
		indexes[i] = i
	}
	return workerpool.Process(ctx, validateWorkers, indexes, func(_ context.Context, i int) error {
		if got := BlockHash(blocks[i]); got != blocks[i].Hash {
			return fmt.Errorf("block %d: stored hash %s does not match content hash %s", i, blocks[i].Hash, got)
		}
		return nil
	})
}
