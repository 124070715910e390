// Package service composes the ticket ledger: the pending transaction pool,
// the ticket registry, and the block chain, behind one mutex-owned facade.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/ticketchain7000-backend/internal/ticket/chain"
	"github.com/goodnatureofminers/ticketchain7000-backend/internal/ticket/model"
	"github.com/goodnatureofminers/ticketchain7000-backend/pkg/safe"
)

var (
	// ErrNoPendingTransactions signals that Mine was called with an empty
	// pool. It is a no-op signal, not a failure: the chain is untouched.
	ErrNoPendingTransactions = errors.New("no pending transactions to mine")

	// ErrChainCorrupted signals that validation found a hash or linkage
	// mismatch. Once raised, the ledger refuses to mine further blocks.
	ErrChainCorrupted = errors.New("ticket chain is corrupted")
)

// minedBuffer bounds the mined-block notification channel. Sends are
// non-blocking, so a slow or absent consumer never stalls mining.
const minedBuffer = 16

// Ledger owns the shared pending-pool/registry/chain triple. All mutating
// operations serialize through one mutex, so registry mutation and the
// matching pending-pool append happen as a single step, and mining can never
// interleave with a concurrent submission. Multiple independent ledgers can
// coexist; there is no package-level state.
type Ledger struct {
	logger  *zap.Logger
	metrics Metrics

	mu        sync.Mutex
	chain     *chain.Chain
	pending   []model.Transaction
	tickets   map[string]model.Ticket
	corrupted bool

	newTicketID func() string
	mined       chan model.Block
}

// NewLedger builds a ledger with a freshly created genesis block.
func NewLedger(difficulty int, logger *zap.Logger, metrics Metrics) (*Ledger, error) {
	if metrics == nil {
		return nil, errors.New("ledger metrics is required")
	}
	if difficulty < 0 {
		return nil, fmt.Errorf("difficulty %d is negative", difficulty)
	}

	l := &Ledger{
		logger:      logger.Named("ledger"),
		metrics:     metrics,
		chain:       chain.New(difficulty),
		tickets:     make(map[string]model.Ticket),
		newTicketID: uuid.NewString,
		mined:       make(chan model.Block, minedBuffer),
	}
	metrics.SetChainHeight(l.chain.Length())
	metrics.SetPendingSize(0)
	return l, nil
}

// Issue creates a ticket for the owner and event, records the issue
// transaction in the pending pool, and returns the new ticket identifier.
// Issue has no preconditions beyond its inputs and always succeeds.
func (l *Ledger) Issue(owner, event string) string {
	started := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	ticketID := l.newTicketID()
	l.tickets[ticketID] = model.Ticket{Owner: owner, Status: model.TicketValid, Event: event}
	l.pending = append(l.pending, model.NewIssueTransaction(ticketID, owner, event))

	l.metrics.ObserveIssue(started)
	l.metrics.SetPendingSize(len(l.pending))
	l.logger.Info("ticket issued",
		zap.String("ticketID", ticketID),
		zap.String("owner", owner),
		zap.String("event", event),
	)
	return ticketID
}

// Transfer moves a valid ticket to a new owner. Returns false, mutating
// nothing, if the ticket does not exist or is not valid.
func (l *Ledger) Transfer(ticketID, newOwner string) bool {
	started := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	ticket, ok := l.tickets[ticketID]
	if !ok || ticket.Status != model.TicketValid {
		l.metrics.ObserveTransfer(false, started)
		l.logger.Warn("transfer rejected", zap.String("ticketID", ticketID))
		return false
	}

	previousOwner := ticket.Owner
	ticket.Owner = newOwner
	l.tickets[ticketID] = ticket
	l.pending = append(l.pending, model.NewTransferTransaction(ticketID, previousOwner, newOwner))

	l.metrics.ObserveTransfer(true, started)
	l.metrics.SetPendingSize(len(l.pending))
	l.logger.Info("ticket transferred",
		zap.String("ticketID", ticketID),
		zap.String("from", previousOwner),
		zap.String("to", newOwner),
	)
	return true
}

// Redeem moves a valid ticket to its terminal redeemed state. Returns false,
// mutating nothing, if the ticket does not exist or is not valid.
func (l *Ledger) Redeem(ticketID string) bool {
	started := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	ticket, ok := l.tickets[ticketID]
	if !ok || ticket.Status != model.TicketValid {
		l.metrics.ObserveRedeem(false, started)
		l.logger.Warn("redeem rejected", zap.String("ticketID", ticketID))
		return false
	}

	ticket.Status = model.TicketRedeemed
	l.tickets[ticketID] = ticket
	l.pending = append(l.pending, model.NewRedeemTransaction(ticketID, ticket.Owner))

	l.metrics.ObserveRedeem(true, started)
	l.metrics.SetPendingSize(len(l.pending))
	l.logger.Info("ticket redeemed", zap.String("ticketID", ticketID), zap.String("owner", ticket.Owner))
	return true
}

// Verify returns the registry entry for the ticket, if any. Read-only: it
// never touches the pending pool or the chain.
func (l *Ledger) Verify(ticketID string) (model.Ticket, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ticket, ok := l.tickets[ticketID]
	return ticket, ok
}

// Mine packages the pending pool into a new block, runs the proof-of-work
// search, and appends the result to the chain, clearing the pool. Returns
// ErrNoPendingTransactions when there is nothing to mine and
// ErrChainCorrupted once corruption has been detected. The lock is held for
// the whole search, so a block is either fully mined and appended or not
// appended at all.
func (l *Ledger) Mine(ctx context.Context) (model.Block, error) {
	started := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.corrupted {
		l.metrics.ObserveMine(ErrChainCorrupted, 0, started)
		return model.Block{}, ErrChainCorrupted
	}
	if len(l.pending) == 0 {
		return model.Block{}, ErrNoPendingTransactions
	}

	index, err := safe.Uint64(l.chain.Length())
	if err != nil {
		return model.Block{}, fmt.Errorf("next block index: %w", err)
	}
	draft := chain.NewDraft(index, l.pending, l.chain.Head().Hash)
	hash, err := chain.Mine(ctx, &draft, l.chain.Difficulty())
	if err != nil {
		l.metrics.ObserveMine(err, len(l.pending), started)
		return model.Block{}, fmt.Errorf("proof of work: %w", err)
	}

	block := draft.Seal(hash)
	if err := l.chain.Append(block); err != nil {
		l.corrupted = true
		l.metrics.ObserveMine(err, len(l.pending), started)
		l.logger.Error("mined block rejected by chain", zap.Error(err))
		return model.Block{}, fmt.Errorf("%w: %v", ErrChainCorrupted, err)
	}
	l.pending = nil

	l.metrics.ObserveMine(nil, len(block.Transactions), started)
	l.metrics.SetChainHeight(l.chain.Length())
	l.metrics.SetPendingSize(0)
	l.logger.Info("block mined",
		zap.Uint64("index", block.Index),
		zap.String("hash", block.Hash),
		zap.Uint64("nonce", block.Nonce),
		zap.Int("transactions", len(block.Transactions)),
	)

	select {
	case l.mined <- block:
	default:
	}
	return block, nil
}

// ValidateChain checks the whole chain for hash and linkage mismatches. A
// mismatch marks the ledger corrupted, permanently disabling Mine. Context
// cancellation aborts validation without drawing any conclusion.
func (l *Ledger) ValidateChain(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.chain.Validate(ctx)
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	l.corrupted = true
	l.logger.Error("chain validation failed, halting mining", zap.Error(err))
	return fmt.Errorf("%w: %v", ErrChainCorrupted, err)
}

// Blocks returns a copy of the full chain in order, genesis first.
func (l *Ledger) Blocks() []model.Block {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.chain.Blocks()
}

// Block returns the block at the given index, if present.
func (l *Ledger) Block(index uint64) (model.Block, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.chain.Block(index)
}

// PendingCount returns the number of transactions awaiting mining.
func (l *Ledger) PendingCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.pending)
}

// Mined exposes a stream of newly mined blocks. Blocks are dropped rather
// than buffered indefinitely when the consumer falls behind.
func (l *Ledger) Mined() <-chan model.Block {
	return l.mined
}
