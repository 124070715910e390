package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/ticketchain7000-backend/internal/clock"
)

// AutoMiner seals pending transactions into blocks without an explicit mine
// request: it mines as soon as the pool reaches the size threshold, and
// otherwise flushes whatever is pending once per interval. Mining throughput
// is capped by a rate limiter so a burst of submissions cannot monopolize the
// ledger lock with back-to-back proof-of-work searches.
type AutoMiner struct {
	logger    *zap.Logger
	ledger    MiningLedger
	sleep     func(context.Context, time.Duration) error
	interval  time.Duration
	threshold int
	rl        ratelimit.Limiter
}

// NewAutoMiner builds an AutoMiner with dependencies.
func NewAutoMiner(
	ledger MiningLedger,
	interval time.Duration,
	threshold int,
	maxMinesPerSecond int,
	logger *zap.Logger,
) (*AutoMiner, error) {
	if ledger == nil {
		return nil, errors.New("auto-miner ledger is required")
	}
	if interval <= 0 {
		return nil, errors.New("auto-miner interval must be positive")
	}
	if threshold < 1 {
		threshold = 1
	}
	if maxMinesPerSecond < 1 {
		maxMinesPerSecond = 1
	}

	return &AutoMiner{
		logger:    logger.Named("autominer"),
		ledger:    ledger,
		sleep:     clock.SleepWithContext,
		interval:  interval,
		threshold: threshold,
		rl:        ratelimit.New(maxMinesPerSecond),
	}, nil
}

// Run mines in a loop until the context is canceled or the chain is found
// corrupted.
func (a *AutoMiner) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if a.ledger.PendingCount() < a.threshold {
			if err := a.sleep(ctx, a.interval); err != nil {
				return err
			}
		}
		if err := a.mineOnce(ctx); err != nil {
			return err
		}
	}
}

func (a *AutoMiner) mineOnce(ctx context.Context) error {
	if a.ledger.PendingCount() == 0 {
		a.logger.Debug("nothing to mine")
		return nil
	}

	a.rl.Take()
	block, err := a.ledger.Mine(ctx)
	switch {
	case err == nil:
		a.logger.Info("auto-mined block",
			zap.Uint64("index", block.Index),
			zap.String("hash", block.Hash),
			zap.Int("transactions", len(block.Transactions)),
		)
		return nil
	case errors.Is(err, ErrNoPendingTransactions):
		// The pool was drained between the count check and the mine call.
		return nil
	case errors.Is(err, ErrChainCorrupted):
		return err
	case ctx.Err() != nil:
		return ctx.Err()
	default:
		a.logger.Warn("auto-mine failed", zap.Error(err))
		return nil
	}
}
