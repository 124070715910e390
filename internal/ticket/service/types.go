package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/ticketchain7000-backend/internal/ticket/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records ledger operation outcomes and gauge state.
	Metrics interface {
		ObserveIssue(started time.Time)
		ObserveTransfer(ok bool, started time.Time)
		ObserveRedeem(ok bool, started time.Time)
		ObserveMine(err error, transactions int, started time.Time)
		SetChainHeight(length int)
		SetPendingSize(size int)
	}

	// MiningLedger is the slice of the ledger the auto-miner drives.
	MiningLedger interface {
		PendingCount() int
		Mine(ctx context.Context) (model.Block, error)
	}
)
