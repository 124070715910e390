// Package transport exposes the ticket ledger over HTTP/JSON and a
// websocket block stream.
package transport

import (
	"context"

	"github.com/goodnatureofminers/ticketchain7000-backend/internal/ticket/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// TicketLedger is the ledger surface the HTTP handlers consume.
	TicketLedger interface {
		Issue(owner, event string) string
		Transfer(ticketID, newOwner string) bool
		Redeem(ticketID string) bool
		Verify(ticketID string) (model.Ticket, bool)
		Mine(ctx context.Context) (model.Block, error)
		Blocks() []model.Block
		Block(index uint64) (model.Block, bool)
		ValidateChain(ctx context.Context) error
	}
)
