// Package model defines domain models for the ticket ledger.
package model

import "time"

// TxKind identifies which lifecycle event a transaction records.
type TxKind string

const (
	// TxIssue records the creation of a ticket for an owner and event.
	TxIssue TxKind = "issue"
	// TxTransfer records a change of ownership of a valid ticket.
	TxTransfer TxKind = "transfer"
	// TxRedeem records the terminal redemption of a valid ticket.
	TxRedeem TxKind = "redeem"
)

// Transaction is an immutable record of one ticket lifecycle event.
// Event is populated only for issue records and NewOwner only for transfer
// records; the kind-specific constructors below enforce the shape. Owner
// always holds the ticket owner at the time the record was created.
type Transaction struct {
	Kind      TxKind
	TicketID  string
	Owner     string
	Event     string
	NewOwner  string
	Timestamp int64
}

// NewIssueTransaction builds an issue record stamped with the current time.
func NewIssueTransaction(ticketID, owner, event string) Transaction {
	return Transaction{
		Kind:      TxIssue,
		TicketID:  ticketID,
		Owner:     owner,
		Event:     event,
		Timestamp: time.Now().UnixNano(),
	}
}

// NewTransferTransaction builds a transfer record. Owner is the holder before
// the transfer, newOwner the destination.
func NewTransferTransaction(ticketID, owner, newOwner string) Transaction {
	return Transaction{
		Kind:      TxTransfer,
		TicketID:  ticketID,
		Owner:     owner,
		NewOwner:  newOwner,
		Timestamp: time.Now().UnixNano(),
	}
}

// NewRedeemTransaction builds a redeem record for the ticket's final owner.
func NewRedeemTransaction(ticketID, owner string) Transaction {
	return Transaction{
		Kind:      TxRedeem,
		TicketID:  ticketID,
		Owner:     owner,
		Timestamp: time.Now().UnixNano(),
	}
}
