package model

// TicketStatus describes the current state of a ticket in the registry.
type TicketStatus string

const (
	// TicketValid marks a ticket that can still be transferred or redeemed.
	TicketValid TicketStatus = "valid"
	// TicketRedeemed marks a ticket that reached its terminal state.
	TicketRedeemed TicketStatus = "redeemed"
)

// Ticket is the registry's current-state projection of a ticket. The chain
// stores the event history; a Ticket is derived from it and kept in sync on
// every accepted transaction. Event is set at issue and never changes.
type Ticket struct {
	Owner  string
	Status TicketStatus
	Event  string
}
