package entity

import "time"

// SupplyRequest is an ATK request created from a parsed chat command.
type SupplyRequest struct {
	ID        string
	Sender    string // messaging-channel identity of the requester
	Purpose   string
	Items     []SupplyRequestItem
	CreatedAt time.Time
}

// SupplyRequestItem is one requested line. ItemID is empty when the requested
// name could not be resolved against the catalog.
type SupplyRequestItem struct {
	ID            string
	RequestID     string
	ItemID        string // resolved catalog item, or "" if unmatched
	RequestedName string // name exactly as typed by the requester
	Quantity      int
	Unit          string
}
