package entity

import "time"

// MovementDirection distinguishes stock inflow from consumption.
type MovementDirection string

const (
	DirectionIn  MovementDirection = "in"
	DirectionOut MovementDirection = "out"
)

// UsageRecord is a historical stock movement entry. Read-only input for the
// restock forecaster; only "out" records count as consumption.
type UsageRecord struct {
	ID         string
	ItemID     string
	Quantity   int // always positive; Direction carries the sign
	Direction  MovementDirection
	OccurredAt time.Time
}
