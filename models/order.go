package models

import "time"

// OrderLine is one (item, quantity) entry within an order. Item keeps the
// display casing it was first entered with; matching elsewhere is
// case-insensitive. Qty is never persisted as zero: a line that reaches zero
// is dropped from the order.
type OrderLine struct {
	Item string `json:"item"`
	Qty  int    `json:"qty"`
}

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCanceled  = "canceled"
)

// Order is a row from the orders table. Lines keeps insertion order and is
// stored as a JSONB document. Version backs conditional updates: every write
// is keyed on the version that was read, so concurrent mutations of the same
// order cannot silently overwrite each other.
type Order struct {
	ID         string
	Lines      []OrderLine
	ItemsTotal int64
	Status     string
	Version    int64
	CreatedAt  time.Time
}
