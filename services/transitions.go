package services

import "food-webhook/models"

// allowedTransitions is the explicit status machine. An order leaves pending
// exactly once; confirmed and canceled are terminal and accept nothing.
var allowedTransitions = map[string]map[string]bool{
	models.OrderStatusPending: {
		models.OrderStatusConfirmed: true,
		models.OrderStatusCanceled:  true,
	},
}

// ValidStatusTransition reports whether an order may move from one status to
// another.
func ValidStatusTransition(from, to string) bool {
	return allowedTransitions[from][to]
}

// OrderMutable reports whether items may still be added to or removed from
// an order in the given status.
func OrderMutable(status string) bool {
	return status == models.OrderStatusPending
}
