package services

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrMissingOrderID  = errors.New("order identifier missing")
	ErrVersionConflict = errors.New("order modified concurrently")
)

// ItemNotAvailableError means a requested name has no menu catalog entry.
// It aborts the whole enclosing mutation; no partial changes are applied.
type ItemNotAvailableError struct {
	Name string
}

func (e *ItemNotAvailableError) Error() string {
	return fmt.Sprintf("item not available: %s", e.Name)
}

// ItemNotInOrderError means a removal named an item the order has no line for.
type ItemNotInOrderError struct {
	Name string
}

func (e *ItemNotInOrderError) Error() string {
	return fmt.Sprintf("item not in order: %s", e.Name)
}

// InsufficientQuantityError means a removal asked for more than the line
// holds. The order is left completely unchanged: no clamping, no partial
// decrement.
type InsufficientQuantityError struct {
	Name string
	Have int
	Want int
}

func (e *InsufficientQuantityError) Error() string {
	return fmt.Sprintf("insufficient quantity of %s: have %d, want %d", e.Name, e.Have, e.Want)
}

// InvalidQuantityError means a quantity was explicitly given but is not a
// positive whole number. Absent quantities default to one instead.
type InvalidQuantityError struct {
	Name string
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity for %s", e.Name)
}

// StatusTransitionError means the order's current status does not allow the
// requested transition (e.g. confirming an already canceled order).
type StatusTransitionError struct {
	From string
	To   string
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}

// OrderClosedError means items cannot be added or removed because the order
// already left the pending status.
type OrderClosedError struct {
	Status string
}

func (e *OrderClosedError) Error() string {
	return fmt.Sprintf("order is %s and can no longer be changed", e.Status)
}
