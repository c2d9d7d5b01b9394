package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"food-webhook/models"
)

// maxUpdateAttempts bounds the reload-and-retry loop on version conflicts.
const maxUpdateAttempts = 3

// OrderService wires the menu catalog, the order store and the pure mutation
// logic. Every mutation runs as read-compute-conditional-write keyed on the
// order version read at the start, retried on conflict.
type OrderService struct {
	menu     MenuStore
	orders   OrderStore
	notifier *Notifier
	now      func() time.Time
}

func NewOrderService(menu MenuStore, orders OrderStore, notifier *Notifier) *OrderService {
	return &OrderService{
		menu:     menu,
		orders:   orders,
		notifier: notifier,
		now:      time.Now,
	}
}

// PlaceOrder validates the items against a fresh catalog snapshot and
// persists a new pending order. Nothing is written when validation fails.
// Not idempotent: identical repeated calls create distinct orders.
func (s *OrderService) PlaceOrder(ctx context.Context, items []ItemRequest) (*models.Order, error) {
	catalog, err := s.menu.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	o, err := BuildOrder(catalog, items, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return o, nil
}

// AddItems merges items into a pending order.
func (s *OrderService) AddItems(ctx context.Context, orderID string, items []ItemRequest) (*models.Order, error) {
	return s.mutate(ctx, orderID, func(c Catalog, o *models.Order) error {
		if !OrderMutable(o.Status) {
			return &OrderClosedError{Status: o.Status}
		}
		return AddToOrder(c, o, items)
	})
}

// RemoveItems removes the requested quantities from a pending order,
// all-or-nothing.
func (s *OrderService) RemoveItems(ctx context.Context, orderID string, items []ItemRequest) (*models.Order, error) {
	return s.mutate(ctx, orderID, func(c Catalog, o *models.Order) error {
		if !OrderMutable(o.Status) {
			return &OrderClosedError{Status: o.Status}
		}
		return RemoveFromOrder(c, o, items)
	})
}

// SetStatus moves an order to the given status if the transition table
// allows it.
func (s *OrderService) SetStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	return s.mutate(ctx, orderID, func(_ Catalog, o *models.Order) error {
		if !ValidStatusTransition(o.Status, status) {
			return &StatusTransitionError{From: o.Status, To: status}
		}
		o.Status = status
		return nil
	})
}

// ConfirmOrder confirms a pending order and notifies staff. Notification
// failures are logged inside the notifier and never fail the request.
func (s *OrderService) ConfirmOrder(ctx context.Context, orderID string) (*models.Order, error) {
	o, err := s.SetStatus(ctx, orderID, models.OrderStatusConfirmed)
	if err != nil {
		return nil, err
	}
	s.notifier.OrderConfirmed(o)
	return o, nil
}

// CancelOrder cancels a pending order.
func (s *OrderService) CancelOrder(ctx context.Context, orderID string) (*models.Order, error) {
	return s.SetStatus(ctx, orderID, models.OrderStatusCanceled)
}

// Menu returns the full catalog for the read-only menu dump.
func (s *OrderService) Menu(ctx context.Context) ([]models.MenuItem, error) {
	return s.menu.ListMenu(ctx)
}

func (s *OrderService) mutate(ctx context.Context, orderID string, apply func(Catalog, *models.Order) error) (*models.Order, error) {
	if orderID == "" {
		return nil, ErrMissingOrderID
	}
	catalog, err := s.menu.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		o, err := s.orders.Get(ctx, orderID)
		if err != nil {
			return nil, err
		}
		if err := apply(catalog, o); err != nil {
			return nil, err
		}
		err = s.orders.Update(ctx, o)
		if err == nil {
			return o, nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			return nil, fmt.Errorf("update order: %w", err)
		}
		lastErr = err
	}
	return nil, lastErr
}
