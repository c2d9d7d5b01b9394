package services

import (
	"strings"
	"time"

	"food-webhook/models"

	"github.com/google/uuid"
)

// ItemRequest is one requested (name, quantity) pair. Quantity defaulting
// happens at the webhook boundary; by the time a request reaches the engine
// a quantity below one is a caller bug and rejected.
type ItemRequest struct {
	Name string
	Qty  int
}

// BuildOrder creates a new pending order from the requested items. Every
// pair is validated before anything is built: the first unknown name aborts
// with ItemNotAvailableError and nothing is persisted by the caller.
// Duplicate names within the request merge case-insensitively into one line;
// line order follows first appearance in the input.
func BuildOrder(c Catalog, items []ItemRequest, now time.Time) (*models.Order, error) {
	o := &models.Order{
		ID:        uuid.NewString(),
		Status:    models.OrderStatusPending,
		Version:   1,
		CreatedAt: now,
	}
	if err := AddToOrder(c, o, items); err != nil {
		return nil, err
	}
	return o, nil
}

// AddToOrder merges the requested items into the order. An existing line
// with a case-insensitive-equal name gets its quantity incremented,
// otherwise a new line is appended with the requested display name. The
// total grows by price*qty per applied item; it is not recomputed from
// scratch. All-or-nothing: any invalid pair leaves the order untouched.
func AddToOrder(c Catalog, o *models.Order, items []ItemRequest) error {
	prices := make([]int64, len(items))
	for i, it := range items {
		if it.Qty < 1 {
			return &InvalidQuantityError{Name: strings.TrimSpace(it.Name)}
		}
		price, err := c.PriceOf(it.Name)
		if err != nil {
			return err
		}
		prices[i] = price
	}

	for i, it := range items {
		if line := findLine(o, it.Name); line != nil {
			line.Qty += it.Qty
		} else {
			o.Lines = append(o.Lines, models.OrderLine{
				Item: strings.TrimSpace(it.Name),
				Qty:  it.Qty,
			})
		}
		o.ItemsTotal += prices[i] * int64(it.Qty)
	}
	return nil
}

// RemoveFromOrder removes the requested quantities from the order. The whole
// request is validated against the original snapshot before any line is
// touched, so a failure on the k-th item never leaves partial removals
// behind. A line decremented to exactly zero is dropped from the order.
func RemoveFromOrder(c Catalog, o *models.Order, items []ItemRequest) error {
	remaining := make(map[string]int, len(o.Lines))
	for _, line := range o.Lines {
		remaining[NormalizeItemName(line.Item)] = line.Qty
	}

	type removal struct {
		norm   string
		qty    int
		amount int64
	}
	removals := make([]removal, 0, len(items))
	for _, it := range items {
		if it.Qty < 1 {
			return &InvalidQuantityError{Name: strings.TrimSpace(it.Name)}
		}
		norm := NormalizeItemName(it.Name)
		have, ok := remaining[norm]
		if !ok {
			return &ItemNotInOrderError{Name: strings.TrimSpace(it.Name)}
		}
		if have < it.Qty {
			return &InsufficientQuantityError{Name: strings.TrimSpace(it.Name), Have: have, Want: it.Qty}
		}
		price, err := c.PriceOf(it.Name)
		if err != nil {
			return err
		}
		remaining[norm] = have - it.Qty
		removals = append(removals, removal{norm: norm, qty: it.Qty, amount: price * int64(it.Qty)})
	}

	for _, r := range removals {
		for i := range o.Lines {
			if NormalizeItemName(o.Lines[i].Item) == r.norm {
				o.Lines[i].Qty -= r.qty
				break
			}
		}
		o.ItemsTotal -= r.amount
	}

	kept := o.Lines[:0]
	for _, line := range o.Lines {
		if line.Qty > 0 {
			kept = append(kept, line)
		}
	}
	o.Lines = kept
	return nil
}

func findLine(o *models.Order, name string) *models.OrderLine {
	norm := NormalizeItemName(name)
	for i := range o.Lines {
		if NormalizeItemName(o.Lines[i].Item) == norm {
			return &o.Lines[i]
		}
	}
	return nil
}
