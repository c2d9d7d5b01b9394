package web

import (
	"errors"
	"reflect"
	"testing"

	"food-webhook/services"
)

func TestItemsFromParallelArrays(t *testing.T) {
	params := map[string]any{
		"menu_item": []any{"Pizza", "Burger", "Samosa"},
		"quantity":  []any{2.0, 1.0},
	}
	got, err := ItemsFromParameters(params)
	if err != nil {
		t.Fatalf("ItemsFromParameters: %v", err)
	}
	want := []services.ItemRequest{
		{Name: "Pizza", Qty: 2},
		{Name: "Burger", Qty: 1},
		{Name: "Samosa", Qty: 1}, // short quantity array defaults to 1
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("items = %+v, want %+v", got, want)
	}
}

func TestItemsNonNumericQuantityDefaultsToOne(t *testing.T) {
	params := map[string]any{
		"menu_item": []any{"Pizza"},
		"quantity":  []any{"a couple"},
	}
	got, err := ItemsFromParameters(params)
	if err != nil {
		t.Fatalf("ItemsFromParameters: %v", err)
	}
	if len(got) != 1 || got[0].Qty != 1 {
		t.Errorf("items = %+v, want Pizza x1", got)
	}
}

func TestItemsStringQuantityParsed(t *testing.T) {
	params := map[string]any{
		"menu_item": []any{"Pizza"},
		"quantity":  []any{"3"},
	}
	got, err := ItemsFromParameters(params)
	if err != nil {
		t.Fatalf("ItemsFromParameters: %v", err)
	}
	if len(got) != 1 || got[0].Qty != 3 {
		t.Errorf("items = %+v, want Pizza x3", got)
	}
}

func TestItemsZeroQuantityRejected(t *testing.T) {
	params := map[string]any{
		"menu_item": []any{"Pizza"},
		"quantity":  []any{0.0},
	}
	_, err := ItemsFromParameters(params)
	var invalid *services.InvalidQuantityError
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want InvalidQuantityError", err)
	}
}

func TestItemsFractionalQuantityRejected(t *testing.T) {
	params := map[string]any{
		"menu_item": []any{"Pizza"},
		"quantity":  []any{1.5},
	}
	_, err := ItemsFromParameters(params)
	var invalid *services.InvalidQuantityError
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want InvalidQuantityError", err)
	}
}

func TestItemsFromObjectList(t *testing.T) {
	params := map[string]any{
		"items": []any{
			map[string]any{"item": "Pizza", "quantity": 2.0},
			map[string]any{"item": "Burger"},
		},
	}
	got, err := ItemsFromParameters(params)
	if err != nil {
		t.Fatalf("ItemsFromParameters: %v", err)
	}
	want := []services.ItemRequest{
		{Name: "Pizza", Qty: 2},
		{Name: "Burger", Qty: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("items = %+v, want %+v", got, want)
	}
}

func TestItemsFoodItemFallbackKey(t *testing.T) {
	params := map[string]any{
		"food_item": []any{"Dosa"},
	}
	got, err := ItemsFromParameters(params)
	if err != nil {
		t.Fatalf("ItemsFromParameters: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Dosa" {
		t.Errorf("items = %+v, want Dosa", got)
	}
}

func TestItemsEmptyParameters(t *testing.T) {
	got, err := ItemsFromParameters(map[string]any{})
	if err != nil {
		t.Fatalf("ItemsFromParameters: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("items = %+v, want none", got)
	}
}

func TestOrderIDFromExplicitParameter(t *testing.T) {
	var req WebhookRequest
	req.Session = "projects/agent/sessions/session-123"
	req.QueryResult.Parameters = map[string]any{"order_id": " abc-1 "}
	if got := OrderIDFromRequest(&req); got != "abc-1" {
		t.Errorf("order id = %q, want abc-1", got)
	}
}

func TestOrderIDFromSessionFallback(t *testing.T) {
	var req WebhookRequest
	req.Session = "projects/agent/sessions/session-123"
	req.QueryResult.Parameters = map[string]any{}
	if got := OrderIDFromRequest(&req); got != "session-123" {
		t.Errorf("order id = %q, want session-123", got)
	}
}

func TestOrderIDMissing(t *testing.T) {
	var req WebhookRequest
	req.QueryResult.Parameters = map[string]any{}
	if got := OrderIDFromRequest(&req); got != "" {
		t.Errorf("order id = %q, want empty", got)
	}
}
