package web

import (
	"math"
	"strconv"
	"strings"

	"food-webhook/services"
)

// ItemsFromParameters extracts the requested (item, quantity) pairs from the
// parameter bag. Two encodings are accepted: a single items array of
// {item, quantity} objects, and parallel menu_item/quantity arrays matched
// by index. Quantity defaults to 1 when the quantity array is short or the
// value is non-numeric; an explicitly numeric but non-positive or fractional
// quantity is rejected.
func ItemsFromParameters(params map[string]any) ([]services.ItemRequest, error) {
	if raw, ok := params["items"]; ok {
		if items, err := itemsFromObjects(raw); items != nil || err != nil {
			return items, err
		}
	}

	names := stringList(params["menu_item"])
	if len(names) == 0 {
		names = stringList(params["food_item"]) // older agent revisions export this name
	}
	if len(names) == 0 {
		return nil, nil
	}

	quantities, _ := params["quantity"].([]any)
	out := make([]services.ItemRequest, 0, len(names))
	for i, name := range names {
		qty := 1
		if i < len(quantities) {
			q, err := coerceQuantity(name, quantities[i])
			if err != nil {
				return nil, err
			}
			qty = q
		}
		out = append(out, services.ItemRequest{Name: name, Qty: qty})
	}
	return out, nil
}

// OrderIDFromRequest prefers an explicit order_id parameter and falls back
// to the last path segment of the platform session string.
func OrderIDFromRequest(req *WebhookRequest) string {
	for _, key := range []string{"order_id", "orderId"} {
		if s, ok := req.QueryResult.Parameters[key].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	if req.Session != "" {
		parts := strings.Split(req.Session, "/")
		if last := strings.TrimSpace(parts[len(parts)-1]); last != "" {
			return last
		}
	}
	return ""
}

func itemsFromObjects(raw any) ([]services.ItemRequest, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, nil
	}
	out := make([]services.ItemRequest, 0, len(list))
	for _, el := range list {
		obj, ok := el.(map[string]any)
		if !ok {
			continue
		}
		name, _ := obj["item"].(string)
		if name == "" {
			name, _ = obj["name"].(string)
		}
		if strings.TrimSpace(name) == "" {
			continue
		}
		qty := 1
		if qv, ok := obj["quantity"]; ok && qv != nil {
			q, err := coerceQuantity(name, qv)
			if err != nil {
				return nil, err
			}
			qty = q
		}
		out = append(out, services.ItemRequest{Name: name, Qty: qty})
	}
	return out, nil
}

// coerceQuantity turns a platform-provided quantity into an int. The
// platform exports numbers as float64 and sometimes as strings; anything
// non-numeric defaults to one, anything numeric must be a positive whole
// number.
func coerceQuantity(name string, v any) (int, error) {
	f, ok := v.(float64)
	if !ok {
		s, isStr := v.(string)
		if !isStr {
			return 1, nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 1, nil
		}
		f = parsed
	}
	if f <= 0 || f != math.Trunc(f) {
		return 0, &services.InvalidQuantityError{Name: strings.TrimSpace(name)}
	}
	return int(f), nil
}

func stringList(v any) []string {
	switch t := v.(type) {
	case []any:
		out := make([]string, 0, len(t))
		for _, el := range t {
			if s, ok := el.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if strings.TrimSpace(t) == "" {
			return nil
		}
		return []string{t}
	}
	return nil
}
