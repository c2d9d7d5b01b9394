package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"food-webhook/models"
	"food-webhook/services"

	"github.com/gin-gonic/gin"
)

const (
	msgFallback     = "I couldn't process that request."
	msgGenericError = "An error occurred while processing your request."
	msgNoItems      = "I didn't catch any items. What would you like to order?"
)

// Handler serves the dialogue platform webhook. Every reply goes out as
// HTTP 200 with a fulfillment text; non-200 is reserved for transport
// failures outside this handler.
type Handler struct {
	svc     *services.OrderService
	intents map[string]string
}

func (h *Handler) Webhook(c *gin.Context) {
	var req WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("webhook: bad payload: %v", err)
		c.JSON(http.StatusOK, WebhookResponse{FulfillmentText: msgGenericError})
		return
	}

	intent := req.QueryResult.Intent.DisplayName
	op, ok := h.intents[intent]
	if intent == "" || !ok {
		c.JSON(http.StatusOK, WebhookResponse{FulfillmentText: msgFallback})
		return
	}

	ctx := c.Request.Context()
	var text string
	switch op {
	case OpMenu:
		text = h.menuText(ctx)
	case OpPlace:
		text = h.placeOrder(ctx, &req)
	case OpAdd:
		text = h.addItems(ctx, &req)
	case OpRemove:
		text = h.removeItems(ctx, &req)
	case OpStatus:
		text = h.updateStatus(ctx, &req)
	case OpConfirm:
		text = h.setStatus(ctx, &req, models.OrderStatusConfirmed)
	case OpCancel:
		text = h.setStatus(ctx, &req, models.OrderStatusCanceled)
	default:
		text = msgFallback
	}
	c.JSON(http.StatusOK, WebhookResponse{FulfillmentText: text})
}

func (h *Handler) placeOrder(ctx context.Context, req *WebhookRequest) string {
	items, err := ItemsFromParameters(req.QueryResult.Parameters)
	if err != nil {
		return replyForError(err)
	}
	if len(items) == 0 {
		return msgNoItems
	}
	o, err := h.svc.PlaceOrder(ctx, items)
	if err != nil {
		return replyForError(err)
	}
	return fmt.Sprintf(
		"Your order has been placed! Order ID: %s.\n%sTotal: ₹%d. Say yes to confirm or no to cancel.",
		o.ID, linesSummary(o), o.ItemsTotal,
	)
}

func (h *Handler) addItems(ctx context.Context, req *WebhookRequest) string {
	items, err := ItemsFromParameters(req.QueryResult.Parameters)
	if err != nil {
		return replyForError(err)
	}
	if len(items) == 0 {
		return msgNoItems
	}
	o, err := h.svc.AddItems(ctx, OrderIDFromRequest(req), items)
	if err != nil {
		return replyForError(err)
	}
	return fmt.Sprintf("Items have been added to your order.\n%sTotal: ₹%d.", linesSummary(o), o.ItemsTotal)
}

func (h *Handler) removeItems(ctx context.Context, req *WebhookRequest) string {
	items, err := ItemsFromParameters(req.QueryResult.Parameters)
	if err != nil {
		return replyForError(err)
	}
	if len(items) == 0 {
		return "Which items should I remove?"
	}
	o, err := h.svc.RemoveItems(ctx, OrderIDFromRequest(req), items)
	if err != nil {
		return replyForError(err)
	}
	if len(o.Lines) == 0 {
		return "Items have been removed. Your order is now empty."
	}
	return fmt.Sprintf("Items have been removed from your order.\n%sTotal: ₹%d.", linesSummary(o), o.ItemsTotal)
}

// updateStatus handles the generic status-update intent: the target status
// arrives as a parameter and still goes through the transition table.
func (h *Handler) updateStatus(ctx context.Context, req *WebhookRequest) string {
	status, _ := req.QueryResult.Parameters["status"].(string)
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		return msgFallback
	}
	o, err := h.svc.SetStatus(ctx, OrderIDFromRequest(req), status)
	if err != nil {
		return replyForError(err)
	}
	return fmt.Sprintf("Order status has been updated to %s.", o.Status)
}

func (h *Handler) setStatus(ctx context.Context, req *WebhookRequest, status string) string {
	id := OrderIDFromRequest(req)
	switch status {
	case models.OrderStatusConfirmed:
		o, err := h.svc.ConfirmOrder(ctx, id)
		if err != nil {
			return replyForError(err)
		}
		return fmt.Sprintf("Your order has been confirmed! Total: ₹%d.", o.ItemsTotal)
	case models.OrderStatusCanceled:
		if _, err := h.svc.CancelOrder(ctx, id); err != nil {
			return replyForError(err)
		}
		return "Your order has been canceled."
	}
	return msgFallback
}

func (h *Handler) menuText(ctx context.Context) string {
	items, err := h.svc.Menu(ctx)
	if err != nil {
		return replyForError(err)
	}
	var b strings.Builder
	b.WriteString("Here's our menu:\n")
	lastCategory := ""
	for _, item := range items {
		if item.Category != lastCategory {
			fmt.Fprintf(&b, "\n%s\n", categoryLabel(item.Category))
			lastCategory = item.Category
		}
		fmt.Fprintf(&b, "• %s — ₹%d\n", item.Name, item.Price)
	}
	return b.String()
}

func linesSummary(o *models.Order) string {
	var b strings.Builder
	for _, line := range o.Lines {
		fmt.Fprintf(&b, "• %s x%d\n", line.Item, line.Qty)
	}
	return b.String()
}

func categoryLabel(category string) string {
	switch category {
	case models.CategoryFood:
		return "🍽 Food"
	case models.CategoryDrink:
		return "🥤 Drinks"
	case models.CategoryDessert:
		return "🍰 Desserts"
	default:
		return category
	}
}

// replyForError converts every mutation-level error into its fixed
// user-readable text. Unexpected failures are logged and collapsed into the
// generic message.
func replyForError(err error) string {
	var notAvailable *services.ItemNotAvailableError
	var notInOrder *services.ItemNotInOrderError
	var insufficient *services.InsufficientQuantityError
	var invalidQty *services.InvalidQuantityError
	var closed *services.OrderClosedError
	var transition *services.StatusTransitionError

	switch {
	case errors.As(err, &notAvailable):
		return fmt.Sprintf("Sorry, %s is not available on our menu right now.", notAvailable.Name)
	case errors.As(err, &notInOrder):
		return fmt.Sprintf("%s is not in your order.", notInOrder.Name)
	case errors.As(err, &insufficient):
		return fmt.Sprintf("Your order only has %d x %s, so I can't remove %d.",
			insufficient.Have, insufficient.Name, insufficient.Want)
	case errors.As(err, &invalidQty):
		return fmt.Sprintf("Please give me a positive whole number for %s.", invalidQty.Name)
	case errors.As(err, &closed):
		return fmt.Sprintf("This order is already %s and can no longer be changed.", closed.Status)
	case errors.As(err, &transition):
		return fmt.Sprintf("Your order is already %s.", transition.From)
	case errors.Is(err, services.ErrOrderNotFound):
		return "I couldn't find that order."
	case errors.Is(err, services.ErrMissingOrderID):
		return "I need your order ID for that. Could you share it?"
	default:
		log.Printf("webhook: %v", err)
		return msgGenericError
	}
}
