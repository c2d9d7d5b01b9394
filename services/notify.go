package services

import (
	"fmt"
	"log"

	"food-webhook/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier pushes order notifications to the staff Telegram chat. A nil
// Notifier is valid and skips sending, so deployments without MESSAGE_TOKEN
// need no special-casing.
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifier returns nil (not an error) when token or chat id is unset.
func NewNotifier(token string, chatID int64) (*Notifier, error) {
	if token == "" || chatID == 0 {
		return nil, nil
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return &Notifier{api: api, chatID: chatID}, nil
}

// OrderConfirmed sends a confirmed-order card to the staff chat. Failures
// are logged, never returned: notifying staff must not fail the customer's
// request.
func (n *Notifier) OrderConfirmed(o *models.Order) {
	if n == nil {
		return
	}
	text := fmt.Sprintf("✅ Order confirmed: %s\n\n", o.ID)
	for _, line := range o.Lines {
		text += fmt.Sprintf("• %s x%d\n", line.Item, line.Qty)
	}
	text += fmt.Sprintf("\nTotal: ₹%d", o.ItemsTotal)

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.api.Send(msg); err != nil {
		log.Printf("notify order %s: %v", o.ID, err)
	}
}
