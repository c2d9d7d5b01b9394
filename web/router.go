package web

import (
	"net/http"

	"food-webhook/config"
	"food-webhook/services"

	"github.com/gin-gonic/gin"
)

// Webhook operations, values of the intent table.
const (
	OpPlace   = "place"
	OpAdd     = "add"
	OpRemove  = "remove"
	OpStatus  = "status"
	OpConfirm = "confirm"
	OpCancel  = "cancel"
	OpMenu    = "menu"
)

// IntentTable flattens the configured alias lists into a
// displayName→operation map.
func IntentTable(cfg config.IntentConfig) map[string]string {
	table := make(map[string]string)
	add := func(names []string, op string) {
		for _, n := range names {
			if n != "" {
				table[n] = op
			}
		}
	}
	add(cfg.Place, OpPlace)
	add(cfg.Add, OpAdd)
	add(cfg.Remove, OpRemove)
	add(cfg.Status, OpStatus)
	add(cfg.Confirm, OpConfirm)
	add(cfg.Cancel, OpCancel)
	add(cfg.Menu, OpMenu)
	return table
}

// NewRouter builds the gin engine with the webhook and health routes.
func NewRouter(svc *services.OrderService, intents map[string]string) *gin.Engine {
	h := &Handler{svc: svc, intents: intents}

	r := gin.Default()
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/", h.Webhook)
	r.POST("/webhook", h.Webhook)
	return r
}
