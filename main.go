package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"food-webhook/config"
	"food-webhook/db"
	"food-webhook/services"
	"food-webhook/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintln(os.Stderr, "db:", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Check for migrate subcommand
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := applyMigrations(ctx, pool, true); err != nil {
			fmt.Fprintln(os.Stderr, "migrate:", err)
			os.Exit(1)
		}
		return
	}

	// Optional auto-migration (useful in production and for fresh DBs).
	// Set AUTO_MIGRATE=1 (or "true") to enable.
	if v := strings.TrimSpace(os.Getenv("AUTO_MIGRATE")); v == "1" || strings.EqualFold(v, "true") {
		if err := applyMigrations(ctx, pool, false); err != nil {
			fmt.Fprintln(os.Stderr, "migrate:", err)
			os.Exit(1)
		}
	}

	notifier, err := services.NewNotifier(cfg.Telegram.MessageToken, cfg.Telegram.AdminChatID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "telegram:", err)
		os.Exit(1)
	}
	if notifier != nil {
		fmt.Println("Order notifications enabled.")
	}

	menu := services.NewPostgresMenuStore(pool)
	orders := services.NewPostgresOrderStore(pool)
	svc := services.NewOrderService(menu, orders, notifier)

	router := web.NewRouter(svc, web.IntentTable(cfg.Intents))
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Println("Webhook listening on", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintln(os.Stderr, "server:", err)
		os.Exit(1)
	}
}
