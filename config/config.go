package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DB       DBConfig
	Server   ServerConfig
	Telegram TelegramConfig
	Intents  IntentConfig
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type ServerConfig struct {
	Port int
}

type TelegramConfig struct {
	MessageToken string // token for sending order notifications to staff
	AdminChatID  int64  // staff chat that receives confirmed-order messages
}

// IntentConfig lists the accepted display names per webhook operation. The
// dialogue platform's intent names drift across agent revisions, so each
// operation takes a list of aliases.
type IntentConfig struct {
	Place   []string
	Add     []string
	Remove  []string
	Status  []string
	Confirm []string
	Cancel  []string
	Menu    []string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	dbPort, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	httpPort, _ := strconv.Atoi(getEnv("PORT", "5000"))
	adminChat, _ := strconv.ParseInt(getEnv("ADMIN_CHAT_ID", "0"), 10, 64)

	return &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "foodbot"),
		},
		Server: ServerConfig{
			Port: httpPort,
		},
		Telegram: TelegramConfig{
			MessageToken: getEnv("MESSAGE_TOKEN", ""),
			AdminChatID:  adminChat,
		},
		Intents: IntentConfig{
			Place:   splitList(getEnv("INTENTS_PLACE", "new.order,order.create,place-order")),
			Add:     splitList(getEnv("INTENTS_ADD", "order.add,add-items")),
			Remove:  splitList(getEnv("INTENTS_REMOVE", "order.remove,remove-items")),
			Status:  splitList(getEnv("INTENTS_STATUS", "order_item_place")),
			Confirm: splitList(getEnv("INTENTS_CONFIRM", "order_item_place - yes,order.confirm,confirm-order")),
			Cancel:  splitList(getEnv("INTENTS_CANCEL", "order_item_place - no,order.cancel,cancel-order")),
			Menu:    splitList(getEnv("INTENTS_MENU", "get-menu,menu.show")),
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
