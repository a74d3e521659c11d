package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultHost          = "0.0.0.0"
	defaultPort          = 5000
	defaultSessionSecret = "telegram-forwarding-bot-secret"
	defaultTelegramAPI   = "https://api.telegram.org"
)

// Config is built once at startup and never mutated afterwards.
type Config struct {
	// Telegram
	BotToken    string
	OwnerChatID string
	APIURL      string

	// Webhook
	WebhookSecret     string
	BaseURL           string
	RegisterOnStartup bool

	// HTTP server
	Host          string
	Port          int
	Debug         bool
	SessionSecret string
}

// LoadEnv loads a .env file from the working directory if one exists.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		// envs may be provided by the environment
		if !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// Load builds a Config from environment variables and logs any problems.
// Missing required settings are not fatal.
func Load() *Config {
	cfg := &Config{
		BotToken:      os.Getenv("TELEGRAM_BOT_TOKEN"),
		OwnerChatID:   os.Getenv("OWNER_CHAT_ID"),
		APIURL:        strings.TrimSuffix(GetEnv("TELEGRAM_API_URL", defaultTelegramAPI), "/"),
		WebhookSecret: os.Getenv("WEBHOOK_SECRET"),
		BaseURL:       os.Getenv("BASE_URL"),
		Host:          GetEnv("HOST", defaultHost),
		Port:          defaultPort,
		Debug:         parseBool(GetEnv("DEBUG", "True")),
		SessionSecret: GetEnv("SESSION_SECRET", defaultSessionSecret),
	}

	if val := os.Getenv("PORT"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			cfg.Port = parsed
		} else {
			log.Printf("warning: invalid PORT %q, using %d", val, defaultPort)
		}
	}

	// Replit deployments always register on boot.
	_, onReplit := os.LookupEnv("REPLIT_DB_URL")
	cfg.RegisterOnStartup = onReplit || parseBool(os.Getenv("REGISTER_WEBHOOK_ON_START"))

	for _, err := range cfg.Validate() {
		log.Printf("error: %v", err)
	}
	if cfg.WebhookSecret == "" {
		log.Printf("warning: no WEBHOOK_SECRET found, webhook will not be secured")
	}
	if cfg.BaseURL == "" {
		log.Printf("warning: no BASE_URL found, webhook cannot be registered automatically")
	}

	return cfg
}

var (
	ErrMissingBotToken = errors.New("TELEGRAM_BOT_TOKEN is not set")
	ErrMissingOwnerID  = errors.New("OWNER_CHAT_ID is not set")
)

// Validate reports missing required settings.
func (c *Config) Validate() []error {
	var errs []error
	if c.BotToken == "" {
		errs = append(errs, ErrMissingBotToken)
	}
	if c.OwnerChatID == "" {
		errs = append(errs, ErrMissingOwnerID)
	}
	return errs
}

// WebhookURL is the public URL the platform should deliver updates to, or
// "" if no base URL is configured.
func (c *Config) WebhookURL() string {
	if c.BaseURL == "" {
		return ""
	}
	base := strings.TrimSuffix(c.BaseURL, "/")
	return base + "/webhook/" + c.WebhookSecret
}

func GetEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "t":
		return true
	}
	return false
}
