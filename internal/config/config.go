package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Parse-failure surfacing modes for the generate-plan endpoint.
const (
	// ParseFailureFallback returns HTTP 200 with the raw text so the client
	// can always render something.
	ParseFailureFallback = "fallback"
	// ParseFailureError surfaces a parse failure as a client-visible error.
	ParseFailureError = "error"
)

// DefaultGeminiModel is used when GEMINI_MODEL is not set.
const DefaultGeminiModel = "gemini-2.5-flash-lite"

// Config holds the configuration for the application.
type Config struct {
	Port             string
	GeminiAPIKey     string
	GeminiModel      string
	ParseFailureMode string

	// Telegram Config (optional; bot only)
	TelegramBotToken       string
	TelegramWebhookURL     string
	TelegramAllowedUserIDs []int64
}

// NewFromEnv creates a new Config object from environment variables.
//
// GEMINI_API_KEY is intentionally not required here: the gateway reports its
// absence per request as an authorization failure instead of refusing to boot.
func NewFromEnv() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = DefaultGeminiModel
	}

	mode := os.Getenv("PLAN_PARSE_FAILURE_MODE")
	if mode == "" {
		mode = ParseFailureFallback
	}
	if mode != ParseFailureFallback && mode != ParseFailureError {
		return nil, fmt.Errorf("PLAN_PARSE_FAILURE_MODE must be %q or %q, got %q",
			ParseFailureFallback, ParseFailureError, mode)
	}

	allowedIDs, err := parseAllowedUserIDs(os.Getenv("TELEGRAM_ALLOW_USER_IDS"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:                   port,
		GeminiAPIKey:           os.Getenv("GEMINI_API_KEY"),
		GeminiModel:            model,
		ParseFailureMode:       mode,
		TelegramBotToken:       os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramWebhookURL:     os.Getenv("TELEGRAM_WEBHOOK_URL"),
		TelegramAllowedUserIDs: allowedIDs,
	}, nil
}

func parseAllowedUserIDs(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	var ids []int64
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_ALLOW_USER_IDS contains invalid id %q: %w", field, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
