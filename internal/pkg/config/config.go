package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Webhook WebhookConfig
	Gemini  GeminiConfig
	Mongo   MongoConfig
}

type WebhookConfig struct {
	URL string `env:"WEBHOOK_URL, default=https://n8n.tr1nh.net/webhook-test/c589f124-73e3-4998-a9e1-6edcadd3a16b"`
	// InsecureSkipVerify applies to the relay client only, never process-wide.
	InsecureSkipVerify bool          `env:"WEBHOOK_INSECURE_SKIP_VERIFY, default=true"`
	Timeout            time.Duration `env:"WEBHOOK_TIMEOUT, default=10s"`
}

type GeminiConfig struct {
	APIKey  string        `env:"GOOGLE_API_KEY"`
	Model   string        `env:"GEMINI_MODEL,    default=gemini-2.0-flash-exp"`
	BaseURL string        `env:"GEMINI_BASE_URL, default=https://generativelanguage.googleapis.com"`
	Timeout time.Duration `env:"GEMINI_TIMEOUT,  default=30s"`
}

type MongoConfig struct {
	// URI is optional; when empty the in-memory store is used.
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=amk_marketing"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
