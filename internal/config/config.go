// Package config loads server configuration from the environment
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/storynest/storynest-api/internal/errors"
)

// Config holds the server configuration
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	RedisAddr    string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY,required"`
	OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	CommerceURL  string `env:"COMMERCE_URL,required"`
	CommerceKey  string `env:"COMMERCE_API_KEY,required"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	GinDebug     bool   `env:"GIN_DEBUG" envDefault:"false"`
}

// Load reads .env when present, then parses the environment.
// A missing .env file is not an error; containers inject variables directly.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}

	return &cfg, nil
}
