// Package generate turns scraped article records into standalone HTML
// documents by prompting a generative-text API, one article at a time.
package generate

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the generator's process-wide settings, read once at
// startup.
type Config struct {
	// APIKey authenticates against the Gemini API. Required.
	APIKey string `envconfig:"GEMINI_API_KEY" required:"true"`
	// Model selects the Gemini model used for generation.
	Model string `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`
}

// LoadConfig reads configuration from the environment, pulling in a .env
// file first if one exists. A missing API key is an error; the caller
// treats it as fatal.
func LoadConfig() (*Config, error) {
	// Best effort: absence of a .env file is not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment configuration: %w", err)
	}

	return &cfg, nil
}
