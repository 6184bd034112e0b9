package scraper

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config defines how a scrape run behaves. Defaults come from
// DefaultConfig, so a partial YAML file only overrides what it names.
type Config struct {
	// ListingURL is the page whose article listing gets scraped.
	ListingURL string `yaml:"listing_url"`
	// UserAgent is sent on every request. Defaults to a browser-like
	// string since some news sites refuse obvious bots.
	UserAgent string `yaml:"user_agent"`
	// TimeoutSeconds bounds each HTTP request.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// Limit caps how many listed articles are processed. 0 means
	// unlimited.
	Limit int `yaml:"limit"`
	// FetchContent controls whether each article's page is fetched for
	// its full body text.
	FetchContent bool `yaml:"fetch_content"`
	// TagDelimiter joins the tag list into a single CSV column.
	TagDelimiter string `yaml:"tag_delimiter"`
}

// DefaultConfig returns the configuration used when no config file is
// given.
func DefaultConfig() Config {
	return Config{
		ListingURL:     "https://crypto.news/",
		UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		TimeoutSeconds: 10,
		Limit:          5,
		FetchContent:   true,
		TagDelimiter:   ", ",
	}
}

// LoadConfigFile loads a YAML config file over the defaults. An empty path
// returns the defaults unchanged. A missing or unparseable file is an
// error; the caller decides whether that is fatal.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
