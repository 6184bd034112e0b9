// Package article defines the record type shared by the scraper and the
// HTML generator, together with the JSON shape both sides agree on.
package article

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Record represents a single scraped news article. The JSON field names are
// the contract between the scraper's export and the generator's input, so
// they must not change independently.
type Record struct {
	Title     string   `json:"title"`
	URL       string   `json:"url"`
	Timestamp string   `json:"timestamp"`
	Tags      []string `json:"tags"`
	Summary   string   `json:"summary"`
	ScrapedAt string   `json:"scraped_at"`
	Content   string   `json:"content"`
}

// UnknownTimestamp is the default for articles with no detectable
// publication time.
const UnknownTimestamp = "Unknown"

// Now returns the current time formatted for the scraped_at field
// (ISO-8601 with offset).
func Now() string {
	return time.Now().Format(time.RFC3339)
}

// LoadFile reads a JSON array of records from the given path. Any record
// with absent tags is normalized to an empty slice so callers never see
// nil.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read article file: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse article file %s: %w", path, err)
	}

	for i := range records {
		if records[i].Tags == nil {
			records[i].Tags = []string{}
		}
	}

	return records, nil
}
