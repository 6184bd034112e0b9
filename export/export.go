// Package export serializes scraped article records to the console and to
// JSON, CSV, and plain-text files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pevans/cryptonews/article"
)

// csvHeader is the fixed column order for CSV output. It mirrors the
// record's JSON field set.
var csvHeader = []string{"title", "url", "timestamp", "tags", "summary", "scraped_at", "content"}

// WriteJSON writes records to path as a pretty-printed JSON array. Zero
// records still produce a valid empty array.
func WriteJSON(path string, records []article.Record) error {
	if records == nil {
		records = []article.Record{}
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	return writeFileAtomic(path, append(data, '\n'))
}

// WriteCSV writes records to path with one row per record, tags joined
// into a single column by delimiter. Zero records still produce a valid
// header-only file.
func WriteCSV(path string, records []article.Record, delimiter string) error {
	var buf strings.Builder
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Title,
			rec.URL,
			rec.Timestamp,
			JoinTags(rec.Tags, delimiter),
			rec.Summary,
			rec.ScrapedAt,
			rec.Content,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	return writeFileAtomic(path, []byte(buf.String()))
}

// WriteText writes records to path in the numbered plain-text layout also
// used for console display, without content truncation.
func WriteText(path string, records []article.Record, delimiter string) error {
	var buf strings.Builder
	Render(&buf, records, RenderOptions{FullContent: true, TagDelimiter: delimiter})
	return writeFileAtomic(path, []byte(buf.String()))
}

// JoinTags joins a tag list into a single delimited string for CSV and
// display output.
func JoinTags(tags []string, delimiter string) string {
	return strings.Join(tags, delimiter)
}

// SplitTags is the inverse of JoinTags. An empty string yields an empty
// slice, never a one-element slice holding "".
func SplitTags(joined, delimiter string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, delimiter)
}

// writeFileAtomic writes data to a uniquely named temp file in the target
// directory, then renames it into place. A failed run never leaves a
// half-written file at path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to rename %s into place: %w", tmp, err)
	}

	return nil
}
