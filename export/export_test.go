package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pevans/cryptonews/article"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []article.Record {
	return []article.Record{
		{
			Title:     "Bitcoin hits new high",
			URL:       "https://crypto.news/btc",
			Timestamp: "2 hours ago",
			Tags:      []string{"DeFi", "NFT"},
			Summary:   "A short teaser.",
			ScrapedAt: "2026-08-29T10:00:00Z",
			Content:   "Full body text.",
		},
		{
			Title:     "Ether, with \"quotes\"",
			URL:       "https://crypto.news/eth",
			Timestamp: "Unknown",
			Tags:      []string{},
			Summary:   "",
			ScrapedAt: "2026-08-29T10:00:01Z",
			Content:   "",
		},
	}
}

// TestWriteJSON_RoundTrip verifies exported records re-parse field for
// field in order
func TestWriteJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	records := sampleRecords()

	require.NoError(t, WriteJSON(path, records))

	reloaded, err := article.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, records, reloaded)
}

// TestWriteJSON_Empty verifies zero records produce a valid empty array
func TestWriteJSON_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, WriteJSON(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
}

// TestWriteCSV_TagsJoined verifies tags render as one delimited column and
// split back into the same sequence
func TestWriteCSV_TagsJoined(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, WriteCSV(path, sampleRecords(), ", "))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"title", "url", "timestamp", "tags", "summary", "scraped_at", "content"}, rows[0])
	assert.Equal(t, "DeFi, NFT", rows[1][3])
	assert.Equal(t, []string{"DeFi", "NFT"}, SplitTags(rows[1][3], ", "))
	assert.Equal(t, `Ether, with "quotes"`, rows[2][0], "embedded delimiters and quotes survive")
	assert.Equal(t, []string{}, SplitTags(rows[2][3], ", "))
}

// TestWriteCSV_Empty verifies zero records produce a header-only file
func TestWriteCSV_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, WriteCSV(path, nil, ", "))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1, "header row only")
}

// TestWriteText_Layout verifies the text export carries the numbered
// layout with full content
func TestWriteText_Layout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, WriteText(path, sampleRecords(), ", "))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "1. Bitcoin hits new high")
	assert.Contains(t, text, "Tags: DeFi, NFT")
	assert.Contains(t, text, "Full body text.")
}

// TestAtomicWrite_NoTempLeftovers verifies only the target file remains
// after a successful write
func TestAtomicWrite_NoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	require.NoError(t, WriteJSON(path, sampleRecords()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.json", entries[0].Name())
}

// TestRender_TruncatesPreview verifies the console layout truncates long
// content unless full output is requested
func TestRender_TruncatesPreview(t *testing.T) {
	records := []article.Record{{
		Title:     "Long one",
		URL:       "https://crypto.news/long",
		Timestamp: "Unknown",
		Tags:      []string{},
		Content:   strings.Repeat("x", 600),
	}}

	var preview strings.Builder
	Render(&preview, records, RenderOptions{})
	assert.Contains(t, preview.String(), "(content truncated for display)")

	var full strings.Builder
	Render(&full, records, RenderOptions{FullContent: true})
	assert.NotContains(t, full.String(), "(content truncated for display)")
	assert.Contains(t, full.String(), strings.Repeat("x", 600))
}

// TestRender_Empty verifies the empty-feed message
func TestRender_Empty(t *testing.T) {
	var buf strings.Builder
	Render(&buf, nil, RenderOptions{})
	assert.Contains(t, buf.String(), "No news items found.")
}
