package scraper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfigFile_EmptyPath verifies defaults when no file is given
func TestLoadConfigFile_EmptyPath(t *testing.T) {
	cfg, err := LoadConfigFile("")
	require.NoError(t, err)

	assert.Equal(t, "https://crypto.news/", cfg.ListingURL)
	assert.Equal(t, 10, cfg.TimeoutSeconds)
	assert.Equal(t, 5, cfg.Limit)
	assert.True(t, cfg.FetchContent)
	assert.Equal(t, ", ", cfg.TagDelimiter)
}

// TestLoadConfigFile_PartialOverride verifies a partial YAML file only
// overrides what it names
func TestLoadConfigFile_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "listing_url: https://example.com/news\nlimit: 12\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/news", cfg.ListingURL)
	assert.Equal(t, 12, cfg.Limit)
	assert.Equal(t, 10, cfg.TimeoutSeconds, "unset fields keep defaults")
	assert.True(t, cfg.FetchContent, "unset fields keep defaults")
}

// TestLoadConfigFile_MissingFile verifies a named-but-missing file is an
// error
func TestLoadConfigFile_MissingFile(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

// TestLoadConfigFile_InvalidYAML verifies parse failures are reported
func TestLoadConfigFile_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listing_url: [unclosed"), 0o600))

	_, err := LoadConfigFile(path)
	assert.Error(t, err)
}
