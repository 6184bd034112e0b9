package scraper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFetchDocument_Success verifies a 200 response parses into a document
func TestFetchDocument_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><h1>Hello</h1></body></html>`))
	}))
	defer srv.Close()

	doc, err := FetchDocument(DefaultConfig(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Hello", doc.Find("h1").Text())
}

// TestFetchDocument_SendsUserAgent verifies the configured User-Agent
// header is sent
func TestFetchDocument_SendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`<html></html>`))
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.UserAgent = "cryptonews-test/1.0"

	_, err := FetchDocument(cfg, srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "cryptonews-test/1.0", gotUA)
}

// TestFetchDocument_HTTPError verifies a non-2xx status becomes a
// FetchError carrying the status code
func TestFetchDocument_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := FetchDocument(DefaultConfig(), srv.URL)
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)
	assert.Equal(t, srv.URL, fetchErr.URL)
}

// TestFetchDocument_NetworkError verifies an unreachable server becomes a
// FetchError with no status code
func TestFetchDocument_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := FetchDocument(DefaultConfig(), url)
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Zero(t, fetchErr.StatusCode)
	assert.Error(t, fetchErr.Err)
}
