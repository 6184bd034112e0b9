package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pevans/cryptonews/article"
)

// RenderOptions controls the human-readable record layout.
type RenderOptions struct {
	// FullContent disables the 500-character content preview cap.
	FullContent bool
	// TagDelimiter joins the tag list for display. Empty means ", ".
	TagDelimiter string
}

// Render writes records to w in a numbered human-readable layout: a banner
// with the retrieval time, then title, time, tags, summary, URL, and a
// content preview per record.
func Render(w io.Writer, records []article.Record, opts RenderOptions) {
	delimiter := opts.TagDelimiter
	if delimiter == "" {
		delimiter = ", "
	}

	rule := strings.Repeat("=", 80)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "LATEST CRYPTOCURRENCY NEWS FROM CRYPTO.NEWS")
	fmt.Fprintf(w, "Retrieved at: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "%s\n\n", rule)

	if len(records) == 0 {
		fmt.Fprintln(w, "No news items found.")
		return
	}

	for i, rec := range records {
		fmt.Fprintf(w, "%d. %s\n", i+1, rec.Title)
		fmt.Fprintf(w, "   Time: %s\n", rec.Timestamp)
		if len(rec.Tags) > 0 {
			fmt.Fprintf(w, "   Tags: %s\n", JoinTags(rec.Tags, delimiter))
		}
		if rec.Summary != "" {
			summary := rec.Summary
			if len(summary) > 150 {
				summary = summary[:147] + "..."
			}
			fmt.Fprintf(w, "   Summary: %s\n", summary)
		}
		fmt.Fprintf(w, "   URL: %s\n", rec.URL)

		if rec.Content != "" {
			fmt.Fprintln(w, "\n   --- ARTICLE CONTENT ---")
			content := rec.Content
			if !opts.FullContent && len(content) > 500 {
				content = content[:500] + "...\n(content truncated for display)"
			}
			for _, line := range strings.Split(content, "\n") {
				fmt.Fprintf(w, "   %s\n", line)
			}
		}

		fmt.Fprintln(w)
	}
}
