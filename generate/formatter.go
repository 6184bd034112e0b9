package generate

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pevans/cryptonews/article"
)

// maxFilenameLen caps the sanitized-title portion of an output filename.
const maxFilenameLen = 50

// Formatter generates one HTML file per article record, strictly in
// sequence.
type Formatter struct {
	gen       Generator
	outputDir string
}

// NewFormatter creates a formatter writing into outputDir.
func NewFormatter(gen Generator, outputDir string) *Formatter {
	return &Formatter{gen: gen, outputDir: outputDir}
}

// RunSummary reports what a formatter run accomplished.
type RunSummary struct {
	Written int
	Failed  int
}

// Run processes records in order: build a prompt, call the generator, and
// write the result to a file named after the sanitized title. A failure on
// one article is logged and the run continues with the next; only the
// summary records it.
func (f *Formatter) Run(ctx context.Context, records []article.Record) RunSummary {
	summary := RunSummary{}

	for i, rec := range records {
		log.Printf("INFO: Generating HTML for article %d/%d: %s", i+1, len(records), rec.Title)

		html, err := f.gen.Generate(ctx, BuildPrompt(rec))
		if err != nil {
			log.Printf("ERROR: Generation failed for %q: %v", rec.Title, err)
			summary.Failed++
			continue
		}

		name := OutputFilename(rec.Title, i)
		path := filepath.Join(f.outputDir, name)
		if err := os.WriteFile(path, []byte(StripCodeFence(html)), 0o644); err != nil {
			log.Printf("ERROR: Failed to write %s for %q: %v", path, rec.Title, err)
			summary.Failed++
			continue
		}

		log.Printf("INFO: HTML content saved to: %s", path)
		summary.Written++
	}

	return summary
}

// BuildPrompt embeds an article's title, URL, timestamp, and content into
// the HTML-generation brief sent to the model.
func BuildPrompt(rec article.Record) string {
	return fmt.Sprintf(`Create a beautiful, professional HTML document for this article with the following characteristics:

1. Use modern HTML5 standards with appropriate semantic tags
2. Create an exceptionally attractive visual design with:
   - A modern, premium magazine-style layout
   - Beautiful typography using web-safe or Google Fonts
   - Professional color scheme with complementary colors
   - Subtle animations for hover states and transitions
   - Visual hierarchy to highlight important information
   - Proper spacing and padding for readability
   - Responsive design that works on mobile and desktop
   - Card-based design elements where appropriate
   - Attractive blockquote styling for quotes
   - Visual separation between sections
3. Include social media sharing buttons
4. Add a professional header with logo placeholder
5. Add a footer with copyright information
6. Ensure excellent readability with proper line heights and font sizes
7. Include appropriate icons (using Font Awesome or Material icons)

ARTICLE DATA:
Title: %s
URL: %s
Timestamp: %s
Content:
%s

Return only the complete HTML code without any additional text or explanations.
The CSS should be included in the <head> section of the document.`,
		rec.Title, rec.URL, rec.Timestamp, rec.Content)
}

// OutputFilename derives a filename from a sanitized article title. When
// sanitization leaves nothing usable, the record's position in the input
// names the file instead.
func OutputFilename(title string, index int) string {
	safe := SanitizeTitle(title)
	if safe == "" {
		return fmt.Sprintf("article_%d.html", index+1)
	}
	return safe + ".html"
}

// SanitizeTitle makes a title filesystem-safe: spaces and slashes become
// underscores, everything outside [A-Za-z0-9_-] is removed, and the result
// is length-capped.
func SanitizeTitle(title string) string {
	replaced := strings.NewReplacer(" ", "_", "/", "_", `\`, "_").Replace(title)

	var b strings.Builder
	for _, r := range replaced {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}

	safe := b.String()
	if len(safe) > maxFilenameLen {
		safe = safe[:maxFilenameLen]
	}
	return safe
}

// StripCodeFence removes a surrounding markdown code fence if the model
// wrapped its output in one despite being asked for raw HTML.
func StripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return s
	}

	// Drop the opening fence line (``` or ```html) and a closing ``` line.
	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return s
	}
	lines = lines[1:]
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
