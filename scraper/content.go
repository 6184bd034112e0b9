package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// chromeSelector matches page furniture that never belongs to article
// body text.
const chromeSelector = `header, footer, nav, aside, .sidebar, .comments, .related, .share, .social, script, style, [role="banner"], [role="navigation"]`

// contentSelectors are tried in order to locate the main article body on
// an article page.
var contentSelectors = []string{
	"article", "main", ".post-content", ".entry-content", ".article-content", ".content",
	".article__body", ".story-body", ".post-body", ".article-body", ".news-content",
	`[itemprop="articleBody"]`, `[property="content:encoded"]`,
}

// FetchArticleContent fetches an article page and extracts its body text,
// paragraphs joined by blank lines. One GET, no retries.
func FetchArticleContent(cfg Config, articleURL string) (string, error) {
	doc, err := FetchDocument(cfg, articleURL)
	if err != nil {
		return "", err
	}

	content := ExtractContent(doc)
	if content == "" {
		return "", fmt.Errorf("no article body found at %s", articleURL)
	}

	return content, nil
}

// ExtractContent locates the main body of an article page and returns its
// text. Returns "" when no plausible body is found.
func ExtractContent(doc *goquery.Document) string {
	doc.Find(chromeSelector).Remove()

	container := findContentContainer(doc)
	if container == nil {
		return ""
	}

	// Promotional blocks inside the body are noise, not content.
	container.Find(".share, .social, .related, .recommended, .advertisements, .ad, .ads").Remove()

	paragraphs := container.Find("p")
	if paragraphs.Length() > 1 {
		parts := []string{}
		paragraphs.Each(func(_ int, p *goquery.Selection) {
			if text := strings.TrimSpace(p.Text()); text != "" {
				parts = append(parts, text)
			}
		})
		return strings.Join(parts, "\n\n")
	}

	return normalizeLines(container.Text())
}

// findContentContainer tries the known content selectors first, then falls
// back to any large block with multiple paragraphs.
func findContentContainer(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentSelectors {
		var found *goquery.Selection
		doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if len(strings.TrimSpace(s.Text())) > 200 {
				found = s
				return false
			}
			return true
		})
		if found != nil {
			return found
		}
	}

	var fallback *goquery.Selection
	doc.Find("div, section").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(strings.TrimSpace(s.Text())) > 500 && s.Find("p").Length() > 3 {
			fallback = s
			return false
		}
		return true
	})

	return fallback
}

// normalizeLines trims every line and drops the blank ones.
func normalizeLines(text string) string {
	lines := []string{}
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, "\n")
}
