package scraper

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pevans/cryptonews/article"
)

// timeWords are fragments that suggest a short text node is a relative
// timestamp rather than body text.
var timeWords = []string{"ago", "hour", "minute", "second", "day", "week"}

// tagClassTerms are class-name fragments that mark category/tag links.
var tagClassTerms = []string{"category", "tag", "topic"}

// NormalizeResult holds the records produced from a set of containers plus
// the count of containers that could not yield a usable record.
type NormalizeResult struct {
	Records []article.Record
	Dropped int
}

// NormalizeContainers turns article containers into records, preserving
// document order. Containers without a resolvable URL are dropped and
// counted, as are containers whose URL duplicates an earlier one. Missing
// optional fields get their documented defaults instead of failing the
// record.
func NormalizeContainers(containers []*goquery.Selection, baseURL string) NormalizeResult {
	result := NormalizeResult{Records: []article.Record{}}
	seen := make(map[string]bool)

	for _, container := range containers {
		rec, ok := normalizeContainer(container, baseURL)
		if !ok {
			result.Dropped++
			continue
		}
		if seen[rec.URL] {
			continue
		}
		seen[rec.URL] = true
		result.Records = append(result.Records, rec)
	}

	return result
}

// normalizeContainer extracts one record from a container. It returns
// ok=false when the container has no usable URL, since a record without a
// URL can neither be deduplicated nor fed to the HTML generator.
func normalizeContainer(s *goquery.Selection, baseURL string) (article.Record, bool) {
	rawHref, _ := s.Find("a[href]").First().Attr("href")
	absURL := ResolveURL(baseURL, strings.TrimSpace(rawHref))
	if absURL == "" {
		return article.Record{}, false
	}

	title := extractTitle(s)
	if title == "" {
		title = "(No title)"
	}

	return article.Record{
		Title:     title,
		URL:       absURL,
		Timestamp: extractTimestamp(s),
		Tags:      extractTags(s),
		Summary:   extractSummary(s),
		ScrapedAt: article.Now(),
	}, true
}

// ResolveURL resolves href against base, returning an absolute URL.
// Already-absolute URLs pass through unchanged, so the operation is
// idempotent. Returns "" for empty or unparseable input.
func ResolveURL(base, href string) string {
	if href == "" {
		return ""
	}

	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return href
	}

	baseParsed, err := url.Parse(base)
	if err != nil {
		return ""
	}

	return baseParsed.ResolveReference(ref).String()
}

// extractTitle tries heading elements first, then title-ish link classes,
// then falls back to link text long enough to be a headline.
func extractTitle(s *goquery.Selection) string {
	if heading := s.Find("h2, h3, h4").First(); heading.Length() > 0 {
		return strings.TrimSpace(heading.Text())
	}

	titleLink := s.Find("a[class]").FilterFunction(func(_ int, link *goquery.Selection) bool {
		return classContainsAny(link, []string{"title", "heading"})
	}).First()
	if titleLink.Length() > 0 {
		return strings.TrimSpace(titleLink.Text())
	}

	linkText := strings.TrimSpace(s.Find("a").First().Text())
	if len(linkText) > 10 {
		return linkText
	}

	return ""
}

// extractTimestamp prefers a semantic <time> element, then anything
// carrying a datetime attribute, then short text that reads like a
// relative time.
func extractTimestamp(s *goquery.Selection) string {
	if t := s.Find("time").First(); t.Length() > 0 {
		if text := strings.TrimSpace(t.Text()); text != "" {
			return text
		}
	}
	if t := s.Find("[datetime]").First(); t.Length() > 0 {
		if text := strings.TrimSpace(t.Text()); text != "" {
			return text
		}
	}

	found := ""
	s.Find("span, div, p").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		text := strings.TrimSpace(el.Text())
		if text == "" || len(text) >= 20 {
			return true
		}
		lower := strings.ToLower(text)
		for _, word := range timeWords {
			if strings.Contains(lower, word) {
				found = text
				return false
			}
		}
		return true
	})
	if found != "" {
		return found
	}

	return article.UnknownTimestamp
}

// extractTags collects category/tag link text, deduplicated in order of
// first appearance. Anything 30 characters or longer is assumed to be body
// text that happened to match and is skipped.
func extractTags(s *goquery.Selection) []string {
	tags := []string{}
	seen := make(map[string]bool)

	s.Find("a[class]").Each(func(_ int, link *goquery.Selection) {
		if !classContainsAny(link, tagClassTerms) {
			return
		}
		tag := strings.TrimSpace(link.Text())
		if tag == "" || len(tag) >= 30 || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	})

	return tags
}

// extractSummary takes the first paragraph long enough to be a teaser,
// skipping paragraphs that just repeat the timestamp, then falls back to
// summary/excerpt blocks.
func extractSummary(s *goquery.Selection) string {
	timestamp := strings.ToLower(extractTimestamp(s))

	summary := ""
	s.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		text := strings.TrimSpace(p.Text())
		if len(text) <= 10 {
			return true
		}
		lower := strings.ToLower(text)
		if strings.Contains(lower, timestamp) || strings.Contains(timestamp, lower) {
			return true
		}
		summary = text
		return false
	})
	if summary != "" {
		return summary
	}

	block := s.Find("div[class]").FilterFunction(func(_ int, div *goquery.Selection) bool {
		return classContainsAny(div, []string{"summary", "excerpt", "content"})
	}).First()
	if block.Length() > 0 {
		if text := strings.TrimSpace(block.Text()); len(text) > 10 {
			return text
		}
	}

	return ""
}
