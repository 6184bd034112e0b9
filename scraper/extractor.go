package scraper

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoArticles indicates that every extraction strategy came up empty,
// which usually means the site's markup changed.
var ErrNoArticles = errors.New("no article containers found")

// Strategy locates article containers in a parsed listing page. Strategies
// are tried in order and the first one returning at least one container
// wins.
type Strategy struct {
	Name string
	Find func(doc *goquery.Document) *goquery.Selection
}

// containerClassTerms are class-name fragments that suggest an element
// wraps a single listed news item.
var containerClassTerms = []string{"news", "post", "article", "item", "story"}

// DefaultStrategies returns the extraction fallback chain, ordered from
// most to least specific.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{Name: "latest-section", Find: findLatestSection},
		{Name: "article-elements", Find: findArticleElements},
		{Name: "class-heuristic", Find: findByClassHeuristic},
		{Name: "link-density", Find: findByLinkDensity},
	}
}

// ExtractContainers runs the strategy chain against doc and returns one
// handle per article container, in document order, along with the name of
// the strategy that matched. Returns ErrNoArticles when nothing matches.
func ExtractContainers(doc *goquery.Document, strategies []Strategy) ([]*goquery.Selection, string, error) {
	for _, strat := range strategies {
		sel := strat.Find(doc)
		if sel == nil || sel.Length() == 0 {
			continue
		}

		containers := make([]*goquery.Selection, 0, sel.Length())
		sel.Each(func(_ int, s *goquery.Selection) {
			containers = append(containers, s)
		})
		return containers, strat.Name, nil
	}

	return nil, "", ErrNoArticles
}

// findLatestSection looks for a "Latest" section heading and takes the
// article elements from the block that follows it.
func findLatestSection(doc *goquery.Document) *goquery.Selection {
	heading := doc.Find("h2").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), "Latest")
	}).First()
	if heading.Length() == 0 {
		return nil
	}

	block := heading.NextAllFiltered("div").First()
	if block.Length() == 0 {
		return nil
	}

	return block.Find("article")
}

// findArticleElements matches semantic <article> elements anywhere on the
// page.
func findArticleElements(doc *goquery.Document) *goquery.Selection {
	return doc.Find("article")
}

// findByClassHeuristic matches divs and list items whose class names look
// news-related, as long as they contain a link and something that could be
// a title.
func findByClassHeuristic(doc *goquery.Document) *goquery.Selection {
	return doc.Find("div[class], li[class]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		if !classContainsAny(s, containerClassTerms) {
			return false
		}
		if s.Find("a").Length() == 0 {
			return false
		}
		return s.Find("h3, h4").Length() > 0 || strings.TrimSpace(s.Text()) != ""
	})
}

// findByLinkDensity is the last resort: "stories" blocks containing linked
// items, plus the parents of any "Read more" links.
func findByLinkDensity(doc *goquery.Document) *goquery.Selection {
	result := doc.Find("div[class]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return classContainsAny(s, []string{"stories"})
	}).Find("div, li, article").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Find("a").Length() > 0
	})

	readMore := doc.Find("a").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), "Read more")
	})
	readMore.Each(func(_ int, s *goquery.Selection) {
		parent := s.Closest("div, article, li")
		if parent.Length() > 0 {
			// AddSelection unions node sets, so a parent already matched
			// above is not added twice.
			result = result.AddSelection(parent)
		}
	})

	return result
}

// classContainsAny reports whether the element's class attribute contains
// any of the given fragments, case-insensitively.
func classContainsAny(s *goquery.Selection, terms []string) bool {
	class, ok := s.Attr("class")
	if !ok {
		return false
	}
	class = strings.ToLower(class)
	for _, term := range terms {
		if strings.Contains(class, term) {
			return true
		}
	}
	return false
}
