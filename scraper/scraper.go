package scraper

import (
	"log"

	"github.com/pevans/cryptonews/article"
)

// Result holds the outcome of a scrape run.
type Result struct {
	Records []article.Record
	// Dropped counts containers excluded for missing both a title and a
	// usable URL.
	Dropped int
	// Strategy names which extraction strategy located the containers.
	Strategy string
}

// Scrape runs one full pass: fetch the listing page, locate article
// containers, normalize each into a record, and optionally fetch every
// article's full body text.
//
// On ErrNoArticles the returned result is still valid (with zero records)
// so callers can export empty-but-valid output before reporting the
// condition. Any other error means the run produced nothing.
func Scrape(cfg Config) (*Result, error) {
	log.Printf("INFO: Fetching listing page %s", cfg.ListingURL)
	doc, err := FetchDocument(cfg, cfg.ListingURL)
	if err != nil {
		return nil, err
	}

	containers, strategy, err := ExtractContainers(doc, DefaultStrategies())
	if err != nil {
		return &Result{Records: []article.Record{}}, err
	}
	log.Printf("INFO: Found %d potential news items via %s", len(containers), strategy)

	if cfg.Limit > 0 && len(containers) > cfg.Limit {
		containers = containers[:cfg.Limit]
	}

	normalized := NormalizeContainers(containers, cfg.ListingURL)
	if normalized.Dropped > 0 {
		log.Printf("WARN: Dropped %d containers with no usable title or URL", normalized.Dropped)
	}

	result := &Result{
		Records:  normalized.Records,
		Dropped:  normalized.Dropped,
		Strategy: strategy,
	}

	if cfg.FetchContent {
		for i := range result.Records {
			rec := &result.Records[i]
			log.Printf("INFO: [%d/%d] Fetching content for: %s", i+1, len(result.Records), rec.Title)

			content, err := FetchArticleContent(cfg, rec.URL)
			if err != nil {
				log.Printf("WARN: Failed to fetch content for %s: %v", rec.URL, err)
				rec.Content = "Could not extract article content."
				continue
			}
			rec.Content = content
		}
	}

	log.Printf("INFO: Successfully scraped %d news articles", len(result.Records))
	return result, nil
}
