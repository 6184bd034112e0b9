package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pevans/cryptonews/export"
	"github.com/pevans/cryptonews/scraper"
)

func main() {
	jsonOut := flag.Bool("json", false, "Save results to a JSON file")
	csvOut := flag.Bool("csv", false, "Save results to a CSV file")
	textOut := flag.Bool("text", false, "Save results to a plain text file")
	output := flag.String("output", "crypto_news", "Output filename prefix")
	quiet := flag.Bool("quiet", false, "Suppress console output")
	limit := flag.Int("limit", -1, "Limit the number of articles to fetch (0 for unlimited)")
	full := flag.Bool("full", false, "Display full article content")
	skipContent := flag.Bool("skip-content", false, "Do not fetch full article content")
	configPath := flag.String("config", "", "Path to a YAML config file")
	flag.Parse()

	if *quiet {
		log.SetOutput(io.Discard)
	}

	cfg, err := scraper.LoadConfigFile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *limit >= 0 {
		cfg.Limit = *limit
	}
	if *skipContent {
		cfg.FetchContent = false
	}

	result, err := scraper.Scrape(cfg)

	noArticles := errors.Is(err, scraper.ErrNoArticles)
	if err != nil && !noArticles {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !*quiet {
		export.Render(os.Stdout, result.Records, export.RenderOptions{
			FullContent:  *full,
			TagDelimiter: cfg.TagDelimiter,
		})
	}

	if *jsonOut {
		path := *output + ".json"
		if err := export.WriteJSON(path, result.Records); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log.Printf("INFO: News saved to %s", path)
	}
	if *csvOut {
		path := *output + ".csv"
		if err := export.WriteCSV(path, result.Records, cfg.TagDelimiter); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log.Printf("INFO: News saved to %s", path)
	}
	if *textOut {
		path := *output + ".txt"
		if err := export.WriteText(path, result.Records, cfg.TagDelimiter); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log.Printf("INFO: News saved to %s", path)
	}

	// Exit 2 distinguishes "the site yielded nothing" from a fetch failure
	// so callers can tell a likely redesign from an outage.
	if noArticles {
		fmt.Fprintf(os.Stderr, "Error: %v (site markup may have changed)\n", scraper.ErrNoArticles)
		os.Exit(2)
	}
}
