package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pevans/cryptonews/article"
	"github.com/pevans/cryptonews/generate"
)

func main() {
	input := flag.String("input", "crypto_news.json", "Path to the scraped articles JSON file")
	outputDir := flag.String("output-dir", ".", "Directory to write generated HTML files into")
	model := flag.String("model", "", "Override the Gemini model name")
	flag.Parse()

	cfg, err := generate.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *model != "" {
		cfg.Model = *model
	}

	records, err := article.LoadFile(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	client := generate.NewGeminiClient(cfg.APIKey, cfg.Model)
	formatter := generate.NewFormatter(client, *outputDir)

	summary := formatter.Run(context.Background(), records)
	log.Printf("INFO: Generated %d HTML files (%d failed) from %d articles",
		summary.Written, summary.Failed, len(records))
}
