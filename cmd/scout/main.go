// Command scout extracts the subject name and contact info (emails, phones,
// WhatsApp, socials) from a single web page and prints the record as JSON.
//
// It does not crawl subpages; only the provided page is analyzed.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/octobees/contact-scout/internal/extract"
	"github.com/octobees/contact-scout/internal/fetcher"
)

func main() {
	urlFlag := flag.String("url", "", "target page URL")
	regionFlag := flag.String("region", extract.DefaultRegion, "default phone region (ISO-3166), e.g. SA, AE, KW, QA, OM, BH")
	timeoutFlag := flag.Duration("timeout", fetcher.DefaultTimeout, "fetch timeout")
	flag.Parse()

	if *urlFlag == "" {
		fmt.Fprintln(os.Stderr, "usage: scout --url https://example.com [--region SA]")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	pageFetcher := fetcher.NewHTTPFetcher(&http.Client{Timeout: *timeoutFlag})
	html, err := pageFetcher.Fetch(ctx, *urlFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error fetching URL %q: %v\n", *urlFlag, err)
		os.Exit(1)
	}

	record, err := extract.NewAnalyzer(*regionFlag).Analyze(*urlFlag, html)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error analyzing %q: %v\n", *urlFlag, err)
		os.Exit(1)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(record); err != nil {
		fmt.Fprintf(os.Stderr, "error encoding record: %v\n", err)
		os.Exit(1)
	}
}
