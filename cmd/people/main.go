// Command people collects name, title and contact entries from a LinkedIn
// company people page and writes them to CSV.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/octobees/contact-scout/internal/people"
)

func main() {
	outFlag := flag.String("out", "people.csv", "output CSV path")
	limitFlag := flag.Int("limit", 50, "max profiles to fetch (0 for all visible)")
	liAtFlag := flag.String("li-at", os.Getenv("LI_AT"), "LinkedIn li_at cookie value (or set env LI_AT)")
	flag.Parse()

	pageURL := flag.Arg(0)
	if pageURL == "" {
		fmt.Fprintln(os.Stderr, "usage: people [flags] https://www.linkedin.com/company/<slug>/people/")
		os.Exit(2)
	}

	collector := people.NewCollector(people.Config{
		LiAt:  *liAtFlag,
		Limit: *limitFlag,
	})

	collected, err := collector.Collect(context.Background(), pageURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error collecting people: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Create(*outFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating %q: %v\n", *outFlag, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := people.WriteCSV(f, collected); err != nil {
		fmt.Fprintf(os.Stderr, "error writing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("saved %d profiles to %s\n", len(collected), *outFlag)
}
