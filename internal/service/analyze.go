package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/octobees/contact-scout/internal/entity"
	"github.com/octobees/contact-scout/internal/extract"
	"github.com/octobees/contact-scout/internal/fetcher"
	"github.com/octobees/contact-scout/internal/repository"
	"github.com/octobees/contact-scout/internal/scoring"
)

// ErrInvalidURL is returned for analyze requests without a usable http(s) URL.
var ErrInvalidURL = errors.New("invalid page url")

// AnalyzeService fetches a page, runs the extraction pipeline and persists
// the resulting record.
type AnalyzeService struct {
	fetch         fetcher.Fetcher
	records       repository.RecordsRepository
	defaultRegion string
}

// NewAnalyzeService constructs an AnalyzeService. A nil records repository
// disables persistence, which the CLI relies on.
func NewAnalyzeService(fetch fetcher.Fetcher, records repository.RecordsRepository, defaultRegion string) *AnalyzeService {
	return &AnalyzeService{
		fetch:         fetch,
		records:       records,
		defaultRegion: defaultRegion,
	}
}

// AnalyzePage runs the full pipeline for one URL. A fetch failure propagates
// as *fetcher.FetchError with no record produced; every other condition
// degrades into a record with fewer populated fields.
func (s *AnalyzeService) AnalyzePage(ctx context.Context, pageURL, region string) (*entity.AnalysisRecord, scoring.Score, error) {
	pageURL = strings.TrimSpace(pageURL)
	if parsed, err := url.Parse(pageURL); err != nil || parsed.Host == "" ||
		(parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, scoring.Score{}, ErrInvalidURL
	}

	if strings.TrimSpace(region) == "" {
		region = s.defaultRegion
	}

	html, err := s.fetch.Fetch(ctx, pageURL)
	if err != nil {
		return nil, scoring.Score{}, err
	}

	analyzer := extract.NewAnalyzer(region)
	record, err := analyzer.Analyze(pageURL, html)
	if err != nil {
		return nil, scoring.Score{}, fmt.Errorf("analyze page: %w", err)
	}

	stored := &entity.AnalysisRecord{
		ContactRecord: *record,
		Region:        analyzer.Region(),
	}
	if s.records != nil {
		if err := s.records.Insert(ctx, stored); err != nil {
			return nil, scoring.Score{}, fmt.Errorf("store record: %w", err)
		}
	}

	return stored, scoring.Compute(record), nil
}
