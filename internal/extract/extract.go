// Package extract implements the contact extraction pipeline: a structured
// metadata extractor, pattern extractors over page text and links, a name
// fallback chain, and the merge step that reconciles all of them into a
// single record.
package extract

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/octobees/contact-scout/internal/entity"
)

// DefaultRegion is the phone region assumed when a number carries no country code.
const DefaultRegion = "SA"

// Analyzer runs the full extraction pipeline over already-fetched markup.
type Analyzer struct {
	region string
}

// NewAnalyzer builds an analyzer for the given default phone region
// (ISO-3166 alpha-2). An empty region falls back to DefaultRegion.
func NewAnalyzer(defaultRegion string) *Analyzer {
	region := strings.ToUpper(strings.TrimSpace(defaultRegion))
	if region == "" {
		region = DefaultRegion
	}
	return &Analyzer{region: region}
}

// Region reports the configured default phone region.
func (a *Analyzer) Region() string {
	return a.region
}

// Analyze parses the markup once, runs every extractor independently and
// reconciles their partial results. The extractors share only the parsed
// page, which none of them mutates.
func (a *Analyzer) Analyze(pageURL, html string) (*entity.ContactRecord, error) {
	// LinkedIn requires authentication and dynamic rendering; static markup
	// analysis yields nothing useful there.
	if isLinkedInHost(pageURL) {
		return linkedInStub(pageURL), nil
	}

	page, err := parsePage(pageURL, html)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	structured := extractStructured(page)
	// Publisher-asserted phones pass the same possible+valid gate as
	// text-matched ones; an invalid number is dropped, not stored verbatim.
	structured.phones = normalizePhones(structured.phones, a.region)

	patterns := partial{
		emails:   extractEmails(page.text),
		phones:   extractPhones(page.text, a.region),
		whatsapp: extractWhatsapp(page),
		socials:  extractSocials(page.links),
	}

	name := structured.name
	if name == "" {
		name = resolveName(page)
	}

	return mergeRecords(pageURL, name, structured, patterns), nil
}

func isLinkedInHost(pageURL string) bool {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return strings.Contains(strings.ToLower(pageURL), "linkedin.com")
	}
	host := strings.ToLower(u.Hostname())
	return host == "linkedin.com" || strings.HasSuffix(host, ".linkedin.com")
}

func linkedInStub(pageURL string) *entity.ContactRecord {
	name := "LinkedIn"
	return &entity.ContactRecord{
		URL:      pageURL,
		Name:     &name,
		Emails:   []string{},
		Phones:   []string{},
		Whatsapp: []string{},
		Socials:  map[string][]string{"linkedin": {pageURL}},
	}
}
