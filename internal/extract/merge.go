package extract

import (
	"strings"

	"github.com/octobees/contact-scout/internal/entity"
)

// partial holds one extractor's contribution. Every extractor owns its own
// instance; partials only meet in mergeRecords.
type partial struct {
	name     string
	emails   []string
	phones   []string
	whatsapp []string
	socials  map[string][]string
}

func newPartial() partial {
	return partial{socials: make(map[string][]string)}
}

func (p *partial) dedupe() {
	p.emails = uniquePreserveOrder(p.emails)
	p.phones = uniquePreserveOrder(p.phones)
	p.whatsapp = uniquePreserveOrder(p.whatsapp)
	for platform, links := range p.socials {
		p.socials[platform] = uniquePreserveOrder(links)
	}
}

// uniquePreserveOrder trims each entry and drops empties and duplicates,
// keeping first-seen order.
func uniquePreserveOrder(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}

// mergeRecords reconciles the structured and pattern-extracted partials.
// Structured values come first in every sequence; pattern matches only
// append distinct new entries, never displace existing ones.
func mergeRecords(pageURL, name string, structured, patterns partial) *entity.ContactRecord {
	record := &entity.ContactRecord{
		URL:      pageURL,
		Emails:   mergeLists(structured.emails, patterns.emails),
		Phones:   mergeLists(structured.phones, patterns.phones),
		Whatsapp: mergeLists(structured.whatsapp, patterns.whatsapp),
		Socials:  make(map[string][]string),
	}

	if trimmed := strings.TrimSpace(name); trimmed != "" {
		record.Name = &trimmed
	}

	// Walk the platform table rather than the maps so the merge order is
	// independent of map iteration.
	for _, entry := range socialDomains {
		merged := mergeLists(structured.socials[entry.platform], patterns.socials[entry.platform])
		if len(merged) > 0 {
			record.Socials[entry.platform] = merged
		}
	}

	return record
}

func mergeLists(first, second []string) []string {
	combined := make([]string, 0, len(first)+len(second))
	combined = append(combined, first...)
	combined = append(combined, second...)
	return uniquePreserveOrder(combined)
}
