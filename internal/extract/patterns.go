package extract

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// phoneCandidatePattern only harvests spans that look like numbers; the
	// possible+valid gate below decides what is actually kept. Newlines mark
	// element boundaries in the page text, so a candidate never crosses one.
	phoneCandidatePattern = regexp.MustCompile(`\+?[0-9][-0-9()./ \t]{6,}[0-9]`)

	whatsappPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)https?://(api\.)?whatsapp\.com/send\?[^\s"'<>]*`),
		regexp.MustCompile(`(?i)https?://wa\.me/[^\s"'<>]+`),
	}
)

// extractEmails returns every distinct email-shaped match in the page text,
// in order of first appearance.
func extractEmails(text string) []string {
	return uniquePreserveOrder(emailPattern.FindAllString(text, -1))
}

// extractPhones scans the page text for phone candidates and keeps only
// those that are both possible and valid for their resolved region,
// canonicalized to E.164.
func extractPhones(text, region string) []string {
	candidates := phoneCandidatePattern.FindAllString(text, -1)
	results := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if normalized := normalizePhone(candidate, region); normalized != "" {
			results = append(results, normalized)
		}
	}
	return uniquePreserveOrder(results)
}

// normalizePhone parses a single candidate against the default region and
// returns its E.164 form, or "" when the candidate does not survive the
// possibility and validity checks.
func normalizePhone(raw, region string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if region == "" {
		region = DefaultRegion
	}
	number, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return ""
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return ""
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}

func normalizePhones(raws []string, region string) []string {
	results := make([]string, 0, len(raws))
	for _, raw := range raws {
		if normalized := normalizePhone(raw, region); normalized != "" {
			results = append(results, normalized)
		}
	}
	return uniquePreserveOrder(results)
}

func isWhatsappLink(link string) bool {
	for _, pattern := range whatsappPatterns {
		if pattern.MatchString(link) {
			return true
		}
	}
	return false
}

// extractWhatsapp collects WhatsApp deep links and wa.me short links from
// both the resolved hyperlinks and the raw page text.
func extractWhatsapp(p *page) []string {
	var links []string
	for _, link := range p.links {
		if isWhatsappLink(link) {
			links = append(links, link)
		}
	}
	for _, pattern := range whatsappPatterns {
		links = append(links, pattern.FindAllString(p.text, -1)...)
	}
	return uniquePreserveOrder(links)
}
