package extract

import "strings"

// platformDomains maps one platform identifier to the domain substrings that
// identify it. Table order decides classification when a URL could match
// more than one entry.
type platformDomains struct {
	platform string
	domains  []string
}

var socialDomains = []platformDomains{
	{"facebook", []string{"facebook.com", "fb.com"}},
	{"instagram", []string{"instagram.com"}},
	{"x", []string{"x.com", "twitter.com"}},
	{"linkedin", []string{"linkedin.com"}},
	{"tiktok", []string{"tiktok.com"}},
	{"snapchat", []string{"snapchat.com"}},
	{"youtube", []string{"youtube.com", "youtu.be"}},
}

// classifySocial assigns a URL to at most one platform, first table match wins.
func classifySocial(link string) (string, bool) {
	lower := strings.ToLower(link)
	for _, entry := range socialDomains {
		for _, domain := range entry.domains {
			if strings.Contains(lower, domain) {
				return entry.platform, true
			}
		}
	}
	return "", false
}

// extractSocials classifies every outbound hyperlink and groups the matches
// per platform. Platforms without a match are absent from the map.
func extractSocials(links []string) map[string][]string {
	out := make(map[string][]string)
	for _, link := range links {
		if platform, ok := classifySocial(link); ok {
			out[platform] = append(out[platform], link)
		}
	}
	for platform, list := range out {
		out[platform] = uniquePreserveOrder(list)
	}
	return out
}
