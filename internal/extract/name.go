package extract

import (
	"fmt"
	"strings"
)

// resolveName walks the fallback chain used when structured metadata yields
// no name: og:site_name, og:title, the document title, then the first h1.
// Whitespace-only values are treated as absent and the chain continues.
func resolveName(p *page) string {
	if v := metaContent(p, "og:site_name"); v != "" {
		return v
	}
	if v := metaContent(p, "og:title"); v != "" {
		return v
	}
	if v := strings.TrimSpace(p.doc.Find("title").First().Text()); v != "" {
		return v
	}
	if v := strings.TrimSpace(p.doc.Find("h1").First().Text()); v != "" {
		return v
	}
	return ""
}

func metaContent(p *page, property string) string {
	selector := fmt.Sprintf(`meta[property=%q]`, property)
	return strings.TrimSpace(p.doc.Find(selector).First().AttrOr("content", ""))
}
