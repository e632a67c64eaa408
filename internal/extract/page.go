package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// page is the immutable parsed view of a fetched document, shared read-only
// by all extractors.
type page struct {
	doc   *goquery.Document
	text  string
	links []string
}

func parsePage(pageURL, html string) (*page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" {
			return
		}
		links = append(links, absoluteURL(base, href))
	})

	return &page{
		doc:   doc,
		text:  pageText(doc),
		links: links,
	}, nil
}

// pageText joins the document's text nodes with newlines. A plain Text()
// call concatenates nodes with no separator, which fuses adjacent elements
// in minified markup and corrupts pattern matches.
func pageText(doc *goquery.Document) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if trimmed := strings.TrimSpace(n.Data); trimmed != "" {
				b.WriteString(trimmed)
				b.WriteByte('\n')
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, root := range doc.Nodes {
		walk(root)
	}
	return b.String()
}

// absoluteURL resolves href against the page URL, keeping the raw value when
// resolution is not possible.
func absoluteURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	if base == nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}
