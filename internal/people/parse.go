package people

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/octobees/contact-scout/internal/entity"
)

const (
	cardSelector    = `[data-test-reusable-org-people-profiles-entity-result], .artdeco-entity-lockup`
	nameSelector    = `span[aria-hidden="true"], .artdeco-entity-lockup__title`
	titleSelector   = `.artdeco-entity-lockup__subtitle, .entity-result__primary-subtitle, .artdeco-entity-lockup__description`
	linkSelector    = `a.app-aware-link, a[data-test-app-aware-link]`
	captionSelector = `.artdeco-entity-lockup__caption, .entity-result__secondary-subtitle`
)

// parseCards extracts the visible people cards from a rendered page snapshot.
// Cards with no usable field at all are dropped.
func parseCards(html string) []entity.Person {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var people []entity.Person
	doc.Find(cardSelector).Each(func(_ int, card *goquery.Selection) {
		name := strings.TrimSpace(card.Find(nameSelector).First().Text())
		title := strings.TrimSpace(card.Find(titleSelector).First().Text())

		// Profile URL is the preferred contact; location/headline is the fallback.
		contact := strings.TrimSpace(card.Find(linkSelector).First().AttrOr("href", ""))
		if contact == "" {
			contact = strings.TrimSpace(card.Find(captionSelector).First().Text())
		}

		if name == "" && title == "" && contact == "" {
			return
		}
		people = append(people, entity.Person{Name: name, Title: title, Contact: contact})
	})
	return people
}
