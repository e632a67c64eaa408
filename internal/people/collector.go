// Package people implements the bulk LinkedIn company-people collector: a
// browser-driven scroll loop that gathers simple name/title/contact entries.
// It shares no code with the single-page contact analyzer.
package people

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/octobees/contact-scout/internal/entity"
)

const (
	defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	defaultScrollSettle = 1200 * time.Millisecond
	defaultNavTimeout   = 45 * time.Second
)

// Config controls a collection run.
type Config struct {
	// LiAt is the LinkedIn li_at session cookie; empty means anonymous.
	LiAt string
	// Limit stops collection after this many people; 0 collects everything visible.
	Limit        int
	UserAgent    string
	ScrollSettle time.Duration
	NavTimeout   time.Duration
}

// Collector drives a headless browser session over a company people page.
type Collector struct {
	cfg Config
}

// NewCollector applies defaults and builds a collector.
func NewCollector(cfg Config) *Collector {
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.ScrollSettle <= 0 {
		cfg.ScrollSettle = defaultScrollSettle
	}
	if cfg.NavTimeout <= 0 {
		cfg.NavTimeout = defaultNavTimeout
	}
	return &Collector{cfg: cfg}
}

// Collect navigates to the people page and repeats extract-scroll rounds
// until the page stops growing or the limit is reached.
func (c *Collector) Collect(ctx context.Context, pageURL string) ([]entity.Person, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", "new"),
		chromedp.Flag("disable-gpu", true),
		chromedp.UserAgent(c.cfg.UserAgent),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	navCtx, navCancel := context.WithTimeout(taskCtx, c.cfg.NavTimeout)
	defer navCancel()

	var currentURL string
	actions := []chromedp.Action{
		c.sessionCookieAction(),
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(c.cfg.ScrollSettle),
		chromedp.Location(&currentURL),
	}
	if err := chromedp.Run(navCtx, actions...); err != nil {
		return nil, err
	}

	if isAuthWall(currentURL) {
		log.Printf("people page requires authentication, pass --li-at or set LI_AT")
	}

	var people []entity.Person
	seen := make(map[string]struct{})
	lastHeight := -1

	for {
		var html string
		if err := chromedp.Run(taskCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
			return people, err
		}

		for _, person := range parseCards(html) {
			// Dedup against everything kept so far, not just the previous card.
			key := person.Name + "\x00" + person.Title + "\x00" + person.Contact
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			people = append(people, person)
			if c.cfg.Limit > 0 && len(people) >= c.cfg.Limit {
				return people, nil
			}
		}

		var height int
		if err := chromedp.Run(taskCtx,
			chromedp.Evaluate(`window.scrollBy(0, document.body.scrollHeight)`, nil),
			chromedp.Sleep(c.cfg.ScrollSettle),
			chromedp.Evaluate(`document.body.scrollHeight`, &height),
		); err != nil {
			return people, err
		}
		if height == lastHeight {
			break
		}
		lastHeight = height
	}

	return people, nil
}

func (c *Collector) sessionCookieAction() chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		if c.cfg.LiAt == "" {
			return nil
		}
		return network.SetCookie("li_at", c.cfg.LiAt).
			WithDomain(".linkedin.com").
			WithPath("/").
			WithHTTPOnly(true).
			WithSecure(true).
			Do(ctx)
	})
}

func isAuthWall(currentURL string) bool {
	for _, marker := range []string{"/authwall", "/login", "/checkpoint/"} {
		if strings.Contains(currentURL, marker) {
			return true
		}
	}
	return false
}
