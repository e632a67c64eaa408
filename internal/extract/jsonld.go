package extract

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kaptinlin/jsonrepair"
)

const jsonLDSelector = `script[type="application/ld+json"]`

// contribution is what a single JSON-LD entity adds to the structured
// partial. Each visited object returns its own contribution; the fold in
// extractStructured is the only place state accumulates.
type contribution struct {
	name    string
	emails  []string
	phones  []string
	socials []string
}

// extractStructured decodes every JSON-LD block in the document and folds
// the per-entity contributions into one partial record. Blocks that cannot
// be decoded, even after a repair attempt, are skipped; malformed structured
// data never aborts an analysis.
func extractStructured(p *page) partial {
	out := newPartial()

	p.doc.Find(jsonLDSelector).Each(func(_ int, s *goquery.Selection) {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return
		}
		entities, ok := decodeBlock(raw)
		if !ok {
			return
		}
		for _, ent := range entities {
			c := visitEntity(ent)
			if out.name == "" && c.name != "" {
				out.name = c.name
			}
			out.emails = append(out.emails, c.emails...)
			out.phones = append(out.phones, c.phones...)
			for _, link := range c.socials {
				if isWhatsappLink(link) {
					out.whatsapp = append(out.whatsapp, link)
					continue
				}
				if platform, ok := classifySocial(link); ok {
					out.socials[platform] = append(out.socials[platform], link)
				}
			}
		}
	})

	out.dedupe()
	return out
}

// decodeBlock parses a JSON-LD payload into its top-level objects. A value
// may be a single object or an array of objects; anything else is discarded.
func decodeBlock(raw string) ([]map[string]any, bool) {
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		repaired, rerr := jsonrepair.JSONRepair(raw)
		if rerr != nil {
			return nil, false
		}
		if uerr := json.Unmarshal([]byte(repaired), &value); uerr != nil {
			return nil, false
		}
	}

	switch v := value.(type) {
	case map[string]any:
		return []map[string]any{v}, true
	case []any:
		entities := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if obj, ok := item.(map[string]any); ok {
				entities = append(entities, obj)
			}
		}
		return entities, len(entities) > 0
	default:
		return nil, false
	}
}

// visitEntity extracts the contact fields of a single JSON-LD object.
// Unexpected shapes are discarded at each access instead of failing.
func visitEntity(ent map[string]any) contribution {
	c := contribution{
		name:   firstString(ent, "name", "legalName", "alternateName"),
		emails: stringOrList(ent["email"]),
		phones: append(stringOrList(ent["telephone"]), stringOrList(ent["tel"])...),
	}

	if sameAs, ok := ent["sameAs"].([]any); ok {
		for _, item := range sameAs {
			if link, ok := item.(string); ok && strings.TrimSpace(link) != "" {
				c.socials = append(c.socials, strings.TrimSpace(link))
			}
		}
	}

	if points, ok := ent["contactPoint"].([]any); ok {
		for _, item := range points {
			point, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if email, ok := point["email"].(string); ok && strings.TrimSpace(email) != "" {
				c.emails = append(c.emails, strings.TrimSpace(email))
			}
			if tel, ok := point["telephone"].(string); ok && strings.TrimSpace(tel) != "" {
				c.phones = append(c.phones, strings.TrimSpace(tel))
			}
		}
	}

	return c
}

func firstString(ent map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := ent[key].(string); ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

// stringOrList accepts the scalar-or-array convention JSON-LD uses for most
// contact fields.
func stringOrList(value any) []string {
	switch v := value.(type) {
	case string:
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return []string{trimmed}
		}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					out = append(out, trimmed)
				}
			}
		}
		return out
	}
	return nil
}
