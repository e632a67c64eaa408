// Package scoring rates how complete an extracted contact record is. Scores
// are purely informational and never influence extraction.
package scoring

import "github.com/octobees/contact-scout/internal/entity"

const (
	categoryIdentity = "identity"
	categoryContact  = "contact_channels"
	categorySocial   = "social_presence"
)

// Score reports the aggregate value and the per-category breakdown.
type Score struct {
	Total     int            `json:"total"`
	Breakdown map[string]int `json:"breakdown"`
}

// Compute rates the record on a 0-100 scale.
func Compute(record *entity.ContactRecord) Score {
	breakdown := map[string]int{
		categoryIdentity: scoreIdentity(record),
		categoryContact:  scoreContact(record),
		categorySocial:   scoreSocial(record),
	}

	total := 0
	for _, value := range breakdown {
		total += value
	}

	return Score{Total: total, Breakdown: breakdown}
}

func scoreIdentity(record *entity.ContactRecord) int {
	if record.Name != nil && *record.Name != "" {
		return 20
	}
	return 0
}

func scoreContact(record *entity.ContactRecord) int {
	score := 0
	if len(record.Emails) > 0 {
		score += 20
	}
	if len(record.Phones) > 0 {
		score += 20
	}
	if len(record.Whatsapp) > 0 {
		score += 10
	}
	return score
}

func scoreSocial(record *entity.ContactRecord) int {
	score := 10 * len(record.Socials)
	if score > 30 {
		score = 30
	}
	return score
}
