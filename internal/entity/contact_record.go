package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactRecord is the reconciled output of analyzing a single page. It is
// built once per analysis and never mutated afterwards.
type ContactRecord struct {
	URL      string              `json:"url"`
	Name     *string             `json:"name"`
	Emails   []string            `json:"emails"`
	Phones   []string            `json:"phones"`
	Whatsapp []string            `json:"whatsapp"`
	Socials  map[string][]string `json:"socials"`
}

// AnalysisRecord is a ContactRecord persisted with its metadata.
type AnalysisRecord struct {
	ID uuid.UUID `json:"id"`
	ContactRecord
	Region    string    `json:"region"`
	CreatedAt time.Time `json:"created_at"`
}
