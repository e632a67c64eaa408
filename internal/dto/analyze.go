package dto

import (
	"github.com/octobees/contact-scout/internal/entity"
	"github.com/octobees/contact-scout/internal/scoring"
)

// AnalyzeRequest is the payload accepted by the analysis endpoint.
type AnalyzeRequest struct {
	URL    string `json:"url"`
	Region string `json:"region,omitempty"`
}

// AnalyzeResponse pairs the stored record with its completeness score.
type AnalyzeResponse struct {
	Record *entity.AnalysisRecord `json:"record"`
	Score  scoring.Score          `json:"score"`
}
