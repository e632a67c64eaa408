package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/octobees/contact-scout/internal/dto"
	"github.com/octobees/contact-scout/internal/entity"
	"github.com/octobees/contact-scout/internal/repository"
)

// RecordsService exposes read access to stored analysis records.
type RecordsService struct {
	repo repository.RecordsRepository
}

// NewRecordsService builds a new RecordsService instance.
func NewRecordsService(repo repository.RecordsRepository) *RecordsService {
	return &RecordsService{repo: repo}
}

// ListRecords returns stored records honoring the filter.
func (s *RecordsService) ListRecords(ctx context.Context, filter dto.RecordsFilter) ([]entity.AnalysisRecord, error) {
	return s.repo.List(ctx, filter)
}

// GetRecord returns one stored record by id.
func (s *RecordsService) GetRecord(ctx context.Context, id uuid.UUID) (*entity.AnalysisRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// ExportCSV streams every stored record as CSV. Multi-valued fields are
// joined with semicolons; the social map is emitted as compact JSON.
func (s *RecordsService) ExportCSV(ctx context.Context, w io.Writer) error {
	records, err := s.repo.List(ctx, dto.RecordsFilter{})
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"url", "name", "emails", "phones", "whatsapp", "socials"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, record := range records {
		name := ""
		if record.Name != nil {
			name = *record.Name
		}
		socials := ""
		if len(record.Socials) > 0 {
			encoded, err := json.Marshal(record.Socials)
			if err != nil {
				return fmt.Errorf("encode socials: %w", err)
			}
			socials = string(encoded)
		}
		row := []string{
			record.URL,
			name,
			strings.Join(record.Emails, ";"),
			strings.Join(record.Phones, ";"),
			strings.Join(record.Whatsapp, ";"),
			socials,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
