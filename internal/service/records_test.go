package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/octobees/contact-scout/internal/dto"
	"github.com/octobees/contact-scout/internal/entity"
)

func TestRecordsServiceExportCSV(t *testing.T) {
	name := "Acme"
	repo := &stubRecordsRepository{
		list: func(ctx context.Context, filter dto.RecordsFilter) ([]entity.AnalysisRecord, error) {
			return []entity.AnalysisRecord{
				{
					ID: uuid.New(),
					ContactRecord: entity.ContactRecord{
						URL:      "https://acme.example",
						Name:     &name,
						Emails:   []string{"info@acme.com", "sales@acme.com"},
						Phones:   []string{"+966551234567"},
						Whatsapp: []string{},
						Socials:  map[string][]string{"facebook": {"https://facebook.com/acme"}},
					},
					Region: "SA",
				},
				{
					ContactRecord: entity.ContactRecord{
						URL:      "https://bare.example",
						Emails:   []string{},
						Phones:   []string{},
						Whatsapp: []string{},
						Socials:  map[string][]string{},
					},
				},
			}, nil
		},
	}

	var buf bytes.Buffer
	if err := NewRecordsService(repo).ExportCSV(context.Background(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and two rows, got %d lines: %q", len(lines), buf.String())
	}
	if lines[0] != "url,name,emails,phones,whatsapp,socials" {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "info@acme.com;sales@acme.com") {
		t.Fatalf("multi-valued fields should join with semicolons: %s", lines[1])
	}
	if !strings.Contains(lines[1], `""facebook""`) {
		t.Fatalf("socials should be embedded as JSON: %s", lines[1])
	}
	if !strings.HasPrefix(lines[2], "https://bare.example,,,,,") {
		t.Fatalf("empty record should produce empty cells: %s", lines[2])
	}
}

func TestRecordsServiceListPassesFilterThrough(t *testing.T) {
	var gotFilter dto.RecordsFilter
	repo := &stubRecordsRepository{
		list: func(ctx context.Context, filter dto.RecordsFilter) ([]entity.AnalysisRecord, error) {
			gotFilter = filter
			return nil, nil
		},
	}

	filter := dto.RecordsFilter{Q: "acme", Page: 2, PerPage: 10}
	if _, err := NewRecordsService(repo).ListRecords(context.Background(), filter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotFilter != filter {
		t.Fatalf("filter not passed through: %+v", gotFilter)
	}
}
