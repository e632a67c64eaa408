package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/contact-scout/internal/dto"
	"github.com/octobees/contact-scout/internal/entity"
)

// ErrRecordNotFound is returned when no analysis record matches the lookup.
var ErrRecordNotFound = errors.New("contact record not found")

// RecordsRepository describes persistence operations for analysis records.
type RecordsRepository interface {
	Insert(ctx context.Context, record *entity.AnalysisRecord) error
	List(ctx context.Context, filter dto.RecordsFilter) ([]entity.AnalysisRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.AnalysisRecord, error)
}

// pgxPool is the subset of pgxpool.Pool the repositories touch, kept narrow
// so tests can substitute a stub.
type pgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ pgxPool = (*pgxpool.Pool)(nil)

// PGXRecordsRepository implements RecordsRepository with pgx.
type PGXRecordsRepository struct {
	pool pgxPool
}

// NewPGXRecordsRepository instantiates a records repository.
func NewPGXRecordsRepository(pool *pgxpool.Pool) *PGXRecordsRepository {
	return &PGXRecordsRepository{pool: pool}
}

// Insert stores a new analysis record and fills its id and creation time.
func (r *PGXRecordsRepository) Insert(ctx context.Context, record *entity.AnalysisRecord) error {
	if record == nil {
		return fmt.Errorf("record payload is nil")
	}

	socials, err := json.Marshal(record.Socials)
	if err != nil {
		return fmt.Errorf("marshal socials: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO contact_records (source_url, name, emails, phones, whatsapp, socials, region)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `, record.URL, record.Name, record.Emails, record.Phones, record.Whatsapp, socials, record.Region)

	if err := row.Scan(&record.ID, &record.CreatedAt); err != nil {
		return fmt.Errorf("insert contact record: %w", err)
	}
	return nil
}

// List returns stored records, newest first, honoring the filter.
func (r *PGXRecordsRepository) List(ctx context.Context, filter dto.RecordsFilter) ([]entity.AnalysisRecord, error) {
	query := `SELECT id, source_url, name, emails, phones, whatsapp, socials, region, created_at FROM contact_records`

	clauses := make([]string, 0, 2)
	args := make([]any, 0, 2)
	idx := 1

	if q := strings.TrimSpace(filter.Q); q != "" {
		clauses = append(clauses, fmt.Sprintf("(source_url ILIKE $%d OR name ILIKE $%d)", idx, idx))
		args = append(args, "%"+q+"%")
		idx++
	}
	if filter.Since != nil {
		clauses = append(clauses, fmt.Sprintf("created_at >= $%d", idx))
		args = append(args, *filter.Since)
		idx++
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC"

	if filter.PerPage > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", idx, idx+1)
		args = append(args, filter.PerPage, (page-1)*filter.PerPage)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contact records: %w", err)
	}
	defer rows.Close()

	var records []entity.AnalysisRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact records: %w", err)
	}
	return records, nil
}

// GetByID retrieves a single analysis record.
func (r *PGXRecordsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.AnalysisRecord, error) {
	row := r.pool.QueryRow(ctx, `
        SELECT id, source_url, name, emails, phones, whatsapp, socials, region, created_at
        FROM contact_records WHERE id = $1
    `, id)

	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return record, nil
}

func scanRecord(row pgx.Row) (*entity.AnalysisRecord, error) {
	var record entity.AnalysisRecord
	var socials []byte
	if err := row.Scan(
		&record.ID,
		&record.URL,
		&record.Name,
		&record.Emails,
		&record.Phones,
		&record.Whatsapp,
		&socials,
		&record.Region,
		&record.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan contact record: %w", err)
	}

	record.Socials = make(map[string][]string)
	if len(socials) > 0 {
		if err := json.Unmarshal(socials, &record.Socials); err != nil {
			return nil, fmt.Errorf("decode socials: %w", err)
		}
	}
	if record.Emails == nil {
		record.Emails = []string{}
	}
	if record.Phones == nil {
		record.Phones = []string{}
	}
	if record.Whatsapp == nil {
		record.Whatsapp = []string{}
	}
	return &record, nil
}
