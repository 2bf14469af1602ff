package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vkravets/tsekh/internal/db"
	"github.com/vkravets/tsekh/internal/domain"
)

// SQLiteSectionRepo implements SectionRepo using a SQLite database.
// Operation-type labels live in a child table and are loaded with the
// section.
type SQLiteSectionRepo struct {
	db db.DBTX
}

// NewSQLiteSectionRepo creates a new SQLiteSectionRepo.
func NewSQLiteSectionRepo(conn db.DBTX) *SQLiteSectionRepo {
	return &SQLiteSectionRepo{db: conn}
}

func (r *SQLiteSectionRepo) Create(ctx context.Context, s *domain.Section) error {
	query := `INSERT INTO sections (id, name, capacity_minutes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.CapacityMinutes,
		s.CreatedAt.UTC().Format(time.RFC3339),
		s.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting section: %w", err)
	}
	return r.replaceLabels(ctx, s.ID, s.OperationTypes)
}

func (r *SQLiteSectionRepo) GetByID(ctx context.Context, id string) (*domain.Section, error) {
	query := `SELECT id, name, capacity_minutes, created_at, updated_at FROM sections WHERE id = ?`
	return r.scanSection(ctx, r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteSectionRepo) GetByName(ctx context.Context, name string) (*domain.Section, error) {
	query := `SELECT id, name, capacity_minutes, created_at, updated_at FROM sections WHERE name = ?`
	return r.scanSection(ctx, r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLiteSectionRepo) List(ctx context.Context) ([]*domain.Section, error) {
	query := `SELECT id, name, capacity_minutes, created_at, updated_at FROM sections ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}
	defer rows.Close()

	var sections []*domain.Section
	for rows.Next() {
		var s domain.Section
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&s.ID, &s.Name, &s.CapacityMinutes, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning section row: %w", err)
		}
		if err := parseSectionTimes(&s, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		sections = append(sections, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sections: %w", err)
	}

	for _, s := range sections {
		labels, err := r.loadLabels(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		s.OperationTypes = labels
	}
	return sections, nil
}

func (r *SQLiteSectionRepo) Update(ctx context.Context, s *domain.Section) error {
	query := `UPDATE sections SET name = ?, capacity_minutes = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		s.Name, s.CapacityMinutes, s.UpdatedAt.UTC().Format(time.RFC3339), s.ID)
	if err != nil {
		return fmt.Errorf("updating section: %w", err)
	}
	return r.replaceLabels(ctx, s.ID, s.OperationTypes)
}

func (r *SQLiteSectionRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sections WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting section: %w", err)
	}
	return nil
}

func (r *SQLiteSectionRepo) scanSection(ctx context.Context, row *sql.Row) (*domain.Section, error) {
	var s domain.Section
	var createdAtStr, updatedAtStr string
	err := row.Scan(&s.ID, &s.Name, &s.CapacityMinutes, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("section: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning section: %w", err)
	}
	if err := parseSectionTimes(&s, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	labels, err := r.loadLabels(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.OperationTypes = labels
	return &s, nil
}

func (r *SQLiteSectionRepo) loadLabels(ctx context.Context, sectionID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT label FROM section_operation_types WHERE section_id = ? ORDER BY label`, sectionID)
	if err != nil {
		return nil, fmt.Errorf("loading section labels: %w", err)
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, fmt.Errorf("scanning section label: %w", err)
		}
		labels = append(labels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating section labels: %w", err)
	}
	return labels, nil
}

func (r *SQLiteSectionRepo) replaceLabels(ctx context.Context, sectionID string, labels []string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM section_operation_types WHERE section_id = ?`, sectionID); err != nil {
		return fmt.Errorf("clearing section labels: %w", err)
	}
	for _, l := range labels {
		if l == "" {
			continue
		}
		if _, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO section_operation_types (section_id, label) VALUES (?, ?)`,
			sectionID, l); err != nil {
			return fmt.Errorf("inserting section label: %w", err)
		}
	}
	return nil
}

func parseSectionTimes(s *domain.Section, createdAtStr, updatedAtStr string) error {
	var err error
	s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return fmt.Errorf("parsing updated_at: %w", err)
	}
	return nil
}
