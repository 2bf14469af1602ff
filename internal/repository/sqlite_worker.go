package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vkravets/tsekh/internal/db"
	"github.com/vkravets/tsekh/internal/domain"
)

// SQLiteWorkerRepo implements WorkerRepo using a SQLite database.
// Capability labels live in a child table and are loaded with the worker.
type SQLiteWorkerRepo struct {
	db db.DBTX
}

// NewSQLiteWorkerRepo creates a new SQLiteWorkerRepo.
func NewSQLiteWorkerRepo(conn db.DBTX) *SQLiteWorkerRepo {
	return &SQLiteWorkerRepo{db: conn}
}

func (r *SQLiteWorkerRepo) Create(ctx context.Context, w *domain.Worker) error {
	query := `INSERT INTO workers (id, full_name, section_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		w.FullName,
		nullableStrToValue(w.SectionID),
		w.CreatedAt.UTC().Format(time.RFC3339),
		w.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting worker: %w", err)
	}
	return r.replaceCapabilities(ctx, w.ID, w.OperationTypes)
}

func (r *SQLiteWorkerRepo) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	query := `SELECT id, full_name, section_id, created_at, updated_at FROM workers WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var w domain.Worker
	var sectionStr sql.NullString
	var createdAtStr, updatedAtStr string
	err := row.Scan(&w.ID, &w.FullName, &sectionStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("worker: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning worker: %w", err)
	}
	if err := populateWorker(&w, sectionStr, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	caps, err := r.loadCapabilities(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	w.OperationTypes = caps
	return &w, nil
}

func (r *SQLiteWorkerRepo) List(ctx context.Context) ([]*domain.Worker, error) {
	query := `SELECT id, full_name, section_id, created_at, updated_at FROM workers ORDER BY full_name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing workers: %w", err)
	}
	defer rows.Close()

	var workers []*domain.Worker
	for rows.Next() {
		var w domain.Worker
		var sectionStr sql.NullString
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&w.ID, &w.FullName, &sectionStr, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning worker row: %w", err)
		}
		if err := populateWorker(&w, sectionStr, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		workers = append(workers, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workers: %w", err)
	}

	for _, w := range workers {
		caps, err := r.loadCapabilities(ctx, w.ID)
		if err != nil {
			return nil, err
		}
		w.OperationTypes = caps
	}
	return workers, nil
}

func (r *SQLiteWorkerRepo) Update(ctx context.Context, w *domain.Worker) error {
	query := `UPDATE workers SET full_name = ?, section_id = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		w.FullName,
		nullableStrToValue(w.SectionID),
		w.UpdatedAt.UTC().Format(time.RFC3339),
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("updating worker: %w", err)
	}
	return r.replaceCapabilities(ctx, w.ID, w.OperationTypes)
}

func (r *SQLiteWorkerRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM workers WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting worker: %w", err)
	}
	return nil
}

func (r *SQLiteWorkerRepo) loadCapabilities(ctx context.Context, workerID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT label FROM worker_capabilities WHERE worker_id = ? ORDER BY label`, workerID)
	if err != nil {
		return nil, fmt.Errorf("loading worker capabilities: %w", err)
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, fmt.Errorf("scanning worker capability: %w", err)
		}
		labels = append(labels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating worker capabilities: %w", err)
	}
	return labels, nil
}

func (r *SQLiteWorkerRepo) replaceCapabilities(ctx context.Context, workerID string, labels []string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM worker_capabilities WHERE worker_id = ?`, workerID); err != nil {
		return fmt.Errorf("clearing worker capabilities: %w", err)
	}
	for _, l := range labels {
		if l == "" {
			continue
		}
		if _, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO worker_capabilities (worker_id, label) VALUES (?, ?)`,
			workerID, l); err != nil {
			return fmt.Errorf("inserting worker capability: %w", err)
		}
	}
	return nil
}

func populateWorker(w *domain.Worker, sectionStr sql.NullString, createdAtStr, updatedAtStr string) error {
	w.SectionID = parseNullableStr(sectionStr)

	var err error
	w.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	w.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return fmt.Errorf("parsing updated_at: %w", err)
	}
	return nil
}
