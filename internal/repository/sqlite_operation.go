package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vkravets/tsekh/internal/db"
	"github.com/vkravets/tsekh/internal/domain"
)

// operationColumns is the canonical SELECT column list for order_operations.
const operationColumns = `id, order_id, section_id, assigned_worker_id, name,
		sort_order, quantity, norm_per_unit_min, status,
		scheduled_start_at, scheduled_end_at, completed_qty, created_at, updated_at`

// SQLiteOperationRepo implements OperationRepo using a SQLite database.
type SQLiteOperationRepo struct {
	db db.DBTX
}

// NewSQLiteOperationRepo creates a new SQLiteOperationRepo.
func NewSQLiteOperationRepo(conn db.DBTX) *SQLiteOperationRepo {
	return &SQLiteOperationRepo{db: conn}
}

func (r *SQLiteOperationRepo) Create(ctx context.Context, op *domain.Operation) error {
	query := `INSERT INTO order_operations (id, order_id, section_id, assigned_worker_id, name,
		sort_order, quantity, norm_per_unit_min, status,
		scheduled_start_at, scheduled_end_at, completed_qty, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		op.ID,
		op.OrderID,
		op.SectionID,
		nullableStrToValue(op.AssignedWorkerID),
		op.Name,
		op.SortOrder,
		op.Quantity,
		op.NormPerUnitMin,
		string(op.Status),
		nullableTimeToString(op.ScheduledStartAt, time.RFC3339),
		nullableTimeToString(op.ScheduledEndAt, time.RFC3339),
		op.CompletedQty,
		op.CreatedAt.UTC().Format(time.RFC3339),
		op.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting operation: %w", err)
	}
	return nil
}

func (r *SQLiteOperationRepo) GetByID(ctx context.Context, id string) (*domain.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM order_operations WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	op, err := scanOperationFrom(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("operation: %w", ErrNotFound)
		}
		return nil, err
	}
	return op, nil
}

func (r *SQLiteOperationRepo) ListByOrder(ctx context.Context, orderID string) ([]*domain.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM order_operations
		WHERE order_id = ? ORDER BY sort_order ASC`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("listing operations by order: %w", err)
	}
	defer rows.Close()
	return scanOperations(rows)
}

func (r *SQLiteOperationRepo) ListByWorker(ctx context.Context, workerID string) ([]*domain.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM order_operations
		WHERE assigned_worker_id = ? ORDER BY scheduled_start_at ASC`
	rows, err := r.db.QueryContext(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("listing operations by worker: %w", err)
	}
	defer rows.Close()
	return scanOperations(rows)
}

func (r *SQLiteOperationRepo) ListAssignedWindows(ctx context.Context) ([]domain.BusyWindow, error) {
	query := `SELECT id, assigned_worker_id, scheduled_start_at, scheduled_end_at
		FROM order_operations
		WHERE assigned_worker_id IS NOT NULL
		  AND scheduled_start_at IS NOT NULL
		  AND scheduled_end_at IS NOT NULL`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing assigned windows: %w", err)
	}
	defer rows.Close()

	var windows []domain.BusyWindow
	for rows.Next() {
		var w domain.BusyWindow
		var startStr, endStr string
		if err := rows.Scan(&w.OperationID, &w.WorkerID, &startStr, &endStr); err != nil {
			return nil, fmt.Errorf("scanning assigned window: %w", err)
		}
		w.StartAt, err = time.Parse(time.RFC3339, startStr)
		if err != nil {
			return nil, fmt.Errorf("parsing scheduled_start_at: %w", err)
		}
		w.EndAt, err = time.Parse(time.RFC3339, endStr)
		if err != nil {
			return nil, fmt.Errorf("parsing scheduled_end_at: %w", err)
		}
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assigned windows: %w", err)
	}
	return windows, nil
}

func (r *SQLiteOperationRepo) Update(ctx context.Context, op *domain.Operation) error {
	query := `UPDATE order_operations SET section_id = ?, assigned_worker_id = ?, name = ?,
		sort_order = ?, quantity = ?, norm_per_unit_min = ?, status = ?,
		scheduled_start_at = ?, scheduled_end_at = ?, completed_qty = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		op.SectionID,
		nullableStrToValue(op.AssignedWorkerID),
		op.Name,
		op.SortOrder,
		op.Quantity,
		op.NormPerUnitMin,
		string(op.Status),
		nullableTimeToString(op.ScheduledStartAt, time.RFC3339),
		nullableTimeToString(op.ScheduledEndAt, time.RFC3339),
		op.CompletedQty,
		op.UpdatedAt.UTC().Format(time.RFC3339),
		op.ID,
	)
	if err != nil {
		return fmt.Errorf("updating operation: %w", err)
	}
	return nil
}

func (r *SQLiteOperationRepo) UpdateSchedule(ctx context.Context, id string, start, end time.Time, workerID *string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	if workerID != nil {
		query := `UPDATE order_operations
			SET scheduled_start_at = ?, scheduled_end_at = ?, assigned_worker_id = ?, updated_at = ?
			WHERE id = ?`
		if _, err := r.db.ExecContext(ctx, query,
			start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339), *workerID, now, id,
		); err != nil {
			return fmt.Errorf("updating operation schedule: %w", err)
		}
		return nil
	}

	// No new assignment: leave assigned_worker_id untouched.
	query := `UPDATE order_operations
		SET scheduled_start_at = ?, scheduled_end_at = ?, updated_at = ?
		WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query,
		start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339), now, id,
	); err != nil {
		return fmt.Errorf("updating operation schedule: %w", err)
	}
	return nil
}

func (r *SQLiteOperationRepo) UpdateStatus(ctx context.Context, id string, status domain.OperationStatus, completedQty int) error {
	query := `UPDATE order_operations SET status = ?, completed_qty = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(status), completedQty, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("updating operation status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("operation %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteOperationRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM order_operations WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting operation: %w", err)
	}
	return nil
}

// scanOperationFrom scans one operation using the given scan function,
// shared between *sql.Row and *sql.Rows.
func scanOperationFrom(scan func(dest ...any) error) (*domain.Operation, error) {
	var op domain.Operation
	var workerStr, startStr, endStr sql.NullString
	var statusStr, createdAtStr, updatedAtStr string

	err := scan(
		&op.ID, &op.OrderID, &op.SectionID, &workerStr, &op.Name,
		&op.SortOrder, &op.Quantity, &op.NormPerUnitMin, &statusStr,
		&startStr, &endStr, &op.CompletedQty, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	op.Status = domain.OperationStatus(statusStr)
	op.AssignedWorkerID = parseNullableStr(workerStr)
	op.ScheduledStartAt = parseNullableTime(startStr, time.RFC3339)
	op.ScheduledEndAt = parseNullableTime(endStr, time.RFC3339)

	var parseErr error
	op.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	op.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &op, nil
}

func scanOperations(rows *sql.Rows) ([]*domain.Operation, error) {
	var ops []*domain.Operation
	for rows.Next() {
		op, err := scanOperationFrom(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning operation row: %w", err)
		}
		ops = append(ops, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating operations: %w", err)
	}
	return ops, nil
}
