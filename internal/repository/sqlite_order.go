package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vkravets/tsekh/internal/db"
	"github.com/vkravets/tsekh/internal/domain"
)

// orderColumns is the canonical SELECT column list for orders.
const orderColumns = `id, order_number, customer_name, product_name, article,
		quantity, start_date, ship_date, comment, created_at, updated_at`

// SQLiteOrderRepo implements OrderRepo using a SQLite database.
type SQLiteOrderRepo struct {
	db db.DBTX
}

// NewSQLiteOrderRepo creates a new SQLiteOrderRepo.
func NewSQLiteOrderRepo(conn db.DBTX) *SQLiteOrderRepo {
	return &SQLiteOrderRepo{db: conn}
}

func (r *SQLiteOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	query := `INSERT INTO orders (id, order_number, customer_name, product_name, article,
		quantity, start_date, ship_date, comment, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		o.ID,
		o.OrderNumber,
		o.CustomerName,
		o.ProductName,
		o.Article,
		o.Quantity,
		nullableTimeToString(o.StartDate, time.RFC3339),
		nullableTimeToString(o.ShipDate, time.RFC3339),
		o.Comment,
		o.CreatedAt.UTC().Format(time.RFC3339),
		o.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}
	return nil
}

func (r *SQLiteOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`
	return r.scanOrder(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteOrderRepo) GetByNumber(ctx context.Context, number string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_number = ?`
	return r.scanOrder(r.db.QueryRowContext(ctx, query, number))
}

func (r *SQLiteOrderRepo) List(ctx context.Context) ([]*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		o, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}
	return orders, nil
}

func (r *SQLiteOrderRepo) Update(ctx context.Context, o *domain.Order) error {
	query := `UPDATE orders SET order_number = ?, customer_name = ?, product_name = ?,
		article = ?, quantity = ?, start_date = ?, ship_date = ?, comment = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		o.OrderNumber,
		o.CustomerName,
		o.ProductName,
		o.Article,
		o.Quantity,
		nullableTimeToString(o.StartDate, time.RFC3339),
		nullableTimeToString(o.ShipDate, time.RFC3339),
		o.Comment,
		o.UpdatedAt.UTC().Format(time.RFC3339),
		o.ID,
	)
	if err != nil {
		return fmt.Errorf("updating order: %w", err)
	}
	return nil
}

func (r *SQLiteOrderRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM orders WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}
	return nil
}

func (r *SQLiteOrderRepo) scanOrder(row *sql.Row) (*domain.Order, error) {
	var o domain.Order
	var startStr, shipStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.CustomerName, &o.ProductName, &o.Article,
		&o.Quantity, &startStr, &shipStr, &o.Comment, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("order: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning order: %w", err)
	}
	return populateOrder(&o, startStr, shipStr, createdAtStr, updatedAtStr)
}

func scanOrderRow(rows *sql.Rows) (*domain.Order, error) {
	var o domain.Order
	var startStr, shipStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := rows.Scan(
		&o.ID, &o.OrderNumber, &o.CustomerName, &o.ProductName, &o.Article,
		&o.Quantity, &startStr, &shipStr, &o.Comment, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning order row: %w", err)
	}
	return populateOrder(&o, startStr, shipStr, createdAtStr, updatedAtStr)
}

func populateOrder(o *domain.Order, startStr, shipStr sql.NullString, createdAtStr, updatedAtStr string) (*domain.Order, error) {
	o.StartDate = parseNullableTime(startStr, time.RFC3339)
	o.ShipDate = parseNullableTime(shipStr, time.RFC3339)

	var parseErr error
	o.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	o.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return o, nil
}
