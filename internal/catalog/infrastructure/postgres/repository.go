package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/retailops/inventory-manager/internal/catalog/domain"
	"github.com/retailops/inventory-manager/pkg/outbox"
	"github.com/retailops/inventory-manager/pkg/tracing"
)

const uniqueViolation = "23505"

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

// InsertProduct inserts only when no product carries the same name. The
// INSERT ... SELECT ... WHERE NOT EXISTS form keeps the id sequence from
// advancing on a rejected insert; the UNIQUE index on name is the backstop
// when two sessions race past the NOT EXISTS predicate.
func (r *Repository) InsertProduct(ctx context.Context, name string, departmentID int64, price decimal.Decimal, quantity int64) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO products (name, department_id, price, quantity)
		SELECT $1, $2, $3, $4
		WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1)
		RETURNING id`,
		name, departmentID, price, quantity).Scan(&id)
	if err != nil {
		return 0, mapConflict(err)
	}

	err = outbox.Append(ctx, tx, "product", strconv.FormatInt(id, 10), "ProductCreated",
		domain.ProductCreated{ProductID: id, Name: name, DepartmentID: departmentID}, nil, tracing.Traceparent(ctx))
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repository) InsertDepartment(ctx context.Context, name string, overheadCost decimal.Decimal) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO departments (name, overhead_cost)
		SELECT $1, $2
		WHERE NOT EXISTS (SELECT 1 FROM departments WHERE name = $1)
		RETURNING id`,
		name, overheadCost).Scan(&id)
	if err != nil {
		return 0, mapConflict(err)
	}

	err = outbox.Append(ctx, tx, "department", strconv.FormatInt(id, 10), "DepartmentCreated",
		domain.DepartmentCreated{DepartmentID: id, Name: name}, nil, tracing.Traceparent(ctx))
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, overhead_cost FROM departments ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var depts []domain.Department
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.OverheadCost); err != nil {
			return nil, err
		}
		depts = append(depts, d)
	}
	return depts, rows.Err()
}

func (r *Repository) MaxProductID(ctx context.Context) (int64, error) {
	var max int64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(MAX(id), 0) FROM products`).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max product id: %w", err)
	}
	return max, nil
}

func mapConflict(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrDuplicateName
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrDuplicateName
	}
	return err
}
