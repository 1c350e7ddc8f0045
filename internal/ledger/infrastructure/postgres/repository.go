package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/retailops/inventory-manager/internal/ledger/domain"
	"github.com/retailops/inventory-manager/pkg/outbox"
	"github.com/retailops/inventory-manager/pkg/tracing"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

func (r *Repository) Quantity(ctx context.Context, productID int64) (int64, error) {
	var qty int64
	err := r.pool.QueryRow(ctx, `SELECT quantity FROM products WHERE id=$1`, productID).Scan(&qty)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("get quantity: %w", err)
	}
	return qty, nil
}

// Purchase decrements quantity and credits sales in one conditional UPDATE:
// the quantity check and both mutations are a single statement, so concurrent
// purchases of the same product can never oversell it. A zero-row result is
// classified afterwards: missing row means the id raced past validation,
// otherwise stock was short. Nothing is mutated in either case.
func (r *Repository) Purchase(ctx context.Context, productID, quantity int64) (domain.Receipt, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.Receipt{}, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var total decimal.Decimal
	var remaining int64
	err = tx.QueryRow(ctx, `
		UPDATE products
		SET quantity = quantity - $2,
		    product_sales = product_sales + price * $2
		WHERE id = $1 AND quantity >= $2
		RETURNING price * $2, quantity`,
		productID, quantity).Scan(&total, &remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id=$1)`, productID).Scan(&exists); err != nil {
			return domain.Receipt{}, fmt.Errorf("classify rejected purchase: %w", err)
		}
		if !exists {
			return domain.Receipt{}, domain.ErrNotFound
		}
		return domain.Receipt{}, domain.ErrInsufficientStock
	}
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("purchase: %w", err)
	}

	rcpt := domain.Receipt{ProductID: productID, Quantity: quantity, TotalCost: total, Remaining: remaining}
	err = outbox.Append(ctx, tx, "product", strconv.FormatInt(productID, 10), "PurchaseCommitted",
		domain.PurchaseCommitted(rcpt), nil, tracing.Traceparent(ctx))
	if err != nil {
		return domain.Receipt{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Receipt{}, err
	}
	return rcpt, nil
}

func (r *Repository) Restock(ctx context.Context, productID, quantity int64) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var newQty int64
	err = tx.QueryRow(ctx, `
		UPDATE products SET quantity = quantity + $2 WHERE id = $1
		RETURNING quantity`,
		productID, quantity).Scan(&newQty)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("restock: %w", err)
	}

	err = outbox.Append(ctx, tx, "product", strconv.FormatInt(productID, 10), "ProductRestocked",
		domain.ProductRestocked{ProductID: productID, Added: quantity, NewQuantity: newQty}, nil, tracing.Traceparent(ctx))
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return newQty, nil
}

func (r *Repository) List(ctx context.Context, filter domain.Filter) ([]domain.Product, error) {
	query := `SELECT id, name, department_id, price, quantity, product_sales FROM products ORDER BY id`
	if filter == domain.FilterLowStock {
		query = `SELECT id, name, department_id, price, quantity, product_sales FROM products
			WHERE quantity <= ` + strconv.Itoa(domain.LowStockThreshold) + ` ORDER BY id`
	}

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.DepartmentID, &p.Price, &p.Quantity, &p.Sales); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
