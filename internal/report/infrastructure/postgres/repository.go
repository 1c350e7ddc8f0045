package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/retailops/inventory-manager/internal/report/domain"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

// DepartmentProfit joins departments LEFT OUTER against products so a
// department with no products reports zero sales rather than vanishing from
// the report, and computes profit in the aggregate.
func (r *Repository) DepartmentProfit(ctx context.Context) ([]domain.DepartmentProfit, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT d.id, d.name, d.overhead_cost,
		       COALESCE(SUM(p.product_sales), 0) AS total_sales,
		       COALESCE(SUM(p.product_sales), 0) - d.overhead_cost AS total_profit
		FROM departments d
		LEFT OUTER JOIN products p ON p.department_id = d.id
		GROUP BY d.id, d.name, d.overhead_cost
		ORDER BY d.id`)
	if err != nil {
		return nil, fmt.Errorf("department profit: %w", err)
	}
	defer rows.Close()

	var report []domain.DepartmentProfit
	for rows.Next() {
		var row domain.DepartmentProfit
		if err := rows.Scan(&row.DepartmentID, &row.Name, &row.OverheadCost, &row.TotalSales, &row.TotalProfit); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}
