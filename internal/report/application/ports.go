package application

import (
	"context"

	"github.com/retailops/inventory-manager/internal/report/domain"
)

type ReportRepository interface {
	// DepartmentProfit aggregates sales per department with left-outer-join
	// semantics: a department with no products still yields a row.
	DepartmentProfit(ctx context.Context) ([]domain.DepartmentProfit, error)
}
