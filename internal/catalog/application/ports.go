package application

import (
	"context"

	"github.com/retailops/inventory-manager/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

type CatalogRepository interface {
	// InsertProduct is a single conditional statement: it inserts only when no
	// product with the same name exists and reports domain.ErrDuplicateName
	// otherwise.
	InsertProduct(ctx context.Context, name string, departmentID int64, price decimal.Decimal, quantity int64) (int64, error)
	InsertDepartment(ctx context.Context, name string, overheadCost decimal.Decimal) (int64, error)
	ListDepartments(ctx context.Context) ([]domain.Department, error)
	MaxProductID(ctx context.Context) (int64, error)
}
