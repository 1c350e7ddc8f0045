package application

import (
	"context"

	"github.com/retailops/inventory-manager/internal/ledger/domain"
)

type StockRepository interface {
	Quantity(ctx context.Context, productID int64) (int64, error)
	// Purchase runs the check-and-decrement as one conditional statement and
	// credits sales in the same transaction; either both effects commit or
	// neither does.
	Purchase(ctx context.Context, productID, quantity int64) (domain.Receipt, error)
	Restock(ctx context.Context, productID, quantity int64) (int64, error)
	List(ctx context.Context, filter domain.Filter) ([]domain.Product, error)
}
