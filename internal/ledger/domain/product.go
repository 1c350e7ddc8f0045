package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound means an id that passed range validation has no row in the
	// store. It indicates a race between validation and execution and must be
	// surfaced to the caller, never swallowed.
	ErrNotFound = errors.New("product not found")

	// ErrInsufficientStock means the conditional decrement matched no row
	// because quantity on hand was below the requested amount. No state changed.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// LowStockThreshold is the fixed quantity at or below which a product counts
// as low inventory.
const LowStockThreshold = 5

type Product struct {
	ID           int64
	Name         string
	DepartmentID int64
	Price        decimal.Decimal
	Quantity     int64
	Sales        decimal.Decimal
}

// Filter selects which products a listing returns.
type Filter int

const (
	FilterAll Filter = iota
	FilterLowStock
)

// Receipt is the result of a committed purchase.
type Receipt struct {
	ProductID int64
	Quantity  int64
	TotalCost decimal.Decimal
	Remaining int64
}
