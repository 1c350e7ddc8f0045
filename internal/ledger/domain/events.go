package domain

import "github.com/shopspring/decimal"

type PurchaseCommitted struct {
	ProductID int64
	Quantity  int64
	TotalCost decimal.Decimal
	Remaining int64
}

type ProductRestocked struct {
	ProductID   int64
	Added       int64
	NewQuantity int64
}
