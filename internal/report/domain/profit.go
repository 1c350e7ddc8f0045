package domain

import "github.com/shopspring/decimal"

// DepartmentProfit is one row of the department profit report. TotalProfit is
// always derived as TotalSales - OverheadCost, never stored.
type DepartmentProfit struct {
	DepartmentID int64
	Name         string
	OverheadCost decimal.Decimal
	TotalSales   decimal.Decimal
	TotalProfit  decimal.Decimal
}
