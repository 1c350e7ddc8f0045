package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrDuplicateName is returned when a conditional insert finds an existing
// product or department with the same name.
var ErrDuplicateName = errors.New("duplicate name")

type Department struct {
	ID           int64
	Name         string
	OverheadCost decimal.Decimal
}
