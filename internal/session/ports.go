// Package session holds the interactive workflows as explicit state machines
// over prompt and display ports, so the same machines run against a console
// or a scripted input source in tests.
package session

import (
	"context"
	"errors"

	catalogdom "github.com/retailops/inventory-manager/internal/catalog/domain"
	ledgerdom "github.com/retailops/inventory-manager/internal/ledger/domain"
	reportdom "github.com/retailops/inventory-manager/internal/report/domain"
	"github.com/shopspring/decimal"
)

// ErrAborted is the quit sentinel surfaced as an error: the user declined to
// continue at a prompt that allows quitting.
var ErrAborted = errors.New("aborted by user")

// QuitSentinel is the input that aborts a quit-enabled prompt.
const QuitSentinel = "q"

// Prompt is one interactive question. Validate is re-run until it accepts;
// when Choices is set the answer is constrained to one of them.
type Prompt struct {
	Name      string
	Message   string
	Choices   []string
	Validate  func(string) error
	AllowQuit bool
}

type PromptSource interface {
	// Ask returns a validated answer, re-requesting input on validation
	// failure. It returns ErrAborted when a quit-enabled prompt receives the
	// quit sentinel.
	Ask(p Prompt) (string, error)
}

type DisplaySink interface {
	// Table renders already-formatted values; no formatting happens downstream.
	Table(header []string, rows [][]string)
	Message(format string, args ...any)
}

type Catalog interface {
	CreateProduct(ctx context.Context, name string, departmentID int64, price decimal.Decimal, initialQuantity int64) (int64, error)
	CreateDepartment(ctx context.Context, name string, overheadCost decimal.Decimal) (int64, error)
	ListDepartments(ctx context.Context) ([]catalogdom.Department, error)
	MaxProductID(ctx context.Context) (int64, error)
}

type Ledger interface {
	GetQuantity(ctx context.Context, productID int64) (int64, error)
	Purchase(ctx context.Context, productID, quantity int64) (ledgerdom.Receipt, error)
	Restock(ctx context.Context, productID, quantity int64) (int64, error)
	ListProducts(ctx context.Context, filter ledgerdom.Filter) ([]ledgerdom.Product, error)
}

type Reports interface {
	DepartmentProfitReport(ctx context.Context) ([]reportdom.DepartmentProfit, error)
}
