package application

import (
	"context"
	"errors"
	"strings"

	"github.com/retailops/inventory-manager/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName       = errors.New("name must not be empty")
	ErrNegativeAmount  = errors.New("amount must not be negative")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

type Service struct {
	repo CatalogRepository
}

func NewService(repo CatalogRepository) *Service {
	return &Service{repo: repo}
}

// CreateProduct adds a catalog entry. Names are trimmed and compared
// case-sensitively; uniqueness is enforced by the store's conditional insert,
// not by a read-then-write check here.
func (s *Service) CreateProduct(ctx context.Context, name string, departmentID int64, price decimal.Decimal, initialQuantity int64) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrEmptyName
	}
	if price.IsNegative() {
		return 0, ErrNegativeAmount
	}
	if initialQuantity <= 0 {
		return 0, ErrInvalidQuantity
	}
	return s.repo.InsertProduct(ctx, name, departmentID, price, initialQuantity)
}

func (s *Service) CreateDepartment(ctx context.Context, name string, overheadCost decimal.Decimal) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrEmptyName
	}
	if overheadCost.IsNegative() {
		return 0, ErrNegativeAmount
	}
	return s.repo.InsertDepartment(ctx, name, overheadCost)
}

// ListDepartments returns departments sorted by name.
func (s *Service) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return s.repo.ListDepartments(ctx)
}

// MaxProductID reflects the latest committed state and is queried fresh at
// the start of every input-validation cycle; it is never cached process-wide.
func (s *Service) MaxProductID(ctx context.Context) (int64, error) {
	return s.repo.MaxProductID(ctx)
}
