package application

import (
	"context"
	"errors"

	"github.com/retailops/inventory-manager/internal/ledger/domain"
)

// ErrInvalidQuantity marks a caller contract violation: purchase and restock
// quantities must be positive integers and are rejected before any statement
// reaches the store.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

type Service struct {
	repo StockRepository
}

func NewService(repo StockRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetQuantity(ctx context.Context, productID int64) (int64, error) {
	return s.repo.Quantity(ctx, productID)
}

func (s *Service) Purchase(ctx context.Context, productID, quantity int64) (domain.Receipt, error) {
	if quantity <= 0 {
		return domain.Receipt{}, ErrInvalidQuantity
	}
	return s.repo.Purchase(ctx, productID, quantity)
}

func (s *Service) Restock(ctx context.Context, productID, quantity int64) (int64, error) {
	if quantity <= 0 {
		return 0, ErrInvalidQuantity
	}
	return s.repo.Restock(ctx, productID, quantity)
}

// ListProducts returns products sorted by id, optionally restricted to low
// inventory (quantity at or below the fixed threshold).
func (s *Service) ListProducts(ctx context.Context, filter domain.Filter) ([]domain.Product, error) {
	return s.repo.List(ctx, filter)
}
