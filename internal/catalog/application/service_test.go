package application

import (
	"context"
	"errors"
	"testing"

	"github.com/retailops/inventory-manager/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

type fakeCatalogRepo struct {
	products    map[string]int64
	departments map[string]int64
	nextID      int64
	inserts     int
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		products:    make(map[string]int64),
		departments: make(map[string]int64),
		nextID:      1,
	}
}

func (f *fakeCatalogRepo) InsertProduct(_ context.Context, name string, _ int64, _ decimal.Decimal, _ int64) (int64, error) {
	f.inserts++
	if _, ok := f.products[name]; ok {
		return 0, domain.ErrDuplicateName
	}
	id := f.nextID
	f.nextID++
	f.products[name] = id
	return id, nil
}

func (f *fakeCatalogRepo) InsertDepartment(_ context.Context, name string, _ decimal.Decimal) (int64, error) {
	f.inserts++
	if _, ok := f.departments[name]; ok {
		return 0, domain.ErrDuplicateName
	}
	id := f.nextID
	f.nextID++
	f.departments[name] = id
	return id, nil
}

func (f *fakeCatalogRepo) ListDepartments(_ context.Context) ([]domain.Department, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) MaxProductID(_ context.Context) (int64, error) {
	return f.nextID - 1, nil
}

func TestCreateProductTrimsName(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := NewService(repo)

	id, err := svc.CreateProduct(context.Background(), "  Widget  ", 1, decimal.NewFromFloat(9.99), 10)
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected id 1, got %d", id)
	}
	if _, ok := repo.products["Widget"]; !ok {
		t.Fatalf("name not trimmed: %v", repo.products)
	}
}

func TestCreateProductDuplicate(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := NewService(repo)

	if _, err := svc.CreateProduct(context.Background(), "Widget", 1, decimal.NewFromFloat(9.99), 10); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.CreateProduct(context.Background(), "Widget", 1, decimal.NewFromFloat(5.00), 3)
	if !errors.Is(err, domain.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
	if len(repo.products) != 1 {
		t.Fatalf("expected exactly one row, got %d", len(repo.products))
	}
}

func TestCreateProductRejectsBadInput(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.CreateProduct(ctx, "   ", 1, decimal.NewFromInt(1), 1); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("empty name: got %v", err)
	}
	if _, err := svc.CreateProduct(ctx, "Widget", 1, decimal.NewFromInt(-1), 1); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("negative price: got %v", err)
	}
	if _, err := svc.CreateProduct(ctx, "Widget", 1, decimal.NewFromInt(1), 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("zero quantity: got %v", err)
	}
	if repo.inserts != 0 {
		t.Fatalf("repository touched on invalid input: %d inserts", repo.inserts)
	}
}

func TestCreateDepartmentDuplicate(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.CreateDepartment(ctx, "Electronics", decimal.NewFromInt(500)); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.CreateDepartment(ctx, "Electronics", decimal.NewFromInt(300))
	if !errors.Is(err, domain.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
	if len(repo.departments) != 1 {
		t.Fatalf("expected exactly one department, got %d", len(repo.departments))
	}
}
