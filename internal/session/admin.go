package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	catalogdom "github.com/retailops/inventory-manager/internal/catalog/domain"
	"github.com/retailops/inventory-manager/internal/money"
)

// AdminFlow covers catalog administration: adding products and creating
// departments. Duplicate names are a non-fatal outcome reported to the user.
type AdminFlow struct {
	log     *slog.Logger
	catalog Catalog
	in      PromptSource
	out     DisplaySink
}

func NewAdminFlow(log *slog.Logger, catalog Catalog, in PromptSource, out DisplaySink) *AdminFlow {
	return &AdminFlow{log: log, catalog: catalog, in: in, out: out}
}

// AddProduct resolves the chosen department name to its id via the sorted
// department list, then runs the store's conditional insert.
func (f *AdminFlow) AddProduct(ctx context.Context) error {
	depts, err := f.catalog.ListDepartments(ctx)
	if err != nil {
		return err
	}
	if len(depts) == 0 {
		f.out.Message("No departments exist yet; create one first.")
		return nil
	}

	nameAnswer, err := f.in.Ask(Prompt{
		Name:     "product",
		Message:  "Product Name?",
		Validate: validateNonEmpty,
	})
	if err != nil {
		return err
	}

	choices := make([]string, 0, len(depts))
	for _, d := range depts {
		choices = append(choices, d.Name)
	}
	deptAnswer, err := f.in.Ask(Prompt{
		Name:    "department",
		Message: "Department?",
		Choices: choices,
	})
	if err != nil {
		return err
	}
	var departmentID int64
	for _, d := range depts {
		if d.Name == deptAnswer {
			departmentID = d.ID
			break
		}
	}

	priceAnswer, err := f.in.Ask(Prompt{
		Name:     "price",
		Message:  "Price?",
		Validate: validateCurrency,
	})
	if err != nil {
		return err
	}
	price, err := money.Parse(priceAnswer)
	if err != nil {
		return err
	}

	qtyAnswer, err := f.in.Ask(Prompt{
		Name:     "quantity",
		Message:  "Initial Quantity?",
		Validate: validatePositiveInt,
	})
	if err != nil {
		return err
	}
	quantity, err := parseInt(qtyAnswer)
	if err != nil {
		return err
	}

	id, err := f.catalog.CreateProduct(ctx, strings.TrimSpace(nameAnswer), departmentID, price, quantity)
	if errors.Is(err, catalogdom.ErrDuplicateName) {
		f.out.Message("Product not added: a product with that name already exists.")
		return nil
	}
	if err != nil {
		return err
	}

	f.out.Message("Product added with ID %d!", id)
	return nil
}

func (f *AdminFlow) CreateDepartment(ctx context.Context) error {
	nameAnswer, err := f.in.Ask(Prompt{
		Name:     "name",
		Message:  "Department Name?",
		Validate: validateNonEmpty,
	})
	if err != nil {
		return err
	}

	costAnswer, err := f.in.Ask(Prompt{
		Name:     "overhead_cost",
		Message:  "What is the department's overhead cost?",
		Validate: validateCurrency,
	})
	if err != nil {
		return err
	}
	cost, err := money.Parse(costAnswer)
	if err != nil {
		return err
	}

	id, err := f.catalog.CreateDepartment(ctx, strings.TrimSpace(nameAnswer), cost)
	if errors.Is(err, catalogdom.ErrDuplicateName) {
		f.out.Message("Department not added: a department with that name already exists.")
		return nil
	}
	if err != nil {
		return err
	}

	f.out.Message("Department added with ID %d!", id)
	return nil
}
