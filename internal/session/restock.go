package session

import (
	"context"
	"errors"
	"log/slog"

	ledgerdom "github.com/retailops/inventory-manager/internal/ledger/domain"
)

// RestockFlow is a single-shot manager interaction: validate an item id
// against the current maximum, validate a positive quantity, add inventory,
// report the new quantity.
type RestockFlow struct {
	log     *slog.Logger
	catalog Catalog
	ledger  Ledger
	in      PromptSource
	out     DisplaySink
}

func NewRestockFlow(log *slog.Logger, catalog Catalog, ledger Ledger, in PromptSource, out DisplaySink) *RestockFlow {
	return &RestockFlow{log: log, catalog: catalog, ledger: ledger, in: in, out: out}
}

func (f *RestockFlow) Run(ctx context.Context) error {
	maxID, err := f.catalog.MaxProductID(ctx)
	if err != nil {
		return err
	}
	if maxID == 0 {
		f.out.Message("No products exist yet.")
		return nil
	}

	idAnswer, err := f.in.Ask(Prompt{
		Name:     "id",
		Message:  "Add inventory for which item (Enter ID)?",
		Validate: validateID(maxID),
	})
	if err != nil {
		return err
	}
	productID, err := parseInt(idAnswer)
	if err != nil {
		return err
	}

	qtyAnswer, err := f.in.Ask(Prompt{
		Name:     "quantity",
		Message:  "Enter the quantity you would like to add?",
		Validate: validatePositiveInt,
	})
	if err != nil {
		return err
	}
	quantity, err := parseInt(qtyAnswer)
	if err != nil {
		return err
	}

	newQty, err := f.ledger.Restock(ctx, productID, quantity)
	if errors.Is(err, ledgerdom.ErrNotFound) {
		f.log.Error("restock found no product row", "product_id", productID)
		f.out.Message("Item %d could not be found; the catalog may have changed.", productID)
		return nil
	}
	if err != nil {
		return err
	}

	f.out.Message("Inventory added! Item %d now has %d in stock.", productID, newQty)
	return nil
}
