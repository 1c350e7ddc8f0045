package session

import (
	"context"
	"errors"
	"log/slog"

	ledgerdom "github.com/retailops/inventory-manager/internal/ledger/domain"
	"github.com/retailops/inventory-manager/internal/money"
)

// purchaseState names the states of the purchase machine.
type purchaseState int

const (
	stateSelectingItem purchaseState = iota
	stateSelectingQuantity
	stateCheckingStock
	stateCommitted
	stateAborted
)

// Outcome is the terminal state of one purchase interaction.
type Outcome int

const (
	OutcomeCommitted Outcome = iota
	OutcomeAborted
)

// PurchaseFlow drives one customer purchase:
//
//	SelectingItem -> SelectingQuantity -> CheckingStock -> Committed
//
// Insufficient stock returns the machine to SelectingItem and re-displays the
// catalog, since availability may have changed while the customer decided.
// The quit sentinel at item selection ends in Aborted, as does an empty
// catalog, where no id could ever validate.
type PurchaseFlow struct {
	log     *slog.Logger
	catalog Catalog
	ledger  Ledger
	in      PromptSource
	out     DisplaySink
}

func NewPurchaseFlow(log *slog.Logger, catalog Catalog, ledger Ledger, in PromptSource, out DisplaySink) *PurchaseFlow {
	return &PurchaseFlow{log: log, catalog: catalog, ledger: ledger, in: in, out: out}
}

func (f *PurchaseFlow) Run(ctx context.Context) (Outcome, error) {
	state := stateSelectingItem
	var productID, quantity int64

	for {
		switch state {
		case stateSelectingItem:
			products, err := f.ledger.ListProducts(ctx, ledgerdom.FilterAll)
			if err != nil {
				return 0, err
			}
			f.out.Table(productHeader, productRows(products))

			id, err := f.selectItem(ctx)
			if errors.Is(err, ErrAborted) {
				state = stateAborted
				continue
			}
			if err != nil {
				return 0, err
			}
			productID = id
			state = stateSelectingQuantity

		case stateSelectingQuantity:
			answer, err := f.in.Ask(Prompt{
				Name:     "quantity",
				Message:  "Enter the quantity you would like to purchase?",
				Validate: validatePositiveInt,
			})
			if err != nil {
				return 0, err
			}
			quantity, err = parseInt(answer)
			if err != nil {
				return 0, err
			}
			state = stateCheckingStock

		case stateCheckingStock:
			rcpt, err := f.ledger.Purchase(ctx, productID, quantity)
			switch {
			case errors.Is(err, ledgerdom.ErrInsufficientStock):
				f.out.Message("Insufficient quantity in stock!")
				state = stateSelectingItem
			case errors.Is(err, ledgerdom.ErrNotFound):
				// The id passed range validation but the row is gone: a race
				// between validation and execution. Surface it, never swallow.
				f.log.Error("purchase found no product row", "product_id", productID)
				f.out.Message("Item %d could not be found; the catalog may have changed.", productID)
				state = stateSelectingItem
			case err != nil:
				return 0, err
			default:
				f.out.Message("Your total cost was %s.", money.Format(rcpt.TotalCost))
				state = stateCommitted
			}

		case stateCommitted:
			return OutcomeCommitted, nil

		case stateAborted:
			return OutcomeAborted, nil
		}
	}
}

func (f *PurchaseFlow) selectItem(ctx context.Context) (int64, error) {
	maxID, err := f.catalog.MaxProductID(ctx)
	if err != nil {
		return 0, err
	}
	if maxID == 0 {
		f.out.Message("No products are available for purchase yet.")
		return 0, ErrAborted
	}
	answer, err := f.in.Ask(Prompt{
		Name:      "id",
		Message:   "Which item would you like to purchase (Enter ID or 'q' to exit)?",
		Validate:  validateID(maxID),
		AllowQuit: true,
	})
	if err != nil {
		return 0, err
	}
	return parseInt(answer)
}
