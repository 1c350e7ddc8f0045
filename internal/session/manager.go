package session

import (
	"context"
	"log/slog"

	ledgerdom "github.com/retailops/inventory-manager/internal/ledger/domain"
)

const (
	menuViewProducts = "View Products for Sale"
	menuViewLow      = "View Low Inventory"
	menuAddStock     = "Add to Inventory"
	menuAddProduct   = "Add New Product"
	menuExit         = "Exit Application"
)

// ManagerSession is the manager menu loop: product views, restocking and
// catalog additions.
type ManagerSession struct {
	log     *slog.Logger
	ledger  Ledger
	in      PromptSource
	out     DisplaySink
	restock *RestockFlow
	admin   *AdminFlow
}

func NewManagerSession(log *slog.Logger, catalog Catalog, ledger Ledger, in PromptSource, out DisplaySink) *ManagerSession {
	return &ManagerSession{
		log:     log,
		ledger:  ledger,
		in:      in,
		out:     out,
		restock: NewRestockFlow(log, catalog, ledger, in, out),
		admin:   NewAdminFlow(log, catalog, in, out),
	}
}

func (s *ManagerSession) Run(ctx context.Context) error {
	for {
		choice, err := s.in.Ask(Prompt{
			Name:    "action",
			Message: "What would you like to do?",
			Choices: []string{menuViewProducts, menuViewLow, menuAddStock, menuAddProduct, menuExit},
		})
		if err != nil {
			return err
		}

		switch choice {
		case menuViewProducts:
			err = s.showProducts(ctx, ledgerdom.FilterAll)
		case menuViewLow:
			err = s.showProducts(ctx, ledgerdom.FilterLowStock)
		case menuAddStock:
			err = s.restock.Run(ctx)
		case menuAddProduct:
			err = s.admin.AddProduct(ctx)
		case menuExit:
			s.out.Message("Goodbye!")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *ManagerSession) showProducts(ctx context.Context, filter ledgerdom.Filter) error {
	products, err := s.ledger.ListProducts(ctx, filter)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		s.out.Message("No results.")
		return nil
	}
	s.out.Table(productHeader, productRows(products))
	return nil
}
