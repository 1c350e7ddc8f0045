package session

import (
	"context"
	"log/slog"
)

// CustomerSession repeats the purchase interaction until the customer quits.
type CustomerSession struct {
	flow *PurchaseFlow
}

func NewCustomerSession(log *slog.Logger, catalog Catalog, ledger Ledger, in PromptSource, out DisplaySink) *CustomerSession {
	return &CustomerSession{flow: NewPurchaseFlow(log, catalog, ledger, in, out)}
}

func (s *CustomerSession) Run(ctx context.Context) error {
	for {
		outcome, err := s.flow.Run(ctx)
		if err != nil {
			return err
		}
		if outcome == OutcomeAborted {
			return nil
		}
	}
}
