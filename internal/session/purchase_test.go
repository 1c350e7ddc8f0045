package session

import (
	"context"
	"testing"

	"github.com/retailops/inventory-manager/pkg/logging"
)

func TestPurchaseCommits(t *testing.T) {
	store := newMemStore()
	dept := store.addDepartment("Electronics", "500.00")
	id := store.addProduct("Widget", dept, "9.99", 10)

	in := &scriptedPrompt{answers: []string{"1", "3"}}
	out := &recordingDisplay{}
	flow := NewPurchaseFlow(logging.New(), store, store, in, out)

	outcome, err := flow.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if outcome != OutcomeCommitted {
		t.Fatalf("outcome = %v, want committed", outcome)
	}
	if got := store.products[id].Quantity; got != 7 {
		t.Fatalf("quantity = %d, want 7", got)
	}
	if got := store.products[id].Sales.String(); got != "29.97" {
		t.Fatalf("sales = %s, want 29.97", got)
	}
	if got := out.lastMessage(); got != "Your total cost was $29.97." {
		t.Fatalf("message = %q", got)
	}
}

func TestPurchaseAborts(t *testing.T) {
	store := newMemStore()
	dept := store.addDepartment("Electronics", "500.00")
	store.addProduct("Widget", dept, "9.99", 10)

	in := &scriptedPrompt{answers: []string{"q"}}
	out := &recordingDisplay{}
	flow := NewPurchaseFlow(logging.New(), store, store, in, out)

	outcome, err := flow.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if outcome != OutcomeAborted {
		t.Fatalf("outcome = %v, want aborted", outcome)
	}
	if len(out.tables) != 1 {
		t.Fatalf("catalog displayed %d times, want 1", len(out.tables))
	}
}

func TestPurchaseInsufficientStockRestartsItemSelection(t *testing.T) {
	store := newMemStore()
	dept := store.addDepartment("Electronics", "500.00")
	id := store.addProduct("Widget", dept, "9.99", 7)

	// First attempt asks for 8 of 7 and is rejected; the machine restarts
	// from item selection, re-displaying the catalog, and the second attempt
	// commits.
	in := &scriptedPrompt{answers: []string{"1", "8", "1", "2"}}
	out := &recordingDisplay{}
	flow := NewPurchaseFlow(logging.New(), store, store, in, out)

	outcome, err := flow.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if outcome != OutcomeCommitted {
		t.Fatalf("outcome = %v, want committed", outcome)
	}
	if len(out.tables) != 2 {
		t.Fatalf("catalog displayed %d times, want 2", len(out.tables))
	}
	if out.messages[0] != "Insufficient quantity in stock!" {
		t.Fatalf("first message = %q", out.messages[0])
	}
	if got := store.products[id].Quantity; got != 5 {
		t.Fatalf("quantity = %d, want 5 (rejected attempt must not mutate)", got)
	}
	if got := store.products[id].Sales.String(); got != "19.98" {
		t.Fatalf("sales = %s, want 19.98", got)
	}
}

func TestPurchaseEmptyCatalogAborts(t *testing.T) {
	store := newMemStore()

	in := &scriptedPrompt{}
	out := &recordingDisplay{}
	flow := NewPurchaseFlow(logging.New(), store, store, in, out)

	outcome, err := flow.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if outcome != OutcomeAborted {
		t.Fatalf("outcome = %v, want aborted", outcome)
	}
	if len(in.asked) != 0 {
		t.Fatalf("prompted despite empty catalog: %v", in.asked)
	}
	if got := out.lastMessage(); got != "No products are available for purchase yet." {
		t.Fatalf("message = %q", got)
	}
}

func TestPurchaseRePromptsInvalidInput(t *testing.T) {
	store := newMemStore()
	dept := store.addDepartment("Electronics", "500.00")
	store.addProduct("Widget", dept, "9.99", 10)

	// "0" and "99" fail id validation (out of range); "abc" fails the
	// quantity pattern.
	in := &scriptedPrompt{answers: []string{"0", "99", "1", "abc", "2"}}
	out := &recordingDisplay{}
	flow := NewPurchaseFlow(logging.New(), store, store, in, out)

	outcome, err := flow.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if outcome != OutcomeCommitted {
		t.Fatalf("outcome = %v, want committed", outcome)
	}
}

func TestCustomerSessionLoopsUntilQuit(t *testing.T) {
	store := newMemStore()
	dept := store.addDepartment("Electronics", "500.00")
	id := store.addProduct("Widget", dept, "9.99", 10)

	in := &scriptedPrompt{answers: []string{"1", "2", "1", "3", "q"}}
	out := &recordingDisplay{}
	sess := NewCustomerSession(logging.New(), store, store, in, out)

	if err := sess.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := store.products[id].Quantity; got != 5 {
		t.Fatalf("quantity = %d, want 5 after two purchases", got)
	}
}
