package console

import (
	"errors"
	"strings"
	"testing"

	"github.com/retailops/inventory-manager/internal/session"
)

func TestAskRePromptsUntilValid(t *testing.T) {
	in := strings.NewReader("abc\n0\n12\n")
	var out strings.Builder
	c := New(in, &out)

	answer, err := c.Ask(session.Prompt{
		Name:    "quantity",
		Message: "How many?",
		Validate: func(s string) error {
			if s == "12" {
				return nil
			}
			return errors.New("please enter a valid whole number")
		},
	})
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if answer != "12" {
		t.Fatalf("answer = %q, want 12", answer)
	}
	if got := strings.Count(out.String(), "How many?"); got != 3 {
		t.Fatalf("prompt shown %d times, want 3", got)
	}
}

func TestAskQuitSentinel(t *testing.T) {
	in := strings.NewReader("Q\n")
	var out strings.Builder
	c := New(in, &out)

	_, err := c.Ask(session.Prompt{Name: "id", Message: "Which item?", AllowQuit: true})
	if !errors.Is(err, session.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestAskChoiceByNumberAndName(t *testing.T) {
	in := strings.NewReader("2\n")
	var out strings.Builder
	c := New(in, &out)

	answer, err := c.Ask(session.Prompt{
		Name:    "action",
		Message: "What would you like to do?",
		Choices: []string{"View Products for Sale", "Exit Application"},
	})
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if answer != "Exit Application" {
		t.Fatalf("answer = %q", answer)
	}

	in2 := strings.NewReader("bogus\nExit Application\n")
	c2 := New(in2, &out)
	answer, err = c2.Ask(session.Prompt{
		Name:    "action",
		Message: "What would you like to do?",
		Choices: []string{"View Products for Sale", "Exit Application"},
	})
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if answer != "Exit Application" {
		t.Fatalf("answer = %q", answer)
	}
}

func TestAskEOF(t *testing.T) {
	c := New(strings.NewReader(""), &strings.Builder{})
	if _, err := c.Ask(session.Prompt{Name: "id", Message: "Which item?"}); err == nil {
		t.Fatalf("expected error on exhausted input")
	}
}

func TestTableRendersHeaderAndRows(t *testing.T) {
	var out strings.Builder
	c := New(strings.NewReader(""), &out)

	c.Table([]string{"ID", "Name", "Price", "Quantity"}, [][]string{
		{"1", "Widget", "$9.99", "10"},
	})

	got := out.String()
	for _, want := range []string{"ID", "Widget", "$9.99", "10"} {
		if !strings.Contains(got, want) {
			t.Fatalf("table output missing %q:\n%s", want, got)
		}
	}
}
