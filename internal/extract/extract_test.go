package extract

import (
	"errors"
	"testing"

	"CustomerOutputs/internal/domain"
)

func TestParseFulfilledBulk(t *testing.T) {
	t.Parallel()

	response := "Quoted 600 x A4 Paper at $2.50 each. Bulk discount applied. Processed sale. Quote: $1350.00."

	order, err := Parse(response)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if order.ItemName != "A4 Paper" {
		t.Fatalf("unexpected item: %q", order.ItemName)
	}
	if order.Quantity != 600 {
		t.Fatalf("unexpected quantity: %d", order.Quantity)
	}
	if order.UnitPrice != 2.50 {
		t.Fatalf("unexpected unit price: %v", order.UnitPrice)
	}
	if order.TotalPrice != 1350.00 {
		t.Fatalf("unexpected total price: %v", order.TotalPrice)
	}
	if !order.BulkDiscountApplied {
		t.Fatalf("expected bulk discount flag")
	}
	if order.Outcome != domain.OutcomeFulfilled {
		t.Fatalf("unexpected outcome: %s", order.Outcome)
	}
	if order.AvailableStock != 600 {
		t.Fatalf("fulfilled order must report stock equal to quantity, got %d", order.AvailableStock)
	}
}

func TestParseInsufficientStock(t *testing.T) {
	t.Parallel()

	response := "Quoted 50 x Envelopes at $0.10 each. Insufficient stock. Only 10 available. Quote: $5.00."

	order, err := Parse(response)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if order.ItemName != "Envelopes" {
		t.Fatalf("unexpected item: %q", order.ItemName)
	}
	if order.Quantity != 50 {
		t.Fatalf("unexpected quantity: %d", order.Quantity)
	}
	if order.UnitPrice != 0.10 {
		t.Fatalf("unexpected unit price: %v", order.UnitPrice)
	}
	if order.BulkDiscountApplied {
		t.Fatalf("bulk discount flag must be unset")
	}
	if order.Outcome != domain.OutcomeInsufficientStock {
		t.Fatalf("unexpected outcome: %s", order.Outcome)
	}
	if order.AvailableStock != 10 {
		t.Fatalf("unexpected stock: %d", order.AvailableStock)
	}
}

func TestParseDeclineWithoutStockPhrase(t *testing.T) {
	t.Parallel()

	response := "Quoted 50 x Envelopes at $0.10 each. Insufficient stock. Quote: $5.00."

	order, err := Parse(response)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if order.Outcome != domain.OutcomeInsufficientStock {
		t.Fatalf("unexpected outcome: %s", order.Outcome)
	}
	if order.AvailableStock != 0 {
		t.Fatalf("missing stock phrase must default to 0, got %d", order.AvailableStock)
	}
}

func TestParseNoRecognizedOutcome(t *testing.T) {
	t.Parallel()

	response := "Quoted 50 x Envelopes at $0.10 each. Quote: $5.00."

	order, err := Parse(response)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if order.Outcome != domain.OutcomeUnknown {
		t.Fatalf("unexpected outcome: %s", order.Outcome)
	}
	if order.Quantity != 50 || order.ItemName != "Envelopes" {
		t.Fatalf("parsed fields lost: %+v", order)
	}
}

func TestParseMissingMarkers(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"no quote":       "Quoted 50 x Envelopes at $0.10 each. Processed sale.",
		"no quoted line": "Processed sale. Quote: $5.00.",
		"free text":      "Request could not be handled by the fulfillment agent.",
	}

	for name, response := range cases {
		order, err := Parse(response)
		if !errors.Is(err, ErrMissingMarker) {
			t.Fatalf("%s: expected ErrMissingMarker, got %v", name, err)
		}
		if order.Outcome != domain.OutcomeUnknown {
			t.Fatalf("%s: unexpected outcome %s", name, order.Outcome)
		}
		if order != (domain.ParsedOrder{Outcome: domain.OutcomeUnknown}) {
			t.Fatalf("%s: partial record escaped: %+v", name, order)
		}
	}
}

func TestParseInvalidNumbers(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"quantity":   "Quoted many x Envelopes at $0.10 each. Processed sale. Quote: $5.00.",
		"unit price": "Quoted 50 x Envelopes at $cheap each. Processed sale. Quote: $5.00.",
		"total":      "Quoted 50 x Envelopes at $0.10 each. Processed sale. Quote: $n/a.",
		"stock":      "Quoted 50 x Envelopes at $0.10 each. Insufficient stock. Only some available. Quote: $5.00.",
	}

	for name, response := range cases {
		order, err := Parse(response)
		if !errors.Is(err, ErrInvalidNumber) {
			t.Fatalf("%s: expected ErrInvalidNumber, got %v", name, err)
		}
		if order != (domain.ParsedOrder{Outcome: domain.OutcomeUnknown}) {
			t.Fatalf("%s: partial record escaped: %+v", name, order)
		}
	}
}

func TestParseFirstOccurrenceWins(t *testing.T) {
	t.Parallel()

	// Two quote phrases: the first one is authoritative.
	response := "Quoted 5 x Folders at $1.00 each. Processed sale. Quote: $5.00. Quote: $9.99."

	order, err := Parse(response)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if order.TotalPrice != 5.00 {
		t.Fatalf("expected first quote to win, got %v", order.TotalPrice)
	}
}
