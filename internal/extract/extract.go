package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"CustomerOutputs/internal/domain"
)

// Failure taxonomy. Both degrade to an unknown outcome at the caller; they
// stay distinguishable for logging and tests.
var (
	// ErrMissingMarker reports that a required phrase of the upstream
	// generator was not found in the status message.
	ErrMissingMarker = errors.New("expected marker missing")
	// ErrInvalidNumber reports that a marker was found but the field
	// between its delimiters is not numeric.
	ErrInvalidNumber = errors.New("field is not a number")
)

// The upstream generator emits a fixed set of human-readable phrases, e.g.
//
//	Quoted 600 x A4 Paper at $2.50 each. Bulk discount applied. Processed sale. Quote: $1350.00.
//
// Each expression captures the text between two literal markers, always at
// the first occurrence. Scanning is case-sensitive.
var (
	totalExpr = regexp.MustCompile(`Quote: \$(?P<total>[^.]*)`)
	lineExpr  = regexp.MustCompile(`(?s)Quoted(?P<count>[^x]*)x(?P<item>.*?)at`)
	unitExpr  = regexp.MustCompile(`(?s)at \$(?P<unit>.*?) each`)
	stockExpr = regexp.MustCompile(`(?s)Only (?P<stock>.*?) available`)
)

const (
	bulkDiscountMarker = "Bulk discount applied"
	fulfilledMarker    = "Processed sale"
	insufficientMarker = "Insufficient stock"
)

// Parse scans one internal status message into a typed order record.
//
// A missing marker or a non-numeric field returns a zero record with
// OutcomeUnknown and a non-nil error; no partial record escapes. A message
// that parses but carries no recognized outcome phrase returns the record
// with OutcomeUnknown and a nil error.
func Parse(response string) (domain.ParsedOrder, error) {
	unknown := domain.ParsedOrder{Outcome: domain.OutcomeUnknown}

	total, err := capturedFloat(totalExpr, "total", response)
	if err != nil {
		return unknown, fmt.Errorf("total price: %w", err)
	}

	line := lineExpr.FindStringSubmatch(response)
	if line == nil {
		return unknown, fmt.Errorf("quoted line: %w", ErrMissingMarker)
	}
	count := strings.TrimSpace(line[lineExpr.SubexpIndex("count")])
	quantity, err := strconv.Atoi(count)
	if err != nil {
		return unknown, fmt.Errorf("quantity %q: %w", count, ErrInvalidNumber)
	}
	item := strings.TrimSpace(line[lineExpr.SubexpIndex("item")])

	unit, err := capturedFloat(unitExpr, "unit", response)
	if err != nil {
		return unknown, fmt.Errorf("unit price: %w", err)
	}

	order := domain.ParsedOrder{
		ItemName:            item,
		Quantity:            quantity,
		UnitPrice:           unit,
		TotalPrice:          total,
		BulkDiscountApplied: strings.Contains(response, bulkDiscountMarker),
		Outcome:             domain.OutcomeUnknown,
	}

	switch {
	case strings.Contains(response, fulfilledMarker):
		order.Outcome = domain.OutcomeFulfilled
		order.AvailableStock = quantity
	case strings.Contains(response, insufficientMarker):
		order.Outcome = domain.OutcomeInsufficientStock
		stock, err := availableStock(response)
		if err != nil {
			return unknown, fmt.Errorf("available stock: %w", err)
		}
		order.AvailableStock = stock
	}

	return order, nil
}

// availableStock reads the remaining stock from the "Only N available"
// phrase; a decline without that phrase reports zero units.
func availableStock(response string) (int, error) {
	match := stockExpr.FindStringSubmatch(response)
	if match == nil {
		return 0, nil
	}
	raw := strings.TrimSpace(match[stockExpr.SubexpIndex("stock")])
	stock, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("stock %q: %w", raw, ErrInvalidNumber)
	}
	return stock, nil
}

func capturedFloat(expr *regexp.Regexp, group, response string) (float64, error) {
	match := expr.FindStringSubmatch(response)
	if match == nil {
		return 0, ErrMissingMarker
	}
	raw := strings.TrimSpace(match[expr.SubexpIndex(group)])
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", raw, ErrInvalidNumber)
	}
	return value, nil
}
