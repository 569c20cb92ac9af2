// Package respond renders the customer-facing message bodies. The templates
// are fixed text: they state what the customer needs (item, counts, prices,
// availability, alternatives) and the rationale for pricing decisions, and
// they never leak internal operational detail beyond that.
package respond

import (
	"fmt"
	"strings"
)

// Apology is the fallback shown when an internal result cannot be interpreted.
const Apology = "We apologize, but we encountered an issue processing your request. Please contact our customer service team for assistance."

// ReasonInsufficientStock is the only decline reason that carries a REASON block.
const ReasonInsufficientStock = "insufficient_stock"

// QuoteDetails carries everything the quote template displays.
// DeliveryDate is optional ("YYYY-MM-DD"); when set on a short-stock quote it
// adds the restock-arrival sentences.
type QuoteDetails struct {
	ItemName            string
	Quantity            int
	UnitPrice           float64
	TotalPrice          float64
	AvailableStock      int
	RequestDate         string
	BulkDiscountApplied bool
	DeliveryDate        string
}

// Quote renders a quote message. When stock covers the requested quantity the
// message only states qualitative availability; the exact stock figure is
// shown to the customer only when it falls short of the request.
func Quote(d QuoteDetails) (string, error) {
	date, err := customerDate(d.RequestDate)
	if err != nil {
		return "", fmt.Errorf("request date: %w", err)
	}

	parts := []string{
		fmt.Sprintf("Thank you for your inquiry on %s.", date),
		"\nQUOTE SUMMARY:",
		fmt.Sprintf("• Item: %s", d.ItemName),
		fmt.Sprintf("• Quantity: %s", groupThousands(d.Quantity)),
		fmt.Sprintf("• Unit Price: $%.2f", d.UnitPrice),
	}

	if d.BulkDiscountApplied {
		discount := d.UnitPrice*float64(d.Quantity) - d.TotalPrice
		parts = append(parts,
			fmt.Sprintf("• Bulk Discount: $%.2f (10%% off orders over 500 units)", discount))
	}
	parts = append(parts, fmt.Sprintf("• Total Price: $%.2f", d.TotalPrice))

	if d.AvailableStock >= d.Quantity {
		parts = append(parts,
			"\nAVAILABILITY: In stock and ready for immediate fulfillment.",
			"Your order can be processed immediately.")
	} else {
		parts = append(parts,
			"\nAVAILABILITY: Limited stock available.",
			fmt.Sprintf("We currently have %s units in stock.", groupThousands(d.AvailableStock)))
		if d.DeliveryDate != "" {
			delivery, err := customerDate(d.DeliveryDate)
			if err != nil {
				return "", fmt.Errorf("delivery date: %w", err)
			}
			parts = append(parts,
				"We are placing a restock order to fulfill your complete request.",
				fmt.Sprintf("Expected delivery date: %s", delivery))
		}
	}

	parts = append(parts, "\nPRICING INFORMATION:")
	if d.BulkDiscountApplied {
		parts = append(parts,
			"• Standard pricing applies to all orders",
			"• Bulk discount of 10% applied for orders exceeding 500 units",
			"• This reflects our commitment to competitive pricing for larger orders")
	} else {
		parts = append(parts,
			"• Standard pricing applies to your order",
			"• Volume discounts available for orders exceeding 500 units")
	}

	parts = append(parts, "\nDELIVERY:")
	if d.AvailableStock >= d.Quantity {
		parts = append(parts,
			"• Standard delivery: 3-5 business days",
			"• Rush delivery available upon request")
	} else {
		parts = append(parts,
			"• Partial fulfillment available immediately",
			"• Complete order delivery upon restock")
	}

	parts = append(parts,
		"\nThank you for choosing Munder Difflin Paper Company!",
		"If you have any questions, please don't hesitate to contact us.")

	return strings.Join(parts, "\n"), nil
}

// DeclineDetails carries everything the decline template displays. An empty
// Reason defaults to ReasonInsufficientStock.
type DeclineDetails struct {
	ItemName       string
	Quantity       int
	AvailableStock int
	RequestDate    string
	Reason         string
}

// Decline renders an inability-to-fulfill message with requested versus
// available counts and the three standing alternative options.
func Decline(d DeclineDetails) (string, error) {
	date, err := customerDate(d.RequestDate)
	if err != nil {
		return "", fmt.Errorf("request date: %w", err)
	}

	reason := d.Reason
	if reason == "" {
		reason = ReasonInsufficientStock
	}

	parts := []string{
		fmt.Sprintf("Thank you for your inquiry on %s.", date),
		"\nWe regret to inform you that we are unable to fulfill your request at this time.",
	}

	if reason == ReasonInsufficientStock {
		parts = append(parts,
			"\nREASON: Insufficient inventory",
			fmt.Sprintf("• Requested: %s units of %s", groupThousands(d.Quantity), d.ItemName),
			fmt.Sprintf("• Currently available: %s units", groupThousands(d.AvailableStock)),
			"• We apologize for any inconvenience this may cause")
	}

	parts = append(parts,
		"\nALTERNATIVES:",
		fmt.Sprintf("• We can fulfill a partial order of %s units", groupThousands(d.AvailableStock)),
		"• We can place a special order for future delivery",
		"• We can suggest alternative products with similar specifications",
		"\nPlease contact our customer service team to discuss these options.",
		"Thank you for your understanding.")

	return strings.Join(parts, "\n"), nil
}

// ConfirmationDetails carries everything the order confirmation displays.
type ConfirmationDetails struct {
	ItemName    string
	Quantity    int
	TotalPrice  float64
	OrderNumber string
	RequestDate string
}

// Confirmation renders an order confirmation for callers that confirm
// accepted orders out of band.
func Confirmation(d ConfirmationDetails) (string, error) {
	date, err := customerDate(d.RequestDate)
	if err != nil {
		return "", fmt.Errorf("request date: %w", err)
	}

	parts := []string{
		"ORDER CONFIRMATION",
		fmt.Sprintf("Date: %s", date),
		fmt.Sprintf("Order Number: %s", d.OrderNumber),
		"\nORDER DETAILS:",
		fmt.Sprintf("• Item: %s", d.ItemName),
		fmt.Sprintf("• Quantity: %s", groupThousands(d.Quantity)),
		fmt.Sprintf("• Total Amount: $%.2f", d.TotalPrice),
		"\nSTATUS: Order confirmed and being processed",
		"• Your order has been successfully placed",
		"• You will receive a shipping confirmation within 24 hours",
		"• Expected delivery: 3-5 business days",
		"\nThank you for your business!",
		"We appreciate your trust in Munder Difflin Paper Company.",
	}

	return strings.Join(parts, "\n"), nil
}
