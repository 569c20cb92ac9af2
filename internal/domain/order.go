package domain

// InternalResult is the upstream record describing how one order request was
// processed: free-text status plus metadata. Read-only input.
type InternalResult struct {
	RequestID   string
	RequestDate string
	Response    string
}

// Outcome classifies how the upstream handled a request.
type Outcome string

const (
	OutcomeFulfilled         Outcome = "fulfilled"
	OutcomeInsufficientStock Outcome = "insufficient_stock"
	OutcomeUnknown           Outcome = "unknown"
)

// ParsedOrder is the typed view of one internal status message.
// When Outcome is OutcomeFulfilled, AvailableStock equals Quantity:
// a processed sale implies the stock was there.
type ParsedOrder struct {
	ItemName            string
	Quantity            int
	UnitPrice           float64
	TotalPrice          float64
	AvailableStock      int
	BulkDiscountApplied bool
	Outcome             Outcome
}

// StatusProcessed is the internal status recorded on every produced output.
const StatusProcessed = "processed"

// CustomerOutput is the final customer-facing artifact for one request.
type CustomerOutput struct {
	RequestID        string
	RequestDate      string
	CustomerResponse string
	InternalStatus   string
}
