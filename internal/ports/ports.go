package ports

import (
	"context"
	"time"

	"CustomerOutputs/internal/domain"
)

// ResultSource loads the ordered batch of internal results to process.
type ResultSource interface {
	Load(ctx context.Context) ([]domain.InternalResult, error)
}

// OutputRepository persists rendered customer outputs for audit/history.
type OutputRepository interface {
	SaveOutputs(ctx context.Context, outputs []domain.CustomerOutput) error
}

// OutputWriter emits the batch artifacts (CSV file, summary report).
type OutputWriter interface {
	WriteOutputs(outputs []domain.CustomerOutput) error
	WriteSummary(outputs []domain.CustomerOutput) error
}

// Notifier pushes a run summary to an operator channel (Telegram, etc.).
type Notifier interface {
	PublishSummary(ctx context.Context, summary string) error
}

// Scheduler controls when batch runs execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
