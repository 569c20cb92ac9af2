package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"CustomerOutputs/internal/domain"
	"CustomerOutputs/internal/extract"
	"CustomerOutputs/internal/ports"
	"CustomerOutputs/internal/respond"
)

// RenderCustomerOutputs converts a batch of internal results into customer
// outputs, one per input record, in input order.
//
// Template selection per record: a fulfilled sale gets a quote; a short-stock
// result still gets the quote when the bulk discount applied, otherwise a
// decline; anything unparseable or unrecognized gets the fixed apology. Only
// a malformed request date fails the call, since valid dates are a caller
// precondition; the error names the offending record.
func RenderCustomerOutputs(records []domain.InternalResult) ([]domain.CustomerOutput, error) {
	outputs := make([]domain.CustomerOutput, 0, len(records))

	for _, record := range records {
		response, err := renderResponse(record)
		if err != nil {
			return nil, fmt.Errorf("render request %s: %w", record.RequestID, err)
		}
		outputs = append(outputs, domain.CustomerOutput{
			RequestID:        record.RequestID,
			RequestDate:      record.RequestDate,
			CustomerResponse: response,
			InternalStatus:   domain.StatusProcessed,
		})
	}

	return outputs, nil
}

func renderResponse(record domain.InternalResult) (string, error) {
	order, err := extract.Parse(record.Response)
	if err != nil || order.Outcome == domain.OutcomeUnknown {
		return respond.Apology, nil
	}

	if order.Outcome == domain.OutcomeFulfilled || order.BulkDiscountApplied {
		return respond.Quote(respond.QuoteDetails{
			ItemName:            order.ItemName,
			Quantity:            order.Quantity,
			UnitPrice:           order.UnitPrice,
			TotalPrice:          order.TotalPrice,
			AvailableStock:      order.AvailableStock,
			RequestDate:         record.RequestDate,
			BulkDiscountApplied: order.BulkDiscountApplied,
		})
	}

	return respond.Decline(respond.DeclineDetails{
		ItemName:       order.ItemName,
		Quantity:       order.Quantity,
		AvailableStock: order.AvailableStock,
		RequestDate:    record.RequestDate,
	})
}

// PipelineDeps wires all driven adapters into the batch pipeline.
type PipelineDeps struct {
	Source     ports.ResultSource
	Writer     ports.OutputWriter
	Repository ports.OutputRepository
	Notifier   ports.Notifier
	Logger     *slog.Logger
}

// Pipeline implements the customer-output batch workflow around the core
// rendering: load internal results, render, emit artifacts, persist, notify.
type Pipeline struct {
	source     ports.ResultSource
	writer     ports.OutputWriter
	repository ports.OutputRepository
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:     deps.Source,
		writer:     deps.Writer,
		repository: deps.Repository,
		notifier:   deps.Notifier,
		logger:     deps.Logger,
	}
}

// ProcessBatch runs one full pass over the configured source.
func (p *Pipeline) ProcessBatch(ctx context.Context) error {
	if p.source == nil {
		return nil
	}

	records, err := p.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load results: %w", err)
	}
	p.debug("loaded internal results", "count", len(records))

	outputs, err := RenderCustomerOutputs(records)
	if err != nil {
		return fmt.Errorf("render outputs: %w", err)
	}

	if p.writer != nil {
		if err := p.writer.WriteOutputs(outputs); err != nil {
			return fmt.Errorf("write outputs: %w", err)
		}
		if err := p.writer.WriteSummary(outputs); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	if p.repository != nil {
		if err := p.repository.SaveOutputs(ctx, outputs); err != nil {
			return fmt.Errorf("persist outputs: %w", err)
		}
	}

	if p.notifier == nil {
		return nil
	}

	message := buildRunSummary(outputs)
	if err := p.notifier.PublishSummary(ctx, message); err != nil {
		return fmt.Errorf("publish summary: %w", err)
	}

	return nil
}

func buildRunSummary(outputs []domain.CustomerOutput) string {
	apologies := 0
	for _, output := range outputs {
		if output.CustomerResponse == respond.Apology {
			apologies++
		}
	}

	return fmt.Sprintf("Customer outputs run: %d requests processed, %d needed manual follow-up.",
		len(outputs), apologies)
}

func (p *Pipeline) debug(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
