package results

import (
	"context"
	"fmt"
	"log/slog"

	"CustomerOutputs/internal/config"
	"CustomerOutputs/internal/domain"
	"CustomerOutputs/internal/ports"
	"CustomerOutputs/internal/source"
)

// StrategySource implements ResultSource via registered format readers.
type StrategySource struct {
	registry *source.Registry
	input    config.InputConfig
	logger   *slog.Logger
}

var _ ports.ResultSource = (*StrategySource)(nil)

// NewStrategySource wires the reader registry with the configured input.
func NewStrategySource(reg *source.Registry, input config.InputConfig, log *slog.Logger) *StrategySource {
	return &StrategySource{
		registry: reg,
		input:    input,
		logger:   log,
	}
}

// Load resolves the configured format and reads the whole batch.
func (s *StrategySource) Load(ctx context.Context) ([]domain.InternalResult, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("reader registry is not configured")
	}

	s.debug("load results", "format", s.input.Format, "path", s.input.Path)

	reader, err := s.registry.Resolve(s.input.Format)
	if err != nil {
		return nil, fmt.Errorf("input %s: %w", s.input.Path, err)
	}

	records, err := reader.Read(ctx, source.Request{
		Path:    s.input.Path,
		Options: s.input.Options,
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.input.Path, err)
	}

	s.debug("source produced records", "count", len(records))
	return records, nil
}

func (s *StrategySource) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
