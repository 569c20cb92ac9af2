package results

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"CustomerOutputs/internal/domain"
	"CustomerOutputs/internal/source"
)

// JSONLReader loads internal results from a file with one JSON object per line.
type JSONLReader struct{}

// NewJSONLReader builds the JSONL strategy.
func NewJSONLReader() *JSONLReader {
	return &JSONLReader{}
}

// Name identifies the strategy inside the registry.
func (r *JSONLReader) Name() string {
	return "jsonl"
}

type jsonlRecord struct {
	RequestID   json.Number `json:"request_id"`
	RequestDate string      `json:"request_date"`
	Response    string      `json:"response"`
}

// Read parses the file line by line, preserving order. Blank lines are
// skipped; request ids may arrive as JSON numbers or strings.
func (r *JSONLReader) Read(ctx context.Context, req source.Request) ([]domain.InternalResult, error) {
	file, err := os.Open(req.Path)
	if err != nil {
		return nil, fmt.Errorf("open results file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var records []domain.InternalResult
	for line := 1; scanner.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		var record jsonlRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("parse line %d: %w", line, err)
		}

		records = append(records, domain.InternalResult{
			RequestID:   record.RequestID.String(),
			RequestDate: record.RequestDate,
			Response:    record.Response,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan results file: %w", err)
	}

	return records, nil
}
