package report

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"CustomerOutputs/internal/config"
	"CustomerOutputs/internal/domain"
	"CustomerOutputs/internal/ports"
)

const (
	// sampleCount caps how many full responses the summary quotes.
	sampleCount = 3
	// sampleLimit truncates each quoted response, matching the report's
	// skim-first purpose.
	sampleLimit = 500
)

// FileWriter emits the per-run artifacts: the customer outputs CSV and a
// plain-text summary report.
type FileWriter struct {
	csvPath     string
	summaryPath string
	logger      *slog.Logger
}

var _ ports.OutputWriter = (*FileWriter)(nil)

// NewFileWriter wires the configured artifact paths.
func NewFileWriter(cfg config.OutputConfig, log *slog.Logger) *FileWriter {
	return &FileWriter{
		csvPath:     cfg.CSVPath,
		summaryPath: cfg.SummaryPath,
		logger:      log,
	}
}

// WriteOutputs writes one CSV row per customer output, preserving batch order.
func (w *FileWriter) WriteOutputs(outputs []domain.CustomerOutput) error {
	file, err := os.Create(w.csvPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", w.csvPath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"request_id", "request_date", "customer_response", "internal_status"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, output := range outputs {
		row := []string{output.RequestID, output.RequestDate, output.CustomerResponse, output.InternalStatus}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write request %s: %w", output.RequestID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", w.csvPath, err)
	}

	if w.logger != nil {
		w.logger.Info("customer outputs written", "path", w.csvPath, "count", len(outputs))
	}
	return nil
}

// WriteSummary writes the run-level report: totals, date range, and the
// first few responses as samples.
func (w *FileWriter) WriteSummary(outputs []domain.CustomerOutput) error {
	var b strings.Builder

	b.WriteString("CUSTOMER OUTPUTS SUMMARY REPORT\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	fmt.Fprintf(&b, "Total requests processed: %d\n", len(outputs))
	if len(outputs) > 0 {
		fmt.Fprintf(&b, "Date range: %s to %s\n",
			outputs[0].RequestDate, outputs[len(outputs)-1].RequestDate)
	}

	b.WriteString("\nSAMPLE RESPONSES:\n")
	b.WriteString(strings.Repeat("-", 15) + "\n")

	for i, output := range outputs {
		if i == sampleCount {
			break
		}
		fmt.Fprintf(&b, "\nRequest ID %s (%s):\n", output.RequestID, output.RequestDate)
		b.WriteString(strings.Repeat("-", 40) + "\n")
		b.WriteString(truncate(output.CustomerResponse, sampleLimit) + "\n")
	}

	if err := os.WriteFile(w.summaryPath, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", w.summaryPath, err)
	}

	if w.logger != nil {
		w.logger.Info("summary report written", "path", w.summaryPath)
	}
	return nil
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
