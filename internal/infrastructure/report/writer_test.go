package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"CustomerOutputs/internal/config"
	"CustomerOutputs/internal/domain"
)

func testOutputs() []domain.CustomerOutput {
	return []domain.CustomerOutput{
		{RequestID: "1", RequestDate: "2025-04-01", CustomerResponse: "Thank you for your inquiry.\nQuote details here.", InternalStatus: domain.StatusProcessed},
		{RequestID: "2", RequestDate: "2025-04-02", CustomerResponse: "We regret to inform you.", InternalStatus: domain.StatusProcessed},
		{RequestID: "3", RequestDate: "2025-04-03", CustomerResponse: strings.Repeat("long ", 200), InternalStatus: domain.StatusProcessed},
		{RequestID: "4", RequestDate: "2025-04-04", CustomerResponse: "Order confirmed.", InternalStatus: domain.StatusProcessed},
	}
}

func newTestWriter(t *testing.T) (*FileWriter, string, string) {
	t.Helper()
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "customer_outputs.csv")
	summaryPath := filepath.Join(dir, "summary.txt")
	writer := NewFileWriter(config.OutputConfig{CSVPath: csvPath, SummaryPath: summaryPath}, nil)
	return writer, csvPath, summaryPath
}

func TestWriteOutputs(t *testing.T) {
	t.Parallel()

	writer, csvPath, _ := newTestWriter(t)
	outputs := testOutputs()

	if err := writer.WriteOutputs(outputs); err != nil {
		t.Fatalf("WriteOutputs returned error: %v", err)
	}

	file, err := os.Open(csvPath)
	if err != nil {
		t.Fatalf("open artifact: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}

	if len(rows) != len(outputs)+1 {
		t.Fatalf("expected %d rows, got %d", len(outputs)+1, len(rows))
	}
	header := strings.Join(rows[0], ",")
	if header != "request_id,request_date,customer_response,internal_status" {
		t.Fatalf("unexpected header: %s", header)
	}
	for i, output := range outputs {
		row := rows[i+1]
		if row[0] != output.RequestID || row[2] != output.CustomerResponse || row[3] != domain.StatusProcessed {
			t.Fatalf("row %d mismatch: %v", i+1, row)
		}
	}
}

func TestWriteSummary(t *testing.T) {
	t.Parallel()

	writer, _, summaryPath := newTestWriter(t)

	if err := writer.WriteSummary(testOutputs()); err != nil {
		t.Fatalf("WriteSummary returned error: %v", err)
	}

	raw, err := os.ReadFile(summaryPath)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	summary := string(raw)

	for _, want := range []string{
		"CUSTOMER OUTPUTS SUMMARY REPORT",
		"Total requests processed: 4",
		"Date range: 2025-04-01 to 2025-04-04",
		"Request ID 1 (2025-04-01):",
		"Request ID 3 (2025-04-03):",
	} {
		if !strings.Contains(summary, want) {
			t.Fatalf("missing %q in summary:\n%s", want, summary)
		}
	}

	if strings.Contains(summary, "Request ID 4") {
		t.Fatalf("summary must quote only the first %d responses:\n%s", sampleCount, summary)
	}
	if !strings.Contains(summary, "...") {
		t.Fatalf("long responses must be truncated in the summary")
	}
}

func TestWriteSummaryEmptyBatch(t *testing.T) {
	t.Parallel()

	writer, _, summaryPath := newTestWriter(t)

	if err := writer.WriteSummary(nil); err != nil {
		t.Fatalf("WriteSummary returned error: %v", err)
	}

	raw, err := os.ReadFile(summaryPath)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if !strings.Contains(string(raw), "Total requests processed: 0") {
		t.Fatalf("unexpected empty summary:\n%s", raw)
	}
	if strings.Contains(string(raw), "Date range") {
		t.Fatalf("empty batch must not report a date range:\n%s", raw)
	}
}
