package results

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"CustomerOutputs/internal/domain"
	"CustomerOutputs/internal/source"
)

// Column names expected in the upstream results file.
const (
	columnRequestID   = "request_id"
	columnRequestDate = "request_date"
	columnResponse    = "response"
)

// CSVReader loads internal results from a header-addressed CSV file.
type CSVReader struct{}

// NewCSVReader builds the CSV strategy.
func NewCSVReader() *CSVReader {
	return &CSVReader{}
}

// Name identifies the strategy inside the registry.
func (r *CSVReader) Name() string {
	return "csv"
}

// Read parses the whole file, preserving row order. Columns are located by
// header name, so extra upstream columns are tolerated.
func (r *CSVReader) Read(ctx context.Context, req source.Request) ([]domain.InternalResult, error) {
	file, err := os.Open(req.Path)
	if err != nil {
		return nil, fmt.Errorf("open results file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns, err := locateColumns(header)
	if err != nil {
		return nil, err
	}

	var records []domain.InternalResult
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		records = append(records, domain.InternalResult{
			RequestID:   row[columns.requestID],
			RequestDate: row[columns.requestDate],
			Response:    row[columns.response],
		})
	}

	return records, nil
}

type columnIndexes struct {
	requestID   int
	requestDate int
	response    int
}

func locateColumns(header []string) (columnIndexes, error) {
	indexes := columnIndexes{requestID: -1, requestDate: -1, response: -1}
	for i, name := range header {
		switch name {
		case columnRequestID:
			indexes.requestID = i
		case columnRequestDate:
			indexes.requestDate = i
		case columnResponse:
			indexes.response = i
		}
	}

	if indexes.requestID < 0 || indexes.requestDate < 0 || indexes.response < 0 {
		return indexes, fmt.Errorf("results file must carry %s, %s and %s columns",
			columnRequestID, columnRequestDate, columnResponse)
	}

	return indexes, nil
}
