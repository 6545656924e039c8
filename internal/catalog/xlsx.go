package catalog

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrNoSheets = errors.New("workbook has no sheets")

// ParseXLSX reads the first sheet of a workbook with the same rules as
// ParseCSV: the first row is the header, blank rows are skipped and short
// rows are padded.
func ParseXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	if len(records) < 2 {
		return nil, nil
	}

	headers := trimAll(records[0])
	rows := make([]Row, 0, len(records)-1)

	for _, record := range records[1:] {
		values := trimAll(record)
		if isBlank(values) {
			continue
		}

		rows = append(rows, newRow(headers, values))
	}

	return rows, nil
}

func trimAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}

	return out
}

func isBlank(values []string) bool {
	for _, v := range values {
		if v != "" {
			return false
		}
	}

	return true
}
