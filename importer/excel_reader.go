package importer

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelReader reads a roster from the first sheet of a workbook. Trailing
// empty cells are dropped by excelize, so short rows are padded; rows wider
// than the header are rejected.
type ExcelReader struct{}

func (r *ExcelReader) Read(path string) ([]Record, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file %s: %w", path, err)
	}
	defer file.Close()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("excel file has no sheets: %s", path)
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, &DecodeError{Row: 1, Err: fmt.Errorf("sheet %s is empty", sheetName)}
	}

	normalizedHeaders, err := normalizeHeaders(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNumber := i + 2
		if len(row) == 0 {
			continue
		}
		if len(row) > len(normalizedHeaders) {
			return nil, &DecodeError{Row: rowNumber, Err: errors.New("wrong number of fields")}
		}

		values := make(map[string]string, len(normalizedHeaders))
		for col := range normalizedHeaders {
			if col < len(row) {
				values[normalizedHeaders[col]] = row[col]
			} else {
				values[normalizedHeaders[col]] = ""
			}
		}

		records = append(records, Record{RowNumber: rowNumber, Values: values})
	}

	return records, nil
}
