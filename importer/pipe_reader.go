package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Delimiter separates roster fields.
const Delimiter = '|'

// PipeReader decodes a pipe-delimited roster with a header row. Every row must
// carry exactly as many fields as the header. A quote inside an unquoted field
// is kept as a literal character. RowNumber is the file line of the row.
type PipeReader struct{}

func (r *PipeReader) Read(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster file %s: %w", path, err)
	}
	defer file.Close()

	return r.Decode(file)
}

func (r *PipeReader) Decode(input io.Reader) ([]Record, error) {
	reader := csv.NewReader(input)
	reader.Comma = Delimiter
	reader.FieldsPerRecord = 0
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, &DecodeError{Row: 1, Err: errors.New("missing header row")}
	}
	if err != nil {
		return nil, &DecodeError{Row: 1, Err: err}
	}

	normalizedHeaders, err := normalizeHeaders(headers)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, 128)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, &DecodeError{Row: parseErr.StartLine, Err: parseErr.Err}
			}
			return nil, &DecodeError{Err: err}
		}
		line, _ := reader.FieldPos(0)

		values := make(map[string]string, len(normalizedHeaders))
		for i := range normalizedHeaders {
			values[normalizedHeaders[i]] = row[i]
		}

		records = append(records, Record{RowNumber: line, Values: values})
	}

	return records, nil
}
