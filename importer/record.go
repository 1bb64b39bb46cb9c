package importer

import (
	"errors"
	"fmt"
	"strings"

	"awardlog/roster"
)

type Record struct {
	RowNumber int
	Values    map[string]string
}

// Get returns the raw cell for a roster column. Values are not trimmed.
func (r Record) Get(column string) string {
	return r.Values[normalizeHeader(column)]
}

func normalizeHeader(input string) string {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	trimmed = strings.ReplaceAll(trimmed, "_", "")
	trimmed = strings.ReplaceAll(trimmed, "-", "")
	trimmed = strings.ReplaceAll(trimmed, " ", "")
	return trimmed
}

// normalizeHeaders checks a header row against the roster schema and returns
// the normalized column keys in file order.
func normalizeHeaders(headers []string) ([]string, error) {
	expected := make(map[string]string, len(roster.Columns()))
	for _, column := range roster.Columns() {
		expected[normalizeHeader(column)] = column
	}

	normalized := make([]string, len(headers))
	seen := make(map[string]struct{}, len(headers))
	for i, header := range headers {
		key := normalizeHeader(header)
		if _, ok := expected[key]; !ok {
			return nil, &DecodeError{Row: 1, Column: header, Err: errors.New("unknown column")}
		}
		if _, dup := seen[key]; dup {
			return nil, &DecodeError{Row: 1, Column: header, Err: errors.New("duplicate column")}
		}
		seen[key] = struct{}{}
		normalized[i] = key
	}

	missing := make([]string, 0)
	for _, column := range roster.Columns() {
		if _, ok := seen[normalizeHeader(column)]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, &DecodeError{Row: 1, Err: fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))}
	}

	return normalized, nil
}
