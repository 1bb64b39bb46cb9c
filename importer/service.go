package importer

import (
	"path/filepath"
	"strings"

	"awardlog/roster"
)

type Result struct {
	RowsRead int
	People   []roster.Person
}

// Run reads the roster at path and maps every row. Any decode failure aborts
// the import; there is no per-row skipping.
func Run(path string) (*Result, error) {
	reader, err := ReaderForFormat(InferFormat(path))
	if err != nil {
		return nil, err
	}

	records, err := reader.Read(path)
	if err != nil {
		return nil, err
	}

	result := &Result{RowsRead: len(records), People: make([]roster.Person, 0, len(records))}
	for _, record := range records {
		person, err := MapPerson(record)
		if err != nil {
			return nil, err
		}
		result.People = append(result.People, person)
	}

	return result, nil
}

// InferFormat picks the reader from the file extension. Anything that is not
// a workbook is read as pipe-delimited.
func InferFormat(path string) string {
	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch extension {
	case "xlsx", "xlsm":
		return "excel"
	default:
		return "pipe"
	}
}
