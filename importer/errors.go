package importer

import "fmt"

// DecodeError reports a roster header or row that does not fit the fixed
// schema. Row is the 1-based line (or sheet row) number; Column is empty when
// the problem is not tied to a single column.
type DecodeError struct {
	Row    int
	Column string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("decode row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("decode row %d column %s: %v", e.Row, e.Column, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
