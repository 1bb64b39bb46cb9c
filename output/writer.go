package output

import (
	"bufio"
	"fmt"
	"os"
)

// IOError reports a report file that could not be created or written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// WriteLines replaces the file at path with one newline-terminated line per
// element of lines.
func WriteLines(path string, lines []string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create report", Path: path, Err: err}
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = &IOError{Op: "close report", Path: path, Err: closeErr}
		}
	}()

	writer := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := writer.WriteString(line + "\n"); err != nil {
			return &IOError{Op: "write report", Path: path, Err: err}
		}
	}
	if err := writer.Flush(); err != nil {
		return &IOError{Op: "flush report", Path: path, Err: err}
	}

	return nil
}
