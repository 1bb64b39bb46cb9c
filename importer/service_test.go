package importer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferFormat(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "roster.txt", want: "pipe"},
		{path: "roster", want: "pipe"},
		{path: "ROSTER.XLSX", want: "excel"},
		{path: "roster.xlsm", want: "excel"},
		{path: "roster.csv", want: "pipe"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, InferFormat(tt.path), tt.path)
	}
}

func TestRun_MapsPeople(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.txt")
	content := rosterHeader + "\n" +
		"North|Ann|Lee|Smith|Bronze|Skill|Guitar|3.0|2026-01-04|Sam|sam@example.org|101||F\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	result, err := Run(path)
	require.NoError(t, err)
	assert.Equal(t, 1, result.RowsRead)
	require.Len(t, result.People, 1)

	person := result.People[0]
	assert.Equal(t, "Ann", person.FirstName)
	assert.Equal(t, "Lee", person.MiddleName)
	assert.Equal(t, "Smith", person.LastName)
	assert.Equal(t, 3.0, person.Completed)
	assert.Equal(t, uint32(101), person.PID)
	assert.Equal(t, "", person.LastLog)
	assert.Equal(t, "F", person.Gender)
}

func TestRun_BadCompletedIsDecodeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.txt")
	content := rosterHeader + "\n" +
		"North|Ann|Lee|Smith|Bronze|Skill|Guitar|lots|2026-01-04|Sam|sam@example.org|101||F\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Run(path)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr), "expected DecodeError, got %v", err)
	assert.Equal(t, 2, decodeErr.Row)
	assert.Equal(t, "completed", decodeErr.Column)
}

func TestRun_DecodeErrorReportsFileLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.txt")
	content := rosterHeader + "\n\n\n" +
		"North|Ann|Lee|Smith|Bronze|Skill|Guitar|lots|2026-01-04|Sam|sam@example.org|101||F\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Run(path)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr), "expected DecodeError, got %v", err)
	assert.Equal(t, 4, decodeErr.Row)
	assert.Equal(t, "completed", decodeErr.Column)
}

func TestReaderForFormat_Unsupported(t *testing.T) {
	_, err := ReaderForFormat("yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported input format")
}
