package output

import (
	"awardlog/report"
	"awardlog/roster"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteTimeReport_OneTotalPerLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "time.txt")
	entries := []report.TimeEntry{
		{Key: roster.TimeKey{LastName: "Jones", FirstName: "Ann"}, Total: 2},
		{Key: roster.TimeKey{LastName: "Smith", FirstName: "Ann"}, Total: 3.5},
	}

	if err := WriteTimeReport(path, entries); err != nil {
		t.Fatalf("write time report: %v", err)
	}

	assertFileContent(t, path, "2\n3.5\n")
}

func TestWriteEmailReport_FormatsNameTriple(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emails.txt")
	identities := []roster.Identity{
		{FirstName: "Ann", MiddleName: "Lee", LastName: "Smith"},
		{FirstName: "Bea", MiddleName: "", LastName: "Young"},
	}

	if err := WriteEmailReport(path, identities); err != nil {
		t.Fatalf("write email report: %v", err)
	}

	assertFileContent(t, path, "Ann Lee Smith\nBea  Young\n")
}

func TestWriteLines_OverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "time.txt")
	if err := os.WriteFile(path, []byte("stale\ncontent\nfrom before\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if err := WriteLines(path, []string{"1"}); err != nil {
		t.Fatalf("write lines: %v", err)
	}

	assertFileContent(t, path, "1\n")
}

func TestWriteLines_EmptyReportCreatesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emails.txt")

	if err := WriteLines(path, nil); err != nil {
		t.Fatalf("write lines: %v", err)
	}

	assertFileContent(t, path, "")
}

func TestWriteLines_MissingParentDirectoryIsIOError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "time.txt")

	err := WriteLines(path, []string{"1"})
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}
	if ioErr.Path != path {
		t.Fatalf("unexpected path: expected %s, got %s", path, ioErr.Path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}

func assertFileContent(t *testing.T, path, expected string) {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if string(content) != expected {
		t.Fatalf("unexpected content of %s: expected %q, got %q", path, expected, string(content))
	}
}
