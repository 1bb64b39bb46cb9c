package output

import (
	"awardlog/report"
	"awardlog/roster"
)

// TimeReportLines renders one total per line, without the identity.
func TimeReportLines(entries []report.TimeEntry) []string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, report.FormatTotal(entry.Total))
	}
	return lines
}

// EmailReportLines renders "first middle last" per identity.
func EmailReportLines(identities []roster.Identity) []string {
	lines := make([]string, 0, len(identities))
	for _, identity := range identities {
		lines = append(lines, identity.String())
	}
	return lines
}

func WriteTimeReport(path string, entries []report.TimeEntry) error {
	return WriteLines(path, TimeReportLines(entries))
}

func WriteEmailReport(path string, identities []roster.Identity) error {
	return WriteLines(path, EmailReportLines(identities))
}
