package importer

import (
	"awardlog/roster"
)

// MapPerson converts a decoded record into a roster.Person. Only completed
// and pid are typed; every other column is copied verbatim.
func MapPerson(record Record) (roster.Person, error) {
	completed, err := parseCompleted(record.Get(roster.ColumnCompleted))
	if err != nil {
		return roster.Person{}, &DecodeError{Row: record.RowNumber, Column: roster.ColumnCompleted, Err: err}
	}

	pid, err := parsePID(record.Get(roster.ColumnPID))
	if err != nil {
		return roster.Person{}, &DecodeError{Row: record.RowNumber, Column: roster.ColumnPID, Err: err}
	}

	return roster.Person{
		AwardUnit:     record.Get(roster.ColumnAwardUnit),
		FirstName:     record.Get(roster.ColumnFirstName),
		MiddleName:    record.Get(roster.ColumnMiddleName),
		LastName:      record.Get(roster.ColumnLastName),
		AwardLevel:    record.Get(roster.ColumnAwardLevel),
		SubActivity:   record.Get(roster.ColumnSubActivity),
		Aim:           record.Get(roster.ColumnAim),
		Completed:     completed,
		FirstLogDate:  record.Get(roster.ColumnFirstLogDate),
		AssessorName:  record.Get(roster.ColumnAssessorName),
		AssessorEmail: record.Get(roster.ColumnAssessorEmail),
		PID:           pid,
		LastLog:       record.Get(roster.ColumnLastLog),
		Gender:        record.Get(roster.ColumnGender),
	}, nil
}
