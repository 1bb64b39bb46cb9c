package roster

const (
	ColumnAwardUnit     = "award_unit"
	ColumnFirstName     = "first_name"
	ColumnMiddleName    = "middle_name"
	ColumnLastName      = "last_name"
	ColumnAwardLevel    = "award_level"
	ColumnSubActivity   = "sub_activity"
	ColumnAim           = "aim"
	ColumnCompleted     = "completed"
	ColumnFirstLogDate  = "first_log_date"
	ColumnAssessorName  = "assessor_name"
	ColumnAssessorEmail = "assessor_email"
	ColumnPID           = "pid"
	ColumnLastLog       = "last_log"
	ColumnGender        = "gender"
)

// Columns lists the fixed roster schema in file order.
func Columns() []string {
	return []string{
		ColumnAwardUnit,
		ColumnFirstName,
		ColumnMiddleName,
		ColumnLastName,
		ColumnAwardLevel,
		ColumnSubActivity,
		ColumnAim,
		ColumnCompleted,
		ColumnFirstLogDate,
		ColumnAssessorName,
		ColumnAssessorEmail,
		ColumnPID,
		ColumnLastLog,
		ColumnGender,
	}
}
