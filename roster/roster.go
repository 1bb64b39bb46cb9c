package roster

// Person is one decoded roster row. Only the name fields, Completed and
// LastLog feed the reports; the rest is carried through from the input.
type Person struct {
	AwardUnit     string
	FirstName     string
	MiddleName    string
	LastName      string
	AwardLevel    string
	SubActivity   string
	Aim           string
	Completed     float64
	FirstLogDate  string
	AssessorName  string
	AssessorEmail string
	PID           uint32
	LastLog       string
	Gender        string
}

// TimeKey groups rows for the time report.
type TimeKey struct {
	LastName  string
	FirstName string
}

// Identity is the name triple used to deduplicate notification candidates.
type Identity struct {
	FirstName  string
	MiddleName string
	LastName   string
}

func (p Person) TimeKey() TimeKey {
	return TimeKey{LastName: p.LastName, FirstName: p.FirstName}
}

func (p Person) Identity() Identity {
	return Identity{FirstName: p.FirstName, MiddleName: p.MiddleName, LastName: p.LastName}
}

func (i Identity) String() string {
	return i.FirstName + " " + i.MiddleName + " " + i.LastName
}
