package classify

import (
	"fmt"
	"time"

	"awardlog/internal/timeutil"
	"awardlog/roster"
)

// StaleAfterDays is the number of days without a log entry after which a
// participant is due a reminder.
const StaleAfterDays = 14

// NeedsNotification reports whether person has never logged, or last logged
// at least StaleAfterDays calendar days before today.
func NeedsNotification(person roster.Person, today time.Time) (bool, error) {
	if person.LastLog == "" {
		return true, nil
	}

	lastLog, err := timeutil.ParseLogDate(person.LastLog)
	if err != nil {
		return false, err
	}

	return timeutil.DaysBetween(lastLog, today) >= StaleAfterDays, nil
}

// Stale splits people by notification outcome and returns the ones that
// need a reminder. The first unparsable last_log aborts the whole pass.
func Stale(people []roster.Person, today time.Time) ([]roster.Person, error) {
	stale := make([]roster.Person, 0, len(people))

	for _, person := range people {
		notify, err := NeedsNotification(person, today)
		if err != nil {
			return nil, fmt.Errorf("classify %s %s (pid %d): %w", person.FirstName, person.LastName, person.PID, err)
		}
		if notify {
			stale = append(stale, person)
		}
	}

	return stale, nil
}
