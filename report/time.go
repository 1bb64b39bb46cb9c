package report

import (
	"cmp"
	"slices"
	"strconv"

	"awardlog/roster"
)

type TimeEntry struct {
	Key   roster.TimeKey
	Total float64
}

// AggregateTime sums Completed per (last name, first name) and orders the
// totals ascending. Equal totals are ordered by last name, then first name.
func AggregateTime(people []roster.Person) []TimeEntry {
	if len(people) == 0 {
		return []TimeEntry{}
	}

	totals := make(map[roster.TimeKey]float64)
	for _, person := range people {
		totals[person.TimeKey()] += person.Completed
	}

	entries := make([]TimeEntry, 0, len(totals))
	for key, total := range totals {
		entries = append(entries, TimeEntry{Key: key, Total: total})
	}

	slices.SortFunc(entries, func(a, b TimeEntry) int {
		return cmp.Or(
			cmp.Compare(a.Total, b.Total),
			cmp.Compare(a.Key.LastName, b.Key.LastName),
			cmp.Compare(a.Key.FirstName, b.Key.FirstName),
		)
	})

	return entries
}

// FormatTotal renders a total with the shortest decimal that round-trips:
// 3 -> "3", 3.5 -> "3.5".
func FormatTotal(total float64) string {
	return strconv.FormatFloat(total, 'f', -1, 64)
}
