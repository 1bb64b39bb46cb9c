package report

import (
	"strings"

	"awardlog/roster"
)

// Filter keeps the people whose first name contains substr. Matching is
// literal and case-sensitive; an empty substr keeps everyone.
func Filter(people []roster.Person, substr string) []roster.Person {
	filtered := make([]roster.Person, 0, len(people))
	for _, person := range people {
		if strings.Contains(person.FirstName, substr) {
			filtered = append(filtered, person)
		}
	}
	return filtered
}
