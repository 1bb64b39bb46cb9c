package report

import (
	"cmp"
	"slices"

	"awardlog/roster"
)

// Notifications collapses people to unique name triples and orders them by
// first name, then last name, then middle name. Two rows with different pids
// but identical names produce one identity.
func Notifications(people []roster.Person) []roster.Identity {
	seen := make(map[roster.Identity]struct{}, len(people))
	identities := make([]roster.Identity, 0, len(people))
	for _, person := range people {
		identity := person.Identity()
		if _, ok := seen[identity]; ok {
			continue
		}
		seen[identity] = struct{}{}
		identities = append(identities, identity)
	}

	slices.SortFunc(identities, func(a, b roster.Identity) int {
		return cmp.Or(
			cmp.Compare(a.FirstName, b.FirstName),
			cmp.Compare(a.LastName, b.LastName),
			cmp.Compare(a.MiddleName, b.MiddleName),
		)
	})

	return identities
}
