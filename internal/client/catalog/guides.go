package catalog

import (
	"slices"
	"strings"
)

// Cities returns the sorted, de-duplicated service locations of guides.
func Cities(guides []Guide) []string {
	var out []string
	for _, g := range guides {
		out = append(out, g.Filters.ServiceLocations...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// FilterGuides keeps the guides serving city whose name or specialisation
// contains query, ignoring case. An empty city or query matches everything.
func FilterGuides(guides []Guide, city, query string) []Guide {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Guide
	for _, g := range guides {
		if city != "" && !slices.Contains(g.Filters.ServiceLocations, city) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(g.Card.Name), q) &&
			!strings.Contains(strings.ToLower(g.Card.Specialization), q) {
			continue
		}
		out = append(out, g)
	}
	return out
}
