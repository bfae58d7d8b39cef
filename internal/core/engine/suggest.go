package engine

import (
	"slices"
	"strings"
)

// SuggestDepartments proposes department codes close to the first token of
// the query, for "did you mean" hints. Codes within maxDistance edits are
// returned closest first, ties alphabetically. A department the token
// already names exactly yields no suggestions.
func SuggestDepartments(text string, departments []string, maxDistance int) []string {
	tokens := Tokenize(strings.ToLower(text))
	if len(tokens) == 0 {
		return nil
	}
	token := tokens[0]

	type candidate struct {
		code     string
		distance int
	}
	var candidates []candidate
	seen := make(map[string]bool, len(departments))

	for _, dept := range departments {
		code := strings.ToLower(dept)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true

		if code == token {
			return nil
		}
		if d := EditDistance(token, code); d <= maxDistance {
			candidates = append(candidates, candidate{code: dept, distance: d})
		}
	}

	slices.SortFunc(candidates, func(a, b candidate) int {
		if a.distance != b.distance {
			return a.distance - b.distance
		}
		return strings.Compare(a.code, b.code)
	})

	suggestions := make([]string, len(candidates))
	for i, c := range candidates {
		suggestions[i] = c.code
	}
	return suggestions
}
