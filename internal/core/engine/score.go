package engine

import "github.com/custodia-labs/catalog-search/internal/core/domain"

// Score sums the value of every match. ok is false when there are no
// matches. Duplicate matches in one category all count.
func Score(matches []domain.Match) (score int, ok bool) {
	if len(matches) == 0 {
		return 0, false
	}
	for _, m := range matches {
		score += m.Value()
	}
	return score, true
}
