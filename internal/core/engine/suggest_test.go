package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestDepartments(t *testing.T) {
	departments := []string{"CSCI", "MATH", "PHYS", "CHEM", "CSCI"}

	tests := []struct {
		name  string
		query string
		max   int
		want  []string
	}{
		{"one typo", "csco 5", 2, []string{"CSCI"}},
		{"exact department needs no hint", "math", 2, nil},
		{"case-insensitive exact", "MATH 30", 2, nil},
		{"empty query", "", 2, nil},
		{"nothing close enough", "zzzz", 2, []string{}},
		{"closest first then alphabetical", "phem", 2, []string{"CHEM", "PHYS"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestDepartments(tt.query, departments, tt.max)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
