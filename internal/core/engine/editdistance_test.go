package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditDistance_DefaultCosts(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"csci", "csco", 1},
		{"café", "cafe", 1},
	}

	for _, tt := range tests {
		t.Run(tt.start+"->"+tt.end, func(t *testing.T) {
			assert.Equal(t, tt.want, EditDistance(tt.start, tt.end))
		})
	}
}

func TestEditDistance_Symmetric(t *testing.T) {
	pairs := [][2]string{{"kitten", "sitting"}, {"math", "meth"}, {"", "xyz"}}
	for _, p := range pairs {
		assert.Equal(t, EditDistance(p[0], p[1]), EditDistance(p[1], p[0]))
	}
}

func TestEditDistance_CustomCosts(t *testing.T) {
	t.Run("insert cost accumulates along the end axis", func(t *testing.T) {
		assert.Equal(t, 6, EditDistance("", "abc", WithInsertCost(2)))
	})

	t.Run("delete cost accumulates along the start axis", func(t *testing.T) {
		assert.Equal(t, 9, EditDistance("abc", "", WithDeleteCost(3)))
	})

	t.Run("expensive substitution prefers delete plus insert", func(t *testing.T) {
		assert.Equal(t, 2, EditDistance("a", "b", WithSubstituteCost(5)))
	})

	t.Run("cheap substitution", func(t *testing.T) {
		assert.Equal(t, 3, EditDistance("abc", "xyz", WithSubstituteCost(1)))
	})

	t.Run("all zero costs", func(t *testing.T) {
		d := EditDistance("kitten", "sitting",
			WithInsertCost(0), WithDeleteCost(0), WithSubstituteCost(0))
		assert.Equal(t, 0, d)
	})

	t.Run("unspecified costs keep their default", func(t *testing.T) {
		assert.Equal(t, 3, EditDistance("kitten", "sitting", WithInsertCost(1)))
	})
}
