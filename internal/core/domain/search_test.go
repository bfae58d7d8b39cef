package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchOptions_ZeroValue(t *testing.T) {
	var opts SearchOptions

	assert.Zero(t, opts.Limit)
	assert.Zero(t, opts.Offset)
	assert.Nil(t, opts.Term)
	assert.Empty(t, opts.Filters)
	assert.False(t, opts.Explain)
}

func TestSearchResult_JSONOmitsMatchesUnlessExplained(t *testing.T) {
	r := SearchResult{Score: 1}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Matches")

	r.Matches = []Match{{Category: MatchCode, Exact: true}}
	data, err = json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Matches":[{"category":"code","exact":true}]`)
}
