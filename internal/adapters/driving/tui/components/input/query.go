package input

import (
	"strings"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
)

// word is a space-separated run of raw[start:end]; text has its quotes
// removed.
type word struct {
	start, end int
	text       string
}

// ParseQuery splits raw query-box text into free text and filters. Words
// of the form key:value with a known key become filters, and a quoted value
// may contain spaces, e.g. code:"csci 5". Filter words are cut out together
// with the spaces after them; the rest of raw is returned as typed.
func ParseQuery(raw string) (string, []domain.Filter) {
	var (
		text    strings.Builder
		filters []domain.Filter
		last    int
		trailed bool
	)
	words := splitWords(raw)
	for i, w := range words {
		f, ok := parseFilterWord(w.text)
		if !ok {
			continue
		}
		filters = append(filters, f)

		text.WriteString(raw[last:w.start])
		last = len(raw)
		if i+1 < len(words) {
			last = words[i+1].start
		}
		trailed = i == len(words)-1
	}
	if filters == nil {
		return raw, nil
	}

	text.WriteString(raw[last:])
	out := text.String()
	if trailed {
		out = strings.TrimRight(out, " ")
	}
	return out, filters
}

func parseFilterWord(s string) (domain.Filter, bool) {
	key, _, found := strings.Cut(s, ":")
	if !found {
		return domain.Filter{}, false
	}
	if _, err := domain.ParseFilterKey(key); err != nil {
		return domain.Filter{}, false
	}
	f, err := domain.ParseFilter(s)
	if err != nil {
		return domain.Filter{}, false
	}
	return f, true
}

// splitWords splits on spaces outside double quotes.
func splitWords(raw string) []word {
	var (
		words   []word
		current strings.Builder
		start   = -1
		quoted  bool
	)
	flush := func(end int) {
		if start >= 0 {
			words = append(words, word{start: start, end: end, text: current.String()})
			current.Reset()
			start = -1
		}
	}
	for i, r := range raw {
		if r == ' ' && !quoted {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
		if r == '"' {
			quoted = !quoted
			continue
		}
		current.WriteRune(r)
	}
	flush(len(raw))
	return words
}
