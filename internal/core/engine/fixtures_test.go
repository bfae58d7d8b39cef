package engine

import "github.com/custodia-labs/catalog-search/internal/core/domain"

// csciSection returns CSCI 005 HM-01 for FA2023.
func csciSection() domain.Section {
	return domain.Section{
		Identifier: domain.SectionIdentifier{
			Department:    "CSCI",
			CourseNumber:  5,
			Affiliation:   "HM",
			SectionNumber: 1,
			Year:          2023,
			Term:          domain.TermFall,
		},
		Course: domain.Course{
			Title:              "Intro to Computer Science",
			Description:        "An introduction to programming and computer science.",
			PrimaryAssociation: domain.SchoolHarveyMudd,
			CourseAreas:        []string{"5WRT"},
		},
		Instructors: []domain.Instructor{{Name: "Ada Lovelace"}, {Name: "Alan Turing"}},
		Campus:      domain.SchoolHarveyMudd,
	}
}

// mathSection returns MATH 005 HM-01 for FA2023.
func mathSection() domain.Section {
	return domain.Section{
		Identifier: domain.SectionIdentifier{
			Department:    "MATH",
			CourseNumber:  5,
			Affiliation:   "HM",
			SectionNumber: 1,
			Year:          2023,
			Term:          domain.TermFall,
		},
		Course: domain.Course{
			Title:       "Calculus",
			Description: "Limits and derivatives.",
		},
	}
}

// only returns the matches in one category.
func only(matches []domain.Match, c domain.MatchCategory) []domain.Match {
	var out []domain.Match
	for _, m := range matches {
		if m.Category == c {
			out = append(out, m)
		}
	}
	return out
}

func exactMatch(c domain.MatchCategory) []domain.Match {
	return []domain.Match{{Category: c, Exact: true}}
}

func fuzzyMatches(c domain.MatchCategory, n int) []domain.Match {
	out := make([]domain.Match, n)
	for i := range out {
		out[i] = domain.Match{Category: c}
	}
	return out
}
