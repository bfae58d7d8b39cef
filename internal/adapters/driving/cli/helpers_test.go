package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/catalog-search/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/catalog-search/internal/core/domain"
	"github.com/custodia-labs/catalog-search/internal/core/ports/driven"
	"github.com/custodia-labs/catalog-search/internal/core/services"
	"github.com/custodia-labs/catalog-search/internal/logger"
)

var fa2023 = domain.TermIdentifier{Year: 2023, Term: domain.TermFall}

func testSection(dept string, number int, title, description string, instructors ...string) domain.Section {
	sec := domain.Section{
		Identifier: domain.SectionIdentifier{
			Department:    dept,
			CourseNumber:  number,
			Affiliation:   "HM",
			SectionNumber: 1,
			Year:          fa2023.Year,
			Term:          fa2023.Term,
		},
		Course: domain.Course{
			Title:       title,
			Description: description,
		},
		Campus: domain.SchoolHarveyMudd,
	}
	for _, name := range instructors {
		sec.Instructors = append(sec.Instructors, domain.Instructor{Name: name})
	}
	return sec
}

func testSections() []domain.Section {
	return []domain.Section{
		testSection("CSCI", 5, "Intro to Computer Science", "An introduction to programming.", "Ada Lovelace"),
		testSection("CSCI", 131, "Programming Languages", "Semantics and type systems.", "Alan Turing"),
		testSection("MATH", 5, "Calculus", "Limits and derivatives."),
	}
}

// setupTestServices wires real services over in-memory stores seeded with
// testSections, and returns a cleanup func restoring the previous wiring.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	store := memory.NewSectionStore()
	require.NoError(t, store.ReplaceTerm(context.Background(), fa2023, testSections()))

	search, err := services.NewSearchService(store)
	require.NoError(t, err)

	prevSearch, prevCatalog, prevSettings, prevFiles := searchService, catalogService, settingsService, catalogFiles
	SetServices(Services{
		Search:   search,
		Catalog:  services.NewCatalogService(store),
		Settings: services.NewSettingsService(memory.NewConfigStore()),
	})

	return func() {
		search.Release()
		searchService, catalogService, settingsService, catalogFiles = prevSearch, prevCatalog, prevSettings, prevFiles
	}
}

// resetFlags restores flag variables, which keep their values between runs
// of the shared root command.
func resetFlags() {
	verbose, logLevel = false, ""
	searchLimit, searchOffset, searchTerm = 0, 0, ""
	searchFilters, searchJSON, searchExplain = nil, false, false
	importTerm = ""
	sectionsTerm, sectionsJSON = "", false
	versionShort = false
	logger.SetVerbose(false)
	logger.SetLevel(logger.LevelDebug)
}

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithInput(t, "", args...)
}

// executeWithInput is execute with stdin reading from input.
func executeWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags()
	})

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// fakeReader is a driven.CatalogReader over fixed sections.
type fakeReader struct {
	source   string
	sections []domain.Section
	err      error
}

var _ driven.CatalogReader = (*fakeReader)(nil)

func (r *fakeReader) Read(_ context.Context) ([]domain.Section, error) {
	return r.sections, r.err
}

func (r *fakeReader) Source() string {
	return r.source
}
