package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
)

var (
	fa23 = domain.TermIdentifier{Year: 2023, Term: domain.TermFall}
	sp24 = domain.TermIdentifier{Year: 2024, Term: domain.TermSpring}
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })

	return store
}

func testSection(dept string, number int, term domain.TermIdentifier) domain.Section {
	return domain.Section{
		Identifier: domain.SectionIdentifier{
			Department:    dept,
			CourseNumber:  number,
			Suffix:        "A",
			Affiliation:   "HM",
			SectionNumber: 1,
			Year:          term.Year,
			Term:          term.Term,
		},
		Course: domain.Course{
			Title:              dept + " seminar",
			Description:        "A description.",
			PrimaryAssociation: domain.SchoolHarveyMudd,
			CourseAreas:        []string{"5WRT"},
		},
		Instructors: []domain.Instructor{{Name: "Ada Lovelace"}},
		Credits:     100,
		Campus:      domain.SchoolPomona,
	}
}

// ==================== Store Creation ====================

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "catalog.db"), store.Path())
	assert.FileExists(t, store.Path())

	version, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestNewStore_EmptyDir(t *testing.T) {
	store, err := NewStore("")
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.SectionStore().ReplaceTerm(ctx, fa23, []domain.Section{testSection("CSCI", 5, fa23)}))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	version, err := reopened.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	sections, err := reopened.SectionStore().ListSections(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, sections, 1)
}

// ==================== Section Store ====================

func TestSectionStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	sections := setupTestStore(t).SectionStore()
	want := testSection("CSCI", 5, fa23)

	require.NoError(t, sections.ReplaceTerm(ctx, fa23, []domain.Section{want}))

	got, err := sections.GetSection(ctx, "CSCI 005A HM-01 FA2023")
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestSectionStore_GetSection_NotFound(t *testing.T) {
	_, err := setupTestStore(t).SectionStore().GetSection(context.Background(), "NOPE 001 01 FA2023")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSectionStore_ReplaceTerm(t *testing.T) {
	ctx := context.Background()
	sections := setupTestStore(t).SectionStore()

	require.NoError(t, sections.ReplaceTerm(ctx, fa23, []domain.Section{
		testSection("MATH", 30, fa23),
		testSection("CSCI", 5, fa23),
	}))
	require.NoError(t, sections.ReplaceTerm(ctx, sp24, []domain.Section{testSection("PHYS", 24, sp24)}))
	require.NoError(t, sections.ReplaceTerm(ctx, fa23, []domain.Section{testSection("CHEM", 23, fa23)}))

	all, err := sections.ListSections(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "CHEM", all[0].Identifier.Department)
	assert.Equal(t, "PHYS", all[1].Identifier.Department)
}

func TestSectionStore_ReplaceTerm_RejectsOtherTerms(t *testing.T) {
	ctx := context.Background()
	sections := setupTestStore(t).SectionStore()
	require.NoError(t, sections.ReplaceTerm(ctx, fa23, []domain.Section{testSection("CSCI", 5, fa23)}))

	err := sections.ReplaceTerm(ctx, fa23, []domain.Section{
		testSection("MATH", 30, fa23),
		testSection("PHYS", 24, sp24),
	})

	assert.ErrorIs(t, err, domain.ErrTermMismatch)
	all, err := sections.ListSections(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 1, "failed replace leaves the old catalog")
	assert.Equal(t, "CSCI", all[0].Identifier.Department)
}

func TestSectionStore_ListSections_ByTermOrdered(t *testing.T) {
	ctx := context.Background()
	sections := setupTestStore(t).SectionStore()
	require.NoError(t, sections.ReplaceTerm(ctx, fa23, []domain.Section{
		testSection("MATH", 30, fa23),
		testSection("CSCI", 131, fa23),
		testSection("CSCI", 5, fa23),
	}))
	require.NoError(t, sections.ReplaceTerm(ctx, sp24, []domain.Section{testSection("ART", 1, sp24)}))

	got, err := sections.ListSections(ctx, &fa23)

	require.NoError(t, err)
	codes := make([]string, len(got))
	for i, s := range got {
		codes[i] = s.Identifier.Code()
	}
	assert.Equal(t, []string{"CSCI 005A HM-01", "CSCI 131A HM-01", "MATH 030A HM-01"}, codes)
}

func TestSectionStore_ListSections_Empty(t *testing.T) {
	got, err := setupTestStore(t).SectionStore().ListSections(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSectionStore_ListTerms(t *testing.T) {
	ctx := context.Background()
	sections := setupTestStore(t).SectionStore()
	require.NoError(t, sections.ReplaceTerm(ctx, sp24, []domain.Section{testSection("PHYS", 24, sp24)}))
	require.NoError(t, sections.ReplaceTerm(ctx, fa23, []domain.Section{
		testSection("MATH", 30, fa23),
		testSection("CSCI", 5, fa23),
	}))

	terms, err := sections.ListTerms(ctx)

	require.NoError(t, err)
	assert.Equal(t, []domain.TermIdentifier{fa23, sp24}, terms)
}

func TestSectionStore_Imports(t *testing.T) {
	ctx := context.Background()
	sections := setupTestStore(t).SectionStore()
	base := time.Date(2024, 1, 1, 9, 30, 0, 123456789, time.UTC)

	recs := []domain.ImportRecord{
		{ID: "a", Term: fa23, Sections: 10, Source: "fall.json", ImportedAt: base},
		{ID: "b", Term: sp24, Sections: 3, Source: "spring.json", ImportedAt: base.Add(time.Hour)},
		{ID: "c", Term: fa23, Sections: 11, Source: "fall.json", ImportedAt: base.Add(time.Minute)},
	}
	for _, rec := range recs {
		require.NoError(t, sections.SaveImport(ctx, rec))
	}

	got, err := sections.ListImports(ctx)

	require.NoError(t, err)
	assert.Equal(t, []domain.ImportRecord{recs[1], recs[2], recs[0]}, got)
}

func TestSectionStore_SaveImport_DuplicateID(t *testing.T) {
	ctx := context.Background()
	sections := setupTestStore(t).SectionStore()
	rec := domain.ImportRecord{ID: "a", Term: fa23, ImportedAt: time.Now()}

	require.NoError(t, sections.SaveImport(ctx, rec))
	assert.Error(t, sections.SaveImport(ctx, rec))
}

func TestPendingMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"010_indexes.up.sql":   {Data: []byte("SELECT 1;")},
		"002_imports.up.sql":   {Data: []byte("SELECT 1;")},
		"002_imports.down.sql": {Data: []byte("SELECT 1;")},
		"001_initial.up.sql":   {Data: []byte("SELECT 1;")},
		"notes.up.sql":         {Data: []byte("SELECT 1;")},
		"embed.go":             {Data: []byte("package migrations")},
	}

	pending, err := pendingMigrations(fsys, 0)
	require.NoError(t, err)
	assert.Equal(t, []migration{
		{version: 1, file: "001_initial.up.sql"},
		{version: 2, file: "002_imports.up.sql"},
		{version: 10, file: "010_indexes.up.sql"},
	}, pending)

	pending, err = pendingMigrations(fsys, 2)
	require.NoError(t, err)
	assert.Equal(t, []migration{{version: 10, file: "010_indexes.up.sql"}}, pending)
}
