package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/catalog-search/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/catalog-search/internal/core/domain"
)

func TestCatalogService_Import(t *testing.T) {
	store := &mockSectionStore{}
	svc := NewCatalogService(store)
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	unstamped := newSection("CSCI", 5, 1, "Intro", domain.TermIdentifier{})
	stamped := newSection("MATH", 30, 1, "Calculus", fa23)

	rec, err := svc.Import(context.Background(), fa23, "catalog.json", []domain.Section{unstamped, stamped})

	require.NoError(t, err)
	require.NotNil(t, rec)
	_, err = uuid.Parse(rec.ID)
	assert.NoError(t, err)
	assert.Equal(t, fa23, rec.Term)
	assert.Equal(t, 2, rec.Sections)
	assert.Equal(t, "catalog.json", rec.Source)
	assert.Equal(t, fixed, rec.ImportedAt)

	assert.Equal(t, fa23, store.replacedTerm)
	require.Len(t, store.replaced, 2)
	assert.Equal(t, fa23, store.replaced[0].Identifier.TermID())
	assert.Equal(t, []domain.ImportRecord{*rec}, store.imports)
}

func TestCatalogService_Import_Validation(t *testing.T) {
	one := []domain.Section{newSection("CSCI", 5, 1, "Intro", fa23)}

	tests := []struct {
		name     string
		term     domain.TermIdentifier
		sections []domain.Section
		err      error
	}{
		{"zero term", domain.TermIdentifier{}, one, domain.ErrInvalidTerm},
		{"bad season", domain.TermIdentifier{Year: 2023, Term: "WI"}, one, domain.ErrInvalidTerm},
		{"no sections", fa23, nil, domain.ErrNoSections},
		{"other term", sp24, one, domain.ErrTermMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockSectionStore{}
			svc := NewCatalogService(store)

			_, err := svc.Import(context.Background(), tt.term, "x", tt.sections)

			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, store.replaced)
			assert.Empty(t, store.imports)
		})
	}
}

func TestCatalogService_Import_StoreErrors(t *testing.T) {
	boom := errors.New("boom")
	one := []domain.Section{newSection("CSCI", 5, 1, "Intro", fa23)}

	svc := NewCatalogService(&mockSectionStore{replaceErr: boom})
	_, err := svc.Import(context.Background(), fa23, "x", one)
	assert.ErrorIs(t, err, boom)

	svc = NewCatalogService(&mockSectionStore{saveErr: boom})
	_, err = svc.Import(context.Background(), fa23, "x", one)
	assert.ErrorIs(t, err, boom)
}

func TestCatalogService_Import_DuplicatesCountOnce(t *testing.T) {
	store := &mockSectionStore{}
	svc := NewCatalogService(store)
	s := newSection("CSCI", 5, 1, "Intro", fa23)

	rec, err := svc.Import(context.Background(), fa23, "x", []domain.Section{s, s})

	require.NoError(t, err)
	assert.Equal(t, 1, rec.Sections)
}

func TestCatalogService_NoStore(t *testing.T) {
	svc := NewCatalogService(nil)
	ctx := context.Background()

	_, err := svc.Import(ctx, fa23, "x", nil)
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	_, err = svc.Sections(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	_, err = svc.Section(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	_, err = svc.Terms(ctx)
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	_, err = svc.Imports(ctx)
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestCatalogService_RoundTripWithMemoryStore(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(memory.NewSectionStore())

	_, err := svc.Import(ctx, fa23, "fall.json", []domain.Section{
		newSection("MATH", 30, 1, "Calculus", fa23),
		newSection("CSCI", 5, 1, "Intro", fa23),
	})
	require.NoError(t, err)
	_, err = svc.Import(ctx, sp24, "spring.json", []domain.Section{
		newSection("PHYS", 24, 1, "Mechanics", sp24),
	})
	require.NoError(t, err)

	sections, err := svc.Sections(ctx, &fa23)
	require.NoError(t, err)
	assert.Len(t, sections, 2)

	section, err := svc.Section(ctx, "PHYS 024 HM-01 SP2024")
	require.NoError(t, err)
	assert.Equal(t, "Mechanics", section.Course.Title)

	_, err = svc.Section(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.Section(ctx, "NOPE 000 00 FA2023")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	terms, err := svc.Terms(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.TermIdentifier{fa23, sp24}, terms)

	imports, err := svc.Imports(ctx)
	require.NoError(t, err)
	require.Len(t, imports, 2)
	assert.Equal(t, "spring.json", imports[0].Source)
}
