package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
	"github.com/custodia-labs/catalog-search/internal/core/ports/driven"
)

// timeLayout is fixed-width so imported_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// sectionStore implements driven.SectionStore.
type sectionStore struct {
	store *Store
}

var _ driven.SectionStore = (*sectionStore)(nil)

// ReplaceTerm deletes the term's sections and inserts the new set in one
// transaction, so readers see either the old or the new catalog.
func (s *sectionStore) ReplaceTerm(ctx context.Context, term domain.TermIdentifier, sections []domain.Section) error {
	for i := range sections {
		if sections[i].Identifier.TermID() != term {
			return fmt.Errorf("%w: %s", domain.ErrTermMismatch, sections[i].Identifier.LongCode())
		}
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM sections WHERE term = ?", term.String()); err != nil {
		return fmt.Errorf("deleting sections: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO sections (long_code, term, year, season, department, course_number, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i := range sections {
		id := sections[i].Identifier
		payload, err := json.Marshal(sections[i])
		if err != nil {
			return fmt.Errorf("marshalling section %s: %w", id.LongCode(), err)
		}
		if _, err := stmt.ExecContext(ctx,
			id.LongCode(), term.String(), id.Year, string(id.Term),
			id.Department, id.CourseNumber, string(payload),
		); err != nil {
			return fmt.Errorf("inserting section %s: %w", id.LongCode(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing sections: %w", err)
	}
	return nil
}

// ListSections returns sections ordered by long code.
func (s *sectionStore) ListSections(ctx context.Context, term *domain.TermIdentifier) ([]domain.Section, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if term == nil {
		rows, err = s.store.db.QueryContext(ctx, "SELECT payload FROM sections ORDER BY long_code")
	} else {
		rows, err = s.store.db.QueryContext(ctx,
			"SELECT payload FROM sections WHERE term = ? ORDER BY long_code", term.String())
	}
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}
	defer rows.Close()

	var sections []domain.Section
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		var section domain.Section
		if err := json.Unmarshal([]byte(payload), &section); err != nil {
			return nil, fmt.Errorf("decoding section: %w", err)
		}
		sections = append(sections, section)
	}
	return sections, rows.Err()
}

// GetSection retrieves a section by long code.
func (s *sectionStore) GetSection(ctx context.Context, longCode string) (*domain.Section, error) {
	var payload string
	err := s.store.db.QueryRowContext(ctx,
		"SELECT payload FROM sections WHERE long_code = ?", longCode).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting section: %w", err)
	}

	var section domain.Section
	if err := json.Unmarshal([]byte(payload), &section); err != nil {
		return nil, fmt.Errorf("decoding section: %w", err)
	}
	return &section, nil
}

// ListTerms returns every term with sections, oldest first.
func (s *sectionStore) ListTerms(ctx context.Context) ([]domain.TermIdentifier, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT DISTINCT year, season FROM sections")
	if err != nil {
		return nil, fmt.Errorf("listing terms: %w", err)
	}
	defer rows.Close()

	var terms []domain.TermIdentifier
	for rows.Next() {
		var term domain.TermIdentifier
		var season string
		if err := rows.Scan(&term.Year, &season); err != nil {
			return nil, fmt.Errorf("scanning term: %w", err)
		}
		term.Term = domain.TermSeason(season)
		terms = append(terms, term)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	slices.SortFunc(terms, func(a, b domain.TermIdentifier) int {
		switch {
		case a.Before(b):
			return -1
		case b.Before(a):
			return 1
		default:
			return 0
		}
	})
	return terms, nil
}

// SaveImport records a completed import.
func (s *sectionStore) SaveImport(ctx context.Context, rec domain.ImportRecord) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO imports (id, term, sections, source, imported_at)
		VALUES (?, ?, ?, ?, ?)
	`, rec.ID, rec.Term.String(), rec.Sections, rec.Source, rec.ImportedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("saving import: %w", err)
	}
	return nil
}

// ListImports returns recorded imports, newest first.
func (s *sectionStore) ListImports(ctx context.Context) ([]domain.ImportRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, term, sections, source, imported_at
		FROM imports
		ORDER BY imported_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing imports: %w", err)
	}
	defer rows.Close()

	var imports []domain.ImportRecord
	for rows.Next() {
		var rec domain.ImportRecord
		var term, importedAt string
		if err := rows.Scan(&rec.ID, &term, &rec.Sections, &rec.Source, &importedAt); err != nil {
			return nil, fmt.Errorf("scanning import: %w", err)
		}
		if rec.Term, err = domain.ParseTermIdentifier(term); err != nil {
			return nil, fmt.Errorf("decoding import %s: %w", rec.ID, err)
		}
		if rec.ImportedAt, err = time.Parse(timeLayout, importedAt); err != nil {
			return nil, fmt.Errorf("decoding import %s: %w", rec.ID, err)
		}
		imports = append(imports, rec)
	}
	return imports, rows.Err()
}
