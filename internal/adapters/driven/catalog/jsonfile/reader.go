package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
	"github.com/custodia-labs/catalog-search/internal/core/ports/driven"
	"github.com/custodia-labs/catalog-search/internal/logger"
)

// Ensure Reader implements the interface.
var _ driven.CatalogReader = (*Reader)(nil)

// Reader loads sections from a JSON catalog file.
type Reader struct {
	path string
}

// NewReader creates a reader for the file at path.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Source returns the file path.
func (r *Reader) Source() string {
	return r.path
}

// Read loads and decodes the whole file.
func (r *Reader) Read(ctx context.Context) ([]domain.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	sections, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}
	logger.Debug("Read %d sections from %s", len(sections), r.path)
	return sections, nil
}

// catalogDocument is the object form of a catalog file.
type catalogDocument struct {
	Sections []domain.Section `json:"sections"`
}

// Decode parses a catalog document. Sections that carry a term must name a
// known season.
func Decode(data []byte) ([]domain.Section, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidCatalog)
	}

	var sections []domain.Section
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &sections); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
		}
	case '{':
		var doc catalogDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
		}
		sections = doc.Sections
	default:
		return nil, fmt.Errorf("%w: expected a JSON array or object", ErrInvalidCatalog)
	}

	for i := range sections {
		id := sections[i].Identifier
		if id.Term != "" && !id.Term.IsValid() {
			return nil, fmt.Errorf("%w: section %d: unknown term %q", ErrInvalidCatalog, i, id.Term)
		}
	}
	return sections, nil
}
