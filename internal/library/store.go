// Package library implements the template library: the persistence adapter
// for expression templates and a sqlx-backed store over SQLite/PostgreSQL.
//
// The store is the "library service" collaborator from the engine's point
// of view. It owns template metadata and the persisted expression payload;
// expression semantics (validation, rendering, codegen) stay in
// internal/clause. Saving requires a cleanly validating expression -
// validation errors block persistence, warnings do not.
package library

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/trialforge/whereclause/internal/clause"
	"github.com/trialforge/whereclause/internal/core/db"
	"github.com/trialforge/whereclause/internal/types"
)

// Store persists templates through named queries.
type Store struct {
	queries *db.Queries
}

// NewStore wires a store over an opened database, running pending
// migrations first.
func NewStore(database *sqlx.DB) (*Store, error) {
	if err := db.MigrateUp(database); err != nil {
		return nil, fmt.Errorf("failed to migrate template schema: %w", err)
	}
	queries, err := db.LoadQueries(database)
	if err != nil {
		return nil, err
	}
	return &Store{queries: queries}, nil
}

// Save validates and persists a template. The expression must validate
// without errors; warnings are allowed through.
func (s *Store) Save(t *types.Template) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name is required", types.ErrInvalidTemplate)
	}
	if res := clause.Validate(t.Expression); !res.IsValid {
		return fmt.Errorf("%w: %s", types.ErrInvalidTemplate, strings.Join(res.Errors, "; "))
	}

	record, err := ToRecord(t)
	if err != nil {
		return err
	}

	_, err = s.queries.Exec("insert-template",
		record.ID, record.Name, record.Description, record.Tags,
		record.Expression, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save template %s: %w", t.ID, err)
	}
	return nil
}

// Get retrieves one template by id.
func (s *Store) Get(id types.TemplateID) (*types.Template, error) {
	var record Record
	err := s.queries.Get("get-template", &record, string(id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", types.ErrTemplateNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load template %s: %w", id, err)
	}
	return FromRecord(record)
}

// List returns all templates in creation order.
func (s *Store) List() ([]*types.Template, error) {
	var records []Record
	if err := s.queries.Select("list-templates", &records); err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	templates := make([]*types.Template, 0, len(records))
	for _, record := range records {
		t, err := FromRecord(record)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, nil
}

// Delete removes one template by id.
func (s *Store) Delete(id types.TemplateID) error {
	result, err := s.queries.Exec("delete-template", string(id))
	if err != nil {
		return fmt.Errorf("failed to delete template %s: %w", id, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", types.ErrTemplateNotFound, id)
	}
	return nil
}

// Search loads the library and delegates tag/text filtering to the adapter
// scan. The library is analyst-scale; an in-memory scan beats maintaining
// dialect-specific LIKE queries across both drivers.
func (s *Store) Search(tags []string, searchText string) ([]*types.Template, error) {
	templates, err := s.List()
	if err != nil {
		return nil, err
	}
	return Match(templates, tags, searchText), nil
}
