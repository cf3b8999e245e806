// internal/library/adapter.go
package library

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/trialforge/whereclause/internal/types"
)

/*
 * Template persistence adapter.
 *
 * Maps a Template to/from the flat record shape the store persists:
 * the expression payload as JSON text, tags as a comma-separated
 * normalized list, timestamps as RFC3339 strings (lexicographic order ==
 * chronological order, so ORDER BY created_at works on TEXT columns).
 *
 * Match is the in-memory library scan: case-insensitive substring match on
 * name/description plus tag intersection. Filter only - no sorting; callers
 * rely on store listing order.
 */

// Record is the flat persisted form of a template.
type Record struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Tags        string `db:"tags" json:"tags"`
	Expression  string `db:"expression" json:"expression"`
	CreatedAt   string `db:"created_at" json:"createdAt"`
}

// ToRecord flattens a template for persistence.
func ToRecord(t *types.Template) (Record, error) {
	if t.Expression.IsEmpty() {
		return Record{}, types.ErrEmptyExpression
	}
	payload, err := json.Marshal(t.Expression)
	if err != nil {
		return Record{}, fmt.Errorf("failed to encode expression: %w", err)
	}
	return Record{
		ID:          string(t.ID),
		Name:        t.Name,
		Description: t.Description,
		Tags:        strings.Join(types.NormalizeTags(t.Tags), ","),
		Expression:  string(payload),
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}

// FromRecord reconstructs a template from its persisted form.
func FromRecord(r Record) (*types.Template, error) {
	id, err := types.ParseTemplateID(r.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid template id %q: %w", r.ID, err)
	}

	var expr types.Expression
	if err := json.Unmarshal([]byte(r.Expression), &expr); err != nil {
		return nil, fmt.Errorf("failed to decode expression for template %s: %w", r.ID, err)
	}

	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at for template %s: %w", r.ID, err)
	}

	var tags []string
	if r.Tags != "" {
		tags = strings.Split(r.Tags, ",")
	}

	return &types.Template{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Tags:        tags,
		CreatedAt:   createdAt,
		Expression:  &expr,
	}, nil
}

// Match filters templates by tag intersection and a case-insensitive
// substring search over name and description. Empty criteria match
// everything; both criteria must hold when both are given.
func Match(templates []*types.Template, tags []string, searchText string) []*types.Template {
	searchText = strings.ToLower(strings.TrimSpace(searchText))
	tags = types.NormalizeTags(tags)

	out := make([]*types.Template, 0, len(templates))
	for _, t := range templates {
		if !matchesTags(t, tags) {
			continue
		}
		if searchText != "" &&
			!strings.Contains(strings.ToLower(t.Name), searchText) &&
			!strings.Contains(strings.ToLower(t.Description), searchText) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// matchesTags reports whether the template's tag set intersects the query
// tags. No query tags matches everything.
func matchesTags(t *types.Template, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, tag := range tags {
		if t.HasTag(tag) {
			return true
		}
	}
	return false
}
