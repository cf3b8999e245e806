package library

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/trialforge/whereclause/internal/core/db"
	"github.com/trialforge/whereclause/internal/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	database, err := db.Open("sqlite://" + filepath.Join(t.TempDir(), "library.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	store, err := NewStore(database)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestStore_SaveGet(t *testing.T) {
	store := newTestStore(t)

	template := &types.Template{
		ID:          types.NewTemplateID(),
		Name:        "Safety population",
		Description: "SAFFL flagged subjects",
		Tags:        []string{"safety"},
		CreatedAt:   time.Now().UTC(),
		Expression:  types.NewCondition("ADSL", "SAFFL", types.EQ, "Y"),
	}
	if err := store.Save(template); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Get(template.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != template.Name || got.Description != template.Description {
		t.Errorf("Get = %+v", got)
	}
	if got.Expression.Condition == nil || got.Expression.Condition.Variable != "SAFFL" {
		t.Errorf("expression not persisted: %+v", got.Expression)
	}
}

func TestStore_SaveRejectsInvalid(t *testing.T) {
	store := newTestStore(t)

	tests := []struct {
		name     string
		template *types.Template
	}{
		{
			name: "blank name",
			template: &types.Template{
				ID:         types.NewTemplateID(),
				Name:       "   ",
				CreatedAt:  time.Now().UTC(),
				Expression: types.NewCondition("ADSL", "SAFFL", types.EQ, "Y"),
			},
		},
		{
			name: "expression with validation errors",
			template: &types.Template{
				ID:         types.NewTemplateID(),
				Name:       "broken",
				CreatedAt:  time.Now().UTC(),
				Expression: types.NewCondition("", "SAFFL", types.EQ, "Y"),
			},
		},
		{
			name: "empty expression",
			template: &types.Template{
				ID:         types.NewTemplateID(),
				Name:       "empty",
				CreatedAt:  time.Now().UTC(),
				Expression: &types.Expression{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := store.Save(tt.template); !errors.Is(err, types.ErrInvalidTemplate) {
				t.Errorf("Save err = %v, want ErrInvalidTemplate", err)
			}
		})
	}
}

func TestStore_SaveAllowsWarnings(t *testing.T) {
	store := newTestStore(t)

	// Single-value IN warns but must still persist.
	template := &types.Template{
		ID:         types.NewTemplateID(),
		Name:       "single-value in",
		CreatedAt:  time.Now().UTC(),
		Expression: types.NewCondition("ADSL", "SAFFL", types.In, "Y"),
	}
	if err := store.Save(template); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestStore_ListOrder(t *testing.T) {
	store := newTestStore(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	names := []string{"first", "second", "third"}
	for i, name := range names {
		template := &types.Template{
			ID:         types.NewTemplateID(),
			Name:       name,
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
			Expression: types.NewCondition("ADSL", "SAFFL", types.EQ, "Y"),
		}
		if err := store.Save(template); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
	}

	templates, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(templates) != len(names) {
		t.Fatalf("List returned %d templates, want %d", len(templates), len(names))
	}
	for i, want := range names {
		if templates[i].Name != want {
			t.Errorf("List[%d].Name = %q, want %q", i, templates[i].Name, want)
		}
	}
}

func TestStore_GetMissing(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Get(types.NewTemplateID()); !errors.Is(err, types.ErrTemplateNotFound) {
		t.Errorf("Get err = %v, want ErrTemplateNotFound", err)
	}
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)

	template := &types.Template{
		ID:         types.NewTemplateID(),
		Name:       "doomed",
		CreatedAt:  time.Now().UTC(),
		Expression: types.NewCondition("ADSL", "SAFFL", types.EQ, "Y"),
	}
	if err := store.Save(template); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := store.Delete(template.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(template.ID); !errors.Is(err, types.ErrTemplateNotFound) {
		t.Errorf("Get after Delete err = %v, want ErrTemplateNotFound", err)
	}
	if err := store.Delete(template.ID); !errors.Is(err, types.ErrTemplateNotFound) {
		t.Errorf("second Delete err = %v, want ErrTemplateNotFound", err)
	}
}

func TestStore_Search(t *testing.T) {
	store := newTestStore(t)

	save := func(name, description string, tags ...string) {
		t.Helper()
		template := &types.Template{
			ID:          types.NewTemplateID(),
			Name:        name,
			Description: description,
			Tags:        tags,
			CreatedAt:   time.Now().UTC(),
			Expression:  types.NewCondition("ADSL", "SAFFL", types.EQ, "Y"),
		}
		if err := store.Save(template); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
	}
	save("Safety population", "safety analysis set", "safety")
	save("Elderly subgroup", "subjects 65 and over", "demographics")

	byTag, err := store.Search([]string{"safety"}, "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(byTag) != 1 || byTag[0].Name != "Safety population" {
		t.Errorf("Search by tag = %+v", byTag)
	}

	byText, err := store.Search(nil, "65 and over")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(byText) != 1 || byText[0].Name != "Elderly subgroup" {
		t.Errorf("Search by text = %+v", byText)
	}
}
