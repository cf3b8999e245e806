// internal/types/template.go
package types

import (
	"sort"
	"strings"
	"time"
)

// Template wraps one expression with library metadata. The engine reads and
// writes only the Expression payload; the library store owns the rest.
type Template struct {
	ID          TemplateID  `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Tags        []string    `json:"tags"`
	CreatedAt   time.Time   `json:"createdAt"`
	Expression  *Expression `json:"expression"`
}

// NormalizeTags returns the tag list trimmed, deduplicated case-insensitively,
// and sorted. Empty tags are dropped. Original casing of the first occurrence
// is preserved.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// HasTag reports whether the template carries the tag, case-insensitively.
func (t *Template) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if strings.EqualFold(have, tag) {
			return true
		}
	}
	return false
}
