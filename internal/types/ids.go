package types

import (
	"time"

	"github.com/google/uuid"
)

// TemplateID represents a UUIDv7 template identifier.
// String alias enables type safety while maintaining JSON string
// serialization. UUIDv7 time-ordering clusters sequential inserts in
// B-tree indexes.
type TemplateID string

// NewTemplateID generates a UUIDv7 template identifier.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewTemplateID() TemplateID {
	return TemplateID(uuid.Must(uuid.NewV7()).String())
}

// ParseTemplateID validates and converts a string to TemplateID.
// Rejects malformed UUIDs to prevent invalid IDs from entering the library.
func ParseTemplateID(s string) (TemplateID, error) {
	_, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return TemplateID(s), nil
}

// TemplateIDTime extracts the timestamp embedded in a UUIDv7 ID.
// Returns zero time for invalid UUIDs; caller should check IsZero().
func TemplateIDTime(id TemplateID) time.Time {
	u, err := uuid.Parse(string(id))
	if err != nil {
		return time.Time{}
	}
	sec, nsec := u.Time().UnixTime()
	return time.Unix(sec, nsec).UTC()
}
