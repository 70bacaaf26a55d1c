package domain

import "github.com/google/uuid"

// CanonicalID returns the lowercase hyphenated form of a UUID so that ids
// compare equal however the caller spelled them. Anything that is not a UUID
// is returned unchanged and will simply not match a stored record.
func CanonicalID(s string) string {
	id, err := uuid.Parse(s)
	if err != nil {
		return s
	}
	return id.String()
}
