package utils

import "github.com/google/uuid"

const uuidLength = 36

// IsStrictIdentifier reports whether value is a canonical UUID rather than a slug.
// Braced, urn-prefixed and dash-less forms are treated as slugs.
func IsStrictIdentifier(value string) bool {
	if len(value) != uuidLength {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}
