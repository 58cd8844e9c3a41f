package id

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID creates a unique 16-character alphanumeric ID.
func GenerateID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}

// RequestID returns a full random UUID for request correlation.
func RequestID() string {
	return uuid.NewString()
}
