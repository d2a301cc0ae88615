package models

import (
	"strings"

	"github.com/google/uuid"
)

// maxIDLength is the ISO 20022 Max35Text limit that applies to message,
// payment-information and end-to-end identifiers.
const maxIDLength = 35

// GenerateID returns a fresh identifier that fits Max35Text: a UUID with the
// hyphens stripped, leaving 32 hex characters.
func GenerateID() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	if len(id) > maxIDLength {
		id = id[:maxIDLength]
	}
	return id
}
