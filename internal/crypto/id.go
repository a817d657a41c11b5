package crypto

import "github.com/google/uuid"

// NewID returns a random opaque identifier (UUIDv4, 122 random bits).
// Collision probability is treated as negligible; there is no detection.
func NewID() string {
	return uuid.NewString()
}
