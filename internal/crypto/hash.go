package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when the configured cost is out
// of range.
const DefaultCost = 10

// HashPassword hashes a password with bcrypt at the given work factor. The
// salt is generated internally and embedded in the returned digest, so the
// result is safe to persist as-is.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether the password matches the bcrypt digest.
// A mismatch returns (false, nil); only a malformed digest returns an error.
// The comparison inside bcrypt is constant time.
func VerifyPassword(password, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
