package crypto

import "github.com/google/uuid"

// NewSessionToken returns a fresh opaque session token. Tokens are random
// 128-bit identifiers looked up by exact match; issuing a new one implicitly
// invalidates whatever token the user held before.
func NewSessionToken() string {
	return uuid.NewString()
}
