package ports

import "time"

// PasswordHasher derives and checks salted one-way password hashes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenIssuer signs tokens carrying a user id and an expiry.
type TokenIssuer interface {
	Issue(userID int64) (string, time.Time, error)
}

// TokenVerifier checks a token's signature and expiry and returns the user id
// it was issued for.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}
