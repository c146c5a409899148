package usecases

import "time"

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) error
}

// TokenGenerator issues signed access tokens for authenticated users.
type TokenGenerator interface {
	Generate(userID uint, username, role string) (token string, expiresAt time.Time, err error)
}
