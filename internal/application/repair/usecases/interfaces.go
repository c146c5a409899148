package usecases

// PasswordVerifier checks a plaintext password against a stored hash.
// Restricted technicians re-confirm their password before sensitive
// changes go through.
type PasswordVerifier interface {
	Verify(hashedPassword, password string) error
}
