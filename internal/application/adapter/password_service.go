package adapter

// PasswordService defines the interface for password hashing operations.
type PasswordService interface {
	// Hash hashes a plaintext password.
	Hash(password string) (string, error)

	// Compare checks a plaintext password against a hash.
	Compare(hash, password string) error
}
