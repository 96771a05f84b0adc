package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// FieldCipher protects a single text column at rest.
//
// Decrypt must accept values that were stored before encryption was
// enabled and return them unchanged.
type FieldCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(stored string) (string, error)
}

// PasswordHasher turns account passwords into verifiable hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
