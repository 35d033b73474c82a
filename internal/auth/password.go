package auth

import (
	"golang.org/x/crypto/bcrypt"

	"homevest_backend/internal/logger"
)

// Hasher hides the password scheme from services so the demo seed accounts
// and real accounts go through the same code path.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// BcryptHasher is the production scheme.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// PlainHasher stores passwords verbatim. It exists solely for database-less
// demo runs where the seeded accounts carry plain-text credentials.
type PlainHasher struct{}

func (PlainHasher) Hash(password string) (string, error) { return password, nil }

func (PlainHasher) Compare(hash, password string) bool { return hash == password }

// NewHasher picks the scheme from deployment shape: any configured DSN
// forces bcrypt. Plain hashing is reachable only when there is no database
// at all, so real credentials can never be stored un-hashed.
func NewHasher(databaseDSN string) Hasher {
	if databaseDSN != "" {
		return NewBcryptHasher()
	}
	logger.Warn("no database configured, using plain-text demo hasher")
	return PlainHasher{}
}
