package hashers

import "golang.org/x/crypto/bcrypt"

// Cost is the bcrypt cost factor used for all password hashes (10 rounds).
const Cost = bcrypt.DefaultCost

// BcryptHasher produces one-way salted password hashes. Salt generation is
// handled by bcrypt itself, one fresh salt per call.
type BcryptHasher struct {
	cost int
}

// New creates a BcryptHasher with the fixed cost factor.
func New() *BcryptHasher {
	return &BcryptHasher{cost: Cost}
}

// Hash transforms a plaintext password into its bcrypt hash.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
