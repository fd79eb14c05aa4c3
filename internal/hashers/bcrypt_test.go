package hashers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-user-service/internal/hashers"
)

func TestBcryptHasher_Hash(t *testing.T) {
	h := hashers.New()

	hashed, err := h.Hash("secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hashed)
	assert.NotEqual(t, "secret123", hashed)

	// Hash must verify against the original plaintext
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("secret123")))
}

func TestBcryptHasher_Hash_FreshSaltPerCall(t *testing.T) {
	h := hashers.New()

	first, err := h.Hash("secret123")
	assert.NoError(t, err)
	second, err := h.Hash("secret123")
	assert.NoError(t, err)

	// Same plaintext, different salt, different hash
	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Hash_TooLongPassword(t *testing.T) {
	h := hashers.New()

	// bcrypt rejects inputs longer than 72 bytes
	long := make([]byte, 80)
	for i := range long {
		long[i] = 'a'
	}

	_, err := h.Hash(string(long))
	assert.Error(t, err)
}
