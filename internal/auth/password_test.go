package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasherRoundtrip(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, h.Compare(hash, "correct horse battery staple"))
	assert.False(t, h.Compare(hash, "wrong password"))
}

func TestPlainHasher(t *testing.T) {
	h := PlainHasher{}

	hash, err := h.Hash("admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin123", hash)
	assert.True(t, h.Compare("admin123", "admin123"))
	assert.False(t, h.Compare("admin123", "admin124"))
}

func TestNewHasherRequiresBcryptWithDatabase(t *testing.T) {
	withDB := NewHasher("postgres://localhost/homevest")
	_, isBcrypt := withDB.(*BcryptHasher)
	assert.True(t, isBcrypt, "a configured database must force bcrypt")

	withoutDB := NewHasher("")
	_, isPlain := withoutDB.(PlainHasher)
	assert.True(t, isPlain)
}
