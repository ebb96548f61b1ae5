package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_VerifiesOwnOutput(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword("correct horse battery staple", hash))
}

func TestCheckPassword_RejectsWrongPassword(t *testing.T) {
	hash, err := HashPassword("password1")
	assert.NoError(t, err)

	assert.False(t, CheckPassword("password2", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := HashPassword("same password")
	assert.NoError(t, err)
	second, err := HashPassword("same password")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("same password", first))
	assert.True(t, CheckPassword("same password", second))
}

func TestCheckPassword_MalformedHashIsMismatch(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{name: "empty hash", hash: ""},
		{name: "plaintext stored as hash", hash: "password1"},
		{name: "truncated bcrypt hash", hash: "$2a$10$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, CheckPassword("password1", tt.hash))
		})
	}
}
