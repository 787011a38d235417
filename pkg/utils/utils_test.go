package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 2, CalculateTotalPages(11, 10))
	assert.Equal(t, 0, CalculateTotalPages(10, 0))
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(0, 10))
	assert.Equal(t, 0, CalculateOffset(1, 10))
	assert.Equal(t, 30, CalculateOffset(4, 10))
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required,min=3"`
	}

	t.Run("valid input", func(t *testing.T) {
		errs := ValidateStruct(payload{Email: "alice@example.com", Name: "alice"})
		assert.Nil(t, errs)
	})

	t.Run("reports each failing field", func(t *testing.T) {
		errs := ValidateStruct(payload{Email: "not-an-email", Name: "al"})
		require.Len(t, errs, 2)
		assert.Equal(t, "Invalid email format", errs["Email"])
		assert.Equal(t, "Minimum length is 3", errs["Name"])
	})
}
