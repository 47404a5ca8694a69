package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@example.com",
		"user+tag@example.co.uk",
		"o'brien@example.com",
		"weird!#$%&'*+/=?^_`{|}~-chars@sub.example.com",
		"123@456.789",
	}
	for _, email := range valid {
		assert.True(t, isValidEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"not-an-email",
		"a@b",
		"@nodomain.com",
		"user@",
		"user@.com",
		"user@example.",
		"us er@example.com",
		"user@@example.com",
		".user@example.com",
		"user.@example.com",
	}
	for _, email := range invalid {
		assert.False(t, isValidEmail(email), "expected %q to be invalid", email)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", normalizeEmail("  User@Example.COM  "))
	assert.Equal(t, "user@example.com", normalizeEmail("user@example.com"))
}
