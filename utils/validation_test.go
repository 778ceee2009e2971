package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"a@shop.co", true},
		{"A.User@Admin.example", true},
		{"a@admin.co", true},
		{"not-an-email", false},
		{"missing@tld", false},
		{"spaces in@side.com", false},
		{"", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ValidateEmail(c.email), "email %q", c.email)
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		pw   string
		want bool
	}{
		{"abcdefg1", true},
		{"passw0rd!", true},
		{"A1b2C3d4", true},
		{"short1a", false},     // 7 chars
		{"lettersonly", false}, // no digit
		{"12345678", false},    // no letter
		{"abcdefg1 ", false},   // space not allowed
		{"", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ValidatePassword(c.pw), "password %q", c.pw)
	}
}

func TestValidateRequired(t *testing.T) {
	assert.True(t, ValidateRequired("x"))
	assert.True(t, ValidateRequired("  x  "))
	assert.False(t, ValidateRequired(""))
	assert.False(t, ValidateRequired("   "))
	assert.False(t, ValidateRequired("\t\n"))
}
