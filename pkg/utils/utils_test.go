package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsStrictIdentifier(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"550e8400-e29b-41d4-a716-446655440000", true},
		{"6BA7B810-9DAD-11D1-80B4-00C04FD430C8", true},
		{"my-cool-post", false},
		{"550e8400e29b41d4a716446655440000", false},
		{"{550e8400-e29b-41d4-a716-446655440000}", false},
		{"urn:uuid:550e8400-e29b-41d4-a716-446655440000", false},
		{"", false},
		{"550e8400-e29b-41d4-a716-44665544000z", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsStrictIdentifier(tt.value), tt.value)
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "my-first-post", Slugify("My First Post"))
	assert.Equal(t, "hello-world", Slugify("  Hello,   World!  "))
	assert.Equal(t, "", Slugify("   "))
	assert.True(t, IsSlug(Slugify("Getting Started with Go")))
	assert.False(t, IsSlug("Not A Slug"))
}

func TestNumberOfPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		perPage  int
		expected int64
	}{
		{"no items", 0, 10, 0},
		{"negative total", -3, 10, 0},
		{"non-positive page size", 25, 0, 1},
		{"exact division", 20, 10, 2},
		{"remainder", 21, 10, 3},
		{"less than a page", 3, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NumberOfPages(tt.total, tt.perPage))
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 20, Offset(3, 10))
	assert.Equal(t, 0, Offset(0, 10))
	assert.Equal(t, 0, Offset(-4, 10))
}

func TestDecodeJWT(t *testing.T) {
	secret := []byte("secret")
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "550e8400-e29b-41d4-a716-446655440000",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(secret)
	require.NoError(t, err)

	claims, err := DecodeJWT(signed, secret)
	require.NoError(t, err)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", claims["id"])

	_, err = DecodeJWT(signed, []byte("other"))
	assert.Error(t, err)

	_, err = DecodeJWT("not-a-token", secret)
	assert.Error(t, err)
}
