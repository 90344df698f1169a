// Copyright (c) 2026 Tigerlilly. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tigerlilly/api/internal/platform/sec"
)

/*
TestTokenService_RoundTrip verifies that a generated token carries exactly
the embedded identity claims back through verification.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "tigerlilly.press")
	require.NoError(t, err)

	token, err := service.GenerateToken(42, "lilly", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "lilly", claims.Username)
	assert.True(t, claims.IsAdmin)

	// Session tokens carry no expiry.
	assert.Nil(t, claims.ExpiresAt)
}

/*
TestTokenService_WrongSecret verifies that a token signed with a different
secret fails verification.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	signer, err := sec.NewTokenService("secret-one", "tigerlilly.press")
	require.NoError(t, err)

	verifier, err := sec.NewTokenService("secret-two", "tigerlilly.press")
	require.NoError(t, err)

	token, err := signer.GenerateToken(1, "reader", false)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_Malformed verifies that garbage input is rejected.
*/
func TestTokenService_Malformed(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "tigerlilly.press")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not_a_jwt", "not-a-jwt"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9.eyJpZCI6MX0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.VerifyToken(tt.token)
			assert.Error(t, err)
		})
	}
}

/*
TestNewTokenService_EmptySecret verifies the signing secret is mandatory.
*/
func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "tigerlilly.press")
	assert.Error(t, err)
}

/*
TestHashPassword verifies bcrypt hashing and verification.
*/
func TestHashPassword(t *testing.T) {
	hash, err := sec.HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, sec.CheckPasswordHash("hunter22", hash))
	assert.False(t, sec.CheckPasswordHash("hunter23", hash))
}
