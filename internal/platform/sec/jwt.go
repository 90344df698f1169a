// Copyright (c) 2026 Tigerlilly. All rights reserved.

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via the TokenProvider interface declared by consumers.
package sec

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the payload embedded inside a session JWT.
//
// # Why custom claims?
//
// By embedding the user id, username, and admin flag directly inside the JWT,
// the authentication middleware can reconstruct the active user context
// WITHOUT querying the database on every single API request.
type AuthClaims struct {
	jwt.RegisteredClaims

	UserID   int    `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// TokenService signs and verifies session JWTs using HS256.
//
// Tokens carry no expiry: verification checks the signature only. There is no
// refresh or revocation mechanism — a known limitation of the platform, not
// something this layer tries to paper over.
type TokenService struct {
	secretKey []byte
	issuer    string
}

// NewTokenService creates a new TokenService around the shared signing secret.
func NewTokenService(secretKey, issuer string) (*TokenService, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("sec: signing secret must not be empty")
	}
	return &TokenService{secretKey: []byte(secretKey), issuer: issuer}, nil
}

// GenerateToken creates a signed session token embedding exactly
// {id, username, isAdmin}.
func (service *TokenService) GenerateToken(userID int, username string, isAdmin bool) (string, error) {
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: service.issuer,
		},
		UserID:   userID,
		Username: username,
		IsAdmin:  isAdmin,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secretKey)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature of a JWT string and returns its claims.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secretKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}
