// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec verifies the bearer tokens that unlock write routes.
//
// # Architecture
//
// Spectator never issues tokens. The owner mints them out of band with the
// private half of an RSA key pair; the server only holds the public key and
// checks signature, issuer, expiry and role.
package sec

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoKey is returned by [Verifier.Verify] when no public key was configured.
var ErrNoKey = errors.New("sec: token verification is not configured")

// AuthClaims represents the payload embedded inside a write token.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Abbreviated to keep the token small.
	UserID string `json:"uid"`
	Role   string `json:"rol"`
}

// Verifier checks RS256 tokens against a single public key.
type Verifier struct {
	publicKey *rsa.PublicKey
	issuer    string
}

// NewVerifier reads a PEM public key from disk.
//
// An empty path yields a Verifier that rejects every token, which keeps
// the API read-only.
func NewVerifier(publicKeyPath, issuer string) (*Verifier, error) {
	if publicKeyPath == "" {
		return &Verifier{issuer: issuer}, nil
	}

	publicKeyData, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to read public key from %s: %w", publicKeyPath, err)
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyData)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to parse public key: %w", err)
	}

	return NewVerifierFromKey(publicKey, issuer), nil
}

// NewVerifierFromKey builds a Verifier around an already parsed key.
func NewVerifierFromKey(publicKey *rsa.PublicKey, issuer string) *Verifier {
	return &Verifier{publicKey: publicKey, issuer: issuer}
}

// Enabled reports whether a public key is loaded.
func (verifier *Verifier) Enabled() bool {
	return verifier.publicKey != nil
}

// Verify checks the signature, issuer and validity window of a token string.
func (verifier *Verifier) Verify(tokenString string) (*AuthClaims, error) {
	if !verifier.Enabled() {
		return nil, ErrNoKey
	}

	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		return verifier.publicKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(verifier.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}
