// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tomtom215/videotube/internal/config"
)

// ErrMissingSubject is returned for a token without a sub claim.
var ErrMissingSubject = errors.New("token has no subject")

// Claims are the access token claims. The subject is the user's ObjectID hex.
type Claims struct {
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim.
func (c *Claims) UserID() string {
	return c.Subject
}

// JWTManager validates access tokens issued by the account service.
type JWTManager struct {
	secret []byte
	now    func() time.Time
}

// NewJWTManager creates a manager for HS256 tokens signed with the
// configured secret.
//
// Returns an error if JWT_SECRET is empty. Length is enforced by
// config validation.
func NewJWTManager(cfg *config.SecurityConfig) (*JWTManager, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but was empty")
	}
	return &JWTManager{secret: []byte(cfg.JWTSecret), now: time.Now}, nil
}

// GenerateToken signs an access token for userID valid for ttl.
//
// Production tokens come from the account service; this exists for
// operators and tests.
func (m *JWTManager) GenerateToken(userID, username string, ttl time.Duration) (string, error) {
	now := m.now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken checks signature, algorithm, expiry and not-before, and
// returns the claims. Only HMAC algorithms are accepted.
func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	return claims, nil
}
