// Copyright (c) 2026 Evenzo. All rights reserved.

/*
Package token implements the signed session-token codec.

A session token is a self-contained, HMAC-signed credential encoding the user
identifier, its issuance time, and a fixed expiry. Validity is decided purely
by signature and expiry checks at verification time; nothing is persisted
server-side.

# Architecture

This package isolates security-sensitive code (JWT signing and parsing) from
the domain logic. The [Codec] is constructed once at startup from the loaded
configuration and injected into the session issuer and the authentication
gate. The signing secret never lives in a package-level variable.

# Failure Taxonomy

Verification failures are classified into three sentinels so that callers can
log the distinction without surfacing it to clients:

  - [ErrInvalidSignature]: the signature does not match this codec's secret.
  - [ErrExpired]: the embedded expiry has passed.
  - [ErrMalformed]: the string is not a decodable token at all.
*/
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sentinel verification failures. The authentication gate collapses all of
// them to a single 401 for the client.
var (
	ErrInvalidSignature = errors.New("token: invalid signature")
	ErrExpired          = errors.New("token: expired")
	ErrMalformed        = errors.New("token: malformed")
)

// SessionClaims is the payload embedded inside a session token.
//
// # Trust Boundary
//
// Only UserID is trusted after verification. No other claim influences
// request handling.
type SessionClaims struct {
	jwt.RegisteredClaims

	// UserID is abbreviated to keep the token payload small.
	UserID string `json:"uid"`
}

// Codec signs and verifies session tokens using HS256.
type Codec struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewCodec creates a session token [Codec].
//
// An empty secret is a configuration defect, not a runtime condition, so the
// constructor refuses to build a codec around one.
func NewCodec(secret, issuer string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret must not be empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token: invalid ttl %s", ttl)
	}

	return &Codec{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed session token for the given user identifier.
//
// The expiry is fixed at issuance time + the codec's TTL. Issuance is a pure
// computation; no I/O is performed.
func (codec *Codec) Issue(userID string) (string, error) {
	currentTime := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    codec.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(codec.ttl)),
		},
		UserID: userID,
	}

	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(codec.secret)
	if err != nil {
		return "", fmt.Errorf("token: failed to sign: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and expiry of a session token string and
// returns the embedded user identifier.
//
// Failures are one of [ErrInvalidSignature], [ErrExpired], or [ErrMalformed].
func (codec *Codec) Verify(tokenString string) (string, error) {
	parsedToken, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		// Pin the algorithm. A token asking for "none" or an asymmetric
		// method must never be verified against the HMAC secret.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("token: unexpected signing method: %v", t.Header["alg"])
		}
		return codec.secret, nil
	})

	if err != nil {
		return "", classify(err)
	}

	claims, ok := parsedToken.Claims.(*SessionClaims)
	if !ok || !parsedToken.Valid {
		return "", ErrMalformed
	}

	if claims.UserID == "" {
		return "", ErrMalformed
	}

	return claims.UserID, nil
}

// classify maps golang-jwt parse failures onto the package sentinels.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	default:
		return ErrMalformed
	}
}
