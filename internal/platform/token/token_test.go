// Copyright (c) 2026 Evenzo. All rights reserved.

package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KYusufbd/evenzo-back-end/internal/platform/token"
)

const (
	testSecret = "unit-test-signing-secret"
	testIssuer = "evenzo-test"
	testTTL    = 6 * time.Hour
)

func newTestCodec(t *testing.T) *token.Codec {
	t.Helper()
	codec, err := token.NewCodec(testSecret, testIssuer, testTTL)
	require.NoError(t, err)
	return codec
}

/*
TestNewCodec_EmptySecret verifies the fail-fast startup precondition:
a codec can never be built around a missing signing secret.
*/
func TestNewCodec_EmptySecret(t *testing.T) {
	codec, err := token.NewCodec("", testIssuer, testTTL)

	assert.Nil(t, codec)
	require.Error(t, err)
}

/*
TestNewCodec_InvalidTTL rejects zero and negative lifetimes.
*/
func TestNewCodec_InvalidTTL(t *testing.T) {
	tests := []struct {
		name string
		ttl  time.Duration
	}{
		{"zero", 0},
		{"negative", -time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := token.NewCodec(testSecret, testIssuer, tt.ttl)
			assert.Nil(t, codec)
			assert.Error(t, err)
		})
	}
}

/*
TestCodec_Roundtrip verifies that a freshly issued token resolves back to
the same user identifier.
*/
func TestCodec_Roundtrip(t *testing.T) {
	codec := newTestCodec(t)

	// 1. Issue
	signed, err := codec.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	// 2. Verify
	userID, err := codec.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

/*
TestCodec_Verify_Expired verifies that a token whose embedded expiry has
passed fails with ErrExpired even though its signature is valid.
*/
func TestCodec_Verify_Expired(t *testing.T) {
	codec := newTestCodec(t)

	// Hand-sign an already expired token with the codec's own secret.
	past := time.Now().Add(-time.Hour)
	claims := token.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			Issuer:    testIssuer,
			IssuedAt:  jwt.NewNumericDate(past.Add(-testTTL)),
			ExpiresAt: jwt.NewNumericDate(past),
		},
		UserID: "user-123",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	userID, err := codec.Verify(signed)

	assert.Empty(t, userID)
	assert.ErrorIs(t, err, token.ErrExpired)
}

/*
TestCodec_Verify_ForeignSecret verifies that a token signed with a different
secret fails with ErrInvalidSignature.
*/
func TestCodec_Verify_ForeignSecret(t *testing.T) {
	codec := newTestCodec(t)

	foreignCodec, err := token.NewCodec("some-other-secret", testIssuer, testTTL)
	require.NoError(t, err)

	signed, err := foreignCodec.Issue("user-123")
	require.NoError(t, err)

	userID, err := codec.Verify(signed)

	assert.Empty(t, userID)
	assert.ErrorIs(t, err, token.ErrInvalidSignature)
}

/*
TestCodec_Verify_Malformed verifies that undecodable strings fail with
ErrMalformed.
*/
func TestCodec_Verify_Malformed(t *testing.T) {
	codec := newTestCodec(t)

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"truncated_jwt", "eyJhbGciOiJIUzI1NiJ9.eyJzdWIi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := codec.Verify(tt.input)

			assert.Empty(t, userID)
			assert.ErrorIs(t, err, token.ErrMalformed)
		})
	}
}

/*
TestCodec_Verify_AlgorithmPinning verifies that an unsigned ("none") token
is rejected even when its payload is otherwise well-formed.
*/
func TestCodec_Verify_AlgorithmPinning(t *testing.T) {
	codec := newTestCodec(t)

	claims := token.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "user-123",
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	userID, err := codec.Verify(unsigned)

	assert.Empty(t, userID)
	assert.Error(t, err)
}

/*
TestCodec_Verify_MissingUserID verifies that a signed token without the
embedded user identifier is treated as malformed.
*/
func TestCodec_Verify_MissingUserID(t *testing.T) {
	codec := newTestCodec(t)

	claims := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	userID, err := codec.Verify(signed)

	assert.Empty(t, userID)
	assert.ErrorIs(t, err, token.ErrMalformed)
}
