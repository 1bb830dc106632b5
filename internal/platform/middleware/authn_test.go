// Copyright (c) 2026 Evenzo. All rights reserved.

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KYusufbd/evenzo-back-end/internal/platform/constants"
	"github.com/KYusufbd/evenzo-back-end/internal/platform/ctxutil"
	"github.com/KYusufbd/evenzo-back-end/internal/platform/middleware"
	"github.com/KYusufbd/evenzo-back-end/internal/platform/token"
)

func newGateCodec(t *testing.T) *token.Codec {
	t.Helper()
	codec, err := token.NewCodec("gate-test-secret", "evenzo-test", 6*time.Hour)
	require.NoError(t, err)
	return codec
}

// downstreamProbe records whether the protected handler ran and what
// identity the gate attached.
type downstreamProbe struct {
	called bool
	userID string
}

func (probe *downstreamProbe) handler() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		probe.called = true
		probe.userID = ctxutil.GetUserID(request.Context())
		writer.WriteHeader(http.StatusOK)
	})
}

/*
TestRequireSession_MissingCookie verifies that a request without the session
cookie is rejected with 401 and never reaches the downstream handler.
*/
func TestRequireSession_MissingCookie(t *testing.T) {
	codec := newGateCodec(t)
	probe := &downstreamProbe{}

	gate := middleware.RequireSession(codec)(probe.handler())

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	recorder := httptest.NewRecorder()
	gate.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, probe.called, "downstream handler must not run")
	assert.Contains(t, recorder.Body.String(), "Please log in first")
}

/*
TestRequireSession_InvalidToken verifies that tampered, foreign-signed, and
expired tokens are all collapsed to the same 401 response.
*/
func TestRequireSession_InvalidToken(t *testing.T) {
	codec := newGateCodec(t)

	foreignCodec, err := token.NewCodec("another-secret", "evenzo-test", 6*time.Hour)
	require.NoError(t, err)
	foreignToken, err := foreignCodec.Issue("user-123")
	require.NoError(t, err)

	expiredCodec, err := token.NewCodec("gate-test-secret", "evenzo-test", time.Nanosecond)
	require.NoError(t, err)
	expiredToken, err := expiredCodec.Issue("user-123")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	tests := []struct {
		name  string
		value string
	}{
		{"garbage", "definitely-not-a-jwt"},
		{"foreign_signature", foreignToken},
		{"expired", expiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := &downstreamProbe{}
			gate := middleware.RequireSession(codec)(probe.handler())

			request := httptest.NewRequest(http.MethodGet, "/protected", nil)
			request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: tt.value})
			recorder := httptest.NewRecorder()
			gate.ServeHTTP(recorder, request)

			// The failure class must not leak to the client.
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.False(t, probe.called)
			assert.Contains(t, recorder.Body.String(), "Invalid token")
		})
	}
}

/*
TestRequireSession_ValidToken verifies the success path: the request is
admitted and the downstream handler sees the resolved user identifier.
*/
func TestRequireSession_ValidToken(t *testing.T) {
	codec := newGateCodec(t)
	probe := &downstreamProbe{}

	sessionToken, err := codec.Issue("user-456")
	require.NoError(t, err)

	gate := middleware.RequireSession(codec)(probe.handler())

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: sessionToken})
	recorder := httptest.NewRecorder()
	gate.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, probe.called)
	assert.Equal(t, "user-456", probe.userID)
}

/*
TestRequireSession_EmptyCookieValue verifies that a present-but-empty cookie
is treated the same as a missing one.
*/
func TestRequireSession_EmptyCookieValue(t *testing.T) {
	codec := newGateCodec(t)
	probe := &downstreamProbe{}

	gate := middleware.RequireSession(codec)(probe.handler())

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: ""})
	recorder := httptest.NewRecorder()
	gate.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, probe.called)
}
