// Copyright (c) 2026 Evenzo. All rights reserved.

package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/KYusufbd/evenzo-back-end/internal/platform/apperr"
	"github.com/KYusufbd/evenzo-back-end/internal/platform/constants"
	"github.com/KYusufbd/evenzo-back-end/internal/platform/ctxutil"
	"github.com/KYusufbd/evenzo-back-end/internal/platform/respond"
	"github.com/KYusufbd/evenzo-back-end/internal/platform/token"
)

// TokenVerifier defines the interface needed to verify session tokens in
// middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the gate from the [token.Codec]
// implementation, allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

// RequireSession is the authentication gate for protected routes.
//
// # Flow
//  1. Extract the session cookie (named "token") from the request.
//  2. If absent, reject with HTTP 401. The downstream handler never runs.
//  3. Verify the token via [TokenVerifier].
//  4. On any verification failure (bad signature, expired, malformed),
//     reject with HTTP 401. The specific failure is logged, never surfaced:
//     the client only learns that the session is not valid.
//  5. On success, attach the resolved user identifier to the request context
//     and continue down the chain.
//
// Each request is evaluated independently. There are no retries and no
// server-side session state.
func RequireSession(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Cookie Extraction ──────────────────────────────────────────
			cookie, err := request.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				respond.Error(writer, request, apperr.Unauthorized("Unauthorized. Please log in first."))
				return
			}

			// ── 2. Token Verification ─────────────────────────────────────────
			userID, err := verifier.Verify(cookie.Value)
			if err != nil {
				logVerificationFailure(request, err)
				respond.Error(writer, request, apperr.Unauthorized("Invalid token. Please log in again."))
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithUserID(request.Context(), userID)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// logVerificationFailure records why a token was rejected. The distinction
// between signature, expiry, and decode failures stays server-side only.
func logVerificationFailure(request *http.Request, err error) {
	reason := "malformed"
	switch {
	case errors.Is(err, token.ErrInvalidSignature):
		reason = "invalid_signature"
	case errors.Is(err, token.ErrExpired):
		reason = "expired"
	}

	ctxutil.GetLogger(request.Context()).WarnContext(request.Context(),
		"session_token_rejected",
		slog.String("reason", reason),
	)
}
