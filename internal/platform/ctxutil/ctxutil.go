// Copyright (c) 2026 Evenzo. All rights reserved.

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/KYusufbd/evenzo-back-end/internal/platform/ctxkey"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Identity & Access

// identityScope is a mutable holder for the verified user identifier.
//
// The activity logger seeds it before the authentication gate runs. The gate
// resolves the user on a context derived further down the chain, so an
// immutable context value would never reach the logger's final log line.
type identityScope struct {
	userID string
}

// WithIdentityScope seeds the context with an empty identity holder so that
// an identity resolved downstream is visible to this scope as well.
func WithIdentityScope(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxkey.KeyUserID, &identityScope{})
}

// WithUserID returns a context carrying the verified user identifier.
//
// Only the authentication gate writes this value; handlers further down the
// chain may trust it without re-verifying the session token. When an
// enclosing identity scope exists, the identifier is written into it.
func WithUserID(ctx context.Context, userID string) context.Context {
	if scope, ok := ctx.Value(ctxkey.KeyUserID).(*identityScope); ok {
		scope.userID = userID
		return ctx
	}
	return context.WithValue(ctx, ctxkey.KeyUserID, &identityScope{userID: userID})
}

// GetUserID retrieves the authenticated user identifier from the context.
// Returns an empty string for anonymous requests.
func GetUserID(ctx context.Context) string {
	if scope, ok := ctx.Value(ctxkey.KeyUserID).(*identityScope); ok {
		return scope.userID
	}
	return ""
}
