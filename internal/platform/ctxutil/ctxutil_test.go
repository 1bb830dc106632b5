// Copyright (c) 2026 Evenzo. All rights reserved.

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KYusufbd/evenzo-back-end/internal/platform/ctxutil"
)

func TestRequestID_Roundtrip(t *testing.T) {
	ctx := ctxutil.WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", ctxutil.GetRequestID(ctx))
}

func TestRequestID_Missing(t *testing.T) {
	assert.Empty(t, ctxutil.GetRequestID(context.Background()))
}

func TestLogger_Roundtrip(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	ctx := ctxutil.WithLogger(context.Background(), logger)
	assert.Same(t, logger, ctxutil.GetLogger(ctx))
}

// GetLogger must never return nil — anonymous contexts fall back to the
// process-wide default.
func TestLogger_FallsBackToDefault(t *testing.T) {
	assert.NotNil(t, ctxutil.GetLogger(context.Background()))
}

func TestUserID_Roundtrip(t *testing.T) {
	ctx := ctxutil.WithUserID(context.Background(), "user-456")
	assert.Equal(t, "user-456", ctxutil.GetUserID(ctx))
}

func TestUserID_Anonymous(t *testing.T) {
	assert.Empty(t, ctxutil.GetUserID(context.Background()))
}

/*
TestUserID_VisibleToEnclosingScope verifies that an identity attached on a
derived context is observable from the scope it was seeded in — the request
logger depends on this to record user_id after the handler returns.
*/
func TestUserID_VisibleToEnclosingScope(t *testing.T) {
	scoped := ctxutil.WithIdentityScope(context.Background())

	derived := ctxutil.WithUserID(scoped, "user-789")

	assert.Equal(t, "user-789", ctxutil.GetUserID(derived))
	assert.Equal(t, "user-789", ctxutil.GetUserID(scoped))
}
