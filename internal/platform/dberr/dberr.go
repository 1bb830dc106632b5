// Copyright (c) 2026 Evenzo. All rights reserved.

// Package dberr classifies low-level database errors so that stores can map
// them onto their own domain errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
//
// # Atomicity
//
// Stores rely on this instead of a prior existence lookup: the constraint is
// enforced by the database on insert, so duplicate detection has no
// check-then-insert race window.
func IsUniqueViolation(err error) bool {
	var pgError *pgconn.PgError
	return errors.As(err, &pgError) && pgError.Code == pgerrcode.UniqueViolation
}
