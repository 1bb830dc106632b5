// Copyright (c) 2026 Evenzo. All rights reserved.

/*
Package auth implements the user identity and session management layer.

It defines the core domain entity (User) and the logic for registration,
login, and stateless session issuance.

# Architecture

This layer is the "Truth" of the system. The entity defined here has no
external dependencies and encapsulates all business rules related to user
identity. Sessions themselves own no entity: a session exists only as a
signed token held by its client.
*/
package auth

import "time"

// # Domain Entities

// User represents a registered member of the Evenzo platform.
//
// Accounts are created once at registration and are never updated or deleted
// by this service.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	PhotoURL     string    `json:"photoUrl"`
	CreatedAt    time.Time `json:"created_at"`
}

// # Field Identifiers

// Field names for validation and identity mapping in the authentication domain.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldPhotoURL = "photoUrl"
	FieldMessage  = "message"
)
