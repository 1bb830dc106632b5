// Copyright (c) 2026 Evenzo. All rights reserved.

// Package sec provides cryptographic primitives for credential storage.
//
// # Architecture
//
// Credentials are never persisted or compared in plain text. bcrypt embeds
// its salt in the hash and performs a constant-time comparison internally,
// which also serves the anti-enumeration requirement of the login flow.
package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plain-text password using the bcrypt algorithm.
func HashPassword(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPasswordHash compares a plain-text password with its hashed version.
func CheckPasswordHash(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}
