// Copyright (c) 2026 Evenzo. All rights reserved.

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KYusufbd/evenzo-back-end/internal/platform/apperr"
	"github.com/KYusufbd/evenzo-back-end/internal/platform/validate"
)

func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"present", "Ann", true},
		{"empty", "", false},
		{"whitespace_only", "   \t", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			err := v.Required("name", tt.value).Err()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"plain_address", "ann@x.com", true},
		{"with_display_name", "Ann <ann@x.com>", true},
		{"missing_at", "ann.x.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			err := v.Email("email", tt.value).Err()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidator_URL(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"https", "https://cdn.example.com/a.png", true},
		{"http", "http://localhost:5173/a.png", true},
		{"empty_is_optional", "", true},
		{"no_scheme", "cdn.example.com/a.png", false},
		{"ftp_scheme", "ftp://cdn.example.com/a.png", false},
		{"scheme_only", "https://", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			err := v.URL("photoUrl", tt.value).Err()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidator_UUID(t *testing.T) {
	v := &validate.Validator{}
	assert.NoError(t, v.UUID("id", "0190c558-5e9b-7c1a-9f4e-3a2b1c0d9e8f").Err())

	v = &validate.Validator{}
	assert.Error(t, v.UUID("id", "not-a-uuid").Err())
}

func TestValidator_Lengths(t *testing.T) {
	v := &validate.Validator{}
	assert.NoError(t, v.MinLen("password", "pw1", 3).MaxLen("name", "Ann", 100).Err())

	v = &validate.Validator{}
	assert.Error(t, v.MinLen("password", "pw", 3).Err())
}

/*
TestValidator_Chain verifies that a chain collects every failed rule into a
single VALIDATION_ERROR with per-field details.
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}
	err := v.
		Required("name", "").
		Required("email", "").
		Email("email", "").
		Required("password", "pw1").
		Err()

	require.Error(t, err)

	var ae *apperr.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	// name missing, email missing, email invalid — password passed
	assert.Len(t, ae.Details, 3)
	assert.True(t, v.HasErrors())
}

func TestValidator_Custom(t *testing.T) {
	v := &validate.Validator{}
	assert.Error(t, v.Custom("starts_at", true, "Must be in the future").Err())

	v = &validate.Validator{}
	assert.NoError(t, v.Custom("starts_at", false, "Must be in the future").Err())
}

func TestRequiredError(t *testing.T) {
	err := validate.RequiredError("email", "This field is required")

	require.NotNil(t, err)
	assert.Equal(t, "VALIDATION_ERROR", err.Code)
	require.Len(t, err.Details, 1)
	assert.Equal(t, "email", err.Details[0].Field)
}
