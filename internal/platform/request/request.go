// Copyright (c) 2026 Evenzo. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KYusufbd/evenzo-back-end/internal/platform/apperr"
	"github.com/KYusufbd/evenzo-back-end/internal/platform/ctxutil"
	"github.com/KYusufbd/evenzo-back-end/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
RequiredUserID ensures the request passed the authentication gate and returns
the resolved user identifier.

Returns:
  - string: User UUID
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredUserID(request *http.Request) (string, error) {

	// Get the identity the gate attached to the context
	userID := ctxutil.GetUserID(request.Context())

	// If the user is not authenticated, return an error
	if userID == "" {
		return "", apperr.Unauthorized("Unauthorized. Please log in first.")
	}

	return userID, nil
}
