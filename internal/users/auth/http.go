// Copyright (c) 2026 Evenzo. All rights reserved.

/*
HTTP delivery layer for user identity management.

It implements the gateway for the authentication lifecycle: account creation,
login, and authenticated profile resolution.

# Architecture

The handler acts as a thin mediation layer between the web and domain services:
  - Protocol: Standard RESTful JSON interface.
  - Security: Sets the session token cookie on successful register/login.
  - Verification: Enforces strict input validation before passing to [Service].

This layer is strictly responsible for transport concerns (status codes, cookies, JSON).
*/
package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KYusufbd/evenzo-back-end/internal/platform/constants"
	"github.com/KYusufbd/evenzo-back-end/internal/platform/middleware"
	requestutil "github.com/KYusufbd/evenzo-back-end/internal/platform/request"
	"github.com/KYusufbd/evenzo-back-end/internal/platform/respond"
	"github.com/KYusufbd/evenzo-back-end/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Mount registers the authentication routes onto the parent router.
//
// The frontend consumes these paths at the API root, so they are attached
// directly instead of under a sub-mount.
//
// # Endpoints
//   - POST /register : Creates a new account and opens a session.
//   - POST /login    : Authenticates and opens a session.
//   - GET  /me       : Returns the authenticated user's profile.
func (handler *Handler) Mount(router chi.Router, verifier middleware.TokenVerifier) {

	// Public endpoints
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(verifier))
		r.Get("/me", handler.me)
	})
}

// # Request Payloads

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	PhotoURL string `json:"photoUrl"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
register handles the creation of a new user account.

POST /register

Description: Validates input, persists a new user profile, and attaches a
fresh session cookie to the response.

Request:
  - Body: registerRequest (Name, Email, Password, optional PhotoURL)

Response:
  - 201: {message}, session cookie set
  - 400: Validation failure or duplicate email
  - 500: Unexpected store failure (generic body, cause logged)
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	// photoUrl is stored verbatim: the frontend sends relative asset paths
	// (the default avatar itself is the bare filename "user.svg").
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Register(request.Context(), RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		PhotoURL: input.PhotoURL,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	setSessionCookie(writer, session.Token)
	respond.Message(writer, http.StatusCreated, "User registered successfully!")
}

/*
login authenticates a user and establishes a session.

POST /login

Description: Verifies credentials and injects a fresh session token cookie
into the response.

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: {message}, session cookie set
  - 400: Missing email or password
  - 401: Credentials do not match (identical for unknown email / wrong password)
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	setSessionCookie(writer, session.Token)
	respond.Message(writer, http.StatusOK, "Login successful!")
}

/*
me returns the profile of the authenticated user.

GET /me

Description: Resolves the identity attached by the authentication gate back
to the stored account. The password hash is never serialized.

Response:
  - 200: User profile
  - 401: Missing or invalid session token
  - 404: Account no longer exists
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Profile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// setSessionCookie attaches the session token to the response.
//
// No Expires/Secure/HttpOnly/SameSite attributes are set: the cookie is
// session-scoped on the client and its effective lifetime is the token's own
// embedded expiry. Deployment-specific attributes stay out of this layer
// until the HTTPS/cross-site posture is settled.
func setSessionCookie(writer http.ResponseWriter, sessionToken string) {
	http.SetCookie(writer, &http.Cookie{
		Name:  constants.SessionCookieName,
		Value: sessionToken,
		Path:  constants.SessionCookiePath,
	})
}
