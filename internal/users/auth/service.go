// Copyright (c) 2026 Evenzo. All rights reserved.

/*
Package auth implements the account and session core of Evenzo.

It handles user registration, credential verification, and stateless session
issuance via signed tokens delivered as cookies.

Architecture:

  - Service: Orchestrates business logic (Register, Login).
  - Repository: Abstracted interface for the Postgres user store.
  - Security: bcrypt credential hashing and HMAC-signed session tokens.

Sessions are deliberately stateless — no server-side session table exists.
Validity is decided purely by the token's signature and embedded expiry,
trading instant revocation for simplicity.
*/
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/KYusufbd/evenzo-back-end/internal/platform/apperr"
	"github.com/KYusufbd/evenzo-back-end/internal/platform/constants"
	"github.com/KYusufbd/evenzo-back-end/internal/platform/sec"
	"github.com/KYusufbd/evenzo-back-end/pkg/uuid"
)

// # Contracts & Types

// TokenIssuer defines the contract for minting session tokens.
type TokenIssuer interface {
	// Issue creates a signed session token embedding the user identifier
	// and a fixed expiry.
	Issue(userID string) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	tokenIssuer    TokenIssuer
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, issuer TokenIssuer) *Service {
	return &Service{
		userRepository: userRepo,
		tokenIssuer:    issuer,
	}
}

// Session is the result of a successful registration or login: the stored
// user and the freshly minted session token to hand to the client.
type Session struct {
	Token string
	User  *User
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	PhotoURL string
}

/*
Register hashes credentials, persists a brand new user account, and opens a
session for it.

Description: The store enforces email uniqueness atomically on insert, so a
concurrent registration race resolves to exactly one success and one
DuplicateEmail conflict.

Parameters:
  - context: context.Context
  - input: RegisterInput (pre-validated by the handler)

Returns:
  - *Session: Token and created entity
  - error: apperr.DuplicateEmail or storage/signing errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Session, error) {

	// Prevent storing plain-text passwords. Default cost balances security
	// against CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Absent photo references fall back to the sentinel avatar.
	photoURL := input.PhotoURL
	if photoURL == "" {
		photoURL = constants.DefaultAvatar
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		PhotoURL:     photoURL,
	}

	// Persist the user. A duplicate email surfaces here as a client-safe
	// conflict; anything else stays an internal error.
	if err := service.userRepository.Create(context, user); err != nil {
		if apperr.IsAppError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	// Open the session immediately — registration doubles as the first login.
	token, err := service.tokenIssuer.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_issue_failed: %w", err)
	}

	return &Session{Token: token, User: user}, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

/*
Login validates user credentials and opens a session.

Description: Looks the account up by email and performs a constant-time
password comparison. Unknown email and wrong password produce the identical
InvalidCredentials failure so that account existence cannot be probed.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *Session: Token and matched entity
  - error: apperr.InvalidCredentials or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*Session, error) {

	user, err := service.userRepository.FindByEmail(context, input.Email)
	if err != nil {
		// Unknown email. Generic message to prevent enumeration; unexpected
		// store failures still surface as internal errors.
		var ae *apperr.AppError
		if errors.As(err, &ae) && ae.Code == "NOT_FOUND" {
			return nil, apperr.InvalidCredentials("Invalid email or password.")
		}
		return nil, fmt.Errorf("auth_service_login_lookup_failed: %w", err)
	}

	// bcrypt performs a constant-time comparison to prevent timing attacks.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.InvalidCredentials("Invalid email or password.")
	}

	token, err := service.tokenIssuer.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_issue_failed: %w", err)
	}

	return &Session{Token: token, User: user}, nil
}

// # Identity Resolution

/*
Profile resolves a verified user identifier back to the stored account.

Parameters:
  - context: context.Context
  - userID: string (as attached by the authentication gate)

Returns:
  - *User: Hydrated account (password hash never serialized)
  - error: apperr.NotFound or retrieval failures
*/
func (service *Service) Profile(context context.Context, userID string) (*User, error) {
	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		if apperr.IsAppError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("auth_service_profile_failed: %w", err)
	}
	return user, nil
}
