// Copyright (c) 2026 Evenzo. All rights reserved.

// HTTP delivery layer for the event catalogue.
package events

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/KYusufbd/evenzo-back-end/internal/platform/middleware"
	requestutil "github.com/KYusufbd/evenzo-back-end/internal/platform/request"
	"github.com/KYusufbd/evenzo-back-end/internal/platform/respond"
	"github.com/KYusufbd/evenzo-back-end/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements event-related HTTP endpoints.
type Handler struct {
	eventService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{eventService: service}
}

// Routes returns a [chi.Router] configured with event routes.
//
// # Endpoints
//   - GET  /          : Lists all events (public).
//   - GET  /{eventID} : Fetches a single event (public).
//   - POST /          : Publishes a new event (requires a session).
func (handler *Handler) Routes(verifier middleware.TokenVerifier) chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Get("/", handler.list)
	router.Get("/{eventID}", handler.get)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(verifier))
		r.Post("/", handler.create)
	})

	return router
}

// # Request Payloads

type createRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	PhotoURL    string    `json:"photoUrl"`
}

/*
create publishes a new event owned by the authenticated user.

POST /events

Response:
  - 201: Event: Created entity
  - 400: Validation failure
  - 401: Missing or invalid session token
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 200).
		Required(FieldLocation, input.Location).
		Custom(FieldStartsAt, input.StartsAt.IsZero(), "This field is required").
		URL(FieldPhotoURL, input.PhotoURL)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	event, err := handler.eventService.Create(request.Context(), CreateInput{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartsAt:    input.StartsAt,
		PhotoURL:    input.PhotoURL,
		OwnerID:     userID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, event)
}

/*
list returns all published events, soonest first.

GET /events

Response:
  - 200: []Event
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	events, err := handler.eventService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, events)
}

/*
get fetches a single event by ID.

GET /events/{eventID}

Response:
  - 200: Event
  - 400: Malformed event ID
  - 404: Unknown event
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	eventID := requestutil.Param(request, FieldEventID)

	validator := &validate.Validator{}
	validator.UUID(FieldEventID, eventID)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	event, err := handler.eventService.Get(request.Context(), eventID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, event)
}
