// Copyright (c) 2026 Evenzo. All rights reserved.

package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KYusufbd/evenzo-back-end/internal/platform/apperr"
	"github.com/KYusufbd/evenzo-back-end/internal/platform/ctxutil"
	"github.com/KYusufbd/evenzo-back-end/pkg/uuid"
)

// listCacheTTL keeps the browse listing fresh without hammering Postgres.
const listCacheTTL = 30 * time.Second

// # Service Layer

// Service orchestrates business logic for the event catalogue.
type Service struct {
	eventRepository EventRepository
	listCache       ListCache
}

// NewService constructs a new [Service] with its dependencies.
func NewService(eventRepo EventRepository, cache ListCache) *Service {
	return &Service{
		eventRepository: eventRepo,
		listCache:       cache,
	}
}

// # Event Creation

// CreateInput holds the data required to publish a new event.
type CreateInput struct {
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	PhotoURL    string
	// OwnerID comes from the authentication gate, never from client input.
	OwnerID string
}

/*
Create publishes a new event owned by the authenticated user.

Description: Persists the event and invalidates the cached listing so the
next browse reflects it. Cache failures are logged, never fatal.

Parameters:
  - context: context.Context
  - input: CreateInput (pre-validated by the handler)

Returns:
  - *Event: Created entity
  - error: Storage failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Event, error) {
	event := &Event{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartsAt:    input.StartsAt,
		PhotoURL:    input.PhotoURL,
		OwnerID:     input.OwnerID,
	}

	if err := service.eventRepository.Create(context, event); err != nil {
		return nil, fmt.Errorf("events_service_create_failed: %w", err)
	}

	if err := service.listCache.Invalidate(context); err != nil {
		ctxutil.GetLogger(context).WarnContext(context, "event_cache_invalidate_failed",
			slog.Any("error", err),
		)
	}

	return event, nil
}

// # Browsing

/*
List returns every published event, soonest first.

Description: Served from the Redis cache when warm; on a miss the repository
is queried and the cache repopulated. The cache is strictly an optimization —
any cache failure degrades to a direct store read.

Parameters:
  - context: context.Context

Returns:
  - []Event: Hydrated entities
  - error: Storage failures
*/
func (service *Service) List(context context.Context) ([]Event, error) {

	// 1. Try the volatile cache first
	if cached, err := service.listCache.Get(context); err == nil {
		return cached, nil
	}

	// 2. Fall through to persistent storage
	events, err := service.eventRepository.List(context)
	if err != nil {
		return nil, fmt.Errorf("events_service_list_failed: %w", err)
	}

	// 3. Repopulate the cache (best effort)
	if err := service.listCache.Set(context, events, listCacheTTL); err != nil {
		ctxutil.GetLogger(context).WarnContext(context, "event_cache_set_failed",
			slog.Any("error", err),
		)
	}

	return events, nil
}

/*
Get resolves a single event by ID.

Parameters:
  - context: context.Context
  - eventID: string

Returns:
  - *Event: Hydrated entity
  - error: apperr.NotFound or retrieval failures
*/
func (service *Service) Get(context context.Context, eventID string) (*Event, error) {
	event, err := service.eventRepository.FindByID(context, eventID)
	if err != nil {
		if apperr.IsAppError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("events_service_get_failed: %w", err)
	}
	return event, nil
}
