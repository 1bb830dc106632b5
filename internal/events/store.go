// Copyright (c) 2026 Evenzo. All rights reserved.

package events

import (
	"context"
	"time"
)

// # Event Data Access

// EventRepository defines the data access contract for events.
type EventRepository interface {

	/*
		Create persists a brand-new event.

		Parameters:
		  - context: context.Context
		  - event: *Event

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, event *Event) error

	/*
		FindByID returns the event with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Event: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByID(context context.Context, id string) (*Event, error)

	/*
		List returns all events ordered by start time (soonest first).

		Parameters:
		  - context: context.Context

		Returns:
		  - []Event: Hydrated entities
		  - error: Retrieval failures
	*/
	List(context context.Context) ([]Event, error)
}

// # Volatile Cache Access

// ListCache defines the contract for the volatile event-list cache.
//
// A cache miss is reported as an error from Get; callers fall through to the
// repository and repopulate. Cache failures never fail a request.
type ListCache interface {
	// Get returns the cached event list, or an error on miss/failure.
	Get(context context.Context) ([]Event, error)

	// Set stores the event list for the given TTL.
	Set(context context.Context, events []Event, ttl time.Duration) error

	// Invalidate drops the cached list (called after writes).
	Invalidate(context context.Context) error
}
