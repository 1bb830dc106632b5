// Copyright (c) 2026 Evenzo. All rights reserved.

// PostgreSQL implementation of the events storage contract.
package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KYusufbd/evenzo-back-end/internal/platform/apperr"
)

// PostgresEventRepository implements the EventRepository interface using pgx.
type PostgresEventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository creates a new PostgreSQL implementation of the EventRepository.
func NewEventRepository(pool *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{pool: pool}
}

/*
Create persists a new event record into the events.event table.

Parameters:
  - context: context.Context
  - event: *Event

Returns:
  - error: Constraint violations or connectivity errors
*/
func (repository *PostgresEventRepository) Create(context context.Context, event *Event) error {
	const query = `
		INSERT INTO events.event (
			id, title, description, location, startsat, photourl, ownerid, createdat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(context, query,
		event.ID,
		event.Title,
		event.Description,
		event.Location,
		event.StartsAt,
		event.PhotoURL,
		event.OwnerID,
		event.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_event_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindByID retrieves an event record by its unique ID.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)

Returns:
  - *Event: Hydrated entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresEventRepository) FindByID(context context.Context, id string) (*Event, error) {
	const query = `
		SELECT id, title, description, location, startsat, photourl, ownerid, createdat
		FROM events.event
		WHERE id = $1`

	event := &Event{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.StartsAt,
		&event.PhotoURL,
		&event.OwnerID,
		&event.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Event")
		}
		return nil, fmt.Errorf("postgres_event_repo_find_by_id_failed: %w", err)
	}

	return event, nil
}

/*
List retrieves all events ordered by start time.

Parameters:
  - context: context.Context

Returns:
  - []Event: Hydrated entities (empty slice when none exist)
  - error: Retrieval failures
*/
func (repository *PostgresEventRepository) List(context context.Context) ([]Event, error) {
	const query = `
		SELECT id, title, description, location, startsat, photourl, ownerid, createdat
		FROM events.event
		ORDER BY startsat ASC`

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_event_repo_list_failed: %w", err)
	}
	defer rows.Close()

	events := make([]Event, 0)
	for rows.Next() {
		var event Event
		if err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Location,
			&event.StartsAt,
			&event.PhotoURL,
			&event.OwnerID,
			&event.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_event_repo_scan_failed: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_event_repo_rows_failed: %w", err)
	}

	return events, nil
}
