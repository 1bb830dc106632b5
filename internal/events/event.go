// Copyright (c) 2026 Evenzo. All rights reserved.

/*
Package events implements the event catalogue of Evenzo.

Events are the records members browse and create: a title, where and when it
happens, and the account that owns it. Browsing is anonymous; creating an
event requires a valid session, which makes this package the primary consumer
of the authentication gate.
*/
package events

import "time"

// # Domain Entities

// Event represents a published event on the platform.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	PhotoURL    string    `json:"photoUrl,omitempty"`
	// OwnerID is the account that created the event, resolved from the
	// session token — never taken from the request body.
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// # Field Identifiers

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldLocation    = "location"
	FieldStartsAt    = "starts_at"
	FieldPhotoURL    = "photoUrl"
	FieldEventID     = "eventID"
)
