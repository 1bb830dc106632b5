// Copyright (c) 2026 Evenzo. All rights reserved.

package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KYusufbd/evenzo-back-end/internal/events"
	"github.com/KYusufbd/evenzo-back-end/internal/platform/apperr"
)

// # Test Doubles

// memoryEventRepository is an in-memory EventRepository for service tests.
type memoryEventRepository struct {
	byID    map[string]*events.Event
	ordered []events.Event
	lists   int
}

func newMemoryEventRepository() *memoryEventRepository {
	return &memoryEventRepository{byID: make(map[string]*events.Event)}
}

func (repository *memoryEventRepository) Create(_ context.Context, event *events.Event) error {
	repository.byID[event.ID] = event
	repository.ordered = append(repository.ordered, *event)
	return nil
}

func (repository *memoryEventRepository) FindByID(_ context.Context, id string) (*events.Event, error) {
	event, ok := repository.byID[id]
	if !ok {
		return nil, apperr.NotFound("Event")
	}
	return event, nil
}

func (repository *memoryEventRepository) List(_ context.Context) ([]events.Event, error) {
	repository.lists++
	return repository.ordered, nil
}

// fakeListCache records cache traffic and simulates hit/miss behaviour.
type fakeListCache struct {
	entries     []events.Event
	warm        bool
	sets        int
	invalidates int
}

func (cache *fakeListCache) Get(_ context.Context) ([]events.Event, error) {
	if !cache.warm {
		return nil, events.ErrCacheMiss
	}
	return cache.entries, nil
}

func (cache *fakeListCache) Set(_ context.Context, entries []events.Event, _ time.Duration) error {
	cache.entries = entries
	cache.warm = true
	cache.sets++
	return nil
}

func (cache *fakeListCache) Invalidate(_ context.Context) error {
	cache.entries = nil
	cache.warm = false
	cache.invalidates++
	return nil
}

// # Event Creation

func TestService_Create(t *testing.T) {
	repository := newMemoryEventRepository()
	cache := &fakeListCache{warm: true}
	service := events.NewService(repository, cache)

	event, err := service.Create(context.Background(), events.CreateInput{
		Title:    "Go Meetup",
		Location: "Dhaka",
		StartsAt: time.Now().Add(48 * time.Hour),
		OwnerID:  "owner-1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "owner-1", event.OwnerID)

	// 1. The event landed in the repository
	stored, err := repository.FindByID(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go Meetup", stored.Title)

	// 2. The stale listing was dropped
	assert.Equal(t, 1, cache.invalidates)
	assert.False(t, cache.warm)
}

// # Browsing

/*
TestService_List_CacheMiss verifies the fall-through: a cold cache hits the
repository once and repopulates itself.
*/
func TestService_List_CacheMiss(t *testing.T) {
	repository := newMemoryEventRepository()
	cache := &fakeListCache{}
	service := events.NewService(repository, cache)

	_, err := service.Create(context.Background(), events.CreateInput{
		Title: "Go Meetup", StartsAt: time.Now(), OwnerID: "owner-1",
	})
	require.NoError(t, err)

	listed, err := service.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.Equal(t, 1, repository.lists)
	assert.Equal(t, 1, cache.sets)
	assert.True(t, cache.warm)
}

/*
TestService_List_CacheHit verifies a warm cache short-circuits the
repository entirely.
*/
func TestService_List_CacheHit(t *testing.T) {
	repository := newMemoryEventRepository()
	cache := &fakeListCache{
		warm:    true,
		entries: []events.Event{{ID: "cached-1", Title: "Cached Meetup"}},
	}
	service := events.NewService(repository, cache)

	listed, err := service.List(context.Background())

	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Cached Meetup", listed[0].Title)
	assert.Zero(t, repository.lists, "warm cache must not touch the repository")
}

// # Lookup

func TestService_Get(t *testing.T) {
	repository := newMemoryEventRepository()
	service := events.NewService(repository, &fakeListCache{})

	created, err := service.Create(context.Background(), events.CreateInput{
		Title: "Go Meetup", StartsAt: time.Now(), OwnerID: "owner-1",
	})
	require.NoError(t, err)

	found, err := service.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestService_Get_NotFound(t *testing.T) {
	service := events.NewService(newMemoryEventRepository(), &fakeListCache{})

	_, err := service.Get(context.Background(), "missing-id")

	var ae *apperr.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}
