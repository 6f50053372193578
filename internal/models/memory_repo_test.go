package models

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemoryRepo_ProfileNamesAreUnique(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	_, err := repo.CreateProfile(ctx, &Profile{Name: "Alice", Timezone: DefaultTimezone})
	require.NoError(t, err)

	_, err = repo.CreateProfile(ctx, &Profile{Name: "Alice", Timezone: DefaultTimezone})
	assert.ErrorIs(t, err, ErrDuplicateName)

	// uniqueness is case-sensitive
	_, err = repo.CreateProfile(ctx, &Profile{Name: "alice", Timezone: DefaultTimezone})
	assert.NoError(t, err)

	all, err := repo.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMemoryRepo_ConcurrentDuplicateCreates(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CreateProfile(ctx, &Profile{Name: "Bob", Timezone: DefaultTimezone})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	ok := 0
	for err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, ErrDuplicateName)
	}
	assert.Equal(t, 1, ok)
}

func TestMemoryRepo_ListEventsByProfileSortsByStart(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	alice, bob := primitive.NewObjectID(), primitive.NewObjectID()
	base := time.Date(2025, 11, 20, 15, 0, 0, 0, time.UTC)

	for _, ev := range []*Event{
		{ProfileIDs: []primitive.ObjectID{alice}, StartDateTime: base.Add(2 * time.Hour), EndDateTime: base.Add(3 * time.Hour)},
		{ProfileIDs: []primitive.ObjectID{bob}, StartDateTime: base, EndDateTime: base.Add(time.Hour)},
		{ProfileIDs: []primitive.ObjectID{bob, alice}, StartDateTime: base, EndDateTime: base.Add(time.Hour)},
	} {
		_, err := repo.CreateEvent(ctx, ev)
		require.NoError(t, err)
	}

	got, err := repo.ListEventsByProfile(ctx, alice)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].StartDateTime.Equal(base))
	assert.True(t, got[1].StartDateTime.Equal(base.Add(2*time.Hour)))

	none, err := repo.ListEventsByProfile(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMemoryRepo_UpdateEventReplacesFields(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	alice, bob := primitive.NewObjectID(), primitive.NewObjectID()
	base := time.Date(2025, 11, 20, 15, 0, 0, 0, time.UTC)

	created, err := repo.CreateEvent(ctx, &Event{
		ProfileIDs:    []primitive.ObjectID{alice, bob},
		EventTimezone: "America/New_York",
		StartDateTime: base,
		EndDateTime:   base.Add(time.Hour),
		CreatedAt:     base,
		UpdatedAt:     base,
	})
	require.NoError(t, err)

	updated, err := repo.UpdateEvent(ctx, created.ID, &Event{
		ProfileIDs:    []primitive.ObjectID{bob},
		EventTimezone: "Asia/Kolkata",
		StartDateTime: base.Add(24 * time.Hour),
		EndDateTime:   base.Add(25 * time.Hour),
		UpdatedAt:     base.Add(time.Minute),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, []ProfileRef{UnresolvedProfile{ID: bob}}, updated.Profiles)
	assert.Equal(t, "Asia/Kolkata", updated.EventTimezone)
	assert.True(t, updated.CreatedAt.Equal(base))
	assert.True(t, updated.UpdatedAt.Equal(base.Add(time.Minute)))

	forAlice, err := repo.ListEventsByProfile(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, forAlice)

	_, err = repo.UpdateEvent(ctx, primitive.NewObjectID(), &Event{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEvent_ResolveProfiles(t *testing.T) {
	known, missing := primitive.NewObjectID(), primitive.NewObjectID()
	e := &Event{ProfileIDs: []primitive.ObjectID{known, missing}}
	e.AfterLoad()

	e.ResolveProfiles(map[primitive.ObjectID]ProfileSummary{
		known: {ID: known, Name: "Alice", Timezone: "America/New_York"},
	})

	require.Len(t, e.Profiles, 2)
	assert.Equal(t, ResolvedProfile{ProfileSummary{ID: known, Name: "Alice", Timezone: "America/New_York"}}, e.Profiles[0])
	assert.Equal(t, UnresolvedProfile{ID: missing}, e.Profiles[1])
	assert.Equal(t, missing, e.Profiles[1].ProfileID())
}
