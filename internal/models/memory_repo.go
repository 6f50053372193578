package models

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	_ ProfileRepo = (*MemoryRepo)(nil)
	_ EventRepo   = (*MemoryRepo)(nil)
	_ ProfileRepo = (*MongodbRepo)(nil)
	_ EventRepo   = (*MongodbRepo)(nil)
)

// MemoryRepo is a process-local record store with the same contract as
// MongodbRepo. Returned values are copies; callers never share state with
// the store.
type MemoryRepo struct {
	mu       sync.RWMutex
	profiles []Profile
	events   []Event
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) CreateProfile(ctx context.Context, profile *Profile) (*Profile, error) {
	if err := profile.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare profile for creation: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.profiles {
		if p.Name == profile.Name {
			return nil, fmt.Errorf("%w: a profile named %q already exists", ErrDuplicateName, profile.Name)
		}
	}
	m.profiles = append(m.profiles, *profile)
	out := *profile
	return &out, nil
}

func (m *MemoryRepo) ListProfiles(ctx context.Context) ([]ProfileSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]ProfileSummary, 0, len(m.profiles))
	for i := range m.profiles {
		out = append(out, m.profiles[i].Summary())
	}
	return out, nil
}

func (m *MemoryRepo) GetProfilesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]ProfileSummary, error) {
	want := make(map[primitive.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []ProfileSummary{}
	for i := range m.profiles {
		if _, ok := want[m.profiles[i].ID]; ok {
			out = append(out, m.profiles[i].Summary())
		}
	}
	return out, nil
}

func (m *MemoryRepo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	if err := event.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare event for creation: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, copyEvent(event))
	out := copyEvent(event)
	out.AfterLoad()
	return &out, nil
}

func (m *MemoryRepo) ListEventsByProfile(ctx context.Context, profileID primitive.ObjectID) ([]*Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*Event{}
	for i := range m.events {
		for _, id := range m.events[i].ProfileIDs {
			if id == profileID {
				e := copyEvent(&m.events[i])
				e.AfterLoad()
				out = append(out, &e)
				break
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDateTime.Before(out[j].StartDateTime)
	})
	return out, nil
}

func (m *MemoryRepo) UpdateEvent(ctx context.Context, id primitive.ObjectID, event *Event) (*Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.events {
		if m.events[i].ID != id {
			continue
		}
		stored := &m.events[i]
		stored.ProfileIDs = append([]primitive.ObjectID(nil), event.ProfileIDs...)
		stored.EventTimezone = event.EventTimezone
		stored.StartDateTime = event.StartDateTime
		stored.EndDateTime = event.EndDateTime
		stored.UpdatedAt = event.UpdatedAt
		out := copyEvent(stored)
		out.AfterLoad()
		return &out, nil
	}
	return nil, fmt.Errorf("%w: event %s", ErrNotFound, id.Hex())
}

func copyEvent(e *Event) Event {
	out := *e
	out.ProfileIDs = append([]primitive.ObjectID(nil), e.ProfileIDs...)
	out.Profiles = nil
	out.Display = nil
	return out
}
