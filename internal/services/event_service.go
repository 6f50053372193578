package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joshua-takyi/tzsched/internal/models"
	"github.com/joshua-takyi/tzsched/internal/timeconv"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventService struct {
	eventRepo   models.EventRepo
	profileRepo models.ProfileRepo
	now         func() time.Time
}

func NewEventService(eventRepo models.EventRepo, profileRepo models.ProfileRepo) *EventService {
	return &EventService{
		eventRepo:   eventRepo,
		profileRepo: profileRepo,
		now:         time.Now,
	}
}

// eventDraft is a validated EventRequest.
type eventDraft struct {
	profileIDs    []primitive.ObjectID
	eventTimezone string
	start         time.Time
	end           time.Time
}

func (es *EventService) CreateEvent(ctx context.Context, req *models.EventRequest) (*models.Event, error) {
	draft, err := es.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	now := es.now().UTC().Truncate(time.Millisecond)
	event := &models.Event{
		ProfileIDs:    draft.profileIDs,
		EventTimezone: draft.eventTimezone,
		StartDateTime: draft.start,
		EndDateTime:   draft.end,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return es.eventRepo.CreateEvent(ctx, event)
}

// ListEventsForProfile returns the profile's events by ascending start with
// references resolved. A non-empty viewerTimezone attaches a display block
// projected into that zone.
func (es *EventService) ListEventsForProfile(ctx context.Context, profileID string, viewerTimezone string) ([]*models.Event, error) {
	if viewerTimezone != "" {
		if _, err := timeconv.LoadZone(viewerTimezone); err != nil {
			return nil, err
		}
	}

	pid, err := primitive.ObjectIDFromHex(strings.TrimSpace(profileID))
	if err != nil {
		return []*models.Event{}, nil
	}

	events, err := es.eventRepo.ListEventsByProfile(ctx, pid)
	if err != nil {
		return nil, err
	}
	if err := es.resolve(ctx, events...); err != nil {
		return nil, err
	}

	if viewerTimezone != "" {
		for _, e := range events {
			display, err := DisplayEvent(e, viewerTimezone)
			if err != nil {
				return nil, err
			}
			e.Display = display
		}
	}
	return events, nil
}

// UpdateEvent replaces all editable fields of an existing event.
func (es *EventService) UpdateEvent(ctx context.Context, id string, req *models.EventRequest) (*models.Event, error) {
	eid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%w: event %q", models.ErrNotFound, id)
	}

	draft, err := es.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	updated, err := es.eventRepo.UpdateEvent(ctx, eid, &models.Event{
		ProfileIDs:    draft.profileIDs,
		EventTimezone: draft.eventTimezone,
		StartDateTime: draft.start,
		EndDateTime:   draft.end,
		UpdatedAt:     es.now().UTC().Truncate(time.Millisecond),
	})
	if err != nil {
		return nil, err
	}
	if err := es.resolve(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (es *EventService) validate(ctx context.Context, req *models.EventRequest) (*eventDraft, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: all event fields are required", models.ErrValidation)
	}
	req.EventTimezone = strings.TrimSpace(req.EventTimezone)
	if err := models.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: all event fields are required", models.ErrValidation)
	}

	ids := make([]primitive.ObjectID, 0, len(req.Profiles))
	seen := make(map[primitive.ObjectID]struct{}, len(req.Profiles))
	for _, raw := range req.Profiles {
		id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid profile id %q", models.ErrValidation, raw)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	if _, err := timeconv.LoadZone(req.EventTimezone); err != nil {
		return nil, err
	}
	start, err := timeconv.ParseInstant(req.StartDateTime)
	if err != nil {
		return nil, err
	}
	end, err := timeconv.ParseInstant(req.EndDateTime)
	if err != nil {
		return nil, err
	}
	start = start.Truncate(time.Millisecond)
	end = end.Truncate(time.Millisecond)
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end date/time must be after the start date/time", models.ErrInvalidTimeRange)
	}

	if err := es.ensureProfilesExist(ctx, ids); err != nil {
		return nil, err
	}

	return &eventDraft{
		profileIDs:    ids,
		eventTimezone: req.EventTimezone,
		start:         start,
		end:           end,
	}, nil
}

func (es *EventService) ensureProfilesExist(ctx context.Context, ids []primitive.ObjectID) error {
	found, err := es.profileRepo.GetProfilesByIDs(ctx, ids)
	if err != nil {
		return err
	}
	known := make(map[primitive.ObjectID]struct{}, len(found))
	for _, p := range found {
		known[p.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return fmt.Errorf("%w: profile %s", models.ErrNotFound, id.Hex())
		}
	}
	return nil
}

// resolve loads every referenced profile with one lookup and resolves the
// references of all given events.
func (es *EventService) resolve(ctx context.Context, events ...*models.Event) error {
	var ids []primitive.ObjectID
	seen := map[primitive.ObjectID]struct{}{}
	for _, e := range events {
		for _, ref := range e.Profiles {
			id := ref.ProfileID()
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	profiles, err := es.profileRepo.GetProfilesByIDs(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[primitive.ObjectID]models.ProfileSummary, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}
	for _, e := range events {
		e.ResolveProfiles(byID)
	}
	return nil
}
