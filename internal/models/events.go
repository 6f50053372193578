package models

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const EventColName = "events"

// ProfileRef is a profile reference held by an event. It is either an
// UnresolvedProfile (only the id is known) or a ResolvedProfile.
type ProfileRef interface {
	ProfileID() primitive.ObjectID
	isProfileRef()
}

type UnresolvedProfile struct {
	ID primitive.ObjectID
}

type ResolvedProfile struct {
	ProfileSummary
}

func (u UnresolvedProfile) ProfileID() primitive.ObjectID { return u.ID }
func (UnresolvedProfile) isProfileRef()                   {}

// MarshalJSON renders an unresolved reference as the bare id.
func (u UnresolvedProfile) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.ID.Hex())
}

func (r ResolvedProfile) ProfileID() primitive.ObjectID { return r.ID }
func (ResolvedProfile) isProfileRef()                   {}

type Event struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	ProfileIDs    []primitive.ObjectID `bson:"profiles" json:"-"`
	Profiles      []ProfileRef         `bson:"-" json:"profiles"`
	EventTimezone string               `bson:"eventTimezone" json:"eventTimezone"`
	StartDateTime time.Time            `bson:"startDateTime" json:"startDateTime"`
	EndDateTime   time.Time            `bson:"endDateTime" json:"endDateTime"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time            `bson:"updatedAt" json:"updatedAt"`
	Display       *EventDisplay        `bson:"-" json:"display,omitempty"`
}

// EventRequest is the full payload of event creation and replacement.
// Instants are ISO-8601 strings.
type EventRequest struct {
	Profiles      []string `json:"profiles" validate:"required,min=1,dive,required"`
	EventTimezone string   `json:"eventTimezone" validate:"required"`
	StartDateTime string   `json:"startDateTime" validate:"required"`
	EndDateTime   string   `json:"endDateTime" validate:"required"`
}

type LocalDateTime struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type OriginalDisplay struct {
	Timezone string `json:"timezone"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

// EventDisplay is an event projected into one viewer's timezone.
type EventDisplay struct {
	Timezone   string           `json:"timezone"`
	Start      string           `json:"start"`
	End        string           `json:"end"`
	Created    string           `json:"created"`
	Updated    string           `json:"updated"`
	StartLocal LocalDateTime    `json:"startLocal"`
	EndLocal   LocalDateTime    `json:"endLocal"`
	Original   *OriginalDisplay `json:"original,omitempty"`
}

type EventRepo interface {
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	ListEventsByProfile(ctx context.Context, profileID primitive.ObjectID) ([]*Event, error)
	UpdateEvent(ctx context.Context, id primitive.ObjectID, event *Event) (*Event, error)
}

func (e *Event) BeforeCreate() error {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	return nil
}

// AfterLoad rebuilds the reference list from the stored ids. Every reference
// starts unresolved.
func (e *Event) AfterLoad() {
	e.StartDateTime = e.StartDateTime.UTC()
	e.EndDateTime = e.EndDateTime.UTC()
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	e.Profiles = make([]ProfileRef, 0, len(e.ProfileIDs))
	for _, id := range e.ProfileIDs {
		e.Profiles = append(e.Profiles, UnresolvedProfile{ID: id})
	}
}

// ResolveProfiles swaps unresolved references for the matching profile.
// References whose profile is missing from byID stay unresolved.
func (e *Event) ResolveProfiles(byID map[primitive.ObjectID]ProfileSummary) {
	for i, ref := range e.Profiles {
		switch r := ref.(type) {
		case UnresolvedProfile:
			if p, ok := byID[r.ID]; ok {
				e.Profiles[i] = ResolvedProfile{ProfileSummary: p}
			}
		case ResolvedProfile:
			if p, ok := byID[r.ID]; ok {
				e.Profiles[i] = ResolvedProfile{ProfileSummary: p}
			}
		}
	}
}
