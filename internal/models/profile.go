package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ProfileColName  = "profiles"
	DefaultTimezone = "America/New_York"
)

type Profile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Timezone  string             `bson:"timezone" json:"timezone" validate:"required"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProfileSummary is the {id, name, timezone} projection returned by listings
// and embedded in resolved event references.
type ProfileSummary struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Timezone string             `bson:"timezone" json:"timezone"`
}

type ProfileRequest struct {
	Name string `json:"name" validate:"required"`
}

type ProfileRepo interface {
	CreateProfile(ctx context.Context, profile *Profile) (*Profile, error)
	ListProfiles(ctx context.Context) ([]ProfileSummary, error)
	GetProfilesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]ProfileSummary, error)
}

func (p *Profile) BeforeCreate() error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	return nil
}

func (p *Profile) Summary() ProfileSummary {
	return ProfileSummary{ID: p.ID, Name: p.Name, Timezone: p.Timezone}
}
