package services

import (
	"context"

	"github.com/joshua-takyi/tzsched/internal/models"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockProfileRepo is a mock implementation of models.ProfileRepo
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) CreateProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepo) ListProfiles(ctx context.Context) ([]models.ProfileSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProfileSummary), args.Error(1)
}

func (m *MockProfileRepo) GetProfilesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.ProfileSummary, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProfileSummary), args.Error(1)
}

// MockEventRepo is a mock implementation of models.EventRepo
type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventRepo) ListEventsByProfile(ctx context.Context, profileID primitive.ObjectID) ([]*models.Event, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Event), args.Error(1)
}

func (m *MockEventRepo) UpdateEvent(ctx context.Context, id primitive.ObjectID, event *models.Event) (*models.Event, error) {
	args := m.Called(ctx, id, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}
