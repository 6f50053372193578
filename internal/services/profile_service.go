package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joshua-takyi/tzsched/internal/models"
)

type ProfileService struct {
	profileRepo     models.ProfileRepo
	defaultTimezone string
	now             func() time.Time
}

func NewProfileService(profileRepo models.ProfileRepo, defaultTimezone string) *ProfileService {
	if defaultTimezone == "" {
		defaultTimezone = models.DefaultTimezone
	}
	return &ProfileService{
		profileRepo:     profileRepo,
		defaultTimezone: defaultTimezone,
		now:             time.Now,
	}
}

// CreateProfile registers a profile under the default timezone. Names are
// trimmed; uniqueness is left to the store.
func (ps *ProfileService) CreateProfile(ctx context.Context, req *models.ProfileRequest) (*models.Profile, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := models.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: profile name is required", models.ErrValidation)
	}

	now := ps.now().UTC().Truncate(time.Millisecond)
	profile := &models.Profile{
		Name:      req.Name,
		Timezone:  ps.defaultTimezone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return ps.profileRepo.CreateProfile(ctx, profile)
}

func (ps *ProfileService) ListProfiles(ctx context.Context) ([]models.ProfileSummary, error) {
	return ps.profileRepo.ListProfiles(ctx)
}
