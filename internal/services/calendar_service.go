package services

import (
	"context"
	"strings"

	"github.com/joshua-takyi/tzsched/internal/ics"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CalendarFeed renders the profile's events as iCalendar text. Without an
// explicit viewer zone the profile's own zone is used, or UTC when the
// profile is unknown.
func (es *EventService) CalendarFeed(ctx context.Context, profileID string, viewerTimezone string) (string, error) {
	calName := "Events"
	zone := viewerTimezone

	if pid, err := primitive.ObjectIDFromHex(strings.TrimSpace(profileID)); err == nil {
		found, err := es.profileRepo.GetProfilesByIDs(ctx, []primitive.ObjectID{pid})
		if err != nil {
			return "", err
		}
		if len(found) == 1 {
			calName = found[0].Name
			if zone == "" {
				zone = found[0].Timezone
			}
		}
	}
	if zone == "" {
		zone = "UTC"
	}

	events, err := es.ListEventsForProfile(ctx, profileID, "")
	if err != nil {
		return "", err
	}
	return ics.Render(calName, events, zone)
}
