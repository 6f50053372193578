package ics

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/joshua-takyi/tzsched/internal/models"
	"github.com/joshua-takyi/tzsched/internal/timeconv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRender_RoundTripsThroughParser(t *testing.T) {
	alice := primitive.NewObjectID()
	start := time.Date(2025, 11, 20, 15, 0, 0, 0, time.UTC)
	ev := &models.Event{
		ID: primitive.NewObjectID(),
		Profiles: []models.ProfileRef{
			models.ResolvedProfile{ProfileSummary: models.ProfileSummary{ID: alice, Name: "Alice", Timezone: "America/New_York"}},
		},
		EventTimezone: "America/New_York",
		StartDateTime: start,
		EndDateTime:   start.Add(time.Hour),
		CreatedAt:     start.Add(-48 * time.Hour),
		UpdatedAt:     start.Add(-24 * time.Hour),
	}

	out, err := Render("Alice", []*models.Event{ev}, "Asia/Kolkata")
	require.NoError(t, err)
	assert.Contains(t, out, "X-WR-TIMEZONE:Asia/Kolkata")
	assert.Contains(t, out, "METHOD:PUBLISH")

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 1)

	gotStart, err := events[0].GetStartAt()
	require.NoError(t, err)
	gotEnd, err := events[0].GetEndAt()
	require.NoError(t, err)
	assert.True(t, gotStart.Equal(start))
	assert.True(t, gotEnd.Equal(start.Add(time.Hour)))

	assert.Equal(t, ev.ID.Hex()+uidSuffix, events[0].GetProperty(ical.ComponentPropertyUniqueId).Value)
	assert.Equal(t, "Event: Alice", events[0].GetProperty(ical.ComponentPropertySummary).Value)
	assert.Contains(t, events[0].GetProperty(ical.ComponentPropertyDescription).Value, "08:30 PM IST")
}

func TestRender_UnresolvedReferenceFallsBackToID(t *testing.T) {
	missing := primitive.NewObjectID()
	ev := &models.Event{
		ID:            primitive.NewObjectID(),
		Profiles:      []models.ProfileRef{models.UnresolvedProfile{ID: missing}},
		EventTimezone: "UTC",
		StartDateTime: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "Event: "+missing.Hex(), summary(ev))
}

func TestRender_InvalidViewerZone(t *testing.T) {
	_, err := Render("x", nil, "Not/AZone")
	assert.ErrorIs(t, err, timeconv.ErrInvalidTimezone)
}
