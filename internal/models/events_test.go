package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEvent_JSONRendersBothReferenceVariants(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	start := time.Date(2025, 11, 20, 15, 0, 0, 0, time.UTC)
	e := Event{
		ID: primitive.NewObjectID(),
		Profiles: []ProfileRef{
			UnresolvedProfile{ID: a},
			ResolvedProfile{ProfileSummary{ID: b, Name: "Bob", Timezone: "Asia/Kolkata"}},
		},
		EventTimezone: "America/New_York",
		StartDateTime: start,
		EndDateTime:   start.Add(time.Hour),
	}

	raw, err := json.Marshal(e)
	require.NoError(t, err)

	var body struct {
		Profiles      []json.RawMessage `json:"profiles"`
		StartDateTime string            `json:"startDateTime"`
		EndDateTime   string            `json:"endDateTime"`
		Display       *json.RawMessage  `json:"display"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body.Profiles, 2)
	assert.JSONEq(t, `"`+a.Hex()+`"`, string(body.Profiles[0]))
	assert.JSONEq(t, `{"id":"`+b.Hex()+`","name":"Bob","timezone":"Asia/Kolkata"}`, string(body.Profiles[1]))
	assert.Equal(t, "2025-11-20T15:00:00Z", body.StartDateTime)
	assert.Equal(t, "2025-11-20T16:00:00Z", body.EndDateTime)
	assert.Nil(t, body.Display)
	assert.NotContains(t, string(raw), "ProfileIDs")
}
