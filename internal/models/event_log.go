package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const EventLogColName = "event_logs"

// EventLog is an audit record of an event change. Nothing writes it yet; a
// writer would append one entry per event mutation, keyed by EventID.
type EventLog struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID           primitive.ObjectID `bson:"eventId" json:"eventId"`
	ChangerProfile    primitive.ObjectID `bson:"changerProfile" json:"changerProfile"`
	ChangeDescription string             `bson:"changeDescription" json:"changeDescription"`
	LoggedAt          time.Time          `bson:"loggedAt" json:"loggedAt"`
}
