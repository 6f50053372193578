package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (mdb *MongodbRepo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	if err := event.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare event for creation: %w", err)
	}
	col, err := mdb.GetCollection(ctx, EventColName)
	if err != nil {
		return nil, err
	}

	if _, err := col.InsertOne(ctx, event); err != nil {
		return nil, fmt.Errorf("%w: inserting event: %w", ErrStoreFailure, err)
	}
	event.AfterLoad()
	return event, nil
}

func (mdb *MongodbRepo) ListEventsByProfile(ctx context.Context, profileID primitive.ObjectID) ([]*Event, error) {
	col, err := mdb.GetCollection(ctx, EventColName)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "startDateTime", Value: 1}})
	cursor, err := col.Find(ctx, bson.M{"profiles": profileID}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: finding events: %w", ErrStoreFailure, err)
	}
	defer cursor.Close(ctx)

	events := []*Event{}
	for cursor.Next(ctx) {
		var e Event
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("%w: decoding event: %w", ErrStoreFailure, err)
		}
		e.AfterLoad()
		events = append(events, &e)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: cursor error: %w", ErrStoreFailure, err)
	}
	return events, nil
}

// UpdateEvent replaces every editable field of the event and returns the
// stored result.
func (mdb *MongodbRepo) UpdateEvent(ctx context.Context, id primitive.ObjectID, event *Event) (*Event, error) {
	col, err := mdb.GetCollection(ctx, EventColName)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"profiles":      event.ProfileIDs,
			"eventTimezone": event.EventTimezone,
			"startDateTime": event.StartDateTime,
			"endDateTime":   event.EndDateTime,
			"updatedAt":     event.UpdatedAt,
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var result Event
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: event %s", ErrNotFound, id.Hex())
		}
		return nil, fmt.Errorf("%w: updating event: %w", ErrStoreFailure, err)
	}
	result.AfterLoad()
	return &result, nil
}
