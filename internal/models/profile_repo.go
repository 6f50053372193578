package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var profileSummaryProjection = bson.M{"name": 1, "timezone": 1}

func (mdb *MongodbRepo) CreateProfile(ctx context.Context, profile *Profile) (*Profile, error) {
	if err := profile.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare profile for creation: %w", err)
	}
	col, err := mdb.GetCollection(ctx, ProfileColName)
	if err != nil {
		return nil, err
	}

	if _, err := col.InsertOne(ctx, profile); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: a profile named %q already exists", ErrDuplicateName, profile.Name)
		}
		return nil, fmt.Errorf("%w: inserting profile: %w", ErrStoreFailure, err)
	}
	return profile, nil
}

func (mdb *MongodbRepo) ListProfiles(ctx context.Context) ([]ProfileSummary, error) {
	opts := options.Find().
		SetProjection(profileSummaryProjection).
		SetSort(bson.D{{Key: "_id", Value: 1}})
	return mdb.findProfiles(ctx, bson.M{}, opts)
}

func (mdb *MongodbRepo) GetProfilesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]ProfileSummary, error) {
	if len(ids) == 0 {
		return []ProfileSummary{}, nil
	}
	opts := options.Find().SetProjection(profileSummaryProjection)
	return mdb.findProfiles(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
}

func (mdb *MongodbRepo) findProfiles(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]ProfileSummary, error) {
	col, err := mdb.GetCollection(ctx, ProfileColName)
	if err != nil {
		return nil, err
	}

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: finding profiles: %w", ErrStoreFailure, err)
	}
	defer cursor.Close(ctx)

	profiles := []ProfileSummary{}
	for cursor.Next(ctx) {
		var p ProfileSummary
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("%w: decoding profile: %w", ErrStoreFailure, err)
		}
		profiles = append(profiles, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: cursor error: %w", ErrStoreFailure, err)
	}
	return profiles, nil
}
