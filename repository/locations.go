package repository

import (
	"context"
	"errors"

	"backoffice/model"
	"backoffice/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LocationsRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for location documents
func GetLocationsRepo(client *mongo.Client) *LocationsRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "backoffice")
	collectionName := utils.GetEnvAsString("LOCATIONS_COLLECTION", "locations")
	return &LocationsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Get returns the stored document for a location, or nil when it has never
// been saved. Callers decide how to default a missing document.
func (r *LocationsRepo) Get(ctx context.Context, locationID string) (*model.LocationState, error) {
	timer := utils.TrackDBOperation("find", "locations")
	defer timer.ObserveDuration()

	var state model.LocationState
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": locationID}).Decode(&state)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		utils.TrackError("database", "location_fetch_failed")
		return nil, err
	}
	return &state, nil
}

// Replace overwrites (or creates) the whole location document. Last write
// wins at this layer; there is no compare-and-swap on version.
func (r *LocationsRepo) Replace(ctx context.Context, state *model.LocationState) error {
	timer := utils.TrackDBOperation("replace", "locations")
	defer timer.ObserveDuration()

	if state.LocationID == "" {
		utils.TrackError("database", "missing_location_id")
		return errors.New("location ID is required")
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.MongoCollection.ReplaceOne(ctx, bson.M{"_id": state.LocationID}, state, opts)
	if err != nil {
		utils.TrackError("database", "location_replace_failed")
		return err
	}
	return nil
}

// Count returns the number of stored location documents.
func (r *LocationsRepo) Count(ctx context.Context) (int, error) {
	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
