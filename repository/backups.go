package repository

import (
	"context"

	"backoffice/model"
	"backoffice/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BackupsRepo struct {
	MongoCollection *mongo.Collection
}

func GetBackupsRepo(client *mongo.Client) *BackupsRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "backoffice")
	collectionName := utils.GetEnvAsString("BACKUPS_COLLECTION", "backups")
	return &BackupsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Insert appends a snapshot. Snapshots are never updated or overwritten.
func (r *BackupsRepo) Insert(ctx context.Context, snapshot *model.BackupSnapshot) error {
	timer := utils.TrackDBOperation("insert", "backups")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, snapshot)
	if err != nil {
		utils.TrackError("database", "backup_insert_failed")
		return err
	}
	return nil
}

// List returns snapshots newest first, optionally filtered by location.
func (r *BackupsRepo) List(ctx context.Context, locationID string, limit int) ([]*model.BackupSnapshot, error) {
	timer := utils.TrackDBOperation("find", "backups")
	defer timer.ObserveDuration()

	query := bson.M{}
	if locationID != "" {
		query["location_id"] = locationID
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}

	cursor, err := r.MongoCollection.Find(ctx, query, opts)
	if err != nil {
		utils.TrackError("database", "backup_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var snapshots []*model.BackupSnapshot
	if err = cursor.All(ctx, &snapshots); err != nil {
		utils.TrackError("database", "backup_decode_failed")
		return nil, err
	}
	return snapshots, nil
}
