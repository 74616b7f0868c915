package repository

import (
	"context"
	"errors"

	"backoffice/model"
	"backoffice/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrReminderNotFound = errors.New("reminder not found")

type RemindersRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for reminder definitions
func GetRemindersRepo(client *mongo.Client) *RemindersRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "backoffice")
	collectionName := utils.GetEnvAsString("REMINDERS_COLLECTION", "reminders")
	return &RemindersRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *RemindersRepo) List(ctx context.Context) ([]*model.Reminder, error) {
	timer := utils.TrackDBOperation("find", "reminders")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.TrackError("database", "reminder_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var reminders []*model.Reminder
	if err = cursor.All(ctx, &reminders); err != nil {
		utils.TrackError("database", "reminder_decode_failed")
		return nil, err
	}
	return reminders, nil
}

// ListEnabled returns only the reminders the evaluator should consider.
func (r *RemindersRepo) ListEnabled(ctx context.Context) ([]*model.Reminder, error) {
	timer := utils.TrackDBOperation("find", "reminders")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"enabled": true})
	if err != nil {
		utils.TrackError("database", "reminder_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var reminders []*model.Reminder
	if err = cursor.All(ctx, &reminders); err != nil {
		utils.TrackError("database", "reminder_decode_failed")
		return nil, err
	}
	return reminders, nil
}

func (r *RemindersRepo) Get(ctx context.Context, reminderID string) (*model.Reminder, error) {
	timer := utils.TrackDBOperation("find", "reminders")
	defer timer.ObserveDuration()

	var reminder model.Reminder
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": reminderID}).Decode(&reminder)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrReminderNotFound
	}
	if err != nil {
		utils.TrackError("database", "reminder_fetch_failed")
		return nil, err
	}
	return &reminder, nil
}

func (r *RemindersRepo) Create(ctx context.Context, reminder *model.Reminder) error {
	timer := utils.TrackDBOperation("insert", "reminders")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, reminder)
	if err != nil {
		utils.TrackError("database", "reminder_creation_failed")
		return err
	}
	return nil
}

func (r *RemindersRepo) Update(ctx context.Context, reminder *model.Reminder) error {
	timer := utils.TrackDBOperation("update", "reminders")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.ReplaceOne(ctx, bson.M{"_id": reminder.ReminderID}, reminder)
	if err != nil {
		utils.TrackError("database", "reminder_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "reminder_not_found")
		return ErrReminderNotFound
	}
	return nil
}

func (r *RemindersRepo) Delete(ctx context.Context, reminderID string) error {
	timer := utils.TrackDBOperation("delete", "reminders")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": reminderID})
	if err != nil {
		utils.TrackError("database", "reminder_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "reminder_not_found")
		return ErrReminderNotFound
	}
	return nil
}

// Disable flips enabled off; the evaluator calls this after a one-time
// reminder has been delivered.
func (r *RemindersRepo) Disable(ctx context.Context, reminderID string) error {
	timer := utils.TrackDBOperation("update", "reminders")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": reminderID},
		bson.M{"$set": bson.M{"enabled": false}})
	if err != nil {
		utils.TrackError("database", "reminder_disable_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "reminder_not_found")
		return ErrReminderNotFound
	}
	return nil
}

func (r *RemindersRepo) Count(ctx context.Context) (int, error) {
	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
