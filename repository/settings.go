package repository

import (
	"context"
	"errors"
	"time"

	"backoffice/model"
	"backoffice/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const telegramSettingsID = "telegram"

type SettingsRepo struct {
	MongoCollection *mongo.Collection
}

func GetSettingsRepo(client *mongo.Client) *SettingsRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "backoffice")
	collectionName := utils.GetEnvAsString("SETTINGS_COLLECTION", "settings")
	return &SettingsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// GetTelegram returns the stored credentials, or nil when none are saved.
// A nil result is how the evaluator knows to no-op its tick.
func (r *SettingsRepo) GetTelegram(ctx context.Context) (*model.TelegramSettings, error) {
	timer := utils.TrackDBOperation("find", "settings")
	defer timer.ObserveDuration()

	var settings model.TelegramSettings
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": telegramSettingsID}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		utils.TrackError("database", "settings_fetch_failed")
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepo) PutTelegram(ctx context.Context, settings *model.TelegramSettings) error {
	timer := utils.TrackDBOperation("replace", "settings")
	defer timer.ObserveDuration()

	settings.UpdatedAt = time.Now()
	doc := bson.M{
		"_id":        telegramSettingsID,
		"bot_token":  settings.BotToken,
		"chat_id":    settings.ChatID,
		"updated_at": settings.UpdatedAt,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.MongoCollection.ReplaceOne(ctx, bson.M{"_id": telegramSettingsID}, doc, opts)
	if err != nil {
		utils.TrackError("database", "settings_replace_failed")
		return err
	}
	return nil
}
