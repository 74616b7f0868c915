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

// The shared roster/shift-hours document is stored under a fixed id in its
// own collection; per-week documents are keyed by the client's week id.
const scheduleConfigID = "config"

type SchedulesRepo struct {
	ConfigCollection *mongo.Collection
	WeeksCollection  *mongo.Collection
}

func GetSchedulesRepo(client *mongo.Client) *SchedulesRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "backoffice")
	db := client.Database(dbName)
	return &SchedulesRepo{
		ConfigCollection: db.Collection(utils.GetEnvAsString("SCHEDULE_CONFIG_COLLECTION", "schedule_config")),
		WeeksCollection:  db.Collection(utils.GetEnvAsString("WEEK_SCHEDULES_COLLECTION", "week_schedules")),
	}
}

// GetConfig returns the stored config, or the default shift-hours template
// when nothing has been saved yet.
func (r *SchedulesRepo) GetConfig(ctx context.Context) (*model.ScheduleConfig, error) {
	timer := utils.TrackDBOperation("find", "schedule_config")
	defer timer.ObserveDuration()

	var cfg model.ScheduleConfig
	err := r.ConfigCollection.FindOne(ctx, bson.M{"_id": scheduleConfigID}).Decode(&cfg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.DefaultScheduleConfig(), nil
	}
	if err != nil {
		utils.TrackError("database", "schedule_config_fetch_failed")
		return nil, err
	}
	return &cfg, nil
}

func (r *SchedulesRepo) PutConfig(ctx context.Context, cfg *model.ScheduleConfig) error {
	timer := utils.TrackDBOperation("replace", "schedule_config")
	defer timer.ObserveDuration()

	cfg.UpdatedAt = time.Now()
	doc := bson.M{
		"_id":         scheduleConfigID,
		"employees":   cfg.Employees,
		"shift_hours": cfg.ShiftHours,
		"updated_at":  cfg.UpdatedAt,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.ConfigCollection.ReplaceOne(ctx, bson.M{"_id": scheduleConfigID}, doc, opts)
	if err != nil {
		utils.TrackError("database", "schedule_config_replace_failed")
		return err
	}
	return nil
}

// GetWeek returns a week's schedule document, defaulting an untouched week
// to empty availability and final-schedule grids.
func (r *SchedulesRepo) GetWeek(ctx context.Context, weekID string) (*model.WeekSchedule, error) {
	timer := utils.TrackDBOperation("find", "week_schedules")
	defer timer.ObserveDuration()

	var week model.WeekSchedule
	err := r.WeeksCollection.FindOne(ctx, bson.M{"_id": weekID}).Decode(&week)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.EmptyWeekSchedule(weekID), nil
	}
	if err != nil {
		utils.TrackError("database", "week_schedule_fetch_failed")
		return nil, err
	}
	return &week, nil
}

func (r *SchedulesRepo) PutWeek(ctx context.Context, week *model.WeekSchedule) error {
	timer := utils.TrackDBOperation("replace", "week_schedules")
	defer timer.ObserveDuration()

	if week.WeekID == "" {
		utils.TrackError("database", "missing_week_id")
		return errors.New("week ID is required")
	}

	week.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := r.WeeksCollection.ReplaceOne(ctx, bson.M{"_id": week.WeekID}, week, opts)
	if err != nil {
		utils.TrackError("database", "week_schedule_replace_failed")
		return err
	}
	return nil
}
