package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"backoffice/model"
	"backoffice/utils"
)

var (
	// ErrEmptyState rejects saves that would wipe every category and task
	// list at once. A failed client load must never erase stored data.
	ErrEmptyState = errors.New("refusing to save empty state")

	// ErrSuspiciousShrink rejects saves that look like a partial-load race
	// overwriting good data with a near-empty snapshot.
	ErrSuspiciousShrink = errors.New("refusing suspicious data shrink")
)

// LocationStore is the slice of the locations repository the guard needs.
type LocationStore interface {
	Get(ctx context.Context, locationID string) (*model.LocationState, error)
	Replace(ctx context.Context, state *model.LocationState) error
}

// BackupStore receives pre-save snapshots.
type BackupStore interface {
	Insert(ctx context.Context, snapshot *model.BackupSnapshot) error
}

// GuardThresholds are the heuristic bounds of the shrink guard: a save is
// suspect when the stored count exceeds PrevMin while the proposed count
// falls below NewMax. Overridable through env, defaults 10 and 3.
type GuardThresholds struct {
	PrevMin int
	NewMax  int
}

func DefaultGuardThresholds() GuardThresholds {
	return GuardThresholds{
		PrevMin: utils.GetEnvAsInt("GUARD_PREV_MIN", 10),
		NewMax:  utils.GetEnvAsInt("GUARD_NEW_MAX", 3),
	}
}

func (g GuardThresholds) suspicious(prevCount, newCount int) bool {
	return prevCount > g.PrevMin && newCount < g.NewMax
}

type LocationService struct {
	Locations LocationStore
	Backups   BackupStore
	Guard     GuardThresholds
}

// Get returns the stored document for a location, defaulting a never-saved
// location to an empty well-formed document at version 0.
func (s *LocationService) Get(ctx context.Context, locationID string) (*model.LocationState, error) {
	state, err := s.Locations.Get(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return model.EmptyLocationState(locationID), nil
	}
	return state, nil
}

// Save runs the data-loss guard and persists the full replacement document.
// The client-supplied version is ignored: the stored version is incremented
// by exactly one on every accepted save, and the last write wins when two
// devices race. The read-check-write sequence is not atomic; that weak
// consistency is accepted for this low-contention deployment.
func (s *LocationService) Save(ctx context.Context, locationID string, proposed *model.LocationState) (*model.LocationState, error) {
	if len(proposed.Categories) == 0 && len(proposed.TaskLists) == 0 {
		utils.TrackGuardRejection("empty_state")
		return nil, ErrEmptyState
	}

	current, err := s.Locations.Get(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		current = model.EmptyLocationState(locationID)
	}

	if s.Guard.suspicious(current.ProductCount(), proposed.ProductCount()) ||
		s.Guard.suspicious(current.TaskCount(), proposed.TaskCount()) {
		utils.TrackGuardRejection("suspicious_shrink")
		return nil, ErrSuspiciousShrink
	}

	// Snapshot the outgoing document first. Best effort: losing a backup
	// must not block the save itself.
	if current.Version > 0 {
		snapshot := &model.BackupSnapshot{
			BackupID:   utils.GenerateID(),
			LocationID: locationID,
			State:      *current,
			Reason:     model.BackupReasonPreSave,
			CreatedAt:  time.Now(),
		}
		if err := s.Backups.Insert(ctx, snapshot); err != nil {
			log.Printf("Backup before save failed for location %s: %v", locationID, err)
			utils.TrackError("backup", "pre_save_failed")
		}
	}

	next := &model.LocationState{
		LocationID: locationID,
		Categories: proposed.Categories,
		TaskLists:  proposed.TaskLists,
		Version:    current.Version + 1,
		UpdatedAt:  time.Now(),
	}

	if err := s.Locations.Replace(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}
