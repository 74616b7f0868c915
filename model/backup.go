package model

import "time"

// Backup reasons recorded on snapshots.
const (
	BackupReasonPreSave = "pre_save"
	BackupReasonManual  = "manual"
)

// BackupSnapshot is an append-only copy of a location document, taken right
// before an overwriting save or on operator request. Never mutated.
type BackupSnapshot struct {
	BackupID   string        `bson:"_id" json:"id"`
	LocationID string        `bson:"location_id" json:"location_id"`
	State      LocationState `bson:"state" json:"state"`
	Reason     string        `bson:"reason" json:"reason"`
	CreatedAt  time.Time     `bson:"created_at" json:"created_at"`
}
