package model

import "time"

// ScheduleConfig holds the employee roster and the named shift hours shared
// by every week. Stored as a single document under a fixed id.
type ScheduleConfig struct {
	Employees  []string          `bson:"employees" json:"employees"`
	ShiftHours map[string]string `bson:"shift_hours" json:"shiftHours"`
	UpdatedAt  time.Time         `bson:"updated_at" json:"updated_at"`
}

// DefaultScheduleConfig is returned when no config has been saved yet.
func DefaultScheduleConfig() *ScheduleConfig {
	return &ScheduleConfig{
		Employees: []string{},
		ShiftHours: map[string]string{
			"morning": "07:00-15:00",
			"evening": "15:00-23:00",
		},
	}
}

// WeekSchedule is one week's document: who is available per day/shift and
// what the manager finalized. Both maps are free-shape grids keyed by the
// client (day -> shift -> names) and are stored as-is.
type WeekSchedule struct {
	WeekID        string                       `bson:"_id" json:"weekId"`
	Availability  map[string]map[string]string `bson:"availability" json:"availability"`
	FinalSchedule map[string]map[string]string `bson:"final_schedule" json:"finalSchedule"`
	UpdatedAt     time.Time                    `bson:"updated_at" json:"updated_at"`
}

// EmptyWeekSchedule is what a GET returns for a week nobody has touched.
func EmptyWeekSchedule(weekID string) *WeekSchedule {
	return &WeekSchedule{
		WeekID:        weekID,
		Availability:  map[string]map[string]string{},
		FinalSchedule: map[string]map[string]string{},
	}
}
