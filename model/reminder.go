package model

import (
	"fmt"
	"time"
)

type ReminderType string

const (
	ReminderRecurring ReminderType = "recurring"
	ReminderOneTime   ReminderType = "one-time"
)

// Weekday names as the clients send them (the UI is Hebrew).
const (
	DaySunday    = "ראשון"
	DayMonday    = "שני"
	DayTuesday   = "שלישי"
	DayWednesday = "רביעי"
	DayThursday  = "חמישי"
	DayFriday    = "שישי"
	DaySaturday  = "שבת"
)

var weekdayNames = map[time.Weekday]string{
	time.Sunday:    DaySunday,
	time.Monday:    DayMonday,
	time.Tuesday:   DayTuesday,
	time.Wednesday: DayWednesday,
	time.Thursday:  DayThursday,
	time.Friday:    DayFriday,
	time.Saturday:  DaySaturday,
}

// WeekdayName maps a Go weekday to the wire name used in Reminder.Days.
func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}

func ValidWeekdayName(name string) bool {
	for _, n := range weekdayNames {
		if n == name {
			return true
		}
	}
	return false
}

type Reminder struct {
	ReminderID string       `bson:"_id" json:"id"`
	Title      string       `bson:"title" json:"title"`
	Time       string       `bson:"time" json:"time"` // "HH:MM", matched exactly
	Type       ReminderType `bson:"type" json:"type"`
	Enabled    bool         `bson:"enabled" json:"enabled"`
	Days       []string     `bson:"days,omitempty" json:"days"`           // recurring only
	Date       string       `bson:"date,omitempty" json:"date,omitempty"` // one-time only, "DD/MM/YYYY"
	CreatedAt  time.Time    `bson:"created_at" json:"created_at"`
}

// FiresOn reports whether the reminder's day/date fields match the given
// weekday name and date string. Time-of-day matching is the caller's concern.
func (r *Reminder) FiresOn(dayName, dateStr string) bool {
	switch r.Type {
	case ReminderRecurring:
		for _, d := range r.Days {
			if d == dayName {
				return true
			}
		}
		return false
	case ReminderOneTime:
		return r.Date == dateStr
	}
	return false
}

// SentMarker is the once-per-day delivery ledger entry. It lives in Redis
// under the marker id and expires on its own after the TTL.
type SentMarker struct {
	MarkerID   string `json:"id"`
	ReminderID string `json:"reminder_id"`
	SentAt     int64  `json:"sent_at"`    // epoch seconds
	ExpiresAt  int64  `json:"expires_at"` // epoch seconds
}

// SentMarkerID builds the dedup key: reminder id plus the calendar date
// with dashes, e.g. "abc123-09-02-2026".
func SentMarkerID(reminderID string, t time.Time) string {
	return fmt.Sprintf("%s-%s", reminderID, t.Format("02-01-2006"))
}

// DateString formats a date the way one-time reminders store it.
func DateString(t time.Time) string {
	return t.Format("02/01/2006")
}

// ClockString formats the wall clock the way reminder times are stored.
func ClockString(t time.Time) string {
	return t.Format("15:04")
}
