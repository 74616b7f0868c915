package usecase

import (
	"context"
	"log"
	"time"

	"backoffice/model"
	"backoffice/utils"
)

// ReminderSource is the slice of the reminders repository the evaluator
// needs: the enabled set, plus the single disable mutation for fired
// one-time reminders.
type ReminderSource interface {
	ListEnabled(ctx context.Context) ([]*model.Reminder, error)
	Disable(ctx context.Context, reminderID string) error
}

// CredentialsSource loads notification credentials; nil means unconfigured.
type CredentialsSource interface {
	GetTelegram(ctx context.Context) (*model.TelegramSettings, error)
}

// MarkerStore is the once-per-day dedup ledger.
type MarkerStore interface {
	Exists(ctx context.Context, markerID string) (bool, error)
	Put(ctx context.Context, marker *model.SentMarker) error
}

// Notifier delivers one reminder text; false means not delivered.
type Notifier interface {
	Send(ctx context.Context, settings *model.TelegramSettings, text string) bool
}

// TickReport summarizes one evaluator run.
type TickReport struct {
	Scanned            int  `json:"scanned"`
	Due                int  `json:"due"`
	Sent               int  `json:"sent"`
	MissingCredentials bool `json:"missing_credentials,omitempty"`
}

// ReminderEvaluator decides, once per tick, which reminders fire. It keeps
// no state between ticks; everything is re-derived from the stores, so
// overlapping or repeated ticks converge on the marker ledger.
type ReminderEvaluator struct {
	Reminders   ReminderSource
	Credentials CredentialsSource
	Markers     MarkerStore
	Notifier    Notifier
	Location    *time.Location
}

// Tick evaluates all enabled reminders against the given instant. A missing
// credentials document makes the whole tick a reported no-op. Failures on
// individual reminders are logged and skipped; the remaining reminders are
// still processed.
func (e *ReminderEvaluator) Tick(ctx context.Context, now time.Time) (*TickReport, error) {
	report := &TickReport{}
	local := now.In(e.Location)

	settings, err := e.Credentials.GetTelegram(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.Configured() {
		report.MissingCredentials = true
		return report, nil
	}

	reminders, err := e.Reminders.ListEnabled(ctx)
	if err != nil {
		return nil, err
	}
	report.Scanned = len(reminders)
	utils.RemindersScanned.Add(float64(len(reminders)))

	clock := model.ClockString(local)
	dayName := model.WeekdayName(local.Weekday())
	dateStr := model.DateString(local)

	for _, reminder := range reminders {
		if !isDue(reminder, clock, dayName, dateStr) {
			continue
		}
		report.Due++
		utils.RemindersDue.Inc()

		markerID := model.SentMarkerID(reminder.ReminderID, local)
		sent, err := e.Markers.Exists(ctx, markerID)
		if err != nil {
			log.Printf("Marker lookup failed for reminder %s: %v", reminder.ReminderID, err)
			utils.TrackError("evaluator", "marker_lookup_failed")
			continue
		}
		if sent {
			continue // already delivered today
		}

		if !e.Notifier.Send(ctx, settings, reminder.Title) {
			// No retry within the tick; the next tick's exact-time filter
			// will not match, so the day's delivery is lost. Known gap.
			log.Printf("Notification failed for reminder %s (%s)", reminder.ReminderID, reminder.Title)
			continue
		}
		report.Sent++
		utils.RemindersSent.Inc()

		marker := &model.SentMarker{
			MarkerID:   markerID,
			ReminderID: reminder.ReminderID,
		}
		if err := e.Markers.Put(ctx, marker); err != nil {
			log.Printf("Failed to record sent marker %s: %v", markerID, err)
			utils.TrackError("evaluator", "marker_write_failed")
		}

		if reminder.Type == model.ReminderOneTime {
			if err := e.Reminders.Disable(ctx, reminder.ReminderID); err != nil {
				log.Printf("Failed to disable one-time reminder %s: %v", reminder.ReminderID, err)
				utils.TrackError("evaluator", "one_time_disable_failed")
			}
		}
	}

	return report, nil
}

// isDue is the whole due decision: exact string match on the clock, then
// weekday membership for recurring reminders or exact date match for
// one-time ones. A tick that fires late misses its reminders for the day;
// there is deliberately no tolerance window.
func isDue(r *model.Reminder, clock, dayName, dateStr string) bool {
	if r.Time != clock {
		return false
	}
	return r.FiresOn(dayName, dateStr)
}

// Run drives Tick on a fixed interval until the context is cancelled.
// Intended to be started once from main as a background worker.
func (e *ReminderEvaluator) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			report, err := e.Tick(ctx, time.Now())
			if err != nil {
				log.Printf("Reminder tick failed: %v", err)
				utils.TrackError("evaluator", "tick_failed")
				continue
			}
			if report.MissingCredentials {
				log.Println("Reminder tick skipped: telegram credentials not configured")
				continue
			}
			if report.Due > 0 {
				log.Printf("Reminder tick: scanned=%d due=%d sent=%d",
					report.Scanned, report.Due, report.Sent)
			}
		}
	}
}
