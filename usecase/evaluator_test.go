package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"backoffice/model"
)

// In-memory stand-ins for the stores so ticks run without Mongo or Redis.

type fakeReminderSource struct {
	reminders []*model.Reminder
	disabled  []string
}

func (f *fakeReminderSource) ListEnabled(ctx context.Context) ([]*model.Reminder, error) {
	var enabled []*model.Reminder
	for _, r := range f.reminders {
		if r.Enabled {
			enabled = append(enabled, r)
		}
	}
	return enabled, nil
}

func (f *fakeReminderSource) Disable(ctx context.Context, reminderID string) error {
	for _, r := range f.reminders {
		if r.ReminderID == reminderID {
			r.Enabled = false
			f.disabled = append(f.disabled, reminderID)
			return nil
		}
	}
	return errors.New("reminder not found")
}

type fakeCredentials struct {
	settings *model.TelegramSettings
}

func (f *fakeCredentials) GetTelegram(ctx context.Context) (*model.TelegramSettings, error) {
	return f.settings, nil
}

type fakeMarkerStore struct {
	markers map[string]*model.SentMarker
	puts    int
}

func newFakeMarkerStore() *fakeMarkerStore {
	return &fakeMarkerStore{markers: make(map[string]*model.SentMarker)}
}

func (f *fakeMarkerStore) Exists(ctx context.Context, markerID string) (bool, error) {
	_, ok := f.markers[markerID]
	return ok, nil
}

func (f *fakeMarkerStore) Put(ctx context.Context, marker *model.SentMarker) error {
	f.puts++
	if _, ok := f.markers[marker.MarkerID]; !ok {
		f.markers[marker.MarkerID] = marker
	}
	return nil
}

type fakeNotifier struct {
	sent []string
	fail bool
}

func (f *fakeNotifier) Send(ctx context.Context, settings *model.TelegramSettings, text string) bool {
	if f.fail {
		return false
	}
	f.sent = append(f.sent, text)
	return true
}

func testCredentials() *fakeCredentials {
	return &fakeCredentials{settings: &model.TelegramSettings{
		BotToken: "123456:test-token",
		ChatID:   "-100200300",
	}}
}

func newTestEvaluator(src *fakeReminderSource, markers *fakeMarkerStore, notifier *fakeNotifier) *ReminderEvaluator {
	return &ReminderEvaluator{
		Reminders:   src,
		Credentials: testCredentials(),
		Markers:     markers,
		Notifier:    notifier,
		Location:    time.UTC,
	}
}

// 2025-01-06 is a Monday.
func mondayAt(hour, minute int) time.Time {
	return time.Date(2025, time.January, 6, hour, minute, 0, 0, time.UTC)
}

func TestIsDue(t *testing.T) {
	recurring := &model.Reminder{
		ReminderID: "r1",
		Time:       "09:01",
		Type:       model.ReminderRecurring,
		Days:       []string{model.DayMonday},
	}
	oneTime := &model.Reminder{
		ReminderID: "r2",
		Time:       "09:01",
		Type:       model.ReminderOneTime,
		Date:       "06/01/2025",
	}

	tests := []struct {
		name     string
		reminder *model.Reminder
		at       time.Time
		want     bool
	}{
		{"recurring matching time and day", recurring, mondayAt(9, 1), true},
		{"one minute early", recurring, mondayAt(9, 0), false},
		{"one minute late", recurring, mondayAt(9, 2), false},
		{"wrong weekday", recurring, mondayAt(9, 1).AddDate(0, 0, 1), false},
		{"one-time matching date", oneTime, mondayAt(9, 1), true},
		{"one-time wrong date", oneTime, mondayAt(9, 1).AddDate(0, 0, 1), false},
		{"one-time wrong time", oneTime, mondayAt(9, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := model.ClockString(tt.at)
			dayName := model.WeekdayName(tt.at.Weekday())
			dateStr := model.DateString(tt.at)
			if got := isDue(tt.reminder, clock, dayName, dateStr); got != tt.want {
				t.Errorf("isDue at %s = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestTickDeliversOncePerDay(t *testing.T) {
	src := &fakeReminderSource{reminders: []*model.Reminder{{
		ReminderID: "morning-stock",
		Title:      "Order stock",
		Time:       "09:00",
		Type:       model.ReminderRecurring,
		Enabled:    true,
		Days:       []string{model.DayMonday},
	}}}
	markers := newFakeMarkerStore()
	notifier := &fakeNotifier{}
	evaluator := newTestEvaluator(src, markers, notifier)

	at := mondayAt(9, 0)

	report, err := evaluator.Tick(context.Background(), at)
	if err != nil {
		t.Fatal("first tick failed:", err)
	}
	if report.Scanned != 1 || report.Due != 1 || report.Sent != 1 {
		t.Errorf("first tick report = %+v, want scanned=1 due=1 sent=1", report)
	}

	// Same minute again: the marker must suppress the second delivery.
	report, err = evaluator.Tick(context.Background(), at)
	if err != nil {
		t.Fatal("second tick failed:", err)
	}
	if report.Sent != 0 {
		t.Errorf("second tick sent %d notifications, want 0", report.Sent)
	}
	if len(notifier.sent) != 1 {
		t.Errorf("notifier called %d times, want exactly 1", len(notifier.sent))
	}
	if len(markers.markers) != 1 {
		t.Errorf("marker count = %d, want 1", len(markers.markers))
	}

	wantKey := "morning-stock-06-01-2025"
	if _, ok := markers.markers[wantKey]; !ok {
		t.Errorf("marker %q not recorded, have %v", wantKey, markers.markers)
	}
}

func TestTickDisablesOneTimeReminder(t *testing.T) {
	src := &fakeReminderSource{reminders: []*model.Reminder{{
		ReminderID: "inventory-day",
		Title:      "Count the freezer",
		Time:       "09:00",
		Type:       model.ReminderOneTime,
		Enabled:    true,
		Date:       "06/01/2025",
	}}}
	markers := newFakeMarkerStore()
	notifier := &fakeNotifier{}
	evaluator := newTestEvaluator(src, markers, notifier)

	report, err := evaluator.Tick(context.Background(), mondayAt(9, 0))
	if err != nil {
		t.Fatal("tick failed:", err)
	}
	if report.Sent != 1 {
		t.Fatalf("sent = %d, want 1", report.Sent)
	}
	if src.reminders[0].Enabled {
		t.Error("one-time reminder still enabled after successful send")
	}

	// A repeat tick the same day scans nothing and sends nothing.
	report, err = evaluator.Tick(context.Background(), mondayAt(9, 0))
	if err != nil {
		t.Fatal("repeat tick failed:", err)
	}
	if report.Scanned != 0 || report.Sent != 0 {
		t.Errorf("repeat tick report = %+v, want scanned=0 sent=0", report)
	}
}

func TestTickMissingCredentialsIsNoOp(t *testing.T) {
	src := &fakeReminderSource{reminders: []*model.Reminder{{
		ReminderID: "r1",
		Title:      "Never sent",
		Time:       "09:00",
		Type:       model.ReminderRecurring,
		Enabled:    true,
		Days:       []string{model.DayMonday},
	}}}
	markers := newFakeMarkerStore()
	notifier := &fakeNotifier{}
	evaluator := newTestEvaluator(src, markers, notifier)
	evaluator.Credentials = &fakeCredentials{settings: nil}

	report, err := evaluator.Tick(context.Background(), mondayAt(9, 0))
	if err != nil {
		t.Fatal("tick failed:", err)
	}
	if !report.MissingCredentials {
		t.Error("report should flag missing credentials")
	}
	if report.Scanned != 0 || len(notifier.sent) != 0 {
		t.Errorf("no-op tick still did work: report=%+v sends=%d", report, len(notifier.sent))
	}
}

func TestTickFailedSendLeavesNoMarker(t *testing.T) {
	src := &fakeReminderSource{reminders: []*model.Reminder{{
		ReminderID: "flaky",
		Title:      "Check deliveries",
		Time:       "09:00",
		Type:       model.ReminderOneTime,
		Enabled:    true,
		Date:       "06/01/2025",
	}}}
	markers := newFakeMarkerStore()
	notifier := &fakeNotifier{fail: true}
	evaluator := newTestEvaluator(src, markers, notifier)

	report, err := evaluator.Tick(context.Background(), mondayAt(9, 0))
	if err != nil {
		t.Fatal("tick failed:", err)
	}
	if report.Due != 1 || report.Sent != 0 {
		t.Errorf("report = %+v, want due=1 sent=0", report)
	}
	if len(markers.markers) != 0 {
		t.Error("failed send must not record a marker")
	}
	if !src.reminders[0].Enabled {
		t.Error("failed send must not disable a one-time reminder")
	}

	// Once the notifier recovers, the same minute is still eligible.
	notifier.fail = false
	report, err = evaluator.Tick(context.Background(), mondayAt(9, 0))
	if err != nil {
		t.Fatal("recovery tick failed:", err)
	}
	if report.Sent != 1 {
		t.Errorf("recovery tick sent = %d, want 1", report.Sent)
	}
}

func TestTickSkipsRemindersAtOtherTimes(t *testing.T) {
	src := &fakeReminderSource{reminders: []*model.Reminder{
		{
			ReminderID: "early",
			Title:      "Open up",
			Time:       "07:30",
			Type:       model.ReminderRecurring,
			Enabled:    true,
			Days:       []string{model.DayMonday},
		},
		{
			ReminderID: "on-time",
			Title:      "Staff meeting",
			Time:       "09:00",
			Type:       model.ReminderRecurring,
			Enabled:    true,
			Days:       []string{model.DayMonday, model.DayWednesday},
		},
	}}
	markers := newFakeMarkerStore()
	notifier := &fakeNotifier{}
	evaluator := newTestEvaluator(src, markers, notifier)

	report, err := evaluator.Tick(context.Background(), mondayAt(9, 0))
	if err != nil {
		t.Fatal("tick failed:", err)
	}
	if report.Scanned != 2 || report.Due != 1 || report.Sent != 1 {
		t.Errorf("report = %+v, want scanned=2 due=1 sent=1", report)
	}
	if len(notifier.sent) != 1 || notifier.sent[0] != "Staff meeting" {
		t.Errorf("unexpected notifications: %v", notifier.sent)
	}
}
