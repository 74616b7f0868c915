package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"backoffice/model"
	"backoffice/repository"
	"backoffice/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	os.Setenv("GO_ENV", "test")
	gin.SetMode(gin.TestMode)
	utils.InitValidator()
}

type fakeReminderStore struct {
	reminders map[string]*model.Reminder
}

func newFakeReminderStore() *fakeReminderStore {
	return &fakeReminderStore{reminders: make(map[string]*model.Reminder)}
}

func (f *fakeReminderStore) List(ctx context.Context) ([]*model.Reminder, error) {
	var out []*model.Reminder
	for _, r := range f.reminders {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReminderStore) Get(ctx context.Context, reminderID string) (*model.Reminder, error) {
	r, ok := f.reminders[reminderID]
	if !ok {
		return nil, repository.ErrReminderNotFound
	}
	return r, nil
}

func (f *fakeReminderStore) Create(ctx context.Context, reminder *model.Reminder) error {
	f.reminders[reminder.ReminderID] = reminder
	return nil
}

func (f *fakeReminderStore) Update(ctx context.Context, reminder *model.Reminder) error {
	if _, ok := f.reminders[reminder.ReminderID]; !ok {
		return repository.ErrReminderNotFound
	}
	f.reminders[reminder.ReminderID] = reminder
	return nil
}

func (f *fakeReminderStore) Delete(ctx context.Context, reminderID string) error {
	if _, ok := f.reminders[reminderID]; !ok {
		return repository.ErrReminderNotFound
	}
	delete(f.reminders, reminderID)
	return nil
}

func setupReminderRouter(store *fakeReminderStore) *gin.Engine {
	r := gin.New()
	h := NewReminderHandler(store)
	r.GET("/api/reminders", h.ListReminders)
	r.POST("/api/reminders", h.CreateReminder)
	r.GET("/api/reminders/:id", h.GetReminder)
	r.PUT("/api/reminders/:id", h.UpdateReminder)
	r.DELETE("/api/reminders/:id", h.DeleteReminder)
	return r
}

func TestCreateReminder(t *testing.T) {
	tests := []struct {
		name          string
		inputJSON     string
		expectedCode  int
		expectedError string
	}{
		{
			name:         "valid recurring reminder",
			inputJSON:    `{"title":"Order stock","time":"08:00","type":"recurring","days":["ראשון","רביעי"]}`,
			expectedCode: http.StatusCreated,
		},
		{
			name:         "valid one-time reminder",
			inputJSON:    `{"title":"Health inspection","time":"10:30","type":"one-time","date":"15/03/2025"}`,
			expectedCode: http.StatusCreated,
		},
		{
			name:          "missing title",
			inputJSON:     `{"time":"08:00"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "missing time",
			inputJSON:     `{"title":"Order stock"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "malformed time",
			inputJSON:     `{"title":"Order stock","time":"8am"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "unknown weekday name",
			inputJSON:     `{"title":"Order stock","time":"08:00","days":["Monday"]}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "one-time without date",
			inputJSON:     `{"title":"Health inspection","time":"10:30","type":"one-time"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Date is required",
		},
		{
			name:          "unknown type",
			inputJSON:     `{"title":"Order stock","time":"08:00","type":"hourly"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid reminder type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupReminderRouter(newFakeReminderStore())

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/api/reminders", bytes.NewBufferString(tt.inputJSON))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedCode {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tt.expectedCode, w.Body.String())
			}

			var response map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to parse response: %v", err)
			}

			if tt.expectedError != "" {
				errMsg, _ := response["error"].(string)
				if errMsg == "" || !bytes.Contains([]byte(errMsg), []byte(tt.expectedError)) {
					t.Errorf("error = %q, want it to contain %q", errMsg, tt.expectedError)
				}
				return
			}

			data, ok := response["data"].(map[string]interface{})
			if !ok {
				t.Fatalf("response has no data object: %s", w.Body.String())
			}
			if data["id"] == "" || data["id"] == nil {
				t.Error("created reminder has no generated id")
			}
			if enabled, _ := data["enabled"].(bool); !enabled {
				t.Error("created reminder must start enabled")
			}
		})
	}
}

func TestGetReminderNotFound(t *testing.T) {
	router := setupReminderRouter(newFakeReminderStore())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/reminders/no-such-id", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestUpdateReminderTogglesEnabled(t *testing.T) {
	store := newFakeReminderStore()
	store.reminders["r1"] = &model.Reminder{
		ReminderID: "r1",
		Title:      "Order stock",
		Time:       "08:00",
		Type:       model.ReminderRecurring,
		Enabled:    true,
		Days:       []string{model.DaySunday},
	}
	router := setupReminderRouter(store)

	body := `{"title":"Order stock","time":"08:30","enabled":false,"days":["ראשון"]}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/reminders/r1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}
	updated := store.reminders["r1"]
	if updated.Enabled {
		t.Error("reminder should be disabled after update")
	}
	if updated.Time != "08:30" {
		t.Errorf("time = %q, want 08:30", updated.Time)
	}
}

func TestDeleteReminder(t *testing.T) {
	store := newFakeReminderStore()
	store.reminders["r1"] = &model.Reminder{ReminderID: "r1", Title: "x", Time: "08:00"}
	router := setupReminderRouter(store)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/reminders/r1", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if _, ok := store.reminders["r1"]; ok {
		t.Error("reminder still present after delete")
	}

	// Deleting again must 404.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("DELETE", "/api/reminders/r1", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}
