package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/model"
	"backoffice/usecase"

	"github.com/gin-gonic/gin"
)

type memLocationStore struct {
	docs map[string]*model.LocationState
}

func (m *memLocationStore) Get(ctx context.Context, locationID string) (*model.LocationState, error) {
	state, ok := m.docs[locationID]
	if !ok {
		return nil, nil
	}
	copied := *state
	return &copied, nil
}

func (m *memLocationStore) Replace(ctx context.Context, state *model.LocationState) error {
	copied := *state
	m.docs[state.LocationID] = &copied
	return nil
}

type memBackupStore struct {
	snapshots []*model.BackupSnapshot
}

func (m *memBackupStore) Insert(ctx context.Context, snapshot *model.BackupSnapshot) error {
	m.snapshots = append(m.snapshots, snapshot)
	return nil
}

func setupLocationRouter() *gin.Engine {
	service := &usecase.LocationService{
		Locations: &memLocationStore{docs: make(map[string]*model.LocationState)},
		Backups:   &memBackupStore{},
		Guard:     usecase.GuardThresholds{PrevMin: 10, NewMax: 3},
	}
	h := NewLocationHandler(service)

	r := gin.New()
	r.GET("/api/locations/:locationId", h.GetLocation)
	r.PUT("/api/locations/:locationId", h.SaveLocation)
	return r
}

func TestLocationRoundTrip(t *testing.T) {
	router := setupLocationRouter()

	saveBody := `{
		"categories": [
			{"id": "c1", "name": "ירקות", "products": [
				{"id": "p1", "name": "עגבניות", "quantity": 4, "unit": "kg"}
			]}
		],
		"taskLists": [
			{"id": "l1", "name": "פתיחה", "color": "green", "tasks": [
				{"id": "t1", "text": "להדליק תנור", "done": false}
			]}
		],
		"version": 777
	}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/locations/downtown", bytes.NewBufferString(saveBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}

	var putResponse struct {
		Data model.LocationState `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &putResponse); err != nil {
		t.Fatalf("failed to parse PUT response: %v", err)
	}
	// Client sent version 777; the store assigns its own.
	if putResponse.Data.Version != 1 {
		t.Errorf("saved version = %d, want 1", putResponse.Data.Version)
	}

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/locations/downtown", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET status = %d, want 200", w.Code)
	}

	var getResponse struct {
		Data model.LocationState `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &getResponse); err != nil {
		t.Fatalf("failed to parse GET response: %v", err)
	}

	got := getResponse.Data
	if got.Version != 1 {
		t.Errorf("read version = %d, want 1", got.Version)
	}
	if len(got.Categories) != 1 || got.Categories[0].Name != "ירקות" {
		t.Errorf("categories did not round-trip: %+v", got.Categories)
	}
	if len(got.TaskLists) != 1 || got.TaskLists[0].Tasks[0].Text != "להדליק תנור" {
		t.Errorf("task lists did not round-trip: %+v", got.TaskLists)
	}
}

func TestSaveLocationRejectsEmptyBody(t *testing.T) {
	router := setupLocationRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/locations/downtown",
		bytes.NewBufferString(`{"categories": [], "taskLists": []}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response["error"] == nil {
		t.Error("rejection response carries no error message")
	}
}

func TestSaveLocationRejectsUnknownColor(t *testing.T) {
	router := setupLocationRouter()

	body := `{
		"categories": [],
		"taskLists": [{"id": "l1", "name": "x", "color": "chartreuse", "tasks": []}]
	}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/locations/downtown", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetLocationDefaultsToEmptyDocument(t *testing.T) {
	router := setupLocationRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/locations/nowhere", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (missing locations default, not 404)", w.Code)
	}

	var response struct {
		Data model.LocationState `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response.Data.Version != 0 {
		t.Errorf("fresh location version = %d, want 0", response.Data.Version)
	}
	if response.Data.Categories == nil || response.Data.TaskLists == nil {
		t.Error("fresh location must serialize empty arrays, not null")
	}
}
