package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/models"
	"github.com/goaltrack/goaltrack/internal/notion"
	"github.com/goaltrack/goaltrack/internal/storage"
	"github.com/goaltrack/goaltrack/internal/utils"
)

// mockStore is an in-memory Provider covering the methods the handlers reach.
type mockStore struct {
	storage.Provider

	tasks         []models.Task
	notifications []models.NotificationRecord
}

func (m *mockStore) GetTasksForUser(userID string) ([]models.Task, error) {
	var out []models.Task
	for _, t := range m.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockStore) GetTask(userID, id string) (models.Task, error) {
	for _, t := range m.tasks {
		if t.UserID == userID && t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, fmt.Errorf("task with id %s not found", id)
}

func (m *mockStore) AddTask(task models.Task) error {
	m.tasks = append(m.tasks, task)
	return nil
}

func (m *mockStore) UpdateTask(task models.Task) error {
	for i, t := range m.tasks {
		if t.ID == task.ID && t.UserID == task.UserID {
			m.tasks[i] = task
			return nil
		}
	}
	return fmt.Errorf("task with id %s not found", task.ID)
}

func (m *mockStore) DeleteTask(userID, id string) error {
	for i, t := range m.tasks {
		if t.UserID == userID && t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("task with id %s not found", id)
}

func (m *mockStore) GetRecentNotifications(userID string, limit int) ([]models.NotificationRecord, error) {
	return m.notifications, nil
}

type mockNotifier struct {
	lastKind string
	sent     int
	err      error
}

func (m *mockNotifier) Run(kind string) (int, error) {
	m.lastKind = kind
	return m.sent, m.err
}

type mockNotion struct {
	tasks    []notion.Task
	archived []string
}

func (m *mockNotion) ListTasks() ([]notion.Task, error) { return m.tasks, nil }
func (m *mockNotion) UpdateTask(update notion.TaskUpdate) error { return nil }

func (m *mockNotion) CreateTask(task notion.Task) error {
	m.tasks = append(m.tasks, task)
	return nil
}

func (m *mockNotion) ArchiveTask(id string) error {
	m.archived = append(m.archived, id)
	return nil
}

func newTestServer(store *mockStore, notifier Notifier, notionClient NotionClient) *Server {
	gin.SetMode(gin.TestMode)
	return NewServer(store, notifier, notionClient)
}

func doRequest(s *Server, method, path, userID string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v (%s)", err, w.Body.String())
	}
	return out
}

func TestMissingUserHeader(t *testing.T) {
	s := newTestServer(&mockStore{}, nil, nil)

	for _, path := range []string{"/api/tasks", "/api/habits", "/api/calendar", "/api/today", "/api/notifications"} {
		w := doRequest(s, "GET", path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without user = %d, want 401", path, w.Code)
		}
	}
}

func TestTaskLifecycle(t *testing.T) {
	store := &mockStore{}
	s := newTestServer(store, nil, nil)
	today := utils.Today()

	w := doRequest(s, "POST", "/api/tasks", "u1", map[string]any{
		"title":    "Read a chapter",
		"date":     today,
		"time":     "8:00 pm",
		"deadline": today,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create = %d: %s", w.Code, w.Body.String())
	}

	resp := decode(t, w)
	tasks := resp["tasks"].([]any)
	if len(tasks) != 1 {
		t.Fatalf("tasks after create = %d", len(tasks))
	}
	created := tasks[0].(map[string]any)
	if created["status"] != "pending" || created["priority"] != "medium" {
		t.Errorf("defaults not applied: %v", created)
	}
	id := created["id"].(string)

	w = doRequest(s, "POST", "/api/tasks/"+id+"/toggle", "u1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle = %d: %s", w.Code, w.Body.String())
	}
	toggled := decode(t, w)["tasks"].([]any)[0].(map[string]any)
	if toggled["status"] != "completed" {
		t.Errorf("status after toggle = %v", toggled["status"])
	}

	w = doRequest(s, "PATCH", "/api/tasks/"+id, "u1", map[string]any{"priority": "high"})
	if w.Code != http.StatusOK {
		t.Fatalf("update = %d: %s", w.Code, w.Body.String())
	}
	updated := decode(t, w)["tasks"].([]any)[0].(map[string]any)
	if updated["priority"] != "high" {
		t.Errorf("priority after update = %v", updated["priority"])
	}
	if updated["status"] != "completed" {
		t.Errorf("update touched status: %v", updated["status"])
	}

	w = doRequest(s, "DELETE", "/api/tasks/"+id, "u1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete = %d", w.Code)
	}
	if remaining, ok := decode(t, w)["tasks"].([]any); ok && len(remaining) != 0 {
		t.Errorf("tasks after delete = %d", len(remaining))
	}
}

func TestUpdateUnknownTask(t *testing.T) {
	s := newTestServer(&mockStore{}, nil, nil)

	w := doRequest(s, "PATCH", "/api/tasks/nope", "u1", map[string]any{"priority": "high"})
	if w.Code != http.StatusNotFound {
		t.Errorf("update unknown = %d, want 404: %s", w.Code, w.Body.String())
	}
}

func TestCreateInvalidTask(t *testing.T) {
	s := newTestServer(&mockStore{}, nil, nil)

	w := doRequest(s, "POST", "/api/tasks", "u1", map[string]any{"title": ""})
	if w.Code != http.StatusBadRequest {
		t.Errorf("create invalid = %d, want 400", w.Code)
	}
}

func TestTodaySummary(t *testing.T) {
	today := utils.Today()
	yesterday, _ := utils.AddDays(today, -1)
	store := &mockStore{tasks: []models.Task{
		{ID: "t1", UserID: "u1", Title: "A", Date: today, Status: constants.StatusCompleted},
		{ID: "t2", UserID: "u1", Title: "B", Date: today, Status: constants.StatusPending},
		{ID: "t3", UserID: "u1", Title: "C", Date: yesterday, Status: constants.StatusCompleted},
		{ID: "t4", UserID: "u2", Title: "D", Date: today, Status: constants.StatusPending},
	}}
	s := newTestServer(store, nil, nil)

	resp := decode(t, doRequest(s, "GET", "/api/today", "u1", nil))
	if resp["total"].(float64) != 2 || resp["completed"].(float64) != 1 {
		t.Errorf("today summary = %v", resp)
	}
	if resp["percentage"].(float64) != 50 {
		t.Errorf("percentage = %v", resp["percentage"])
	}
}

func TestCalendarStats(t *testing.T) {
	today := utils.Today()
	store := &mockStore{tasks: []models.Task{
		{ID: "t1", UserID: "u1", Title: "A", Date: today, Status: constants.StatusCompleted},
	}}
	s := newTestServer(store, nil, nil)

	resp := decode(t, doRequest(s, "GET", "/api/calendar", "u1", nil))
	days := resp["days"].([]any)
	if len(days) != constants.CalendarWindowDays {
		t.Fatalf("calendar days = %d, want %d", len(days), constants.CalendarWindowDays)
	}
	stats := resp["stats"].(map[string]any)
	if stats["current_streak"].(float64) != 1 {
		t.Errorf("current_streak = %v", stats["current_streak"])
	}
}

func TestSendNotifications(t *testing.T) {
	notifier := &mockNotifier{sent: 3}
	s := newTestServer(&mockStore{}, notifier, nil)

	w := doRequest(s, "POST", "/api/notifications/send", "", map[string]any{"type": "manual"})
	if w.Code != http.StatusOK {
		t.Fatalf("send = %d: %s", w.Code, w.Body.String())
	}
	resp := decode(t, w)
	if resp["notifications_sent"].(float64) != 3 {
		t.Errorf("notifications_sent = %v", resp["notifications_sent"])
	}
	if notifier.lastKind != "manual" {
		t.Errorf("trigger kind = %q", notifier.lastKind)
	}

	w = doRequest(s, "POST", "/api/notifications/send", "", map[string]any{"type": "bogus"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown type = %d, want 400", w.Code)
	}
}

func TestSendNotificationsUnconfigured(t *testing.T) {
	s := newTestServer(&mockStore{}, nil, nil)

	w := doRequest(s, "POST", "/api/notifications/send", "", map[string]any{"type": "manual"})
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("send without mailer = %d, want 503", w.Code)
	}
}

func TestNotionProxy(t *testing.T) {
	upstream := &mockNotion{tasks: []notion.Task{{ID: "p1", Title: "Synced"}}}
	s := newTestServer(&mockStore{}, nil, upstream)

	resp := decode(t, doRequest(s, "GET", "/api/notion/tasks", "", nil))
	if len(resp["tasks"].([]any)) != 1 {
		t.Errorf("notion tasks = %v", resp["tasks"])
	}

	w := doRequest(s, "DELETE", "/api/notion/tasks/p1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("archive = %d", w.Code)
	}
	if len(upstream.archived) != 1 || upstream.archived[0] != "p1" {
		t.Errorf("archived = %v", upstream.archived)
	}
}

func TestNotionUnconfigured(t *testing.T) {
	s := newTestServer(&mockStore{}, nil, nil)

	w := doRequest(s, "GET", "/api/notion/tasks", "", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("notion without credentials = %d, want 503", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(&mockStore{}, nil, nil)

	w := doRequest(s, "OPTIONS", "/api/tasks", "", nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("preflight = %d, want 204", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("allow-origin = %q", w.Header().Get("Access-Control-Allow-Origin"))
	}
}
