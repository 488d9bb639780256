package notion

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/goaltrack/goaltrack/internal/errors"
	"github.com/goaltrack/goaltrack/internal/utils"
)

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	c, err := NewClient("secret_token", "db-123")
	if err != nil {
		t.Fatal(err)
	}
	c.baseUrl = url
	return c
}

func TestNewClientRequiresCredentials(t *testing.T) {
	if _, err := NewClient("", "db"); err == nil {
		t.Error("expected error for missing token")
	}
	if _, err := NewClient("tok", ""); err == nil {
		t.Error("expected error for missing database id")
	}
}

func TestListTasksMapsProperties(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Notion-Version") != "2022-06-28" {
			t.Errorf("Notion-Version = %q", r.Header.Get("Notion-Version"))
		}
		switch {
		case r.Method == "GET" && r.URL.Path == "/databases/db-123":
			w.Write([]byte(`{"id":"db-123"}`))
		case r.Method == "POST" && r.URL.Path == "/databases/db-123/query":
			w.Write([]byte(`{"results":[
				{"id":"p1","properties":{
					"Title":{"title":[{"plain_text":"Read a chapter"}]},
					"Description":{"rich_text":[{"plain_text":"fiction"}]},
					"Date":{"date":{"start":"2026-08-30"}},
					"Time":{"rich_text":[{"plain_text":"9:00 am"}]},
					"Priority":{"select":{"name":"High"}},
					"Status":{"select":{"name":"Completed"}},
					"Deadline":{"rich_text":[{"plain_text":"2026-09-05"}]}
				}},
				{"id":"p2","properties":{
					"Name":{"title":[{"plain_text":"Legacy title"}]}
				}},
				{"id":"p3","properties":{}}
			]}`))
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	tasks, err := newTestClient(t, srv.URL).ListTasks()
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("got %d tasks, want 3", len(tasks))
	}

	full := tasks[0]
	if full.Title != "Read a chapter" || full.Description != "fiction" {
		t.Errorf("full task = %+v", full)
	}
	if full.Priority != "high" || full.Status != "completed" {
		t.Errorf("select values not lowercased: %+v", full)
	}
	if full.Deadline != "2026-09-05" {
		t.Errorf("rich_text deadline not read: %q", full.Deadline)
	}

	legacy := tasks[1]
	if legacy.Title != "Legacy title" {
		t.Errorf("Name property fallback failed: %q", legacy.Title)
	}

	empty := tasks[2]
	today := utils.Today()
	if empty.Title != "Untitled" {
		t.Errorf("title default = %q", empty.Title)
	}
	if empty.Date != today || empty.Deadline != today {
		t.Errorf("date defaults = %q / %q, want %q", empty.Date, empty.Deadline, today)
	}
	if empty.Time != "8:00 pm" || empty.Priority != "medium" || empty.Status != "pending" {
		t.Errorf("defaults = %+v", empty)
	}
}

func TestCreateTaskPayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/pages" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Fatalf("unmarshal payload: %v", err)
		}
		w.Write([]byte(`{"id":"new-page"}`))
	}))
	defer srv.Close()

	err := newTestClient(t, srv.URL).CreateTask(Task{
		Title:    "Meditate",
		Date:     "2026-09-01",
		Time:     "7:00 am",
		Priority: "high",
		Status:   "pending",
		Deadline: "2026-09-01",
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	parent := got["parent"].(map[string]any)
	if parent["database_id"] != "db-123" {
		t.Errorf("parent = %v", parent)
	}

	props := got["properties"].(map[string]any)
	priority := props["Priority"].(map[string]any)["select"].(map[string]any)
	if priority["name"] != "High" {
		t.Errorf("priority select = %v, want capitalized", priority["name"])
	}
	deadline := props["Deadline"].(map[string]any)
	if _, ok := deadline["rich_text"]; !ok {
		t.Errorf("deadline written as %v, want rich_text", deadline)
	}
}

func TestUpdateTaskPatchesOnlyPresentFields(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PATCH" || r.URL.Path != "/pages/p1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &got)
		w.Write([]byte(`{"id":"p1"}`))
	}))
	defer srv.Close()

	err := newTestClient(t, srv.URL).UpdateTask(TaskUpdate{ID: "p1", Status: "completed"})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}

	props := got["properties"].(map[string]any)
	if len(props) != 1 {
		t.Errorf("patched %d properties, want 1: %v", len(props), props)
	}
	status := props["Status"].(map[string]any)["select"].(map[string]any)
	if status["name"] != "Completed" {
		t.Errorf("status = %v", status["name"])
	}
}

func TestArchiveTask(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PATCH" || r.URL.Path != "/pages/p9" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &got)
		w.Write([]byte(`{"id":"p9","archived":true}`))
	}))
	defer srv.Close()

	if err := newTestClient(t, srv.URL).ArchiveTask("p9"); err != nil {
		t.Fatalf("ArchiveTask: %v", err)
	}
	if got["archived"] != true {
		t.Errorf("payload = %v", got)
	}
}

func TestUpstreamErrorSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":"unauthorized","message":"API token is invalid."}`))
	}))
	defer srv.Close()

	err := newTestClient(t, srv.URL).Ping()
	if err == nil {
		t.Fatal("expected error")
	}

	var syncErr *apperrors.UpstreamSyncError
	if !errors.As(err, &syncErr) {
		t.Fatalf("expected UpstreamSyncError, got %T", err)
	}
	if syncErr.Status != http.StatusUnauthorized || syncErr.Message != "API token is invalid." {
		t.Errorf("error = %+v", syncErr)
	}
}
