package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/lly61/TaskFlow/models"
)

func TestCreateTaskDefaults(t *testing.T) {
	r, _ := newTestEnv(t)
	token := registerAndLogin(t, r, "a@x.com", "pw", "Ann")

	task := createTask(t, r, token, map[string]interface{}{"title": "Buy milk"})

	if task["title"] != "Buy milk" {
		t.Fatalf("expected title %q, got %v", "Buy milk", task["title"])
	}
	if task["priority"] != models.PriorityMedium {
		t.Fatalf("expected default priority medium, got %v", task["priority"])
	}
	if task["category"] != models.DefaultCategory {
		t.Fatalf("expected default category General, got %v", task["category"])
	}
	if task["completed"] != float64(0) {
		t.Fatalf("expected completed 0, got %v", task["completed"])
	}
	if subtasks, ok := task["subtasks"].([]interface{}); !ok || len(subtasks) != 0 {
		t.Fatalf("expected empty subtasks array, got %v", task["subtasks"])
	}
	if task["id"] == "" || task["created_at"] == "" {
		t.Fatalf("expected server-assigned id and created_at, got %v", task)
	}
}

func TestCreateTaskRequiresTitle(t *testing.T) {
	r, _ := newTestEnv(t)
	token := registerAndLogin(t, r, "a@x.com", "pw", "Ann")

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{name: "absent title", body: map[string]interface{}{"description": "d"}},
		{name: "blank title", body: map[string]interface{}{"title": "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/tasks", tt.body, token)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d body %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestCreateTaskKeepsMalformedDueDate(t *testing.T) {
	r, _ := newTestEnv(t)
	token := registerAndLogin(t, r, "a@x.com", "pw", "Ann")

	task := createTask(t, r, token, map[string]interface{}{
		"title": "Dentist", "due_date": "not-a-date",
	})
	if task["due_date"] != "not-a-date" {
		t.Fatalf("expected due_date stored as given, got %v", task["due_date"])
	}
}

func TestListTasksNewestFirst(t *testing.T) {
	r, db := newTestEnv(t)
	token := registerAndLogin(t, r, "a@x.com", "pw", "Ann")

	first := createTask(t, r, token, map[string]interface{}{"title": "first"})
	second := createTask(t, r, token, map[string]interface{}{"title": "second"})
	third := createTask(t, r, token, map[string]interface{}{"title": "third"})

	// Creation happens within the same instant in tests, so pin distinct
	// timestamps directly.
	base := time.Now().Add(-time.Hour)
	for i, task := range []map[string]interface{}{first, second, third} {
		err := db.Model(&models.Task{}).
			Where("id = ?", task["id"]).
			Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error
		if err != nil {
			t.Fatalf("pin created_at: %v", err)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/tasks", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	var tasks []models.Task
	decodeBody(t, w, &tasks)
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	for i := 1; i < len(tasks); i++ {
		if tasks[i-1].CreatedAt.Before(tasks[i].CreatedAt) {
			t.Fatalf("tasks out of order at %d: %v before %v", i, tasks[i-1].CreatedAt, tasks[i].CreatedAt)
		}
	}
	if tasks[0].Title != "third" || tasks[2].Title != "first" {
		t.Fatalf("unexpected order: %s, %s, %s", tasks[0].Title, tasks[1].Title, tasks[2].Title)
	}
}

func TestListTasksEmpty(t *testing.T) {
	r, _ := newTestEnv(t)
	token := registerAndLogin(t, r, "a@x.com", "pw", "Ann")

	w := doJSON(t, r, http.MethodGet, "/api/tasks", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}
}

func TestUpdateTaskCompletedRoundTrip(t *testing.T) {
	r, db := newTestEnv(t)
	token := registerAndLogin(t, r, "a@x.com", "pw", "Ann")

	task := createTask(t, r, token, map[string]interface{}{
		"title": "Ship release", "priority": "high",
	})
	id := task["id"].(string)

	update := map[string]interface{}{
		"title": "Ship release", "priority": "high", "category": "Work",
		"completed": true,
	}
	w := doJSON(t, r, http.MethodPut, "/api/tasks/"+id, update, token)
	if w.Code != http.StatusOK {
		t.Fatalf("update: status %d body %s", w.Code, w.Body.String())
	}

	var stored models.Task
	if err := db.First(&stored, "id = ?", id).Error; err != nil {
		t.Fatalf("load task: %v", err)
	}
	if stored.Completed != 1 {
		t.Fatalf("expected completed 1, got %d", stored.Completed)
	}
	if stored.Category != "Work" {
		t.Fatalf("expected category replaced, got %q", stored.Category)
	}

	update["completed"] = false
	w = doJSON(t, r, http.MethodPut, "/api/tasks/"+id, update, token)
	if w.Code != http.StatusOK {
		t.Fatalf("second update: status %d", w.Code)
	}
	if err := db.First(&stored, "id = ?", id).Error; err != nil {
		t.Fatalf("reload task: %v", err)
	}
	if stored.Completed != 0 {
		t.Fatalf("expected completed back to 0, got %d", stored.Completed)
	}
}

func TestForeignTaskUpdateAndDeleteAreSilentNoops(t *testing.T) {
	r, db := newTestEnv(t)
	owner := registerAndLogin(t, r, "a@x.com", "pw", "Ann")
	intruder := registerAndLogin(t, r, "b@x.com", "pw", "Bob")

	task := createTask(t, r, owner, map[string]interface{}{"title": "private"})
	id := task["id"].(string)

	w := doJSON(t, r, http.MethodPut, "/api/tasks/"+id, map[string]interface{}{
		"title": "stolen", "completed": true,
	}, intruder)
	if w.Code != http.StatusOK {
		t.Fatalf("foreign update: expected 200, got %d", w.Code)
	}

	var stored models.Task
	if err := db.First(&stored, "id = ?", id).Error; err != nil {
		t.Fatalf("load task: %v", err)
	}
	if stored.Title != "private" || stored.Completed != 0 {
		t.Fatalf("foreign update changed the row: %+v", stored)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/tasks/"+id, nil, intruder)
	if w.Code != http.StatusOK {
		t.Fatalf("foreign delete: expected 200, got %d", w.Code)
	}
	var count int64
	if err := db.Model(&models.Task{}).Where("id = ?", id).Count(&count).Error; err != nil {
		t.Fatalf("count tasks: %v", err)
	}
	if count != 1 {
		t.Fatalf("foreign delete removed the row")
	}

	// The intruder's own listing never shows it either.
	w = doJSON(t, r, http.MethodGet, "/api/tasks", nil, intruder)
	var tasks []models.Task
	decodeBody(t, w, &tasks)
	if len(tasks) != 0 {
		t.Fatalf("intruder sees %d foreign tasks", len(tasks))
	}
}

func TestDeleteOwnTask(t *testing.T) {
	r, db := newTestEnv(t)
	token := registerAndLogin(t, r, "a@x.com", "pw", "Ann")

	task := createTask(t, r, token, map[string]interface{}{"title": "temp"})
	id := task["id"].(string)

	w := doJSON(t, r, http.MethodDelete, "/api/tasks/"+id, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status %d", w.Code)
	}

	var count int64
	if err := db.Model(&models.Task{}).Where("id = ?", id).Count(&count).Error; err != nil {
		t.Fatalf("count tasks: %v", err)
	}
	if count != 0 {
		t.Fatalf("task still present after delete")
	}
}
