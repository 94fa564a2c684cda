package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lly61/TaskFlow/config"
	"github.com/lly61/TaskFlow/routes"
	"github.com/lly61/TaskFlow/utils"
)

const testSecret = "test-secret"

// newTestEnv builds the full router against an in-memory SQLite database.
// Foreign keys are switched on so the task→subtask cascade behaves like the
// production schema. A single connection keeps every query on the same
// in-memory database.
func newTestEnv(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.MigrateDB(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	r := gin.New()
	routes.RegisterRoutes(r, db, zap.NewNop().Sugar(), utils.NewTokenIssuer(testSecret), utils.NewLoginLimiter(nil))
	return r, db
}

// doJSON performs a request with an optional JSON body and session cookie.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, cookie string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: cookie})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a response body into out.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// registerAndLogin creates an account and returns its session token.
func registerAndLogin(t *testing.T, r *gin.Engine, email, password, name string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/register", map[string]string{
		"email": email, "password": password, "name": name,
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("register %s: status %d body %s", email, w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/login", map[string]string{
		"email": email, "password": password,
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", email, w.Code, w.Body.String())
	}

	for _, c := range w.Result().Cookies() {
		if c.Name == "token" && c.Value != "" {
			return c.Value
		}
	}
	t.Fatalf("login %s: no token cookie set", email)
	return ""
}

// createTask posts a task and returns its decoded body.
func createTask(t *testing.T, r *gin.Engine, token string, body map[string]interface{}) map[string]interface{} {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/tasks", body, token)
	if w.Code != http.StatusOK {
		t.Fatalf("create task: status %d body %s", w.Code, w.Body.String())
	}
	var task map[string]interface{}
	decodeBody(t, w, &task)
	return task
}
