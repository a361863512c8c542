package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"goalsmith/internal/compiler"
	"goalsmith/internal/db"
	"goalsmith/internal/goalrepo"
	"goalsmith/internal/store"
	"goalsmith/internal/user"
)

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func setupGoalDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbConn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "api.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := dbConn.AutoMigrate(&user.User{}, &goalrepo.Goal{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	db.DB = dbConn
	return dbConn
}

func testDeps(t *testing.T) *Deps {
	t.Helper()
	return &Deps{
		Compiler: compiler.NewCompiler(nil),
		Repo:     goalrepo.NewRepository(setupGoalDB(t)),
		Store:    store.NewMemoryStore(),
		Hub:      NewEventHub(),
	}
}

// testRouter wires the goal routes with a stub identity instead of
// the full JWT middleware.
func testRouter(deps *Deps) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", uint(1))
		c.Next()
	})
	r.POST("/goals", CreateGoalHandler(deps))
	r.GET("/goals", ListGoalsHandler(deps))
	r.GET("/goals/:title", GetGoalHandler(deps))
	r.DELETE("/goals/:title", DeleteGoalHandler(deps))
	r.POST("/goals/:title/log", LogEntryHandler(deps))
	r.GET("/goals/:title/progress", ProgressHandler(deps))
	r.GET("/goals/:title/chart", ChartHandler(deps))
	r.POST("/goals/:title/milestones/:index/complete", CompleteMilestoneHandler(deps))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateGoalHandler_RulePath(t *testing.T) {
	deps := testDeps(t)
	r := testRouter(deps)

	w := doJSON(t, r, "POST", "/goals", CreateGoalRequest{
		Text: "I want to run a half marathon in 3 months",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if !contains(w.Body.String(), "13.1 miles") {
		t.Errorf("response should carry compiled target, got: %s", w.Body.String())
	}
	if !contains(w.Body.String(), `"category":"fitness"`) {
		t.Errorf("response should carry fitness category, got: %s", w.Body.String())
	}
}

func TestCreateGoalHandler_EmptyText(t *testing.T) {
	deps := testDeps(t)
	r := testRouter(deps)

	w := doJSON(t, r, "POST", "/goals", CreateGoalRequest{Text: "   "})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCreateGoalHandler_DuplicateTitle(t *testing.T) {
	deps := testDeps(t)
	r := testRouter(deps)

	body := CreateGoalRequest{Text: "write a novel in 6 months"}
	if w := doJSON(t, r, "POST", "/goals", body); w.Code != http.StatusCreated {
		t.Fatalf("first create: %d", w.Code)
	}
	if w := doJSON(t, r, "POST", "/goals", body); w.Code != http.StatusConflict {
		t.Errorf("duplicate create: expected 409, got %d", w.Code)
	}
}

func TestGoalLifecycle_ListGetDelete(t *testing.T) {
	deps := testDeps(t)
	r := testRouter(deps)

	if w := doJSON(t, r, "POST", "/goals", CreateGoalRequest{Text: "learn french in 6 months"}); w.Code != http.StatusCreated {
		t.Fatalf("create: %d: %s", w.Code, w.Body.String())
	}

	w := doJSON(t, r, "GET", "/goals", nil)
	if w.Code != http.StatusOK || !contains(w.Body.String(), "Master French") {
		t.Errorf("list: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "GET", "/goals/Master%20French", nil)
	if w.Code != http.StatusOK {
		t.Errorf("get: expected 200, got %d", w.Code)
	}

	w = doJSON(t, r, "DELETE", "/goals/Master%20French", nil)
	if w.Code != http.StatusOK {
		t.Errorf("delete: expected 200, got %d", w.Code)
	}

	w = doJSON(t, r, "GET", "/goals/Master%20French", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete: expected 404, got %d", w.Code)
	}
}

func TestLogEntryHandler_ProgressFlow(t *testing.T) {
	deps := testDeps(t)
	r := testRouter(deps)

	if w := doJSON(t, r, "POST", "/goals", CreateGoalRequest{Text: "run a half marathon in 3 months"}); w.Code != http.StatusCreated {
		t.Fatalf("create: %d", w.Code)
	}
	title := "Fitness%20Goal%20Achievement"

	w := doJSON(t, r, "POST", fmt.Sprintf("/goals/%s/log", title), LogEntryRequest{
		Tracker: "Longest Run",
		Value:   5.0,
		Date:    time.Now().Format("2006-01-02"),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("log: %d: %s", w.Code, w.Body.String())
	}
	if !contains(w.Body.String(), `"streak":1`) {
		t.Errorf("log response should show streak 1, got: %s", w.Body.String())
	}
	// 5/13.1 = 38%: the 25% achievement unlocks.
	if !contains(w.Body.String(), `"threshold":25`) {
		t.Errorf("expected 25%% achievement, got: %s", w.Body.String())
	}

	w = doJSON(t, r, "GET", fmt.Sprintf("/goals/%s/progress", title), nil)
	if w.Code != http.StatusOK || !contains(w.Body.String(), "Longest Run") {
		t.Errorf("progress: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "GET", fmt.Sprintf("/goals/%s/chart", title), nil)
	if w.Code != http.StatusOK || !contains(w.Body.String(), "chart") {
		t.Errorf("chart: %d", w.Code)
	}
}

func TestLogEntryHandler_RejectsMissingValueAndDate(t *testing.T) {
	deps := testDeps(t)
	r := testRouter(deps)

	if w := doJSON(t, r, "POST", "/goals", CreateGoalRequest{Text: "run a half marathon in 3 months"}); w.Code != http.StatusCreated {
		t.Fatalf("create: %d", w.Code)
	}
	logPath := "/goals/Fitness%20Goal%20Achievement/log"
	today := time.Now().Format("2006-01-02")

	w := doJSON(t, r, "POST", logPath, LogEntryRequest{
		Tracker: "Longest Run",
		Value:   5.0,
		Date:    today,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("log: %d: %s", w.Code, w.Body.String())
	}

	// No value: must be rejected, not coerced to a zero entry that
	// replaces today's real one.
	w = doJSON(t, r, "POST", logPath, LogEntryRequest{
		Tracker: "Longest Run",
		Date:    today,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing value: expected 400, got %d", w.Code)
	}

	w = doJSON(t, r, "POST", logPath, LogEntryRequest{
		Tracker: "Longest Run",
		Value:   "",
		Date:    today,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty value: expected 400, got %d", w.Code)
	}

	w = doJSON(t, r, "POST", logPath, LogEntryRequest{
		Tracker: "Longest Run",
		Value:   3.0,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing date: expected 400, got %d", w.Code)
	}

	// The original entry survived all three rejected requests.
	w = doJSON(t, r, "GET", "/goals/Fitness%20Goal%20Achievement/progress", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("progress: %d", w.Code)
	}
	if !contains(w.Body.String(), `"Longest Run":5`) {
		t.Errorf("total should still be 5, got: %s", w.Body.String())
	}
	if !contains(w.Body.String(), `"streak":1`) {
		t.Errorf("streak should still be 1, got: %s", w.Body.String())
	}
}

func TestLogEntryHandler_UnknownTracker(t *testing.T) {
	deps := testDeps(t)
	r := testRouter(deps)

	if w := doJSON(t, r, "POST", "/goals", CreateGoalRequest{Text: "run a 5k in 4 weeks"}); w.Code != http.StatusCreated {
		t.Fatalf("create: %d", w.Code)
	}
	w := doJSON(t, r, "POST", "/goals/Fitness%20Goal%20Achievement/log", LogEntryRequest{
		Tracker: "Nonexistent",
		Value:   1.0,
		Date:    time.Now().Format("2006-01-02"),
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown tracker, got %d", w.Code)
	}
}

func TestCompleteMilestoneHandler(t *testing.T) {
	deps := testDeps(t)
	r := testRouter(deps)

	if w := doJSON(t, r, "POST", "/goals", CreateGoalRequest{Text: "write a novel in 1 year"}); w.Code != http.StatusCreated {
		t.Fatalf("create: %d", w.Code)
	}
	title := "Write%20a%20Novel"

	w := doJSON(t, r, "POST", fmt.Sprintf("/goals/%s/milestones/0/complete", title), nil)
	if w.Code != http.StatusOK || !contains(w.Body.String(), `"completed":[0]`) {
		t.Errorf("complete: %d %s", w.Code, w.Body.String())
	}

	// Idempotent
	w = doJSON(t, r, "POST", fmt.Sprintf("/goals/%s/milestones/0/complete", title), nil)
	if w.Code != http.StatusOK || !contains(w.Body.String(), `"completed":[0]`) {
		t.Errorf("repeat complete: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "POST", fmt.Sprintf("/goals/%s/milestones/99/complete", title), nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("out of range: expected 400, got %d", w.Code)
	}
}
