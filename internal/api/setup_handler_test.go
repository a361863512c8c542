package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"goalsmith/internal/config"
	"goalsmith/internal/db"
	"goalsmith/internal/user"
)

func TestSetupHandler_AllowsInitialSetup(t *testing.T) {
	setupGoalDB(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/setup", SetupHandler())

	w := doJSON(t, r, "POST", "/setup", SetupRequest{Username: "admin1", Password: "pw1"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}
	if !contains(w.Body.String(), "setup_complete") {
		t.Errorf("setup response should indicate completion, got: %s", w.Body.String())
	}
}

func TestSetupHandler_ForbiddenIfUserExists(t *testing.T) {
	setupGoalDB(t)
	u := user.User{Username: "existing", PasswordHash: "hash", CreatedAt: time.Now()}
	if err := db.DB.Create(&u).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/setup", SetupHandler())

	w := doJSON(t, r, "POST", "/setup", SetupRequest{Username: "admin2", Password: "pw2"})
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestSetupHandler_MissingFields(t *testing.T) {
	setupGoalDB(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/setup", SetupHandler())

	w := doJSON(t, r, "POST", "/setup", SetupRequest{Username: "", Password: ""})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestLoginHandler_NeedsSetupWhenNoUsers(t *testing.T) {
	setupGoalDB(t)
	cfg := &config.Config{}
	cfg.Server.JWTSecret = "secret"
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", LoginHandler(cfg, nil))

	w := doJSON(t, r, "POST", "/auth/login", LoginRequest{Username: "x", Password: "y"})
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 need_setup, got %d", w.Code)
	}
	if !contains(w.Body.String(), "need_setup") {
		t.Errorf("response should flag need_setup: %s", w.Body.String())
	}
}

func TestConfigHandler_HidesSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8080
	cfg.Server.JWTSecret = "topsecret"
	cfg.AI.APIKey = "sk-private"
	cfg.AI.Model = "gpt-4o-mini"

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/config", configHandler(cfg))

	w := doJSON(t, r, "GET", "/config", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if contains(body, "topsecret") || contains(body, "sk-private") {
		t.Errorf("config response leaks secrets: %s", body)
	}
	if !contains(body, `"enabled":true`) {
		t.Errorf("config should report AI enabled: %s", body)
	}
}

func TestHealthHandler_NoRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", healthHandler(nil))

	w := doJSON(t, r, "GET", "/health", nil)
	if w.Code != http.StatusOK || !contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("health: %d %s", w.Code, w.Body.String())
	}
}
