package ai

import (
	"context"
	"errors"
	"testing"

	"goalsmith/internal/security"
	"goalsmith/internal/spec"
)

type fakeService struct {
	response string
	err      error
	called   bool
	prompt   string
}

func (f *fakeService) Complete(_ context.Context, prompt string) (string, error) {
	f.called = true
	f.prompt = prompt
	return f.response, f.err
}

const validResponse = "```json\n" + `{
  "title": "Run a Half Marathon",
  "duration": "6 weeks",
  "category": "fitness",
  "target": "13.1 miles",
  "milestones": [
    {"week": 2, "title": "Base", "description": "Easy runs", "target": "3 miles"},
    {"week": 4, "title": "Build", "description": "Longer runs", "target": "8 miles"}
  ],
  "trackers": [
    {"name": "Miles Run", "type": "number", "unit": "miles", "target": 13.1}
  ],
  "motivation": ["Go! 🏃"]
}` + "\n```"

func TestGenerate_NoCredential(t *testing.T) {
	svc := &fakeService{response: validResponse}
	g := NewGenerator(svc, nil, false)
	_, err := g.Generate(context.Background(), "run a half marathon")
	if !errors.Is(err, ErrNoCredential) {
		t.Fatalf("err = %v, want ErrNoCredential", err)
	}
	if svc.called {
		t.Error("service must not be called without a credential")
	}
}

func TestGenerate_EmptyAfterSanitization(t *testing.T) {
	svc := &fakeService{response: validResponse}
	g := NewGenerator(svc, nil, true)
	_, err := g.Generate(context.Background(), "   <>\"'`   ")
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
	if svc.called {
		t.Error("service must not be called for empty input")
	}
}

func TestGenerate_RateLimited(t *testing.T) {
	limiter := security.NewRateLimiter(1, 0)
	if !limiter.Allow() {
		t.Fatal("first request should pass")
	}
	svc := &fakeService{response: validResponse}
	g := NewGenerator(svc, limiter, true)
	_, err := g.Generate(context.Background(), "run a marathon")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("err = %v, want ErrRateLimited", err)
	}
	if svc.called {
		t.Error("service must not be called when rate limited")
	}
}

func TestGenerate_ServiceErrorPropagates(t *testing.T) {
	svc := &fakeService{err: errors.New("connection refused")}
	g := NewGenerator(svc, nil, true)
	_, err := g.Generate(context.Background(), "run a marathon")
	if err == nil {
		t.Fatal("expected error from failing service")
	}
}

func TestGenerate_NoJSONInResponse(t *testing.T) {
	svc := &fakeService{response: "Sorry, I cannot help with that."}
	g := NewGenerator(svc, nil, true)
	_, err := g.Generate(context.Background(), "run a marathon")
	if !errors.Is(err, ErrNoJSON) {
		t.Fatalf("err = %v, want ErrNoJSON", err)
	}
}

func TestGenerate_MalformedJSON(t *testing.T) {
	svc := &fakeService{response: `{"title": "Broken", "trackers": [}`}
	g := NewGenerator(svc, nil, true)
	_, err := g.Generate(context.Background(), "run a marathon")
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGenerate_ValidResponse(t *testing.T) {
	svc := &fakeService{response: validResponse}
	g := NewGenerator(svc, nil, true)
	s, err := g.Generate(context.Background(), "I want to run a half marathon")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if s.Title != "Run a Half Marathon" {
		t.Errorf("title = %q", s.Title)
	}
	if s.DurationDays != 42 {
		t.Errorf("duration days = %d, want 42 from %q", s.DurationDays, s.Duration)
	}
	if s.Gamification.XPRate != spec.XPForCategory(spec.CategoryFitness) {
		t.Errorf("xp rate = %d, want fitness rate", s.Gamification.XPRate)
	}
	if len(s.Gamification.Badges) == 0 {
		t.Error("gamification badges missing")
	}
}

func TestGenerate_RepairsMalformedFields(t *testing.T) {
	svc := &fakeService{response: `{
		"title": "Sparse Goal",
		"category": "fitness",
		"trackers": [{"name": "Reps", "type": "counter", "target": -5}],
		"milestones": [{"week": 0, "title": "Start"}, {"week": 0, "title": "Middle"}]
	}`}
	g := NewGenerator(svc, nil, true)
	s, err := g.Generate(context.Background(), "do some reps")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	reps := s.TrackerByName("Reps")
	if reps == nil || reps.Target != 50 {
		t.Errorf("Reps tracker = %+v, want repaired target 50", reps)
	}
	if s.Milestones[0].Week != 2 || s.Milestones[1].Week != 4 {
		t.Errorf("milestone weeks = %d, %d, want 2, 4",
			s.Milestones[0].Week, s.Milestones[1].Week)
	}
	if len(s.Motivation) != 5 {
		t.Errorf("motivation lines = %d, want stock list of 5", len(s.Motivation))
	}
	if s.Duration != "3 months" || s.DurationDays != 90 {
		t.Errorf("duration = %q/%d, want defaults", s.Duration, s.DurationDays)
	}
}

func TestGenerate_FiltersScriptFromResponse(t *testing.T) {
	svc := &fakeService{response: `<script>alert(1)</script>{"title": "Clean", "category": "personal"}`}
	g := NewGenerator(svc, nil, true)
	s, err := g.Generate(context.Background(), "stay safe")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if s.Title != "Clean" {
		t.Errorf("title = %q", s.Title)
	}
}

func TestGenerate_PromptContainsSanitizedInput(t *testing.T) {
	svc := &fakeService{response: validResponse}
	g := NewGenerator(svc, nil, true)
	if _, err := g.Generate(context.Background(), `run <fast> "now"`); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if svc.prompt == "" {
		t.Fatal("prompt not captured")
	}
	if want := "run fast now"; !containsSubstring(svc.prompt, want) {
		t.Errorf("prompt missing sanitized input %q", want)
	}
}

func containsSubstring(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
