package security

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestSanitizeInput_StripsInjection(t *testing.T) {
	in := `<b>run</b> "fast" javascript:alert(1) data:x vbscript:y 'quoted'`
	out := SanitizeInput(in)
	for _, bad := range []string{"<", ">", `"`, "'", "javascript:", "data:", "vbscript:"} {
		if strings.Contains(strings.ToLower(out), bad) {
			t.Errorf("sanitized output still contains %q: %s", bad, out)
		}
	}
}

func TestSanitizeInput_EmptyAndWhitespace(t *testing.T) {
	if SanitizeInput("") != "" {
		t.Errorf("empty input should sanitize to empty")
	}
	if SanitizeInput("   \t\n  ") != "" {
		t.Errorf("whitespace input should sanitize to empty")
	}
}

func TestSanitizeInput_CapsLength(t *testing.T) {
	in := strings.Repeat("a", 5000)
	if got := len(SanitizeInput(in)); got > 1000 {
		t.Errorf("expected length cap of 1000, got %d", got)
	}
}

func TestSanitizeInput_TruncatesOnRuneBoundary(t *testing.T) {
	in := strings.Repeat("ü", 1500)
	out := SanitizeInput(in)
	if !utf8.ValidString(out) {
		t.Fatalf("truncation produced invalid UTF-8")
	}
	if got := utf8.RuneCountInString(out); got != 1000 {
		t.Errorf("rune count = %d, want 1000", got)
	}
}

func TestFilterResponse_StripsScripts(t *testing.T) {
	in := `{"title":"x"}<script>alert(1)</script> onclick= data:text/html javascript:void(0)`
	out := FilterResponse(in)
	if strings.Contains(out, "<script>") || strings.Contains(out, "alert(1)") {
		t.Errorf("script tag survived filtering: %s", out)
	}
	if strings.Contains(strings.ToLower(out), "javascript:") {
		t.Errorf("js protocol survived filtering: %s", out)
	}
	if !strings.Contains(out, `{"title":"x"}`) {
		t.Errorf("legitimate content was removed: %s", out)
	}
}

func TestRateLimiter_EnforcesWindow(t *testing.T) {
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(3, time.Minute)
	rl.now = func() time.Time { return clock }

	for i := 0; i < 3; i++ {
		if !rl.Allow() {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if rl.Allow() {
		t.Fatalf("fourth request inside window should be rejected")
	}
	if rl.TimeUntilReset() <= 0 {
		t.Errorf("expected positive time until reset")
	}

	// Advance past the window; slots free up again.
	clock = clock.Add(61 * time.Second)
	if !rl.Allow() {
		t.Errorf("request after window expiry should be allowed")
	}
}

func TestRateLimiter_Defaults(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	if rl.maxRequests != 10 || rl.window != time.Minute {
		t.Errorf("expected defaults 10/1m, got %d/%s", rl.maxRequests, rl.window)
	}
}
