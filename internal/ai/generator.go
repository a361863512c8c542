package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"goalsmith/internal/compiler"
	"goalsmith/internal/security"
	"goalsmith/internal/spec"
)

var (
	// ErrNoCredential means no API key is configured. Not a transport
	// failure: callers fall straight back to the rule engine.
	ErrNoCredential = errors.New("no AI credential configured")
	// ErrEmptyInput means sanitization left nothing to send.
	ErrEmptyInput = errors.New("input empty after sanitization")
	// ErrRateLimited means the sliding-window limiter rejected the call.
	ErrRateLimited = errors.New("AI request rate limit exceeded")
	// ErrNoJSON means the response carried no JSON object.
	ErrNoJSON = errors.New("no JSON object found in AI response")
)

// Generator turns free-form goal text into a GoalSpec via an AI
// backend. Every failure is returned to the caller; the generator
// never falls back on its own.
type Generator struct {
	svc     Service
	limiter *security.RateLimiter
	hasKey  bool
}

// NewGenerator wires the AI backend and the limiter that gates calls
// to it. hasKey reflects whether a credential is configured; without
// one Generate rejects immediately.
func NewGenerator(svc Service, limiter *security.RateLimiter, hasKey bool) *Generator {
	return &Generator{svc: svc, limiter: limiter, hasKey: hasKey}
}

// Generate runs the full pipeline: credential and input gates, the
// limiter, the AI call, response filtering, JSON extraction, parse,
// repair, and gamification merge.
func (g *Generator) Generate(ctx context.Context, text string) (*spec.GoalSpec, error) {
	if !g.hasKey || g.svc == nil {
		return nil, ErrNoCredential
	}

	sanitized := security.SanitizeInput(text)
	if sanitized == "" {
		return nil, ErrEmptyInput
	}

	if g.limiter != nil && !g.limiter.Allow() {
		return nil, ErrRateLimited
	}

	raw, err := g.svc.Complete(ctx, buildPrompt(sanitized))
	if err != nil {
		return nil, fmt.Errorf("ai generation failed: %w", err)
	}

	filtered := security.FilterResponse(raw)
	jsonText, err := extractJSON(filtered)
	if err != nil {
		return nil, err
	}

	var s spec.GoalSpec
	if err := json.Unmarshal([]byte(jsonText), &s); err != nil {
		return nil, fmt.Errorf("failed to parse AI spec: %w", err)
	}

	if s.DurationDays <= 0 && s.Duration != "" {
		s.DurationDays = compiler.ExtractTimeframe(s.Duration).Days
	}
	s.Gamification = spec.GamificationFor(s.Category, strings.ToLower(s.Title))
	spec.Normalize(&s)
	return &s, nil
}

// extractJSON strips markdown code fences and returns the first
// opening brace through the last closing brace.
func extractJSON(text string) (string, error) {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSON
	}
	return text[start : end+1], nil
}

func buildPrompt(sanitized string) string {
	return fmt.Sprintf(`You are an expert goal-setting coach. Parse this goal into a structured JSON format for a goal-tracking app:

"%s"

Return ONLY a valid JSON object with this EXACT structure (no markdown, no explanations):

{
  "title": "Short, motivating title (max 50 chars)",
  "duration": "Extracted or reasonable timeframe (e.g., '3 months', '6 weeks')",
  "category": "One of: fitness, learning, writing, business, health, creative, career, financial, social, personal",
  "target": "Specific measurable target description",
  "milestones": [
    {
      "week": 2,
      "title": "Milestone name",
      "description": "What to accomplish in this phase",
      "target": "Specific measurable target for this milestone"
    }
  ],
  "trackers": [
    {
      "name": "Tracker name",
      "type": "counter|number|percentage",
      "unit": "Optional unit (miles, hours, words, $, etc.)",
      "target": 100
    }
  ],
  "motivation": [
    "5 personalized motivational messages specific to this goal with relevant emojis"
  ]
}

Guidelines:
- Extract realistic timeline from text, default to 3 months if unclear
- Create 3-5 progressive milestones spread across timeline
- Include 2-4 relevant tracking metrics that make sense for the goal
- Make motivation messages specific and encouraging for this exact goal
- Be creative but realistic with targets
- If it's a vague goal, make reasonable assumptions and structure it
- Handle ANY type of goal, even unusual ones`, sanitized)
}
