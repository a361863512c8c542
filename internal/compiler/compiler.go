package compiler

import (
	"context"
	"log"
	"strings"

	"goalsmith/internal/spec"
)

// Generator produces a goal spec from free-form text. The AI-backed
// generator implements this; the zero value of Compiler works without
// one and uses rules only.
type Generator interface {
	Generate(ctx context.Context, text string) (*spec.GoalSpec, error)
}

// Compiler turns a natural-language goal description into a normalized
// GoalSpec. If a Generator is configured it is tried first; any failure
// falls back to the deterministic rule engine, so Compile is total.
type Compiler struct {
	gen Generator
}

func NewCompiler(gen Generator) *Compiler {
	return &Compiler{gen: gen}
}

// Compile never returns an error: the rule engine handles every input,
// including empty text.
func (c *Compiler) Compile(ctx context.Context, text string) *spec.GoalSpec {
	if c.gen != nil {
		s, err := c.gen.Generate(ctx, text)
		if err == nil && s != nil {
			return s
		}
		if err != nil {
			log.Printf("[Compiler] AI generation failed, using rule engine: %v", err)
		}
	}
	return RuleCompile(text)
}

// CompileWithMode honors the caller's use-AI flag: false skips the
// generator entirely and goes straight to the rule engine.
func (c *Compiler) CompileWithMode(ctx context.Context, text string, useAI bool) *spec.GoalSpec {
	if !useAI {
		return RuleCompile(text)
	}
	return c.Compile(ctx, text)
}

// RuleCompile is the deterministic path: timeframe extraction, a
// specific-goal override scan, then broad-category classification.
func RuleCompile(text string) *spec.GoalSpec {
	lower := strings.ToLower(text)
	tf := ExtractTimeframe(lower)

	if sg, ok := MatchSpecificGoal(lower); ok {
		return expandSpecificGoal(sg, tf, lower)
	}

	var s *spec.GoalSpec
	switch ClassifyCategory(lower) {
	case spec.CategoryFitness:
		s = buildFitnessSpec(lower, tf)
	case spec.CategoryLearning:
		s = buildLearningSpec(lower, tf)
	case spec.CategoryWriting:
		s = buildWritingSpec(lower, tf)
	case spec.CategoryBusiness:
		s = buildBusinessSpec(lower, tf)
	case spec.CategoryHealth:
		s = buildHealthSpec(lower, tf)
	case spec.CategoryCreative:
		s = buildCreativeSpec(lower, tf)
	default:
		s = buildGenericSpec(text, lower, tf)
	}
	spec.Normalize(s)
	return s
}

func expandSpecificGoal(sg *SpecificGoal, tf Timeframe, lower string) *spec.GoalSpec {
	t := sg.Template
	s := &spec.GoalSpec{
		Title:        t.Title,
		Duration:     tf.Display,
		DurationDays: tf.Days,
		Category:     t.Category,
		Target:       t.Target,
		Milestones:   genericMilestones(tf.Days, t.Title),
		Trackers:     t.Trackers(tf.Days),
		Motivation:   t.Motivation,
		Gamification: spec.GamificationFor(t.Category, lower),
	}
	spec.Normalize(s)
	return s
}
