package compiler

import (
	"strings"

	"goalsmith/internal/spec"
)

// categoryKeywords scores broad categories when no specific-goal
// override matches. Declaration order breaks ties: the first category
// to reach the highest count wins.
var categoryKeywords = []struct {
	Category spec.Category
	Keywords []string
}{
	{spec.CategoryFitness, []string{
		"run", "marathon", "fitness", "exercise", "workout", "gym", "train",
		"jog", "lose weight", "gain muscle", "get fit", "shape", "cardio",
		"strength", "bike", "cycle", "swim", "yoga", "pilates",
	}},
	{spec.CategoryLearning, []string{
		"learn language", "study language", "language", "spanish", "french",
		"german", "italian", "portuguese", "japanese", "chinese", "korean",
		"skill course", "education", "programming", "coding",
		"guitar lessons", "piano lessons",
	}},
	{spec.CategoryWriting, []string{
		"write", "novel", "book", "story", "blog", "article", "screenplay",
		"poetry", "journal", "memoir", "fiction", "publish",
	}},
	{spec.CategoryBusiness, []string{
		"business", "startup", "company", "revenue", "profit", "sales",
		"customers", "launch", "product", "service", "marketing", "brand",
		"entrepreneur",
	}},
	{spec.CategoryHealth, []string{
		"health", "diet", "nutrition", "sleep", "meditation", "mindfulness",
		"therapy", "wellness", "habit", "routine", "lifestyle", "mental health",
	}},
	{spec.CategoryCreative, []string{
		"create art", "build project", "design", "art project", "craft project",
		"video", "music composition", "paint", "sculpt", "draw",
	}},
}

// MatchSpecificGoal scans the ordered override table; the first entry
// with any keyword appearing as a case-insensitive substring wins,
// short-circuiting broad classification.
func MatchSpecificGoal(text string) (*SpecificGoal, bool) {
	lower := strings.ToLower(text)
	for i := range specificGoals {
		for _, kw := range specificGoals[i].Keywords {
			if strings.Contains(lower, kw) {
				return &specificGoals[i], true
			}
		}
	}
	return nil, false
}

// ClassifyCategory scores each broad category by the number of its
// keywords present in the text. Zero matches everywhere yields general.
func ClassifyCategory(text string) spec.Category {
	lower := strings.ToLower(text)
	best := spec.CategoryGeneral
	maxMatches := 0
	for _, ck := range categoryKeywords {
		matches := 0
		for _, kw := range ck.Keywords {
			if strings.Contains(lower, kw) {
				matches++
			}
		}
		if matches > maxMatches {
			maxMatches = matches
			best = ck.Category
		}
	}
	return best
}
