package spec

// Category classifies a goal into one of the broad tracking domains.
type Category string

const (
	CategoryFitness   Category = "fitness"
	CategoryLearning  Category = "learning"
	CategoryWriting   Category = "writing"
	CategoryBusiness  Category = "business"
	CategoryHealth    Category = "health"
	CategoryCreative  Category = "creative"
	CategoryCareer    Category = "career"
	CategoryFinancial Category = "financial"
	CategorySocial    Category = "social"
	CategoryPersonal  Category = "personal"
	CategoryGeneral   Category = "general"
)

// TrackerType defines how a tracker's value is interpreted.
type TrackerType string

const (
	TrackerCounter    TrackerType = "counter"
	TrackerNumber     TrackerType = "number"
	TrackerPercentage TrackerType = "percentage"
)

// Tracker is one numeric metric tracked against a target.
// Name is unique within a spec; Target is always positive after Normalize.
type Tracker struct {
	Name   string      `json:"name"`
	Type   TrackerType `json:"type"`
	Unit   string      `json:"unit,omitempty"`
	Target float64     `json:"target"`
}

// Milestone is a scheduled checkpoint, ordered by week.
type Milestone struct {
	Week        int    `json:"week"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Target      string `json:"target"`
}

// Gamification holds the deterministic reward rules attached to a spec.
type Gamification struct {
	StreaksEnabled bool     `json:"streaks"`
	XPRate         int      `json:"xp_rate"`
	Badges         []string `json:"badges"`
}

// GoalSpec is the structured, machine-actionable form of a goal.
// It is immutable once compiled; a new spec is produced only by
// recompiling from new text.
type GoalSpec struct {
	Title        string       `json:"title"`
	Duration     string       `json:"duration"`
	DurationDays int          `json:"duration_days"`
	Category     Category     `json:"category"`
	Target       string       `json:"target"`
	Milestones   []Milestone  `json:"milestones"`
	Trackers     []Tracker    `json:"trackers"`
	Motivation   []string     `json:"motivation"`
	Gamification Gamification `json:"gamification"`
}

// TrackerByName returns the tracker with the given name, or nil.
func (s *GoalSpec) TrackerByName(name string) *Tracker {
	for i := range s.Trackers {
		if s.Trackers[i].Name == name {
			return &s.Trackers[i]
		}
	}
	return nil
}

// KnownCategories lists every category the compiler can emit.
func KnownCategories() []Category {
	return []Category{
		CategoryFitness, CategoryLearning, CategoryWriting,
		CategoryBusiness, CategoryHealth, CategoryCreative,
		CategoryCareer, CategoryFinancial, CategorySocial,
		CategoryPersonal, CategoryGeneral,
	}
}

// IsKnownCategory reports whether c is one of the fixed categories.
func IsKnownCategory(c Category) bool {
	for _, k := range KnownCategories() {
		if c == k {
			return true
		}
	}
	return false
}
