package spec

// Default repair values for specs arriving with missing or malformed
// fields, mostly from the AI path. A normalized spec always satisfies
// the Tracker and Milestone invariants.

// DefaultMilestones returns the stock milestone triplet used when a
// spec carries no usable milestone list.
func DefaultMilestones() []Milestone {
	return []Milestone{
		{Week: 2, Title: "Getting Started", Description: "Build initial momentum", Target: "25% progress"},
		{Week: 6, Title: "Halfway Point", Description: "Maintain consistency", Target: "50% progress"},
		{Week: 10, Title: "Final Push", Description: "Complete the goal", Target: "100% progress"},
	}
}

// DefaultTrackers returns the stock two-tracker list.
func DefaultTrackers() []Tracker {
	return []Tracker{
		{Name: "Progress", Type: TrackerPercentage, Target: 100},
		{Name: "Days Active", Type: TrackerCounter, Target: 60},
	}
}

// DefaultMotivation returns the stock five-line motivation list.
func DefaultMotivation() []string {
	return []string{
		"You're making great progress! 🌟",
		"Every step forward counts",
		"Consistency is the key to success",
		"Believe in yourself - you've got this!",
		"Your future self will thank you",
	}
}

// Normalize repairs a spec in place so that every invariant holds:
// non-empty title/duration/category/target, at least the stock
// milestones/trackers/motivation, positive tracker targets, unique
// tracker names, and strictly increasing milestone weeks starting at 1.
// It returns the spec for chaining.
func Normalize(s *GoalSpec) *GoalSpec {
	if s.Title == "" {
		s.Title = "My Goal"
	}
	if s.Duration == "" {
		s.Duration = "3 months"
	}
	if s.DurationDays <= 0 {
		s.DurationDays = 90
	}
	if !IsKnownCategory(s.Category) {
		s.Category = CategoryPersonal
	}
	if s.Target == "" {
		s.Target = "Complete goal"
	}
	if len(s.Milestones) == 0 {
		s.Milestones = DefaultMilestones()
	}
	if len(s.Trackers) == 0 {
		s.Trackers = DefaultTrackers()
	}
	if len(s.Motivation) == 0 {
		s.Motivation = DefaultMotivation()
	}

	repairTrackers(s)
	repairMilestones(s)
	return s
}

func repairTrackers(s *GoalSpec) {
	seen := make(map[string]bool, len(s.Trackers))
	kept := s.Trackers[:0]
	for _, t := range s.Trackers {
		if t.Name == "" || seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		switch t.Type {
		case TrackerCounter, TrackerNumber, TrackerPercentage:
		default:
			t.Type = TrackerNumber
		}
		if t.Target <= 0 {
			if t.Type == TrackerPercentage {
				t.Target = 100
			} else {
				t.Target = 50
			}
		}
		kept = append(kept, t)
	}
	s.Trackers = kept
	if len(s.Trackers) == 0 {
		s.Trackers = DefaultTrackers()
	}
}

// repairMilestones clamps week numbers into a strictly increasing
// sequence with minimum week 1. A missing or non-positive week falls
// back to (index+1)*2 before clamping, so short durations cannot
// produce duplicate or zero weeks.
func repairMilestones(s *GoalSpec) {
	prev := 0
	for i := range s.Milestones {
		m := &s.Milestones[i]
		if m.Week <= 0 {
			m.Week = (i + 1) * 2
		}
		if m.Week <= prev {
			m.Week = prev + 1
		}
		prev = m.Week
	}
}
