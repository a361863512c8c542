package compiler

import (
	"fmt"
	"math"
	"strings"

	"goalsmith/internal/spec"
)

// Broad-category spec builders. Each takes the raw goal text (already
// lowercased by the caller) and the extracted timeframe and produces a
// fully populated GoalSpec. These run only when no specific-goal
// override matched.

func buildFitnessSpec(lower string, tf Timeframe) *spec.GoalSpec {
	target := 5.0
	unit := "miles"
	if strings.Contains(lower, "marathon") {
		if strings.Contains(lower, "half") {
			target = 13.1
		} else {
			target = 26.2
		}
	}
	return &spec.GoalSpec{
		Title:        "Fitness Goal Achievement",
		Duration:     tf.Display,
		DurationDays: tf.Days,
		Category:     spec.CategoryFitness,
		Target:       fmt.Sprintf("%g %s", target, unit),
		Milestones:   fitnessMilestones(tf.Days, target),
		Trackers: []spec.Tracker{
			{Name: "Weekly Miles", Type: spec.TrackerNumber, Unit: unit, Target: target * 0.8},
			{Name: "Longest Run", Type: spec.TrackerNumber, Unit: unit, Target: target},
			{Name: "Training Days", Type: spec.TrackerCounter, Target: math.Floor(float64(tf.Days) * 0.6)},
		},
		Motivation: []string{
			"Every step forward is progress! 🏃‍♂️",
			"Your body can do it. It's your mind you have to convince",
			"Champions train, losers complain",
			"The pain of today is the strength of tomorrow",
			"You're stronger than your excuses!",
		},
		Gamification: spec.GamificationFor(spec.CategoryFitness, lower),
	}
}

func buildLearningSpec(lower string, tf Timeframe) *spec.GoalSpec {
	language := extractLanguage(lower)
	return &spec.GoalSpec{
		Title:        fmt.Sprintf("Master %s", language),
		Duration:     tf.Display,
		DurationDays: tf.Days,
		Category:     spec.CategoryLearning,
		Target:       fmt.Sprintf("Conversational %s fluency", language),
		Milestones:   learningMilestones(tf.Days, language),
		Trackers: []spec.Tracker{
			{Name: "Vocabulary Words", Type: spec.TrackerCounter, Target: 1000},
			{Name: "Study Hours", Type: spec.TrackerNumber, Unit: "hours", Target: math.Floor(float64(tf.Days) * 0.5)},
			{Name: "Lessons Completed", Type: spec.TrackerCounter, Target: math.Floor(float64(tf.Days) / 2)},
		},
		Motivation: []string{
			"Every word learned is a door opened! 🗣️",
			"Language is the road map of a culture",
			"Mistakes are proof you're trying",
			"Consistency beats intensity in learning",
			"Your future self will thank you!",
		},
		Gamification: spec.GamificationFor(spec.CategoryLearning, lower),
	}
}

func buildWritingSpec(lower string, tf Timeframe) *spec.GoalSpec {
	words := 20000.0
	title := "Complete Writing Project"
	target := "Finish written work"
	if strings.Contains(lower, "novel") {
		words = 80000
		title = "Write a Novel"
		target = "Complete first draft"
	}
	return &spec.GoalSpec{
		Title:        title,
		Duration:     tf.Display,
		DurationDays: tf.Days,
		Category:     spec.CategoryWriting,
		Target:       target,
		Milestones:   writingMilestones(tf.Days, words),
		Trackers: []spec.Tracker{
			{Name: "Words Written", Type: spec.TrackerCounter, Target: words},
			{Name: "Writing Days", Type: spec.TrackerCounter, Target: math.Floor(float64(tf.Days) * 0.7)},
			{Name: "Chapters Done", Type: spec.TrackerCounter, Target: math.Max(1, math.Floor(words/4000))},
		},
		Motivation: []string{
			"Every word counts toward your story! ✍️",
			"First drafts don't have to be perfect, they have to be written",
			"Your story matters - tell it",
			"Writers write. Everything else is waiting",
			"One page a day is a book a year!",
		},
		Gamification: spec.GamificationFor(spec.CategoryWriting, lower),
	}
}

func buildBusinessSpec(lower string, tf Timeframe) *spec.GoalSpec {
	return &spec.GoalSpec{
		Title:        "Launch Your Business",
		Duration:     tf.Display,
		DurationDays: tf.Days,
		Category:     spec.CategoryBusiness,
		Target:       "Get first paying customers",
		Milestones:   genericMilestones(tf.Days, "Launch Your Business"),
		Trackers: []spec.Tracker{
			{Name: "Revenue", Type: spec.TrackerNumber, Unit: "$", Target: 10000},
			{Name: "Customers", Type: spec.TrackerCounter, Target: 10},
			{Name: "Work Days", Type: spec.TrackerCounter, Target: math.Floor(float64(tf.Days) * 0.8)},
		},
		Motivation: []string{
			"Every customer is proof of your vision! 🚀",
			"Entrepreneurship is living a few years like most people won't",
			"Done is better than perfect",
			"Your business solves real problems",
			"Revenue is the applause of the market!",
		},
		Gamification: spec.GamificationFor(spec.CategoryBusiness, lower),
	}
}

func buildHealthSpec(lower string, tf Timeframe) *spec.GoalSpec {
	return &spec.GoalSpec{
		Title:        "Build Healthy Habits",
		Duration:     tf.Display,
		DurationDays: tf.Days,
		Category:     spec.CategoryHealth,
		Target:       "Sustainable healthy lifestyle",
		Milestones:   genericMilestones(tf.Days, "Build Healthy Habits"),
		Trackers: []spec.Tracker{
			{Name: "Healthy Days", Type: spec.TrackerCounter, Target: math.Floor(float64(tf.Days) * 0.8)},
			{Name: "Habit Streak", Type: spec.TrackerCounter, Target: 30},
			{Name: "Energy Level", Type: spec.TrackerPercentage, Target: 100},
		},
		Motivation: []string{
			"Your health is your wealth! 🌿",
			"Small habits compound into big changes",
			"Take care of your body - it's the only place you live",
			"Progress, not perfection",
			"Every healthy choice is a vote for your future!",
		},
		Gamification: spec.GamificationFor(spec.CategoryHealth, lower),
	}
}

func buildCreativeSpec(lower string, tf Timeframe) *spec.GoalSpec {
	return &spec.GoalSpec{
		Title:        "Complete Creative Project",
		Duration:     tf.Display,
		DurationDays: tf.Days,
		Category:     spec.CategoryCreative,
		Target:       "Finish your creative work",
		Milestones:   creativeMilestones(tf.Days),
		Trackers: []spec.Tracker{
			{Name: "Creative Sessions", Type: spec.TrackerCounter, Target: math.Floor(float64(tf.Days) * 0.6)},
			{Name: "Project Progress", Type: spec.TrackerPercentage, Target: 100},
			{Name: "Skills Practiced", Type: spec.TrackerCounter, Target: 10},
		},
		Motivation: []string{
			"Creativity takes courage! 🎨",
			"Every artist was first an amateur",
			"Make something today, even if it's small",
			"Your creative voice is unique",
			"Art is not what you see, but what you make others see!",
		},
		Gamification: spec.GamificationFor(spec.CategoryCreative, lower),
	}
}

func buildGenericSpec(text string, lower string, tf Timeframe) *spec.GoalSpec {
	title := strings.TrimSpace(text)
	if r := []rune(title); len(r) > 60 {
		title = string(r[:60])
	}
	if title == "" {
		title = "Achieve Your Goal"
	}
	return &spec.GoalSpec{
		Title:        title,
		Duration:     tf.Display,
		DurationDays: tf.Days,
		Category:     spec.CategoryGeneral,
		Target:       "Complete your goal",
		Milestones:   genericMilestones(tf.Days, title),
		Trackers: []spec.Tracker{
			{Name: "Progress", Type: spec.TrackerPercentage, Target: 100},
			{Name: "Days Active", Type: spec.TrackerCounter, Target: math.Floor(float64(tf.Days) * 0.7)},
		},
		Motivation: []string{
			"Every day is a chance to get closer! ⭐",
			"Small steps lead to big achievements",
			"Consistency is the key to success",
			"You've got this - keep pushing forward",
			"Progress over perfection, always!",
		},
		Gamification: spec.GamificationFor(spec.CategoryGeneral, lower),
	}
}

// Milestone builders. Weeks are kept strictly increasing; Normalize
// enforces the same invariant as a backstop.

func fitnessMilestones(days int, target float64) []spec.Milestone {
	weeks := days / 7
	if weeks >= 12 {
		return []spec.Milestone{
			{Week: 2, Title: "Base Building", Description: "Establish your training routine", Target: fmt.Sprintf("Run %g miles comfortably", math.Round(target*0.25*10)/10)},
			{Week: weeks / 2, Title: "Halfway Strong", Description: "Build endurance and distance", Target: fmt.Sprintf("Run %g miles", math.Round(target*0.6*10)/10)},
			{Week: weeks - 2, Title: "Peak Training", Description: "Longest training efforts", Target: fmt.Sprintf("Run %g miles", math.Round(target*0.9*10)/10)},
			{Week: weeks, Title: "Goal Achieved", Description: "Complete your target distance", Target: fmt.Sprintf("Run %g miles", target)},
		}
	}
	return []spec.Milestone{
		{Week: 1, Title: "Getting Started", Description: "Establish your training routine", Target: "Train 3 times this week"},
		{Week: maxInt(2, weeks/2), Title: "Building Up", Description: "Increase intensity gradually", Target: fmt.Sprintf("Run %g miles", math.Round(target*0.5*10)/10)},
		{Week: maxInt(3, weeks), Title: "Goal Achieved", Description: "Complete your target distance", Target: fmt.Sprintf("Run %g miles", target)},
	}
}

func learningMilestones(days int, language string) []spec.Milestone {
	weeks := days / 7
	return []spec.Milestone{
		{Week: 2, Title: "Foundations", Description: "Master basic greetings and phrases", Target: "Learn 100 core words"},
		{Week: maxInt(3, weeks/2), Title: "Conversations Begin", Description: "Hold simple exchanges", Target: fmt.Sprintf("Have a 5-minute %s conversation", language)},
		{Week: maxInt(4, weeks-2), Title: "Growing Fluency", Description: "Express opinions and stories", Target: "Learn 700 words total"},
		{Week: maxInt(5, weeks), Title: "Conversational", Description: "Comfortable everyday speech", Target: fmt.Sprintf("Hold a 30-minute %s conversation", language)},
	}
}

func writingMilestones(days int, words float64) []spec.Milestone {
	weeks := days / 7
	return []spec.Milestone{
		{Week: 2, Title: "Story Foundations", Description: "Outline and opening chapters", Target: fmt.Sprintf("Write %.0f words", words*0.15)},
		{Week: maxInt(3, weeks/2), Title: "Momentum", Description: "Steady daily writing", Target: fmt.Sprintf("Reach %.0f words", words*0.5)},
		{Week: maxInt(4, weeks-2), Title: "Closing In", Description: "Drive toward the ending", Target: fmt.Sprintf("Reach %.0f words", words*0.85)},
		{Week: maxInt(5, weeks), Title: "The End", Description: "Finish the draft", Target: fmt.Sprintf("Complete %.0f words", words)},
	}
}

// creativeMilestones lays out four phases at roughly 20/50/80/100
// percent of the goal's span.
func creativeMilestones(days int) []spec.Milestone {
	weeks := maxInt(4, days/7)
	week := func(f float64) int {
		return maxInt(1, int(math.Round(float64(weeks)*f)))
	}
	ms := []spec.Milestone{
		{Week: week(0.2), Title: "Exploration", Description: "Experiment and gather ideas", Target: "Complete 5 practice pieces"},
		{Week: week(0.5), Title: "Finding Your Style", Description: "Develop consistent technique", Target: "Finish first real piece"},
		{Week: week(0.8), Title: "Refinement", Description: "Polish and iterate", Target: "Complete majority of project"},
		{Week: weeks, Title: "Showcase", Description: "Finish and share your work", Target: "Project complete"},
	}
	for i := 1; i < len(ms); i++ {
		if ms[i].Week <= ms[i-1].Week {
			ms[i].Week = ms[i-1].Week + 1
		}
	}
	return ms
}

func genericMilestones(days int, title string) []spec.Milestone {
	weeks := days / 7
	return []spec.Milestone{
		{Week: 2, Title: "First Steps", Description: "Build the habit and routine", Target: "25% progress"},
		{Week: maxInt(3, weeks/2), Title: "Halfway There", Description: "Maintain momentum", Target: "50% progress"},
		{Week: maxInt(4, weeks-1), Title: "Final Push", Description: "Push through the last stretch", Target: "90% progress"},
		{Week: maxInt(5, weeks), Title: "Goal Complete", Description: title, Target: "100% progress"},
	}
}

var knownLanguages = []string{
	"spanish", "french", "german", "italian", "portuguese",
	"japanese", "chinese", "korean",
}

// extractLanguage returns the capitalized language named in the text,
// defaulting to Spanish.
func extractLanguage(lower string) string {
	for _, lang := range knownLanguages {
		if strings.Contains(lower, lang) {
			return strings.ToUpper(lang[:1]) + lang[1:]
		}
	}
	return "Spanish"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
