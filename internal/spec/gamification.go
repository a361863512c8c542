package spec

import "strings"

// Per-category XP rates. Unknown categories earn the generic rate.
var categoryXP = map[Category]int{
	CategoryFitness:   10,
	CategoryLearning:  5,
	CategoryWriting:   1,
	CategoryBusiness:  50,
	CategoryHealth:    25,
	CategoryCreative:  15,
	CategoryCareer:    30,
	CategoryFinancial: 40,
	CategorySocial:    20,
	CategoryPersonal:  15,
}

var categoryBadges = map[Category][]string{
	CategoryFitness:   {"First Workout", "Consistency Champion", "Fitness Master"},
	CategoryLearning:  {"Knowledge Seeker", "Study Streak", "Learning Legend"},
	CategoryWriting:   {"Word Warrior", "Chapter Champion", "Published Author"},
	CategoryBusiness:  {"Entrepreneur", "First Sale", "Business Builder"},
	CategoryHealth:    {"Healthy Start", "Wellness Warrior", "Lifestyle Legend"},
	CategoryCreative:  {"Creative Spark", "Artistic Flow", "Masterpiece Maker"},
	CategoryCareer:    {"Career Climber", "Skill Builder", "Professional Pro"},
	CategoryFinancial: {"Money Manager", "Savings Star", "Financial Freedom"},
	CategorySocial:    {"Social Butterfly", "Connection Creator", "Relationship Builder"},
	CategoryPersonal:  {"Self Improver", "Growth Guru", "Personal Champion"},
}

// XPForCategory returns the fixed XP rate for a category.
func XPForCategory(c Category) int {
	if xp, ok := categoryXP[c]; ok {
		return xp
	}
	return 20
}

// BadgesForCategory returns the badge list for a category, with the
// first badge renamed when the goal title carries a matching verb.
func BadgesForCategory(c Category, title string) []string {
	base, ok := categoryBadges[c]
	if !ok {
		base = []string{"Goal Getter", "Progress Pro", "Achievement Unlocked"}
	}
	badges := make([]string, len(base))
	copy(badges, base)

	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(title)) {
		words[w] = true
	}
	// Fixed check order: a later match overrides an earlier one, so
	// "master" always wins regardless of word position in the title.
	if words["learn"] {
		badges[0] = "Learning Starter"
	}
	if words["build"] {
		badges[0] = "Builder Beginner"
	}
	if words["create"] {
		badges[0] = "Creative Starter"
	}
	if words["master"] {
		badges[0] = "Mastery Seeker"
	}
	return badges
}

// GamificationFor computes the deterministic gamification block for a
// category and title. Streaks are always enabled.
func GamificationFor(c Category, title string) Gamification {
	return Gamification{
		StreaksEnabled: true,
		XPRate:         XPForCategory(c),
		Badges:         BadgesForCategory(c, title),
	}
}
