package compiler

import (
	"math"

	"goalsmith/internal/spec"
)

// GoalTemplate is the static shape a specific-goal override expands to.
// Tracker targets that scale with the goal's duration are computed by
// the Trackers func.
type GoalTemplate struct {
	Title      string
	Category   spec.Category
	Target     string
	Trackers   func(days int) []spec.Tracker
	Motivation []string
}

// SpecificGoal is one entry of the ordered override table: a narrow,
// high-priority classification rule bypassing broad-category scoring.
type SpecificGoal struct {
	ID       string
	Keywords []string
	Template GoalTemplate
}

func frac(days int, f float64) float64 {
	return math.Floor(float64(days) * f)
}

// specificGoals is evaluated first-match-wins, in declaration order.
// Keywords are lowercase; matching is substring over lowered text.
var specificGoals = []SpecificGoal{
	{
		ID:       "sourdough",
		Keywords: []string{"sourdough", "bread baking", "bread making", "sourdough bread master"},
		Template: GoalTemplate{
			Title:    "Master Sourdough Baking",
			Category: spec.CategoryCreative,
			Target:   "Bake perfect sourdough loaves",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Loaves Baked", Type: spec.TrackerCounter, Target: 20},
					{Name: "Starter Days", Type: spec.TrackerCounter, Target: frac(days, 0.8)},
					{Name: "Successful Bakes", Type: spec.TrackerCounter, Target: 15},
				}
			},
			Motivation: []string{
				"Every loaf is a step toward mastery! 🍞",
				"Patience and practice make perfect bread",
				"Your starter is alive - nurture it daily",
				"The smell of fresh bread is worth the effort",
				"Sourdough is an art form - you're the artist!",
			},
		},
	},
	{
		ID:       "treehouse",
		Keywords: []string{"treehouse", "tree house", "build a treehouse"},
		Template: GoalTemplate{
			Title:    "Build a Treehouse",
			Category: spec.CategoryCreative,
			Target:   "Complete amazing treehouse for kids",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Planning Hours", Type: spec.TrackerNumber, Unit: "hours", Target: 20},
					{Name: "Build Days", Type: spec.TrackerCounter, Target: frac(days, 0.3)},
					{Name: "Materials Acquired", Type: spec.TrackerPercentage, Target: 100},
				}
			},
			Motivation: []string{
				"Building memories one plank at a time! 🏠",
				"Your kids will treasure this forever",
				"Every nail brings the dream closer to reality",
				"Safety first, fun second, memories forever",
				"The best playground is the one you build yourself!",
			},
		},
	},
	{
		ID:       "juggling",
		Keywords: []string{"juggle", "juggling", "perform at parties"},
		Template: GoalTemplate{
			Title:    "Learn to Juggle Like a Pro",
			Category: spec.CategoryCreative,
			Target:   "Juggle 3 balls consistently",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Practice Sessions", Type: spec.TrackerCounter, Target: frac(days, 0.8)},
					{Name: "Consecutive Catches", Type: spec.TrackerNumber, Target: 50},
					{Name: "Tricks Learned", Type: spec.TrackerCounter, Target: 5},
				}
			},
			Motivation: []string{
				"Drop the ball? Pick it up and try again! 🤹‍♂️",
				"Juggling is all about rhythm and patience",
				"Every drop teaches you something new",
				"Soon you'll be the life of the party!",
				"Practice makes permanent, not perfect",
			},
		},
	},
	{
		ID:       "vegetable_garden",
		Keywords: []string{"vegetable garden", "grow vegetables", "self-sufficient", "grow a vegetable garden"},
		Template: GoalTemplate{
			Title:    "Grow Vegetable Garden",
			Category: spec.CategoryCreative,
			Target:   "Become self-sufficient with vegetables",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Plants Growing", Type: spec.TrackerCounter, Target: 20},
					{Name: "Harvest Days", Type: spec.TrackerCounter, Target: frac(days, 0.4)},
					{Name: "Vegetables Harvested", Type: spec.TrackerCounter, Target: 100},
				}
			},
			Motivation: []string{
				"From seed to table - you're growing life! 🌱",
				"Every plant is a step toward self-sufficiency",
				"Nature rewards patience and care",
				"Fresh vegetables taste like victory",
				"You're feeding your family with your own hands!",
			},
		},
	},
	{
		ID:       "beatboxing",
		Keywords: []string{"beatbox", "beatboxing", "beat box", "join a band"},
		Template: GoalTemplate{
			Title:    "Master Beatboxing",
			Category: spec.CategoryCreative,
			Target:   "Join a band as beatboxer",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Practice Sessions", Type: spec.TrackerCounter, Target: frac(days, 0.8)},
					{Name: "Beats Mastered", Type: spec.TrackerCounter, Target: 15},
					{Name: "Performance Ready", Type: spec.TrackerPercentage, Target: 100},
				}
			},
			Motivation: []string{
				"Your mouth is your instrument! 🎵",
				"Every beat brings you closer to the stage",
				"Rhythm is in your soul - let it out",
				"Bands need beatboxers - be their missing piece",
				"Make music with nothing but your voice!",
			},
		},
	},
	{
		ID:       "origami",
		Keywords: []string{"origami", "paper folding", "teach others"},
		Template: GoalTemplate{
			Title:    "Master Origami",
			Category: spec.CategoryCreative,
			Target:   "Teach origami to others",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Models Learned", Type: spec.TrackerCounter, Target: 50},
					{Name: "Practice Hours", Type: spec.TrackerNumber, Unit: "hours", Target: frac(days, 2)},
					{Name: "People Taught", Type: spec.TrackerCounter, Target: 10},
				}
			},
			Motivation: []string{
				"Paper becomes art in your hands! 📜",
				"Patience and precision create beauty",
				"Every fold is a meditation",
				"Teaching others multiplies the joy",
				"Ancient art, modern master - that's you!",
			},
		},
	},
	{
		ID:       "youtube",
		Keywords: []string{"youtube", "youtube channel", "subscribers", "10k subscribers"},
		Template: GoalTemplate{
			Title:    "Build YouTube Channel",
			Category: spec.CategoryBusiness,
			Target:   "Grow successful YouTube channel",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Videos Published", Type: spec.TrackerCounter, Target: 50},
					{Name: "Subscribers", Type: spec.TrackerCounter, Target: 1000},
					{Name: "Total Views", Type: spec.TrackerNumber, Target: 10000},
				}
			},
			Motivation: []string{
				"Every video is a step toward your audience! 📹",
				"Consistency beats perfection on YouTube",
				"Your unique voice matters in the noise",
				"Subscribers are people who believe in you",
				"The algorithm rewards authentic creators!",
			},
		},
	},
	{
		ID:       "scuba",
		Keywords: []string{"scuba", "diving instructor", "underwater", "certified scuba diving instructor"},
		Template: GoalTemplate{
			Title:    "Become Scuba Diving Instructor",
			Category: spec.CategoryCareer,
			Target:   "Get certified as scuba instructor",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Certification Levels", Type: spec.TrackerCounter, Target: 5},
					{Name: "Dive Hours", Type: spec.TrackerNumber, Unit: "hours", Target: 100},
					{Name: "Students Taught", Type: spec.TrackerCounter, Target: 20},
				}
			},
			Motivation: []string{
				"The ocean is calling - answer with expertise! 🌊",
				"Every dive deepens your knowledge",
				"Safety first, adventure always",
				"Share the underwater world with others",
				"Turn your passion into your profession!",
			},
		},
	},
	{
		ID:       "day_trading",
		Keywords: []string{"day trading", "trading", "stocks", "forex", "consistent profits"},
		Template: GoalTemplate{
			Title:    "Master Day Trading",
			Category: spec.CategoryFinancial,
			Target:   "Become profitable day trader",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Trading Days", Type: spec.TrackerCounter, Target: frac(days, 0.7)},
					{Name: "Profitable Trades", Type: spec.TrackerCounter, Target: 100},
					{Name: "Study Hours", Type: spec.TrackerNumber, Unit: "hours", Target: 200},
				}
			},
			Motivation: []string{
				"Discipline and patience create profits! 📈",
				"Every loss is a lesson in disguise",
				"Risk management is your best friend",
				"The market rewards prepared minds",
				"Consistency beats home runs in trading!",
			},
		},
	},
	{
		ID:       "public_speaking",
		Keywords: []string{"public speaking", "fear of speaking", "presentation", "overcome my fear of public speaking"},
		Template: GoalTemplate{
			Title:    "Overcome Fear of Public Speaking",
			Category: spec.CategoryPersonal,
			Target:   "Speak confidently in public",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Practice Sessions", Type: spec.TrackerCounter, Target: frac(days, 0.6)},
					{Name: "Speeches Given", Type: spec.TrackerCounter, Target: 10},
					{Name: "Confidence Level", Type: spec.TrackerPercentage, Target: 100},
				}
			},
			Motivation: []string{
				"Your voice deserves to be heard! 🎤",
				"Every speech makes you stronger",
				"Fear is just excitement without breath",
				"The audience wants you to succeed",
				"Confidence grows with every word spoken!",
			},
		},
	},
	{
		ID:       "minimalism",
		Keywords: []string{"minimalist", "declutter", "minimalism", "become minimalist"},
		Template: GoalTemplate{
			Title:    "Become Minimalist",
			Category: spec.CategoryPersonal,
			Target:   "Declutter life and embrace minimalism",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Items Decluttered", Type: spec.TrackerCounter, Target: 500},
					{Name: "Rooms Organized", Type: spec.TrackerCounter, Target: 8},
					{Name: "Minimalist Days", Type: spec.TrackerCounter, Target: frac(days, 0.8)},
				}
			},
			Motivation: []string{
				"Less stuff, more life! ✨",
				"Every item removed creates space for joy",
				"Minimalism is maximum freedom",
				"Own less, live more",
				"Simplicity is the ultimate sophistication!",
			},
		},
	},
	{
		ID:       "lucid_dreaming",
		Keywords: []string{"lucid dream", "lucid dreaming", "consistently", "learn to lucid dream"},
		Template: GoalTemplate{
			Title:    "Master Lucid Dreaming",
			Category: spec.CategoryPersonal,
			Target:   "Achieve consistent lucid dreams",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Dream Journal Entries", Type: spec.TrackerCounter, Target: frac(days, 0.8)},
					{Name: "Lucid Dreams", Type: spec.TrackerCounter, Target: 10},
					{Name: "Reality Checks", Type: spec.TrackerCounter, Target: frac(days, 5)},
				}
			},
			Motivation: []string{
				"Your dreams are your playground! 🌙",
				"Awareness in dreams leads to awareness in life",
				"Every dream journal entry brings you closer",
				"Reality checks become second nature",
				"The dream world awaits your consciousness!",
			},
		},
	},
	{
		ID:       "friendship",
		Keywords: []string{"make friends", "friendship", "social connections", "genuine friendships", "5 new genuine friendships"},
		Template: GoalTemplate{
			Title:    "Build Genuine Friendships",
			Category: spec.CategorySocial,
			Target:   "Make 5 new genuine friends",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "New People Met", Type: spec.TrackerCounter, Target: 25},
					{Name: "Deep Conversations", Type: spec.TrackerCounter, Target: 15},
					{Name: "Genuine Friends", Type: spec.TrackerCounter, Target: 5},
				}
			},
			Motivation: []string{
				"Friendship is life's greatest treasure! 👥",
				"Every conversation is a potential connection",
				"Be the friend you want to have",
				"Quality over quantity in relationships",
				"Your tribe is out there - keep looking!",
			},
		},
	},
	{
		ID:       "reconnect_friends",
		Keywords: []string{"reconnect", "old friends", "strengthen bonds", "reconnect with old friends"},
		Template: GoalTemplate{
			Title:    "Reconnect with Old Friends",
			Category: spec.CategorySocial,
			Target:   "Strengthen bonds with old friends",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Friends Contacted", Type: spec.TrackerCounter, Target: 15},
					{Name: "Meetups Organized", Type: spec.TrackerCounter, Target: 8},
					{Name: "Bonds Strengthened", Type: spec.TrackerCounter, Target: 10},
				}
			},
			Motivation: []string{
				"Old friends are life's greatest gifts! 💝",
				"Time apart makes reunion sweeter",
				"Reach out - they miss you too",
				"Shared memories are priceless treasures",
				"Friendship transcends time and distance!",
			},
		},
	},
	{
		ID:       "photography",
		Keywords: []string{"photography", "photographer", "photos", "stunning portfolio"},
		Template: GoalTemplate{
			Title:    "Master Photography",
			Category: spec.CategoryCreative,
			Target:   "Build stunning photo portfolio",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Photos Taken", Type: spec.TrackerCounter, Target: 500},
					{Name: "Portfolio Photos", Type: spec.TrackerCounter, Target: 50},
					{Name: "Techniques Learned", Type: spec.TrackerCounter, Target: 15},
				}
			},
			Motivation: []string{
				"Every click captures a moment in time! 📸",
				"Light is your paintbrush, the world your canvas",
				"The best camera is the one you have with you",
				"Photography is about seeing, not just looking",
				"Your unique perspective matters!",
			},
		},
	},
	{
		ID:       "calligraphy",
		Keywords: []string{"calligraphy", "beautiful art", "hand lettering"},
		Template: GoalTemplate{
			Title:    "Master Calligraphy",
			Category: spec.CategoryCreative,
			Target:   "Create beautiful calligraphy art",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Practice Sessions", Type: spec.TrackerCounter, Target: frac(days, 0.8)},
					{Name: "Styles Learned", Type: spec.TrackerCounter, Target: 5},
					{Name: "Artworks Created", Type: spec.TrackerCounter, Target: 20},
				}
			},
			Motivation: []string{
				"Every stroke is a work of art! ✒️",
				"Beautiful writing is meditation in motion",
				"Your hand creates what your heart feels",
				"Patience and practice create perfection",
				"Ancient art, modern master!",
			},
		},
	},
	{
		ID:       "magic_tricks",
		Keywords: []string{"magic tricks", "amaze my friends", "magic", "magician"},
		Template: GoalTemplate{
			Title:    "Learn Magic Tricks",
			Category: spec.CategoryCreative,
			Target:   "Amaze friends with magic",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Tricks Learned", Type: spec.TrackerCounter, Target: 25},
					{Name: "Practice Hours", Type: spec.TrackerNumber, Unit: "hours", Target: frac(days, 2)},
					{Name: "Performances Given", Type: spec.TrackerCounter, Target: 10},
				}
			},
			Motivation: []string{
				"Magic is wonder made visible! 🎩",
				"Every trick mastered is a moment of amazement",
				"Practice makes the impossible possible",
				"Your audience believes in magic because of you",
				"The real magic is in bringing joy to others!",
			},
		},
	},
	{
		ID:       "chess",
		Keywords: []string{"chess", "compete in tournaments", "chess master"},
		Template: GoalTemplate{
			Title:    "Master Chess & Compete",
			Category: spec.CategoryLearning,
			Target:   "Compete in chess tournaments",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Games Played", Type: spec.TrackerCounter, Target: 500},
					{Name: "Rating Points", Type: spec.TrackerNumber, Target: 1800},
					{Name: "Tournaments Entered", Type: spec.TrackerCounter, Target: 5},
				}
			},
			Motivation: []string{
				"Every move teaches you strategy! ♟️",
				"Chess is the gymnasium of the mind",
				"Think three moves ahead",
				"Patience and tactics win games",
				"Become the grandmaster of your own game!",
			},
		},
	},
	{
		ID:       "wine",
		Keywords: []string{"wine connoisseur", "sommelier", "wine tasting", "wine"},
		Template: GoalTemplate{
			Title:    "Become Wine Connoisseur",
			Category: spec.CategoryLearning,
			Target:   "Master wine knowledge and become sommelier",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Wines Tasted", Type: spec.TrackerCounter, Target: 200},
					{Name: "Wine Regions Studied", Type: spec.TrackerCounter, Target: 15},
					{Name: "Certification Progress", Type: spec.TrackerPercentage, Target: 100},
				}
			},
			Motivation: []string{
				"Every sip is a journey through terroir! 🍷",
				"Wine is poetry in a bottle",
				"Your palate is developing sophistication",
				"Great wines tell stories of their land",
				"Become the sommelier you dream to be!",
			},
		},
	},
	{
		ID:       "guitar",
		Keywords: []string{"learn to play guitar", "guitar", "open mic nights", "play guitar"},
		Template: GoalTemplate{
			Title:    "Learn Guitar & Perform",
			Category: spec.CategoryCreative,
			Target:   "Play guitar at open mic nights",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Practice Hours", Type: spec.TrackerNumber, Unit: "hours", Target: frac(days, 2)},
					{Name: "Songs Learned", Type: spec.TrackerCounter, Target: 20},
					{Name: "Performances Given", Type: spec.TrackerCounter, Target: 5},
				}
			},
			Motivation: []string{
				"Every chord brings you closer to the stage! 🎸",
				"Music is the universal language of the soul",
				"Your fingers are learning to speak music",
				"Open mic nights await your unique sound",
				"Strum your way to musical mastery!",
			},
		},
	},
	{
		ID:       "weight_loss",
		Keywords: []string{"lose 30 pounds", "lose weight", "best shape of my life", "get in shape"},
		Template: GoalTemplate{
			Title:    "Ultimate Fitness Transformation",
			Category: spec.CategoryFitness,
			Target:   "Lose 30 pounds and get in best shape",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Weight Lost", Type: spec.TrackerNumber, Unit: "lbs", Target: 30},
					{Name: "Workout Days", Type: spec.TrackerCounter, Target: frac(days, 0.8)},
					{Name: "Healthy Meals", Type: spec.TrackerCounter, Target: frac(days, 2)},
				}
			},
			Motivation: []string{
				"Every pound lost is a victory won! 💪",
				"Your body is transforming into its best version",
				"Discipline today, confidence tomorrow",
				"You're not just losing weight, you're gaining life",
				"The best shape of your life awaits!",
			},
		},
	},
	{
		ID:       "tiny_house",
		Keywords: []string{"tiny house", "live off-grid", "off grid"},
		Template: GoalTemplate{
			Title:    "Build Tiny House & Live Off-Grid",
			Category: spec.CategoryCreative,
			Target:   "Complete tiny house and live sustainably",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Construction Progress", Type: spec.TrackerPercentage, Target: 100},
					{Name: "Skills Learned", Type: spec.TrackerCounter, Target: 15},
					{Name: "Sustainable Systems", Type: spec.TrackerCounter, Target: 8},
				}
			},
			Motivation: []string{
				"Small house, big dreams! 🏠",
				"Building your future one nail at a time",
				"Simplicity is the ultimate sophistication",
				"Off-grid living = ultimate freedom",
				"Your sustainable paradise awaits!",
			},
		},
	},
	{
		ID:       "food_truck",
		Keywords: []string{"food truck business", "food truck"},
		Template: GoalTemplate{
			Title:    "Launch Food Truck Business",
			Category: spec.CategoryBusiness,
			Target:   "Start successful food truck",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Business Plan Progress", Type: spec.TrackerPercentage, Target: 100},
					{Name: "Permits Obtained", Type: spec.TrackerCounter, Target: 8},
					{Name: "Revenue", Type: spec.TrackerNumber, Unit: "$", Target: 50000},
				}
			},
			Motivation: []string{
				"Your culinary dreams are on wheels! 🚚",
				"Every meal served builds your business",
				"Food brings people together",
				"Your recipes deserve to be shared",
				"Success is served one customer at a time!",
			},
		},
	},
	{
		ID:       "freelance_design",
		Keywords: []string{"freelance graphic designer", "graphic design"},
		Template: GoalTemplate{
			Title:    "Become Freelance Designer",
			Category: spec.CategoryBusiness,
			Target:   "Build successful freelance design career",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Clients Acquired", Type: spec.TrackerCounter, Target: 20},
					{Name: "Projects Completed", Type: spec.TrackerCounter, Target: 50},
					{Name: "Monthly Income", Type: spec.TrackerNumber, Unit: "$", Target: 5000},
				}
			},
			Motivation: []string{
				"Your creativity pays the bills! 🎨",
				"Every design tells a story",
				"Freelance freedom is worth the hustle",
				"Your portfolio is your passport to success",
				"Design the career you want!",
			},
		},
	},
	{
		ID:       "podcast",
		Keywords: []string{"launch my own podcast", "podcast", "1000 listeners"},
		Template: GoalTemplate{
			Title:    "Launch Successful Podcast",
			Category: spec.CategoryBusiness,
			Target:   "Get 1000 podcast listeners",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Episodes Published", Type: spec.TrackerCounter, Target: 26},
					{Name: "Total Listeners", Type: spec.TrackerCounter, Target: 1000},
					{Name: "Recording Hours", Type: spec.TrackerNumber, Unit: "hours", Target: 100},
				}
			},
			Motivation: []string{
				"Your voice deserves to be heard! 🎙️",
				"Every episode builds your audience",
				"Consistency creates loyal listeners",
				"Share your passion with the world",
				"Podcasting is storytelling for the digital age!",
			},
		},
	},
	{
		ID:       "early_riser",
		Keywords: []string{"wake up at 5 am", "more productive", "5 am"},
		Template: GoalTemplate{
			Title:    "Become 5 AM Productivity Master",
			Category: spec.CategoryPersonal,
			Target:   "Wake up at 5 AM daily and boost productivity",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "5 AM Wake-ups", Type: spec.TrackerCounter, Target: frac(days, 0.9)},
					{Name: "Morning Routine Days", Type: spec.TrackerCounter, Target: frac(days, 0.8)},
					{Name: "Productive Hours", Type: spec.TrackerNumber, Unit: "hours", Target: float64(days * 2)},
				}
			},
			Motivation: []string{
				"The early bird catches the worm! 🌅",
				"5 AM is your secret weapon for success",
				"While others sleep, you're building your future",
				"Morning discipline creates daily victories",
				"Productivity starts before the world wakes up!",
			},
		},
	},
	{
		ID:       "rock_climbing",
		Keywords: []string{"rock climbing", "conquer my first mountain", "climbing"},
		Template: GoalTemplate{
			Title:    "Master Rock Climbing",
			Category: spec.CategoryFitness,
			Target:   "Conquer your first mountain",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Climbing Sessions", Type: spec.TrackerCounter, Target: frac(days, 0.6)},
					{Name: "Routes Completed", Type: spec.TrackerCounter, Target: 100},
					{Name: "Skill Level", Type: spec.TrackerPercentage, Target: 100},
				}
			},
			Motivation: []string{
				"Reach new heights every day! 🧗‍♂️",
				"The mountain doesn't care about your excuses",
				"Grip strength builds character",
				"Every hold teaches you perseverance",
				"The summit is just the beginning!",
			},
		},
	},
	{
		ID:       "triathlon",
		Keywords: []string{"triathlon", "complete a triathlon"},
		Template: GoalTemplate{
			Title:    "Complete a Triathlon",
			Category: spec.CategoryFitness,
			Target:   "Finish your first triathlon",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Training Sessions", Type: spec.TrackerCounter, Target: frac(days, 0.8)},
					{Name: "Swim Distance", Type: spec.TrackerNumber, Unit: "miles", Target: 50},
					{Name: "Bike Distance", Type: spec.TrackerNumber, Unit: "miles", Target: 500},
				}
			},
			Motivation: []string{
				"Swim, bike, run - you're unstoppable! 🏊‍♂️🚴‍♂️🏃‍♂️",
				"Three sports, one incredible achievement",
				"Your body is capable of amazing things",
				"Endurance is built one workout at a time",
				"Cross that finish line like a champion!",
			},
		},
	},
	{
		ID:       "martial_arts",
		Keywords: []string{"martial arts", "black belt", "karate", "judo", "taekwondo"},
		Template: GoalTemplate{
			Title:    "Earn Black Belt",
			Category: spec.CategoryFitness,
			Target:   "Achieve black belt in martial arts",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Training Sessions", Type: spec.TrackerCounter, Target: frac(days, 0.8)},
					{Name: "Belt Levels", Type: spec.TrackerCounter, Target: 8},
					{Name: "Techniques Mastered", Type: spec.TrackerCounter, Target: 50},
				}
			},
			Motivation: []string{
				"Discipline creates warriors! 🥋",
				"Every belt earned is a milestone conquered",
				"Martial arts builds body and character",
				"Respect, discipline, perseverance",
				"The black belt is just the beginning!",
			},
		},
	},
	{
		ID:       "dating",
		Keywords: []string{"improve my dating life", "meaningful relationship", "dating"},
		Template: GoalTemplate{
			Title:    "Improve Dating Life",
			Category: spec.CategorySocial,
			Target:   "Find meaningful relationship",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Dates Attended", Type: spec.TrackerCounter, Target: 20},
					{Name: "Confidence Level", Type: spec.TrackerPercentage, Target: 100},
					{Name: "Social Skills Practice", Type: spec.TrackerCounter, Target: frac(days, 0.5)},
				}
			},
			Motivation: []string{
				"Love starts with loving yourself! 💕",
				"Every conversation is practice",
				"Authenticity attracts the right person",
				"Confidence is your best accessory",
				"Your person is out there - keep looking!",
			},
		},
	},
	{
		ID:       "parenting",
		Keywords: []string{"better parent", "quality time with my kids", "parenting"},
		Template: GoalTemplate{
			Title:    "Become Better Parent",
			Category: spec.CategoryPersonal,
			Target:   "Spend quality time with kids",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Quality Time Hours", Type: spec.TrackerNumber, Unit: "hours", Target: frac(days, 2)},
					{Name: "Activities Together", Type: spec.TrackerCounter, Target: 50},
					{Name: "Parenting Skills", Type: spec.TrackerPercentage, Target: 100},
				}
			},
			Motivation: []string{
				"Your kids need you, not your perfection! 👨‍👩‍👧‍👦",
				"Quality time is the best gift you can give",
				"Every moment matters in their memory",
				"Parenting is the hardest job you'll ever love",
				"You're shaping the future, one hug at a time!",
			},
		},
	},
	{
		ID:       "travel",
		Keywords: []string{"visit 10 new countries", "new countries", "travel the world"},
		Template: GoalTemplate{
			Title:    "World Travel Adventure",
			Category: spec.CategoryPersonal,
			Target:   "Visit 10 new countries",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Countries Visited", Type: spec.TrackerCounter, Target: 10},
					{Name: "Cities Explored", Type: spec.TrackerCounter, Target: 25},
					{Name: "Cultural Experiences", Type: spec.TrackerCounter, Target: 50},
				}
			},
			Motivation: []string{
				"The world is your classroom! 🌍",
				"Every country teaches you something new",
				"Travel broadens the mind and soul",
				"Collect moments, not just souvenirs",
				"Adventure awaits beyond your comfort zone!",
			},
		},
	},
	{
		ID:       "survival",
		Keywords: []string{"survival skills", "camping alone", "wilderness"},
		Template: GoalTemplate{
			Title:    "Master Survival Skills",
			Category: spec.CategoryPersonal,
			Target:   "Learn wilderness survival",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Skills Learned", Type: spec.TrackerCounter, Target: 20},
					{Name: "Camping Trips", Type: spec.TrackerCounter, Target: 10},
					{Name: "Survival Challenges", Type: spec.TrackerCounter, Target: 5},
				}
			},
			Motivation: []string{
				"Nature is your classroom! 🏕️",
				"Self-reliance builds confidence",
				"Every skill could save your life",
				"The wilderness teaches what matters",
				"Become one with the wild!",
			},
		},
	},
	{
		ID:       "hiking",
		Keywords: []string{"hike the entire", "appalachian trail", "long distance hiking"},
		Template: GoalTemplate{
			Title:    "Hike the Appalachian Trail",
			Category: spec.CategoryFitness,
			Target:   "Complete the entire Appalachian Trail",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Miles Hiked", Type: spec.TrackerNumber, Unit: "miles", Target: 2190},
					{Name: "Training Days", Type: spec.TrackerCounter, Target: frac(days, 0.8)},
					{Name: "Gear Acquired", Type: spec.TrackerPercentage, Target: 100},
				}
			},
			Motivation: []string{
				"Every step brings you closer to the summit! 🥾",
				"The trail teaches you about yourself",
				"Mountains are calling and you must go",
				"One foot in front of the other",
				"The journey of 2,190 miles begins with a single step!",
			},
		},
	},
	{
		ID:       "language_learning",
		Keywords: []string{"learn a new language every", "new language", "language every"},
		Template: GoalTemplate{
			Title:    "Polyglot Challenge",
			Category: spec.CategoryLearning,
			Target:   "Learn multiple languages",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Languages Started", Type: spec.TrackerCounter, Target: 3},
					{Name: "Study Hours", Type: spec.TrackerNumber, Unit: "hours", Target: frac(days, 3)},
					{Name: "Conversations Held", Type: spec.TrackerCounter, Target: 50},
				}
			},
			Motivation: []string{
				"Every language opens a new world! 🌍",
				"Polyglots see the world differently",
				"Language is the key to culture",
				"Your brain grows with every word",
				"Speak the world into existence!",
			},
		},
	},
	{
		ID:       "pushups",
		Keywords: []string{"100 push-ups", "push-ups in a row", "pushups"},
		Template: GoalTemplate{
			Title:    "Master 100 Push-ups",
			Category: spec.CategoryFitness,
			Target:   "Do 100 push-ups in a row",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Max Push-ups", Type: spec.TrackerNumber, Target: 100},
					{Name: "Training Days", Type: spec.TrackerCounter, Target: frac(days, 0.8)},
					{Name: "Total Push-ups", Type: spec.TrackerCounter, Target: 5000},
				}
			},
			Motivation: []string{
				"Every push-up builds unstoppable strength! 💪",
				"Your body is capable of amazing things",
				"100 push-ups = 100% dedication",
				"Strength isn't given, it's earned",
				"Push through the burn, embrace the power!",
			},
		},
	},
	{
		ID:       "meditation",
		Keywords: []string{"meditate daily", "inner peace", "meditation"},
		Template: GoalTemplate{
			Title:    "Daily Meditation Practice",
			Category: spec.CategoryHealth,
			Target:   "Find inner peace through meditation",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Meditation Days", Type: spec.TrackerCounter, Target: frac(days, 0.9)},
					{Name: "Total Minutes", Type: spec.TrackerNumber, Unit: "minutes", Target: float64(days * 20)},
					{Name: "Peaceful Moments", Type: spec.TrackerCounter, Target: frac(days, 0.7)},
				}
			},
			Motivation: []string{
				"Peace begins with a single breath 🧘‍♂️",
				"Every moment of stillness is a victory",
				"Your mind is training for tranquility",
				"Inner peace is your natural state",
				"Meditation is not escape, it's coming home",
			},
		},
	},
	{
		ID:       "reading",
		Keywords: []string{"read 52 books", "books this year", "reading challenge"},
		Template: GoalTemplate{
			Title:    "Reading Challenge",
			Category: spec.CategoryLearning,
			Target:   "Read 52 books this year",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Books Read", Type: spec.TrackerCounter, Target: 52},
					{Name: "Pages Read", Type: spec.TrackerCounter, Target: 15000},
					{Name: "Reading Days", Type: spec.TrackerCounter, Target: frac(days, 0.8)},
				}
			},
			Motivation: []string{
				"Every book is a new adventure! 📚",
				"Reading is dreaming with open eyes",
				"Knowledge grows with every page turned",
				"Books are portals to infinite worlds",
				"Your mind expands with every story!",
			},
		},
	},
	{
		ID:       "cooking",
		Keywords: []string{"cook", "cooking", "chef", "recipe", "baking", "culinary"},
		Template: GoalTemplate{
			Title:    "Become a Cooking Master",
			Category: spec.CategoryCreative,
			Target:   "Cook amazing meals confidently",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Recipes Mastered", Type: spec.TrackerCounter, Target: 30},
					{Name: "Cooking Days", Type: spec.TrackerCounter, Target: frac(days, 0.7)},
					{Name: "New Techniques", Type: spec.TrackerCounter, Target: 10},
				}
			},
			Motivation: []string{
				"Every dish is a delicious experiment! 👨‍🍳",
				"Cooking is love made visible",
				"Master the basics, then get creative",
				"Your kitchen is your laboratory",
				"Great chefs are made, not born!",
			},
		},
	},
	{
		ID:       "gardening",
		Keywords: []string{"garden", "gardening", "grow plants"},
		Template: GoalTemplate{
			Title:    "Grow Vegetable Garden",
			Category: spec.CategoryCreative,
			Target:   "Become self-sufficient with vegetables",
			Trackers: func(days int) []spec.Tracker {
				return []spec.Tracker{
					{Name: "Plants Growing", Type: spec.TrackerCounter, Target: 20},
					{Name: "Harvest Days", Type: spec.TrackerCounter, Target: frac(days, 0.4)},
					{Name: "Vegetables Harvested", Type: spec.TrackerCounter, Target: 100},
				}
			},
			Motivation: []string{
				"From seed to table - you're growing life! 🌱",
				"Every plant is a step toward self-sufficiency",
				"Nature rewards patience and care",
				"Fresh vegetables taste like victory",
				"You're feeding your family with your own hands!",
			},
		},
	},
}
