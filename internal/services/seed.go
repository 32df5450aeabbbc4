package services

import "github.com/ahmetcoskunkizilkaya/wellness-backend/internal/models"

type seedTip struct {
	Title       string
	Description string
	Icon        string
	Color       string
	Category    models.TipCategory
}

var defaultCatalog = []seedTip{
	{"Box breathing", "Breathe in for four seconds, hold for four, breathe out for four and hold again. Repeat for two minutes.", "wind", "#60A5FA", models.CategoryStress},
	{"Take a short walk", "A ten minute walk outside lowers tension and clears your head.", "footprints", "#34D399", models.CategoryStress},
	{"Write it down", "List what is worrying you and pick one small next step for each item.", "pencil", "#FBBF24", models.CategoryStress},
	{"Progressive muscle relaxation", "Tense each muscle group for five seconds, then release, working from your feet up.", "activity", "#A78BFA", models.CategoryStress},

	{"Keep a sleep schedule", "Go to bed and wake up at the same time every day, weekends included.", "clock", "#818CF8", models.CategorySleep},
	{"Screens off before bed", "Put phones and laptops away at least an hour before sleeping.", "smartphone", "#6366F1", models.CategorySleep},
	{"Cool, dark bedroom", "Keep your bedroom cool, quiet and dark to fall asleep faster.", "moon", "#4F46E5", models.CategorySleep},
	{"Watch the caffeine", "Avoid coffee and energy drinks after early afternoon.", "coffee", "#92400E", models.CategorySleep},

	{"Three good things", "Before bed, note three things that went well today and why.", "smile", "#F472B6", models.CategoryMood},
	{"Reach out", "Message or call a friend you have not talked to in a while.", "message-circle", "#FB7185", models.CategoryMood},
	{"Get some sunlight", "Spend at least fifteen minutes in daylight, ideally in the morning.", "sun", "#F59E0B", models.CategoryMood},
	{"Do something you enjoy", "Schedule a small activity you look forward to every day.", "music", "#EC4899", models.CategoryMood},

	{"Stay hydrated", "Drink a glass of water with every meal and keep a bottle nearby.", "droplet", "#38BDF8", models.CategoryWellness},
	{"Move every day", "Aim for thirty minutes of movement you like, split up if needed.", "heart", "#EF4444", models.CategoryWellness},
	{"Mindful minute", "Pause for one minute and notice five things you can see and hear.", "eye", "#10B981", models.CategoryWellness},
	{"Eat regular meals", "Regular balanced meals keep your energy and mood steady.", "apple", "#84CC16", models.CategoryWellness},
	{"Take screen breaks", "Every hour, look away from the screen and stretch for a couple of minutes.", "monitor", "#14B8A6", models.CategoryWellness},
}

func defaultTips() []models.Tip {
	tips := make([]models.Tip, len(defaultCatalog))
	for i, t := range defaultCatalog {
		tips[i] = models.Tip{
			Title:       t.Title,
			Description: t.Description,
			Icon:        t.Icon,
			Color:       t.Color,
			Category:    t.Category,
		}
	}
	return tips
}
