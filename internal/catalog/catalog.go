// Package catalog holds the built-in mission reference data. The catalog
// is immutable: user completion state lives in the progress engine, never
// here.
package catalog

import "wellquest/internal/models"

// Categories returns the fixed mission categories with their missions.
func Categories() []models.MissionCategory {
	return []models.MissionCategory{
		{
			ID:          "fitness",
			Name:        "Fitness & Health",
			Description: "Stay active and healthy",
			Icon:        "dumbbell",
			Color:       "#ef4444",
			Missions: []models.Mission{
				{ID: "walk_10k", Title: "Walk 10,000 steps", Description: "Complete 10,000 steps in a single day", Points: 50, Difficulty: models.DifficultyEasy, Category: "fitness"},
				{ID: "workout_30min", Title: "30-minute workout", Description: "Complete a 30-minute exercise session", Points: 75, Difficulty: models.DifficultyMedium, Category: "fitness"},
				{ID: "drink_water", Title: "Drink 8 glasses of water", Description: "Stay hydrated throughout the day", Points: 30, Difficulty: models.DifficultyEasy, Category: "fitness"},
				{ID: "run_5k", Title: "Run 5 kilometers", Description: "Complete a 5K run without stopping", Points: 100, Difficulty: models.DifficultyHard, Category: "fitness"},
			},
		},
		{
			ID:          "learning",
			Name:        "Learning & Growth",
			Description: "Expand your knowledge",
			Icon:        "book-open",
			Color:       "#3b82f6",
			Missions: []models.Mission{
				{ID: "read_30min", Title: "Read for 30 minutes", Description: "Spend 30 minutes reading a book or article", Points: 40, Difficulty: models.DifficultyEasy, Category: "learning"},
				{ID: "online_course", Title: "Complete online lesson", Description: "Finish one lesson from an online course", Points: 60, Difficulty: models.DifficultyMedium, Category: "learning"},
				{ID: "new_skill", Title: "Practice new skill", Description: "Spend 1 hour practicing a new skill", Points: 80, Difficulty: models.DifficultyMedium, Category: "learning"},
				{ID: "language_practice", Title: "Language practice", Description: "Practice a foreign language for 45 minutes", Points: 70, Difficulty: models.DifficultyMedium, Category: "learning"},
			},
		},
		{
			ID:          "productivity",
			Name:        "Productivity",
			Description: "Get things done efficiently",
			Icon:        "target",
			Color:       "#10b981",
			Missions: []models.Mission{
				{ID: "inbox_zero", Title: "Achieve inbox zero", Description: "Clear all emails from your inbox", Points: 50, Difficulty: models.DifficultyMedium, Category: "productivity"},
				{ID: "deep_work", Title: "2 hours of deep work", Description: "Focus on important tasks for 2 hours straight", Points: 90, Difficulty: models.DifficultyHard, Category: "productivity"},
				{ID: "organize_workspace", Title: "Organize workspace", Description: "Clean and organize your work area", Points: 35, Difficulty: models.DifficultyEasy, Category: "productivity"},
				{ID: "plan_tomorrow", Title: "Plan tomorrow", Description: "Create a detailed plan for the next day", Points: 25, Difficulty: models.DifficultyEasy, Category: "productivity"},
			},
		},
		{
			ID:          "social",
			Name:        "Social & Relationships",
			Description: "Connect with others",
			Icon:        "users",
			Color:       "#f59e0b",
			Missions: []models.Mission{
				{ID: "call_friend", Title: "Call a friend", Description: "Have a meaningful conversation with a friend", Points: 45, Difficulty: models.DifficultyEasy, Category: "social"},
				{ID: "help_someone", Title: "Help someone", Description: "Offer help or support to someone in need", Points: 60, Difficulty: models.DifficultyMedium, Category: "social"},
				{ID: "family_time", Title: "Quality family time", Description: "Spend quality time with family members", Points: 55, Difficulty: models.DifficultyEasy, Category: "social"},
				{ID: "network_event", Title: "Attend networking event", Description: "Participate in a social or professional event", Points: 80, Difficulty: models.DifficultyHard, Category: "social"},
			},
		},
		{
			ID:          "creativity",
			Name:        "Creativity & Hobbies",
			Description: "Express your creative side",
			Icon:        "palette",
			Color:       "#8b5cf6",
			Missions: []models.Mission{
				{ID: "draw_sketch", Title: "Create a drawing", Description: "Spend 30 minutes drawing or sketching", Points: 40, Difficulty: models.DifficultyEasy, Category: "creativity"},
				{ID: "write_journal", Title: "Write in journal", Description: "Write a thoughtful journal entry", Points: 35, Difficulty: models.DifficultyEasy, Category: "creativity"},
				{ID: "music_practice", Title: "Practice music", Description: "Practice playing an instrument for 45 minutes", Points: 65, Difficulty: models.DifficultyMedium, Category: "creativity"},
				{ID: "creative_project", Title: "Work on creative project", Description: "Spend 2 hours on a personal creative project", Points: 85, Difficulty: models.DifficultyHard, Category: "creativity"},
			},
		},
	}
}

// Missions flattens all categories into the seed list for a fresh install.
func Missions() []models.Mission {
	var all []models.Mission
	for _, category := range Categories() {
		all = append(all, category.Missions...)
	}
	return all
}

// TaskCategories are the labels offered when creating a task.
var TaskCategories = []string{"Personal", "Work", "Health", "Learning", "Shopping", "Other"}
