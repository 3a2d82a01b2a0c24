package models

import "time"

// Priority is the user-assigned weight of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Difficulty grades tasks and missions for display and scoring.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ValidPriorities enumerates the priorities accepted for new tasks.
var ValidPriorities = map[Priority]struct{}{
	PriorityLow:    {},
	PriorityMedium: {},
	PriorityHigh:   {},
}

// Task is a user-created to-do item. Points and difficulty are derived
// from the priority at creation time and never change afterwards.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	Priority    Priority   `json:"priority"`
	Category    string     `json:"category"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Points      int        `json:"points"`
	Difficulty  Difficulty `json:"difficulty"`
}

// Mission is a catalog-defined challenge. Everything except the
// completion state is immutable reference data.
type Mission struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Points      int        `json:"points"`
	Difficulty  Difficulty `json:"difficulty"`
	Category    string     `json:"category"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// MissionCategory groups missions for presentation.
type MissionCategory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	Missions    []Mission `json:"missions"`
}

// UserProfile aggregates a single user's mission progress. TotalPoints
// counts completed missions only; combined task+mission points live in
// TaskStats.
type UserProfile struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	TotalPoints       int    `json:"totalPoints"`
	Level             int    `json:"level"`
	CompletedMissions int    `json:"completedMissions"`
	Rank              int    `json:"rank"`
}

// TaskStats is the aggregate figure shown on the stats screen.
type TaskStats struct {
	Total             int `json:"total"`
	Completed         int `json:"completed"`
	Pending           int `json:"pending"`
	CompletedToday    int `json:"completedToday"`
	CompletedThisWeek int `json:"completedThisWeek"`
	TotalPoints       int `json:"totalPoints"`
	PointsToday       int `json:"pointsToday"`
	PointsThisWeek    int `json:"pointsThisWeek"`
}

// PointsForPriority maps a task priority to its point reward.
func PointsForPriority(p Priority) int {
	switch p {
	case PriorityHigh:
		return 75
	case PriorityMedium:
		return 50
	default:
		return 25
	}
}

// DifficultyForPriority maps a task priority to its difficulty grade.
func DifficultyForPriority(p Priority) Difficulty {
	switch p {
	case PriorityHigh:
		return DifficultyHard
	case PriorityMedium:
		return DifficultyMedium
	default:
		return DifficultyEasy
	}
}
