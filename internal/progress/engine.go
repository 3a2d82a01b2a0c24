// Package progress implements the gamification engine: tasks, missions,
// the derived user profile, and aggregate statistics. The engine is the
// sole owner of the in-memory collections; the blob store holds the
// durable copy, overwritten wholesale on every mutation.
package progress

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"wellquest/internal/catalog"
	"wellquest/internal/feedback"
	"wellquest/internal/models"
	"wellquest/internal/storage"
)

// DefaultProfile is the profile used until one has been persisted.
var DefaultProfile = models.UserProfile{
	ID:                "user1",
	Name:              "Player",
	TotalPoints:       0,
	Level:             1,
	CompletedMissions: 0,
	Rank:              1,
}

// TaskInput carries the caller-supplied fields for a new task. Points and
// difficulty are derived from the priority, never accepted from outside.
type TaskInput struct {
	Title       string
	Description string
	Category    string
	Priority    models.Priority
	DueDate     *time.Time
}

// Engine owns the task, mission, and profile state. Mutations update
// memory synchronously and persist in the background; a failed write is
// logged and dropped, the in-memory state stays authoritative.
type Engine struct {
	store    storage.Blob
	notifier feedback.Notifier
	logger   *slog.Logger

	now   func() time.Time
	newID func() string

	mu       sync.Mutex
	tasks    []models.Task
	missions []models.Mission
	profile  models.UserProfile

	writes sync.WaitGroup
}

// New constructs an engine. Call Load before serving reads.
func New(store storage.Blob, notifier feedback.Notifier, logger *slog.Logger) *Engine {
	if notifier == nil {
		notifier = feedback.Noop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		store:    store,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
		profile:  DefaultProfile,
	}
}

// Load reads the three collections from the store. Each collection falls
// back to its initial value on a read or decode failure; missions are
// seeded from the catalog on first run and the seed is persisted
// immediately.
func (e *Engine) Load(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.tasks = e.loadTasks(ctx)
	e.missions = e.loadMissions(ctx)
	e.profile = e.loadProfile(ctx)

	// Derived fields are recomputed from mission state rather than
	// trusted from disk, so a stale stored profile self-heals.
	e.recomputeProfileLocked()
}

func (e *Engine) loadTasks(ctx context.Context) []models.Task {
	raw, ok, err := e.store.Get(ctx, storage.KeyTasks)
	if err != nil {
		e.logger.Error("loading tasks failed", slog.String("error", err.Error()))
		return nil
	}
	if !ok {
		return nil
	}

	var tasks []models.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		e.logger.Error("decoding stored tasks failed", slog.String("error", err.Error()))
		return nil
	}
	return tasks
}

func (e *Engine) loadMissions(ctx context.Context) []models.Mission {
	raw, ok, err := e.store.Get(ctx, storage.KeyMissions)
	if err != nil {
		e.logger.Error("loading missions failed", slog.String("error", err.Error()))
		return e.seedMissions(ctx)
	}
	if !ok {
		return e.seedMissions(ctx)
	}

	var missions []models.Mission
	if err := json.Unmarshal([]byte(raw), &missions); err != nil {
		e.logger.Error("decoding stored missions failed", slog.String("error", err.Error()))
		return e.seedMissions(ctx)
	}
	return missions
}

func (e *Engine) seedMissions(ctx context.Context) []models.Mission {
	seed := catalog.Missions()
	payload, err := json.Marshal(seed)
	if err != nil {
		e.logger.Error("encoding mission seed failed", slog.String("error", err.Error()))
		return seed
	}
	if err := e.store.Set(ctx, storage.KeyMissions, string(payload)); err != nil {
		e.logger.Error("persisting mission seed failed", slog.String("error", err.Error()))
	}
	return seed
}

func (e *Engine) loadProfile(ctx context.Context) models.UserProfile {
	raw, ok, err := e.store.Get(ctx, storage.KeyProfile)
	if err != nil {
		e.logger.Error("loading profile failed", slog.String("error", err.Error()))
		return DefaultProfile
	}
	if !ok {
		return DefaultProfile
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		e.logger.Error("decoding stored profile failed", slog.String("error", err.Error()))
		return DefaultProfile
	}
	if profile.ID == "" {
		return DefaultProfile
	}
	return profile
}

// AddTask creates a task from the input and prepends it to the
// collection. Title validation is the caller's job.
func (e *Engine) AddTask(in TaskInput) models.Task {
	e.mu.Lock()
	defer e.mu.Unlock()

	task := models.Task{
		ID:          e.newID(),
		Title:       in.Title,
		Description: in.Description,
		Completed:   false,
		Priority:    in.Priority,
		Category:    in.Category,
		CreatedAt:   e.now(),
		DueDate:     in.DueDate,
		Points:      models.PointsForPriority(in.Priority),
		Difficulty:  models.DifficultyForPriority(in.Priority),
	}

	e.tasks = append([]models.Task{task}, e.tasks...)
	e.persistTasksLocked()
	e.notifier.Notify(feedback.EventTaskAdded)
	return task
}

// ToggleTask flips the completion state of the task with the given id,
// stamping or clearing the completion time. Unknown ids are a no-op.
func (e *Engine) ToggleTask(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.tasks {
		if e.tasks[i].ID != id {
			continue
		}
		e.tasks[i].Completed = !e.tasks[i].Completed
		if e.tasks[i].Completed {
			completedAt := e.now()
			e.tasks[i].CompletedAt = &completedAt
		} else {
			e.tasks[i].CompletedAt = nil
		}
		e.persistTasksLocked()
		e.notifier.Notify(feedback.EventTaskToggled)
		return
	}
}

// DeleteTask removes the task with the given id. Unknown ids are a no-op.
func (e *Engine) DeleteTask(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.tasks {
		if e.tasks[i].ID != id {
			continue
		}
		e.tasks = append(e.tasks[:i], e.tasks[i+1:]...)
		e.persistTasksLocked()
		e.notifier.Notify(feedback.EventTaskDeleted)
		return
	}
}

// ToggleMission flips the completion state of a mission and recomputes
// the profile in the same step, so a subsequent profile read always
// reflects the new mission state.
func (e *Engine) ToggleMission(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.missions {
		if e.missions[i].ID != id {
			continue
		}
		e.missions[i].Completed = !e.missions[i].Completed
		if e.missions[i].Completed {
			completedAt := e.now()
			e.missions[i].CompletedAt = &completedAt
		} else {
			e.missions[i].CompletedAt = nil
		}
		e.persistMissionsLocked()
		e.notifier.Notify(feedback.EventMissionToggled)
		e.recomputeProfileLocked()
		return
	}
}

// recomputeProfileLocked rebuilds the derived profile fields from the
// current mission state. Caller must hold e.mu.
func (e *Engine) recomputeProfileLocked() {
	completed := 0
	points := 0
	for _, m := range e.missions {
		if m.Completed {
			completed++
			points += m.Points
		}
	}

	e.profile.TotalPoints = points
	e.profile.Level = models.CalculateLevel(points)
	e.profile.CompletedMissions = completed
	e.profile.Rank = 1
	e.persistProfileLocked()
}

// Stats computes the aggregate view over tasks and missions. Unlike the
// profile, the point totals here combine task and mission points.
func (e *Engine) Stats() models.TaskStats {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))

	var stats models.TaskStats
	stats.Total = len(e.tasks)

	for _, t := range e.tasks {
		if !t.Completed {
			continue
		}
		stats.Completed++
		stats.TotalPoints += t.Points
		if t.CompletedAt == nil {
			continue
		}
		if !t.CompletedAt.Before(today) {
			stats.CompletedToday++
			stats.PointsToday += t.Points
		}
		if !t.CompletedAt.Before(weekStart) {
			stats.CompletedThisWeek++
			stats.PointsThisWeek += t.Points
		}
	}
	stats.Pending = stats.Total - stats.Completed

	for _, m := range e.missions {
		if !m.Completed {
			continue
		}
		stats.TotalPoints += m.Points
		if m.CompletedAt == nil {
			continue
		}
		if !m.CompletedAt.Before(today) {
			stats.PointsToday += m.Points
		}
		if !m.CompletedAt.Before(weekStart) {
			stats.PointsThisWeek += m.Points
		}
	}

	return stats
}

// Tasks returns a snapshot of the task collection, most recent first.
func (e *Engine) Tasks() []models.Task {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.Task, len(e.tasks))
	copy(out, e.tasks)
	return out
}

// Missions returns a snapshot of the mission collection.
func (e *Engine) Missions() []models.Mission {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.Mission, len(e.missions))
	copy(out, e.missions)
	return out
}

// MissionsByCategory returns the missions belonging to a catalog category.
func (e *Engine) MissionsByCategory(categoryID string) []models.Mission {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []models.Mission
	for _, m := range e.missions {
		if m.Category == categoryID {
			out = append(out, m)
		}
	}
	return out
}

// Profile returns the current derived profile.
func (e *Engine) Profile() models.UserProfile {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profile
}

// Leaderboard returns the ranked profiles. With no multi-user backend it
// is just the current profile.
func (e *Engine) Leaderboard() []models.UserProfile {
	e.mu.Lock()
	defer e.mu.Unlock()
	return []models.UserProfile{e.profile}
}

// Flush waits for all in-flight persistence writes. Called on shutdown
// and by tests; regular operation never blocks on it.
func (e *Engine) Flush() {
	e.writes.Wait()
}

func (e *Engine) persistTasksLocked() {
	e.persist(storage.KeyTasks, e.tasks)
}

func (e *Engine) persistMissionsLocked() {
	e.persist(storage.KeyMissions, e.missions)
}

func (e *Engine) persistProfileLocked() {
	e.persist(storage.KeyProfile, e.profile)
}

// persist serializes under the caller's lock, then writes in the
// background. Writes may overlap in flight; the durable store only
// converges on the last completed write, which is all the next Load
// needs.
func (e *Engine) persist(key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		e.logger.Error("encoding collection failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}

	e.writes.Add(1)
	go func() {
		defer e.writes.Done()
		if err := e.store.Set(context.Background(), key, string(payload)); err != nil {
			e.logger.Error("persisting collection failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}()
}
