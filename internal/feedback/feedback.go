// Package feedback carries the tactile-feedback signal the mobile client
// fires on task and mission interactions. The engine treats it as
// fire-and-forget: implementations must never block or fail the caller.
package feedback

import "log/slog"

// Events emitted by the progress engine.
const (
	EventTaskAdded      = "task_added"
	EventTaskToggled    = "task_toggled"
	EventTaskDeleted    = "task_deleted"
	EventMissionToggled = "mission_toggled"
)

// Notifier receives interaction events.
type Notifier interface {
	Notify(event string)
}

// Noop discards all events.
type Noop struct{}

func (Noop) Notify(string) {}

// Logged writes each event to the logger at debug level. Useful on the
// server where there is no device to vibrate.
type Logged struct {
	Logger *slog.Logger
}

func (l Logged) Notify(event string) {
	if l.Logger == nil {
		return
	}
	l.Logger.Debug("haptic event", slog.String("event", event))
}
