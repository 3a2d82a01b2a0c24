// Package storage defines the durable key-value contract used by the
// progress engine. Values are serialized JSON blobs; the engine owns the
// schema, the store only moves strings.
package storage

import "context"

// Fixed keys for the engine's three collections.
const (
	KeyTasks    = "tasks"
	KeyMissions = "missions"
	KeyProfile  = "userProfile"
)

// Blob is a durable string store. Get reports presence separately from
// errors so a missing key is not an error condition.
type Blob interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
