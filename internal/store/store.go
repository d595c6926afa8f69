// Package store implements the durable record store: named binary blobs in
// an embedded sqlite database, standing in for the platform backend.
//
// The store is shared process-wide with no isolation between concurrent
// writers (two client instances on the same database file race with
// last-writer-wins). This mirrors the backend stand-in it replaces and is a
// documented limitation, not something callers should try to patch around.
package store

import "context"

// Well-known record keys.
const (
	// KeyDirectory holds the serialized list of all user records.
	KeyDirectory = "adcreativex_users"
	// KeySession holds the serialized record of the logged-in user, if any.
	KeySession = "adcreativex_user"
)

// Store is byte-level get/set/remove of named blobs.
//
// Get returns (nil, nil) when the key is absent. Set commits synchronously
// before returning. Delete of an absent key is a no-op.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
