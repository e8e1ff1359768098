// Package store persists small UI preferences (such as sidebar fold state)
// as string key/value pairs.
package store

import (
	"context"
	"io"
)

// PreferenceStore is a string key/value store.
// Get reports ok=false for missing keys rather than returning an error.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Backend is a PreferenceStore shared by all requests that must be closed
// on shutdown.
type Backend interface {
	PreferenceStore
	io.Closer
}
