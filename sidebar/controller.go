// Package sidebar keeps the folded/expanded state of a sidebar in sync with
// a persisted preference.
package sidebar

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/ghiac/adminshell/log"
)

// Storage keys, one per sidebar instance so state does not bleed across
// independent regions of the UI.
const (
	AdminKey     = "admin_sidebar_folded"
	ConnectorKey = "connector_sidebar_folded"
)

// Storage is the persistence adapter for fold state.
// Values are the literal strings "true" and "false".
type Storage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

var (
	ErrNoStorage = errors.New("sidebar: storage is required")
	ErrNoKey     = errors.New("sidebar: key is required")
)

// Controller owns the folded flag of one sidebar instance.
// The zero value is not usable; construct with New.
type Controller struct {
	key     string
	storage Storage

	mu          sync.Mutex
	folded      bool
	initialized bool
}

// New creates a controller for key backed by storage. The controller starts
// expanded and uninitialized.
func New(key string, storage Storage) (*Controller, error) {
	if key == "" {
		return nil, ErrNoKey
	}
	if storage == nil {
		return nil, ErrNoStorage
	}
	return &Controller{key: key, storage: storage}, nil
}

// Key returns the storage key
func (c *Controller) Key() string {
	return c.key
}

// Initialize loads the persisted value, if any, and marks the controller
// initialized whether or not a value was found. A failed read is treated as
// "no preference". Calling it again is a no-op.
func (c *Controller) Initialize(ctx context.Context) {
	c.mu.Lock()
	if c.initialized {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	// The read happens outside the lock so a slow backend does not block
	// concurrent readers of Folded.
	stored, ok, err := c.storage.Get(ctx, c.key)
	if err != nil {
		log.Log.Warnf("[sidebar] failed to read %s, using in-memory state: %v", c.key, err)
		ok = false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return
	}
	if ok {
		c.folded = stored == "true"
	}
	c.initialized = true
}

// Folded reports whether the sidebar is compact
func (c *Controller) Folded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.folded
}

// Initialized reports whether the persisted value has been loaded
func (c *Controller) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// SetFolded sets the flag to a literal value
func (c *Controller) SetFolded(ctx context.Context, folded bool) bool {
	return c.Update(ctx, func(bool) bool { return folded })
}

// Toggle flips the flag and returns the new value
func (c *Controller) Toggle(ctx context.Context) bool {
	return c.Update(ctx, func(prev bool) bool { return !prev })
}

// Update applies fn to the previous value and stores the result. Before
// Initialize completes only the in-memory value changes, so a pending read
// is never overwritten by the default. Write failures are logged and the
// controller keeps working in memory.
func (c *Controller) Update(ctx context.Context, fn func(prev bool) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.folded = fn(c.folded)
	if c.initialized {
		if err := c.storage.Set(ctx, c.key, strconv.FormatBool(c.folded)); err != nil {
			log.Log.Warnf("[sidebar] failed to persist %s: %v", c.key, err)
		}
	}
	return c.folded
}
