package store

import (
	"context"
	"strings"
)

// Namespaced prefixes every key of a shared backend so that preferences of
// different users (or browsers) never collide.
type Namespaced struct {
	base      PreferenceStore
	namespace string
}

// WithNamespace wraps base so every key becomes "<namespace>:<key>"
func WithNamespace(base PreferenceStore, namespace string) *Namespaced {
	return &Namespaced{base: base, namespace: sanitizeNamespace(namespace)}
}

func (n *Namespaced) key(k string) string {
	return n.namespace + ":" + k
}

// Get returns the value stored for key in this namespace
func (n *Namespaced) Get(ctx context.Context, key string) (string, bool, error) {
	return n.base.Get(ctx, n.key(key))
}

// Set stores value for key in this namespace
func (n *Namespaced) Set(ctx context.Context, key, value string) error {
	return n.base.Set(ctx, n.key(key), value)
}

// Delete removes key from this namespace
func (n *Namespaced) Delete(ctx context.Context, key string) error {
	return n.base.Delete(ctx, n.key(key))
}

// sanitizeNamespace keeps the separator unambiguous
func sanitizeNamespace(ns string) string {
	ns = strings.TrimSpace(strings.ToLower(ns))
	if ns == "" {
		return "anonymous"
	}
	return strings.ReplaceAll(ns, ":", "_")
}
