package sidebar

import (
	"context"
	"fmt"
)

// Scope names an independent sidebar region
type Scope string

const (
	ScopeAdmin     Scope = "admin"
	ScopeConnector Scope = "connector"
)

// Key returns the storage key of the scope
func (s Scope) Key() (string, bool) {
	switch s {
	case ScopeAdmin:
		return AdminKey, true
	case ScopeConnector:
		return ConnectorKey, true
	}
	return "", false
}

// ParseScope validates a scope name taken from a URL
func ParseScope(name string) (Scope, error) {
	s := Scope(name)
	if _, ok := s.Key(); !ok {
		return "", fmt.Errorf("unknown sidebar scope: %q", name)
	}
	return s, nil
}

type scopeKey struct{ scope Scope }

// WithController returns a copy of ctx carrying c under its scope
func WithController(ctx context.Context, scope Scope, c *Controller) context.Context {
	return context.WithValue(ctx, scopeKey{scope}, c)
}

// FromContext returns the controller of scope, if one is active
func FromContext(ctx context.Context, scope Scope) (*Controller, bool) {
	c, ok := ctx.Value(scopeKey{scope}).(*Controller)
	return c, ok && c != nil
}

// MustFromContext returns the controller of scope and panics when none is
// active. Reaching for fold state outside its owning scope is a wiring bug.
func MustFromContext(ctx context.Context, scope Scope) *Controller {
	c, ok := FromContext(ctx, scope)
	if !ok {
		panic(fmt.Sprintf("sidebar: no %s controller in context; MustFromContext must be used within sidebar.Middleware(%q)", scope, scope))
	}
	return c
}
