// Package settings loads the product settings snapshot the admin console
// renders against.
package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ghiac/adminshell/log"
	"github.com/ghiac/adminshell/model"
)

// Provider returns the current settings snapshot. A nil snapshot with a nil
// error means no settings are available.
type Provider interface {
	Settings(ctx context.Context) (*model.CombinedSettings, error)
}

// Static always returns the same snapshot
type Static struct {
	snapshot *model.CombinedSettings
}

// NewStatic creates a provider for a fixed snapshot (which may be nil)
func NewStatic(s *model.CombinedSettings) *Static {
	return &Static{snapshot: s}
}

// Settings returns the fixed snapshot
func (s *Static) Settings(context.Context) (*model.CombinedSettings, error) {
	return s.snapshot, nil
}

// FileProvider reads settings from a YAML file and reloads it when the
// modification time changes
type FileProvider struct {
	path string

	mu      sync.RWMutex
	cached  *model.CombinedSettings
	modTime time.Time
}

// NewFileProvider creates a provider for the YAML file at path
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Settings returns the parsed file. A missing file yields a nil snapshot;
// a file that fails to parse keeps serving the last good snapshot.
func (p *FileProvider) Settings(_ context.Context) (*model.CombinedSettings, error) {
	info, err := os.Stat(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat settings file: %w", err)
	}

	p.mu.RLock()
	if p.cached != nil && info.ModTime().Equal(p.modTime) {
		cached := p.cached
		p.mu.RUnlock()
		return cached, nil
	}
	p.mu.RUnlock()

	loaded, err := p.load()
	if err != nil {
		p.mu.RLock()
		defer p.mu.RUnlock()
		if p.cached != nil {
			log.Log.Warnf("[settings] keeping previous snapshot: %v", err)
			return p.cached, nil
		}
		return nil, err
	}

	p.mu.Lock()
	p.cached = loaded
	p.modTime = info.ModTime()
	p.mu.Unlock()

	log.Log.Debugf("[settings] loaded %s", p.path)
	return loaded, nil
}

func (p *FileProvider) load() (*model.CombinedSettings, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a settings YAML document
func Parse(data []byte) (*model.CombinedSettings, error) {
	s := &model.CombinedSettings{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if s.Settings.ApplicationStatus == "" {
		s.Settings.ApplicationStatus = model.StatusActive
	}
	if s.Settings.QueryHistoryType == "" {
		s.Settings.QueryHistoryType = model.QueryHistoryNormal
	}
	return s, nil
}

// Snapshot resolves the provider and downgrades failures to "no snapshot",
// which every consumer treats as features being absent.
func Snapshot(ctx context.Context, p Provider) *model.CombinedSettings {
	if p == nil {
		return nil
	}
	s, err := p.Settings(ctx)
	if err != nil {
		log.Log.Warnf("[settings] unavailable: %v", err)
		return nil
	}
	return s
}
