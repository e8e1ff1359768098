// Package adminshell wires the admin console: settings, preferences,
// identity and backend data behind one gin route set.
package adminshell

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"github.com/ghiac/adminshell/auth"
	"github.com/ghiac/adminshell/catalog"
	"github.com/ghiac/adminshell/config"
	"github.com/ghiac/adminshell/llm"
	"github.com/ghiac/adminshell/log"
	"github.com/ghiac/adminshell/menu"
	"github.com/ghiac/adminshell/settings"
	"github.com/ghiac/adminshell/store"
)

// Shell is the admin console
type Shell struct {
	cfg *config.Config

	settings settings.Provider
	catalog  catalog.Source
	llm      llm.Provider
	auth     auth.Provider
	// sessions is set in dev auth mode, where the shell owns login
	sessions *auth.SessionProvider
	cookies  sessions.Store
	// prefs is nil when preferences live in the browser cookie
	prefs store.Backend
}

// Options overrides the collaborators New would otherwise build from config
type Options struct {
	Settings    settings.Provider
	Catalog     catalog.Source
	LLM         llm.Provider
	Auth        auth.Provider
	Cookies     sessions.Store
	Preferences store.Backend
}

// New creates a Shell from configuration
func New(cfg *config.Config) (*Shell, error) {
	return NewWithOptions(cfg, nil)
}

// NewWithOptions creates a Shell with custom collaborators
func NewWithOptions(cfg *config.Config, opts *Options) (*Shell, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if opts == nil {
		opts = &Options{}
	}

	s := &Shell{cfg: cfg}

	s.cookies = opts.Cookies
	if s.cookies == nil {
		secret := cfg.Auth.SessionSecret
		if secret == "" {
			log.Log.Warnf("[shell] no session secret configured, generated a random one; sessions will not survive restarts")
			secret = string(securecookie.GenerateRandomKey(32))
		}
		s.cookies = store.NewCookieBackend(secret, cfg.Auth.SecureCookies)
	}

	s.settings = opts.Settings
	if s.settings == nil {
		s.settings = settings.NewFileProvider(cfg.Settings.Path)
	}

	s.catalog = opts.Catalog
	if s.catalog == nil {
		s.catalog = catalog.NewHTTPSource(cfg.Backend.URL, cfg.Backend.APIKey, cfg.Backend.Timeout)
	}

	s.llm = opts.LLM
	if s.llm == nil && cfg.LLM.APIKey != "" {
		s.llm = llm.NewOpenAIProvider(cfg.LLM.APIKey, cfg.LLM.BaseURL, &http.Client{Timeout: cfg.Backend.Timeout})
	}

	s.auth = opts.Auth
	if s.auth == nil {
		switch cfg.Auth.Mode {
		case config.AuthModeDev:
			s.sessions = auth.NewSessionProvider(s.cookies)
			s.auth = s.sessions
		default:
			s.auth = auth.HeaderProvider{EmailHeader: cfg.Auth.EmailHeader, RoleHeader: cfg.Auth.RoleHeader}
		}
	} else if sp, ok := s.auth.(*auth.SessionProvider); ok {
		s.sessions = sp
	}

	s.prefs = opts.Preferences
	if s.prefs == nil {
		prefs, err := store.Open(store.Options{
			Backend:    cfg.Storage.Backend,
			SQLitePath: cfg.Storage.SQLitePath,
			Mongo: store.MongoDBStoreConfig{
				URI:        cfg.Storage.MongoURI,
				Database:   cfg.Storage.MongoDatabase,
				Collection: cfg.Storage.MongoCollection,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open preference storage: %w", err)
		}
		s.prefs = prefs
	}

	return s, nil
}

// Flags returns the deployment flags that shape navigation
func (s *Shell) Flags() menu.Flags {
	return menu.Flags{
		EnableCloud:            s.cfg.Features.EnableCloud,
		EnableEnterprise:       s.cfg.Features.EnableEnterprise,
		KnowledgeGraphExposed:  s.cfg.Features.KnowledgeGraphExposed,
		CustomAnalyticsEnabled: s.cfg.Features.CustomAnalyticsEnabled,
	}
}

// Close releases the preference backend
func (s *Shell) Close() error {
	if s.prefs == nil {
		return nil
	}
	return s.prefs.Close()
}

// Version returns the current version of the console
func Version() string {
	return "0.1.0"
}
