package store

import (
	"fmt"

	"github.com/ghiac/adminshell/log"
)

// Backend names accepted by Open
const (
	BackendCookie  = "cookie"
	BackendMemory  = "memory"
	BackendSQLite  = "sqlite"
	BackendMongoDB = "mongodb"
)

// Options selects and configures a shared backend
type Options struct {
	Backend    string
	SQLitePath string
	Mongo      MongoDBStoreConfig
}

// Open creates the shared backend named by opts.Backend. The cookie backend
// is per request and has no shared state, so Open returns nil for it.
func Open(opts Options) (Backend, error) {
	switch opts.Backend {
	case BackendCookie, "":
		return nil, nil
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendSQLite:
		s, err := NewSQLiteStore(opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Log.Infof("[store] using sqlite preferences at %s", s.Path())
		return s, nil
	case BackendMongoDB:
		s, err := NewMongoDBStore(opts.Mongo)
		if err != nil {
			return nil, err
		}
		log.Log.Infof("[store] using mongodb preferences in %s.%s", s.database.Name(), s.collection.Name())
		return s, nil
	}
	return nil, fmt.Errorf("unknown preference backend: %q", opts.Backend)
}
