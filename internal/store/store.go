package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Persisted keys. These names (and the JSON shapes stored under them) are a
// compatibility surface: stores written by earlier versions of the app must
// keep loading unchanged.
const (
	KeyCurrentUser = "currentUser"
	KeyUserData    = "userData"
	KeyTasks       = "tasks"
	KeyTheme       = "theme"
)

// KV is the persistence contract for the whole app: string keys mapped to
// JSON-serialized values. Corrupt stored data is treated as absent — callers
// never see a decode error, only found=false.
type KV interface {
	// Get unmarshals the value stored under key into v and reports whether a
	// usable value was found.
	Get(key string, v any) (found bool)
	// Set marshals v and persists it under key before returning.
	Set(key string, v any) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
	Close() error
}

const (
	BackendFiles  = "files"
	BackendSQLite = "sqlite"
)

type Options struct {
	Dir     string
	Backend string // files (default) | sqlite
	Logger  *log.Logger
}

// Open opens the key-value store for a data dir, creating the dir if needed.
func Open(opts Options) (KV, error) {
	dir := strings.TrimSpace(opts.Dir)
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	switch strings.TrimSpace(opts.Backend) {
	case "", BackendFiles:
		return &fileKV{dir: dir, logger: logger}, nil
	case BackendSQLite:
		return openSQLiteKV(dir, logger)
	default:
		return nil, fmt.Errorf("unknown store backend: %q (expected files|sqlite)", opts.Backend)
	}
}

// DefaultDir resolves the data dir: $DAYLIST_DIR if set, else ~/.daylist.
func DefaultDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("DAYLIST_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".daylist"), nil
}
