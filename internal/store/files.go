package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// fileKV stores one <key>.json file per key in the data dir.
//
// Reads are best-effort: a missing or corrupt file behaves like an absent
// key. Writes go through a tmp file + rename so a crash mid-write never
// leaves a half-written value behind.
type fileKV struct {
	dir    string
	logger *log.Logger
}

func (s *fileKV) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *fileKV) Get(key string, v any) bool {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(b, v); err != nil {
		s.logger.Warn("ignoring corrupt store value", "key", key, "err", err)
		return false
	}
	return true
}

func (s *fileKV) Set(key string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s *fileKV) Remove(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *fileKV) Close() error { return nil }

// rawValues returns every key's raw JSON. Used by the sqlite backend's
// one-time import; corrupt files are skipped like any other read.
func (s *fileKV) rawValues() map[string]json.RawMessage {
	out := map[string]json.RawMessage{}
	for _, key := range []string{KeyCurrentUser, KeyUserData, KeyTasks, KeyTheme} {
		b, err := os.ReadFile(s.path(key))
		if err != nil {
			continue
		}
		if !json.Valid(b) {
			s.logger.Warn("skipping corrupt store value during import", "key", key)
			continue
		}
		out[key] = json.RawMessage(b)
	}
	return out
}
