package store

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestKV(t *testing.T, dir, backend string) KV {
	t.Helper()
	kv, err := Open(Options{Dir: dir, Backend: backend})
	if err != nil {
		t.Fatalf("Open(%q, %q): %v", dir, backend, err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestFilesRoundTrip(t *testing.T) {
	t.Parallel()

	kv := openTestKV(t, t.TempDir(), BackendFiles)

	in := map[string]string{"username": "alice", "email": "a@b.com"}
	if err := kv.Set(KeyCurrentUser, in); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var out map[string]string
	if !kv.Get(KeyCurrentUser, &out) {
		t.Fatalf("Get: value not found after Set")
	}
	if out["username"] != "alice" || out["email"] != "a@b.com" {
		t.Fatalf("Get: got %v", out)
	}
}

func TestFilesMissingKeyReadsAsAbsent(t *testing.T) {
	t.Parallel()

	kv := openTestKV(t, t.TempDir(), BackendFiles)

	var v any
	if kv.Get(KeyTasks, &v) {
		t.Fatalf("Get on missing key reported found")
	}
}

func TestFilesCorruptValueReadsAsAbsent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	kv := openTestKV(t, dir, BackendFiles)

	if err := os.WriteFile(filepath.Join(dir, KeyTasks+".json"), []byte("{{{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	var v any
	if kv.Get(KeyTasks, &v) {
		t.Fatalf("Get on corrupt value reported found")
	}

	// A later Set must recover the key.
	if err := kv.Set(KeyTasks, []int{1, 2}); err != nil {
		t.Fatalf("Set after corruption: %v", err)
	}
	var ints []int
	if !kv.Get(KeyTasks, &ints) || len(ints) != 2 {
		t.Fatalf("Get after recovery: found=%v v=%v", len(ints) == 2, ints)
	}
}

func TestFilesRemove(t *testing.T) {
	t.Parallel()

	kv := openTestKV(t, t.TempDir(), BackendFiles)

	if err := kv.Remove(KeyTheme); err != nil {
		t.Fatalf("Remove absent key: %v", err)
	}

	if err := kv.Set(KeyTheme, "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Remove(KeyTheme); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	var s string
	if kv.Get(KeyTheme, &s) {
		t.Fatalf("Get after Remove reported found")
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	t.Parallel()

	if _, err := Open(Options{Dir: t.TempDir(), Backend: "etcd"}); err == nil {
		t.Fatalf("Open with unknown backend succeeded")
	}
}

func TestDefaultDirEnvOverride(t *testing.T) {
	t.Setenv("DAYLIST_DIR", "/tmp/daylist-test-home")

	dir, err := DefaultDir()
	if err != nil {
		t.Fatalf("DefaultDir: %v", err)
	}
	if dir != "/tmp/daylist-test-home" {
		t.Fatalf("DefaultDir = %q, want env override", dir)
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	t.Parallel()

	kv := openTestKV(t, t.TempDir(), BackendSQLite)

	if err := kv.Set(KeyTheme, "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	var theme string
	if !kv.Get(KeyTheme, &theme) || theme != "dark" {
		t.Fatalf("Get theme = %q found=%v", theme, theme == "dark")
	}

	// Overwrite, then remove.
	if err := kv.Set(KeyTheme, "light"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if !kv.Get(KeyTheme, &theme) || theme != "light" {
		t.Fatalf("Get after overwrite = %q", theme)
	}
	if err := kv.Remove(KeyTheme); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if kv.Get(KeyTheme, &theme) {
		t.Fatalf("Get after Remove reported found")
	}
}

func TestSQLiteImportsFilesOnce(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	fkv := openTestKV(t, dir, BackendFiles)
	if err := fkv.Set(KeyTheme, "dark"); err != nil {
		t.Fatalf("files Set: %v", err)
	}
	if err := fkv.Set(KeyCurrentUser, map[string]string{"username": "alice"}); err != nil {
		t.Fatalf("files Set: %v", err)
	}

	skv := openTestKV(t, dir, BackendSQLite)
	var theme string
	if !skv.Get(KeyTheme, &theme) || theme != "dark" {
		t.Fatalf("sqlite did not import files values: theme=%q", theme)
	}
	var sess map[string]string
	if !skv.Get(KeyCurrentUser, &sess) || sess["username"] != "alice" {
		t.Fatalf("sqlite did not import currentUser: %v", sess)
	}

	// Import is one-time: later file edits must not leak into a populated db.
	if err := skv.Set(KeyTheme, "light"); err != nil {
		t.Fatalf("sqlite Set: %v", err)
	}
	if err := fkv.Set(KeyTheme, "dark"); err != nil {
		t.Fatalf("files Set: %v", err)
	}
	if err := skv.Close(); err != nil {
		t.Fatalf("sqlite Close: %v", err)
	}

	skv2 := openTestKV(t, dir, BackendSQLite)
	if !skv2.Get(KeyTheme, &theme) || theme != "light" {
		t.Fatalf("sqlite re-imported over existing data: theme=%q", theme)
	}
}
