package auth

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"daylist/internal/store"
)

func testKV(t *testing.T) (store.KV, string) {
	t.Helper()
	dir := t.TempDir()
	kv, err := store.Open(store.Options{Dir: dir})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv, dir
}

func mustRegister(t *testing.T, dir *Directory, username, email, password string) {
	t.Helper()
	if _, err := Register(dir, username, email, password, password); err != nil {
		t.Fatalf("Register(%q): %v", username, err)
	}
}

func TestRegisterThenLogin(t *testing.T) {
	t.Parallel()

	kv, _ := testKV(t)
	dir := NewDirectory(kv)
	sessions := NewSessions(kv, dir)

	mustRegister(t, dir, "alice", "a@b.com", "Abc123!")

	if _, err := sessions.Login("bob", "Abc123!"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("Login unknown user: err = %v, want ErrUserNotFound", err)
	}
	if _, err := sessions.Login("alice", "wrong"); !errors.Is(err, ErrIncorrectPassword) {
		t.Fatalf("Login wrong password: err = %v, want ErrIncorrectPassword", err)
	}

	sess, err := sessions.Login("alice", "Abc123!")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.Username != "alice" || sess.Email != "a@b.com" {
		t.Fatalf("session = %+v", sess)
	}

	// The session is persisted: a fresh Sessions over the same store sees it.
	again := NewSessions(kv, dir)
	got, ok := again.Current()
	if !ok || got.Username != "alice" {
		t.Fatalf("Current after Login: ok=%v sess=%+v", ok, got)
	}
}

func TestLoginEmptyFields(t *testing.T) {
	t.Parallel()

	kv, _ := testKV(t)
	sessions := NewSessions(kv, NewDirectory(kv))

	_, err := sessions.Login("", "x")
	if err == nil || err.Error() != "Please enter your username" {
		t.Fatalf("empty username: err = %v", err)
	}
	_, err = sessions.Login("alice", "")
	if err == nil || err.Error() != "Please enter your password" {
		t.Fatalf("empty password: err = %v", err)
	}
}

func TestRegisterDuplicateUsernameLeavesDirectoryUntouched(t *testing.T) {
	t.Parallel()

	kv, _ := testKV(t)
	dir := NewDirectory(kv)

	mustRegister(t, dir, "alice", "a@b.com", "Abc123!")

	_, err := Register(dir, "alice", "other@b.com", "Abc123!", "Abc123!")
	msgs := validationMessages(t, err)
	if len(msgs) != 1 || msgs[0] != "Username already exists" {
		t.Fatalf("duplicate register messages = %#v", msgs)
	}

	accs := dir.Accounts()
	if len(accs) != 1 || accs[0].Email != "a@b.com" {
		t.Fatalf("directory mutated by failed register: %+v", accs)
	}
}

func TestRegisterCollectsFormAndDuplicateErrors(t *testing.T) {
	t.Parallel()

	kv, _ := testKV(t)
	dir := NewDirectory(kv)

	mustRegister(t, dir, "alice", "a@b.com", "Abc123!")

	// Bad email AND taken username in one submission: both reported.
	_, err := Register(dir, "alice", "nope", "Abc123!", "Abc123!")
	msgs := validationMessages(t, err)
	want := []string{"Email must include @", "Username already exists"}
	if len(msgs) != 2 || msgs[0] != want[0] || msgs[1] != want[1] {
		t.Fatalf("messages = %#v, want %#v", msgs, want)
	}
}

func TestStoredAccountShape(t *testing.T) {
	t.Parallel()

	kv, dataDir := testKV(t)
	dir := NewDirectory(kv)
	mustRegister(t, dir, "alice", "a@b.com", "Abc123!")

	// The on-disk userData shape is a compatibility surface: a list of
	// objects with username/email/password/image fields, password holding
	// the hex digest.
	b, err := os.ReadFile(filepath.Join(dataDir, "userData.json"))
	if err != nil {
		t.Fatalf("read userData.json: %v", err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("userData.json not a JSON list: %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("userData has %d entries", len(raw))
	}
	rec := raw[0]
	if rec["username"] != "alice" || rec["email"] != "a@b.com" {
		t.Fatalf("record = %v", rec)
	}
	pw, _ := rec["password"].(string)
	if pw != Digest("Abc123!") {
		t.Fatalf("password field = %q, want digest", pw)
	}
	if strings.Contains(pw, "Abc123!") {
		t.Fatalf("plaintext leaked into store")
	}
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	kv, _ := testKV(t)
	dir := NewDirectory(kv)
	sessions := NewSessions(kv, dir)

	if _, err := sessions.UpdateProfile(ProfilePatch{Username: "x"}); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("UpdateProfile logged out: err = %v, want ErrNotLoggedIn", err)
	}

	mustRegister(t, dir, "alice", "a@b.com", "Abc123!")
	if _, err := sessions.Login("alice", "Abc123!"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := sessions.UpdateProfile(ProfilePatch{Email: "not-an-email"}); err == nil || err.Error() != "Invalid email format" {
		t.Fatalf("bad email: err = %v", err)
	}

	sess, err := sessions.UpdateProfile(ProfilePatch{Username: "alicia", Email: "alicia@b.com"})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if sess.Username != "alicia" || sess.Email != "alicia@b.com" {
		t.Fatalf("session after update = %+v", sess)
	}

	// Directory and session stay in sync; the old username is gone.
	if _, ok := dir.FindByUsername("alice"); ok {
		t.Fatalf("old username still present in directory")
	}
	acc, ok := dir.FindByUsername("alicia")
	if !ok || acc.Email != "alicia@b.com" {
		t.Fatalf("directory record = %+v ok=%v", acc, ok)
	}
	// Password digest survives a profile edit.
	if acc.PasswordDigest != Digest("Abc123!") {
		t.Fatalf("digest changed by profile update")
	}
	if cur, ok := sessions.Current(); !ok || cur.Username != "alicia" {
		t.Fatalf("persisted session = %+v ok=%v", cur, ok)
	}
}

func TestUpdateProfileEmptyFieldsKeepValues(t *testing.T) {
	t.Parallel()

	kv, _ := testKV(t)
	dir := NewDirectory(kv)
	sessions := NewSessions(kv, dir)

	mustRegister(t, dir, "alice", "a@b.com", "Abc123!")
	if _, err := sessions.Login("alice", "Abc123!"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	sess, err := sessions.UpdateProfile(ProfilePatch{})
	if err != nil {
		t.Fatalf("empty patch: %v", err)
	}
	if sess.Username != "alice" || sess.Email != "a@b.com" {
		t.Fatalf("empty patch changed fields: %+v", sess)
	}
}

func TestUpdateImage(t *testing.T) {
	t.Parallel()

	kv, _ := testKV(t)
	dir := NewDirectory(kv)
	sessions := NewSessions(kv, dir)

	mustRegister(t, dir, "alice", "a@b.com", "Abc123!")
	if _, err := sessions.Login("alice", "Abc123!"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	uri := "data:image/png;base64,aGVsbG8="
	sess, err := sessions.UpdateImage(uri)
	if err != nil {
		t.Fatalf("UpdateImage: %v", err)
	}
	if sess.Image != uri {
		t.Fatalf("session image = %q", sess.Image)
	}
	acc, _ := dir.FindByUsername("alice")
	if acc.Image != uri {
		t.Fatalf("directory image = %q", acc.Image)
	}
}

func TestLogout(t *testing.T) {
	t.Parallel()

	kv, _ := testKV(t)
	dir := NewDirectory(kv)
	sessions := NewSessions(kv, dir)

	mustRegister(t, dir, "alice", "a@b.com", "Abc123!")
	if _, err := sessions.Login("alice", "Abc123!"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := sessions.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, ok := sessions.Current(); ok {
		t.Fatalf("Current reports a session after Logout")
	}
	// Logging out twice is fine.
	if err := sessions.Logout(); err != nil {
		t.Fatalf("second Logout: %v", err)
	}
}

func TestReadImageDataURI(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// Minimal PNG header is enough for content-type sniffing.
	png := append([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, make([]byte, 16)...)
	path := filepath.Join(dir, "avatar.png")
	if err := os.WriteFile(path, png, 0o644); err != nil {
		t.Fatalf("write png: %v", err)
	}

	uri, err := ReadImageDataURI(path)
	if err != nil {
		t.Fatalf("ReadImageDataURI: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Fatalf("uri = %q", uri)
	}

	if _, err := ReadImageDataURI(filepath.Join(dir, "missing.png")); err == nil {
		t.Fatalf("missing file did not error")
	}
}
