package auth

import (
	"strings"

	"daylist/internal/model"
	"daylist/internal/store"
)

// Sessions owns the currentUser key: the process-wide logged-in state.
type Sessions struct {
	kv  store.KV
	dir *Directory
}

func NewSessions(kv store.KV, dir *Directory) *Sessions {
	return &Sessions{kv: kv, dir: dir}
}

// Current returns the active session, if any. A corrupt stored session reads
// as logged out.
func (s *Sessions) Current() (model.Session, bool) {
	var sess model.Session
	if !s.kv.Get(store.KeyCurrentUser, &sess) {
		return model.Session{}, false
	}
	if sess.Username == "" {
		return model.Session{}, false
	}
	return sess, true
}

// Login checks the entered password's digest against the stored one and
// persists the session on success.
func (s *Sessions) Login(username, password string) (model.Session, error) {
	if username == "" {
		return model.Session{}, validationError("Please enter your username")
	}
	if password == "" {
		return model.Session{}, validationError("Please enter your password")
	}

	acc, ok := s.dir.FindByUsername(username)
	if !ok {
		return model.Session{}, ErrUserNotFound
	}
	if acc.PasswordDigest != Digest(password) {
		return model.Session{}, ErrIncorrectPassword
	}

	sess := model.SessionFromAccount(acc)
	if err := s.kv.Set(store.KeyCurrentUser, sess); err != nil {
		return model.Session{}, err
	}
	return sess, nil
}

func (s *Sessions) Logout() error {
	return s.kv.Remove(store.KeyCurrentUser)
}

// UpdateProfile patches the session and the matching directory record
// together. There is no atomicity primitive in the store, so the directory
// is written first and the session only after it succeeds; a failure leaves
// the session untouched and is surfaced to the caller.
func (s *Sessions) UpdateProfile(patch ProfilePatch) (model.Session, error) {
	sess, ok := s.Current()
	if !ok {
		return model.Session{}, ErrNotLoggedIn
	}
	if v := strings.TrimSpace(patch.Email); v != "" && !strings.Contains(v, "@") {
		return model.Session{}, validationError("Invalid email format")
	}

	acc, err := s.dir.UpdateProfile(sess.Username, patch)
	if err != nil {
		return model.Session{}, err
	}

	sess = model.SessionFromAccount(acc)
	if err := s.kv.Set(store.KeyCurrentUser, sess); err != nil {
		return model.Session{}, err
	}
	return sess, nil
}

// UpdateImage replaces the profile picture (a data URI) on both the session
// and the directory record.
func (s *Sessions) UpdateImage(dataURI string) (model.Session, error) {
	return s.UpdateProfile(ProfilePatch{Image: dataURI})
}
