package tui

import "daylist/internal/model"

type view int

const (
	viewHome view = iota
	viewLogin
	viewRegister
	viewTodo
	viewProfile
	viewNotFound
)

// viewTokens maps navigation tokens (the URL-fragment analog driven by the
// go-to prompt) onto views. Unknown tokens land on viewNotFound.
var viewTokens = map[string]view{
	"home":     viewHome,
	"login":    viewLogin,
	"register": viewRegister,
	"todo":     viewTodo,
	"profile":  viewProfile,
}

type navigateMsg struct{ token string }

// navDelayMsg performs a deferred navigation (success message first, then
// move on). Guarded by authSeq so a superseded submission can't steal focus.
type navDelayMsg struct {
	seq   int
	token string
}

type loginDoneMsg struct {
	seq     int
	session model.Session
	errText string
}

type registerDoneMsg struct {
	seq  int
	errs []string
}

type profileSaveDoneMsg struct {
	seq     int
	session model.Session
	errText string
}

type clearNoticeMsg struct{ seq int }

type todoFocus int

const (
	todoFocusText todoFocus = iota
	todoFocusDue
	todoFocusList
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)
