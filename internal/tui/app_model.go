package tui

import (
	"daylist/internal/auth"
	"daylist/internal/model"
	"daylist/internal/store"
	"daylist/internal/task"

	"github.com/charmbracelet/bubbles/textinput"
)

type appModel struct {
	kv        store.KV
	directory *auth.Directory
	sessions  *auth.Sessions
	tasks     *task.List

	width  int
	height int
	// First WindowSizeMsg is initial sizing, not a user resize.
	seenWindowSize bool

	view          view
	notFoundToken string

	session  model.Session
	loggedIn bool

	login    loginForm
	register registerForm
	todo     todoState
	profile  profileState

	gotoOpen  bool
	gotoInput textinput.Model

	// authSeq guards async submit completions; noticeSeq guards the
	// auto-clear tick for profile messages.
	authSeq   int
	noticeSeq int
}

type loginForm struct {
	username textinput.Model
	password textinput.Model
	focus    int
	busy     bool
	errText  string
	notice   string
}

type registerForm struct {
	username     textinput.Model
	email        textinput.Model
	password     textinput.Model
	confirm      textinput.Model
	focus        int
	showPassword bool
	busy         bool
	errs         []string
	notice       string
}

type todoState struct {
	text  textinput.Model
	due   textinput.Model
	focus todoFocus
	sel   int

	editID       int64
	editInput    textinput.Model
	confirmID    int64
	confirmFocus confirmModalFocus

	errText string
}

type profileState struct {
	username  textinput.Model
	email     textinput.Model
	imagePath textinput.Model
	focus     int
	busy      bool
	notice    string
	noticeErr bool
}

func newAppModel(kv store.KV) appModel {
	dir := auth.NewDirectory(kv)
	sessions := auth.NewSessions(kv, dir)

	m := appModel{
		kv:        kv,
		directory: dir,
		sessions:  sessions,
		tasks:     task.Load(kv),
	}
	m.login = newLoginForm()
	m.register = newRegisterForm()
	m.todo = newTodoState()
	m.profile = newProfileState()
	m.gotoInput = newInput("view name (home, login, register, todo, profile)", 32)

	if sess, ok := sessions.Current(); ok {
		m.session = sess
		m.loggedIn = true
	}
	m.applyViewFocus()
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 36
	return ti
}

func newLoginForm() loginForm {
	f := loginForm{
		username: newInput("username", 64),
		password: newInput("password", 64),
	}
	f.password.EchoMode = textinput.EchoPassword
	return f
}

func newRegisterForm() registerForm {
	f := registerForm{
		username: newInput("username", 64),
		email:    newInput("email", 128),
		password: newInput("password", 64),
		confirm:  newInput("confirm password", 64),
	}
	f.password.EchoMode = textinput.EchoPassword
	f.confirm.EchoMode = textinput.EchoPassword
	return f
}

func newTodoState() todoState {
	s := todoState{
		text:      newInput("what needs doing?", 200),
		due:       newInput("due (Y-m-d or Y-m-d H:i, empty = today)", 32),
		editInput: newInput("task text", 200),
	}
	return s
}

func newProfileState() profileState {
	return profileState{
		username:  newInput("username", 64),
		email:     newInput("email", 128),
		imagePath: newInput("path to avatar image (optional)", 256),
	}
}

// navigate switches views the way the original app followed location tokens:
// empty means home, unknown means not-found, and the account views redirect
// based on whether someone is logged in.
func (m *appModel) navigate(token string) {
	switch token {
	case "":
		token = "home"
	}
	v, ok := viewTokens[token]
	if !ok {
		m.notFoundToken = token
		m.view = viewNotFound
		return
	}

	switch v {
	case viewTodo, viewProfile:
		if !m.loggedIn {
			v = viewLogin
		}
	case viewLogin, viewRegister:
		if m.loggedIn {
			v = viewTodo
		}
	}

	switch v {
	case viewTodo:
		m.tasks = task.Load(m.kv)
		m.todo.sel = 0
		m.todo.errText = ""
		m.todo.confirmID = 0
		m.todo.editID = 0
	case viewProfile:
		m.loadProfileFields()
	case viewLogin:
		m.login.errText = ""
	case viewRegister:
		m.register.errs = nil
	}

	m.view = v
	m.applyViewFocus()
}

func (m *appModel) loadProfileFields() {
	m.profile.username.SetValue(m.session.Username)
	m.profile.email.SetValue(m.session.Email)
	m.profile.imagePath.SetValue("")
	m.profile.focus = 0
	m.profile.notice = ""
}

func (m *appModel) logout() {
	_ = m.sessions.Logout()
	m.session = model.Session{}
	m.loggedIn = false
	m.login = newLoginForm()
	m.register = newRegisterForm()
	m.profile = newProfileState()
	m.navigate("home")
}

// applyViewFocus moves textinput focus to match the current view and the
// view's internal focus index.
func (m *appModel) applyViewFocus() {
	m.login.username.Blur()
	m.login.password.Blur()
	m.register.username.Blur()
	m.register.email.Blur()
	m.register.password.Blur()
	m.register.confirm.Blur()
	m.todo.text.Blur()
	m.todo.due.Blur()
	m.todo.editInput.Blur()
	m.profile.username.Blur()
	m.profile.email.Blur()
	m.profile.imagePath.Blur()
	m.gotoInput.Blur()

	if m.gotoOpen {
		m.gotoInput.Focus()
		return
	}

	switch m.view {
	case viewLogin:
		if m.login.focus == 0 {
			m.login.username.Focus()
		} else {
			m.login.password.Focus()
		}
	case viewRegister:
		switch m.register.focus {
		case 0:
			m.register.username.Focus()
		case 1:
			m.register.email.Focus()
		case 2:
			m.register.password.Focus()
		case 3:
			m.register.confirm.Focus()
		}
	case viewTodo:
		if m.todo.editID != 0 {
			m.todo.editInput.Focus()
			return
		}
		if m.todo.confirmID != 0 {
			return
		}
		switch m.todo.focus {
		case todoFocusText:
			m.todo.text.Focus()
		case todoFocusDue:
			m.todo.due.Focus()
		}
	case viewProfile:
		switch m.profile.focus {
		case 0:
			m.profile.username.Focus()
		case 1:
			m.profile.email.Focus()
		case 2:
			m.profile.imagePath.Focus()
		}
	}
}

// visibleTasks returns pending tasks followed by completed ones, the order
// the list view renders and the selection index walks.
func (m appModel) visibleTasks() []model.Task {
	pending := m.tasks.Pending()
	completed := m.tasks.Completed()
	out := make([]model.Task, 0, len(pending)+len(completed))
	out = append(out, pending...)
	out = append(out, completed...)
	return out
}

func (m *appModel) clampTodoSel() {
	n := len(m.visibleTasks())
	if n == 0 {
		m.todo.sel = 0
		return
	}
	if m.todo.sel < 0 {
		m.todo.sel = 0
	}
	if m.todo.sel >= n {
		m.todo.sel = n - 1
	}
}

func (m appModel) selectedTask() (model.Task, bool) {
	rows := m.visibleTasks()
	if m.todo.sel < 0 || m.todo.sel >= len(rows) {
		return model.Task{}, false
	}
	return rows[m.todo.sel], true
}
