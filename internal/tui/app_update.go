package tui

import (
	"errors"
	"strings"
	"time"

	"daylist/internal/auth"
	"daylist/internal/task"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Init() tea.Cmd { return textinput.Blink }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.seenWindowSize {
			m.seenWindowSize = true
		}
		return m, nil

	case navigateMsg:
		m.navigate(msg.token)
		return m, nil

	case navDelayMsg:
		// Only follow through if no newer submission superseded this one.
		if msg.seq == m.authSeq {
			m.navigate(msg.token)
		}
		return m, nil

	case loginDoneMsg:
		if msg.seq != m.authSeq {
			return m, nil
		}
		m.login.busy = false
		if msg.errText != "" {
			m.login.errText = msg.errText
			return m, nil
		}
		m.session = msg.session
		m.loggedIn = true
		m.login.notice = "Login successful!"
		seq := m.authSeq
		return m, tea.Tick(time.Second, func(time.Time) tea.Msg {
			return navDelayMsg{seq: seq, token: "home"}
		})

	case registerDoneMsg:
		if msg.seq != m.authSeq {
			return m, nil
		}
		m.register.busy = false
		if len(msg.errs) > 0 {
			m.register.errs = msg.errs
			return m, nil
		}
		m.register.notice = "Registration successful!"
		seq := m.authSeq
		return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
			return navDelayMsg{seq: seq, token: "login"}
		})

	case profileSaveDoneMsg:
		if msg.seq != m.authSeq {
			return m, nil
		}
		m.profile.busy = false
		if msg.errText != "" {
			m.profile.notice = msg.errText
			m.profile.noticeErr = true
		} else {
			m.session = msg.session
			m.profile.notice = "Profile updated successfully"
			m.profile.noticeErr = false
			m.profile.username.SetValue(m.session.Username)
			m.profile.email.SetValue(m.session.Email)
			m.profile.imagePath.SetValue("")
		}
		m.noticeSeq++
		seq := m.noticeSeq
		return m, tea.Tick(4*time.Second, func(time.Time) tea.Msg {
			return clearNoticeMsg{seq: seq}
		})

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.profile.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	cmd := m.updateFocusedInput(msg)
	return m, cmd
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.gotoOpen {
		return m.updateGoto(msg)
	}

	switch msg.String() {
	case "ctrl+g":
		m.gotoOpen = true
		m.gotoInput.SetValue("")
		m.applyViewFocus()
		return m, textinput.Blink
	case "ctrl+t":
		_, _ = ToggleTheme(m.kv)
		return m, nil
	case "ctrl+h":
		m.navigate("home")
		return m, nil
	}

	switch m.view {
	case viewHome:
		return m.updateHome(msg)
	case viewLogin:
		return m.updateLogin(msg)
	case viewRegister:
		return m.updateRegister(msg)
	case viewTodo:
		return m.updateTodo(msg)
	case viewProfile:
		return m.updateProfile(msg)
	case viewNotFound:
		return m.updateNotFound(msg)
	}
	return m, nil
}

func (m appModel) updateGoto(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		m.gotoOpen = false
		m.applyViewFocus()
		return m, nil
	case "enter":
		token := strings.TrimSpace(strings.ToLower(m.gotoInput.Value()))
		m.gotoOpen = false
		m.navigate(token)
		return m, nil
	}
	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return m, cmd
}

func (m appModel) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "l":
		if !m.loggedIn {
			m.navigate("login")
		}
		return m, nil
	case "r":
		if !m.loggedIn {
			m.navigate("register")
		}
		return m, nil
	case "t":
		if m.loggedIn {
			m.navigate("todo")
		}
		return m, nil
	case "p":
		if m.loggedIn {
			m.navigate("profile")
		}
		return m, nil
	case "o":
		if m.loggedIn {
			m.logout()
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.navigate("home")
		return m, nil
	case "tab", "down":
		m.login.focus = (m.login.focus + 1) % 2
		m.applyViewFocus()
		return m, textinput.Blink
	case "shift+tab", "up":
		m.login.focus = (m.login.focus + 1) % 2
		m.applyViewFocus()
		return m, textinput.Blink
	case "enter":
		if m.login.busy {
			return m, nil
		}
		m.login.errText = ""
		m.login.notice = ""
		m.login.busy = true
		m.authSeq++
		return m, submitLoginCmd(m.authSeq, m.sessions,
			m.login.username.Value(), m.login.password.Value())
	}
	var cmd tea.Cmd
	if m.login.focus == 0 {
		m.login.username, cmd = m.login.username.Update(msg)
	} else {
		m.login.password, cmd = m.login.password.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateRegister(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.navigate("home")
		return m, nil
	case "tab", "down":
		m.register.focus = (m.register.focus + 1) % 4
		m.applyViewFocus()
		return m, textinput.Blink
	case "shift+tab", "up":
		m.register.focus = (m.register.focus + 3) % 4
		m.applyViewFocus()
		return m, textinput.Blink
	case "ctrl+v":
		m.register.showPassword = !m.register.showPassword
		echo := textinput.EchoPassword
		if m.register.showPassword {
			echo = textinput.EchoNormal
		}
		m.register.password.EchoMode = echo
		m.register.confirm.EchoMode = echo
		return m, nil
	case "enter":
		if m.register.busy {
			return m, nil
		}
		m.register.errs = nil
		m.register.notice = ""
		m.register.busy = true
		m.authSeq++
		return m, submitRegisterCmd(m.authSeq, m.directory,
			m.register.username.Value(), m.register.email.Value(),
			m.register.password.Value(), m.register.confirm.Value())
	}
	var cmd tea.Cmd
	switch m.register.focus {
	case 0:
		m.register.username, cmd = m.register.username.Update(msg)
	case 1:
		m.register.email, cmd = m.register.email.Update(msg)
	case 2:
		m.register.password, cmd = m.register.password.Update(msg)
	case 3:
		m.register.confirm, cmd = m.register.confirm.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateTodo(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.todo.editID != 0 {
		return m.updateTodoEdit(msg)
	}
	if m.todo.confirmID != 0 {
		return m.updateTodoConfirm(msg)
	}

	switch msg.String() {
	case "esc":
		m.navigate("home")
		return m, nil
	case "tab":
		m.todo.focus = (m.todo.focus + 1) % 3
		m.applyViewFocus()
		return m, textinput.Blink
	case "shift+tab":
		m.todo.focus = (m.todo.focus + 2) % 3
		m.applyViewFocus()
		return m, textinput.Blink
	}

	if m.todo.focus == todoFocusList {
		return m.updateTodoList(msg)
	}

	switch msg.String() {
	case "enter":
		m.addTask()
		return m, nil
	}
	var cmd tea.Cmd
	if m.todo.focus == todoFocusText {
		m.todo.text, cmd = m.todo.text.Update(msg)
	} else {
		m.todo.due, cmd = m.todo.due.Update(msg)
	}
	return m, cmd
}

func (m *appModel) addTask() {
	text := m.todo.text.Value()
	due := strings.TrimSpace(m.todo.due.Value())
	m.todo.errText = ""
	if due != "" {
		normalized, err := task.ParseDue(due)
		if err != nil {
			m.todo.errText = err.Error()
			return
		}
		due = normalized
	}
	if _, added, err := m.tasks.Add(text, due); err != nil {
		m.todo.errText = err.Error()
		return
	} else if !added {
		return
	}
	m.todo.text.SetValue("")
	m.todo.due.SetValue("")
	m.clampTodoSel()
}

func (m appModel) updateTodoList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.todo.sel--
		m.clampTodoSel()
		return m, nil
	case "down", "j":
		m.todo.sel++
		m.clampTodoSel()
		return m, nil
	case "enter", " ":
		if t, ok := m.selectedTask(); ok {
			if _, err := m.tasks.Toggle(t.ID); err != nil {
				m.todo.errText = err.Error()
			}
			m.clampTodoSel()
		}
		return m, nil
	case "e":
		if t, ok := m.selectedTask(); ok {
			m.todo.editID = t.ID
			m.todo.editInput.SetValue(t.Text)
			m.todo.editInput.CursorEnd()
			m.applyViewFocus()
			return m, textinput.Blink
		}
		return m, nil
	case "d":
		if t, ok := m.selectedTask(); ok {
			m.todo.confirmID = t.ID
			m.todo.confirmFocus = confirmFocusCancel
			m.applyViewFocus()
		}
		return m, nil
	case "n":
		m.todo.focus = todoFocusText
		m.applyViewFocus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m appModel) updateTodoEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		m.todo.editID = 0
		m.applyViewFocus()
		return m, nil
	case "enter":
		id := m.todo.editID
		m.todo.editID = 0
		if _, err := m.tasks.Edit(id, m.todo.editInput.Value()); err != nil {
			m.todo.errText = err.Error()
		}
		m.applyViewFocus()
		return m, nil
	}
	var cmd tea.Cmd
	m.todo.editInput, cmd = m.todo.editInput.Update(msg)
	return m, cmd
}

func (m appModel) updateTodoConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g", "n":
		m.todo.confirmID = 0
		m.applyViewFocus()
		return m, nil
	case "tab", "left", "right":
		if m.todo.confirmFocus == confirmFocusConfirm {
			m.todo.confirmFocus = confirmFocusCancel
		} else {
			m.todo.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case "y":
		return m.confirmDelete()
	case "enter":
		if m.todo.confirmFocus == confirmFocusConfirm {
			return m.confirmDelete()
		}
		m.todo.confirmID = 0
		m.applyViewFocus()
		return m, nil
	}
	return m, nil
}

func (m appModel) confirmDelete() (tea.Model, tea.Cmd) {
	id := m.todo.confirmID
	m.todo.confirmID = 0
	if _, err := m.tasks.Delete(id); err != nil {
		m.todo.errText = err.Error()
	}
	m.clampTodoSel()
	m.applyViewFocus()
	return m, nil
}

func (m appModel) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.navigate("home")
		return m, nil
	case "tab", "down":
		m.profile.focus = (m.profile.focus + 1) % 3
		m.applyViewFocus()
		return m, textinput.Blink
	case "shift+tab", "up":
		m.profile.focus = (m.profile.focus + 2) % 3
		m.applyViewFocus()
		return m, textinput.Blink
	case "enter", "ctrl+s":
		if m.profile.busy {
			return m, nil
		}
		m.profile.notice = ""
		m.profile.busy = true
		m.authSeq++
		return m, saveProfileCmd(m.authSeq, m.sessions,
			m.profile.username.Value(), m.profile.email.Value(),
			m.profile.imagePath.Value())
	}
	var cmd tea.Cmd
	switch m.profile.focus {
	case 0:
		m.profile.username, cmd = m.profile.username.Update(msg)
	case 1:
		m.profile.email, cmd = m.profile.email.Update(msg)
	case 2:
		m.profile.imagePath, cmd = m.profile.imagePath.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateNotFound(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "h", "enter":
		m.navigate("home")
		return m, nil
	}
	return m, nil
}

// updateFocusedInput forwards non-key messages (cursor blink ticks) to
// whichever textinput currently has focus.
func (m *appModel) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.gotoOpen:
		m.gotoInput, cmd = m.gotoInput.Update(msg)
	case m.view == viewLogin:
		if m.login.focus == 0 {
			m.login.username, cmd = m.login.username.Update(msg)
		} else {
			m.login.password, cmd = m.login.password.Update(msg)
		}
	case m.view == viewRegister:
		switch m.register.focus {
		case 0:
			m.register.username, cmd = m.register.username.Update(msg)
		case 1:
			m.register.email, cmd = m.register.email.Update(msg)
		case 2:
			m.register.password, cmd = m.register.password.Update(msg)
		case 3:
			m.register.confirm, cmd = m.register.confirm.Update(msg)
		}
	case m.view == viewTodo:
		switch {
		case m.todo.editID != 0:
			m.todo.editInput, cmd = m.todo.editInput.Update(msg)
		case m.todo.focus == todoFocusText:
			m.todo.text, cmd = m.todo.text.Update(msg)
		case m.todo.focus == todoFocusDue:
			m.todo.due, cmd = m.todo.due.Update(msg)
		}
	case m.view == viewProfile:
		switch m.profile.focus {
		case 0:
			m.profile.username, cmd = m.profile.username.Update(msg)
		case 1:
			m.profile.email, cmd = m.profile.email.Update(msg)
		case 2:
			m.profile.imagePath, cmd = m.profile.imagePath.Update(msg)
		}
	}
	return cmd
}

func submitLoginCmd(seq int, sessions *auth.Sessions, username, password string) tea.Cmd {
	return func() tea.Msg {
		sess, err := sessions.Login(username, password)
		if err != nil {
			return loginDoneMsg{seq: seq, errText: err.Error()}
		}
		return loginDoneMsg{seq: seq, session: sess}
	}
}

func submitRegisterCmd(seq int, dir *auth.Directory, username, email, password, confirm string) tea.Cmd {
	return func() tea.Msg {
		if _, err := auth.Register(dir, username, email, password, confirm); err != nil {
			var verr *auth.ValidationError
			if errors.As(err, &verr) {
				return registerDoneMsg{seq: seq, errs: verr.Messages}
			}
			return registerDoneMsg{seq: seq, errs: []string{err.Error()}}
		}
		return registerDoneMsg{seq: seq}
	}
}

func saveProfileCmd(seq int, sessions *auth.Sessions, username, email, imagePath string) tea.Cmd {
	return func() tea.Msg {
		patch := auth.ProfilePatch{Username: username, Email: email}
		if p := strings.TrimSpace(imagePath); p != "" {
			uri, err := auth.ReadImageDataURI(p)
			if err != nil {
				return profileSaveDoneMsg{seq: seq, errText: err.Error()}
			}
			patch.Image = uri
		}
		sess, err := sessions.UpdateProfile(patch)
		if err != nil {
			return profileSaveDoneMsg{seq: seq, errText: err.Error()}
		}
		return profileSaveDoneMsg{seq: seq, session: sess}
	}
}
