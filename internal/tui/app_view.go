package tui

import (
	"fmt"
	"strings"

	"daylist/internal/model"
	"daylist/internal/task"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if m.gotoOpen {
		return m.placeCentered(renderInputModal(m.width, "Go to",
			m.gotoInput.View(), "enter: go   esc: cancel"))
	}
	if m.view == viewTodo && m.todo.confirmID != 0 {
		body := "Delete this task?"
		if t, ok := m.tasks.Find(m.todo.confirmID); ok {
			body = fmt.Sprintf("Delete %q?", t.Text)
		}
		return m.placeCentered(renderConfirmModal(m.width, "Delete task",
			body, "Delete", "Cancel", m.todo.confirmFocus))
	}
	if m.view == viewTodo && m.todo.editID != 0 {
		return m.placeCentered(renderInputModal(m.width, "Edit task",
			m.todo.editInput.View(), "enter: save   esc: cancel"))
	}

	var body string
	switch m.view {
	case viewHome:
		body = m.viewHome()
	case viewLogin:
		body = m.viewLogin()
	case viewRegister:
		body = m.viewRegister()
	case viewTodo:
		body = m.viewTodo()
	case viewProfile:
		body = m.viewProfile()
	case viewNotFound:
		body = m.viewNotFound()
	}

	return strings.Join([]string{m.renderHeader(), body, m.renderFooter()}, "\n\n")
}

func (m appModel) bodyWidth() int {
	w := m.width
	if w <= 0 {
		w = 80
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m appModel) renderHeader() string {
	title := styleHeader.Render("Daylist")

	var navs []string
	add := func(label string, v view) {
		if m.view == v {
			navs = append(navs, styleNavActive.Render(label))
		} else {
			navs = append(navs, styleNav.Render(label))
		}
	}
	add("Home", viewHome)
	if m.loggedIn {
		add("Todo", viewTodo)
		add("Profile", viewProfile)
		navs = append(navs, styleNav.Render("Logout"))
	} else {
		add("Login", viewLogin)
		add("Register", viewRegister)
	}

	theme := glyphThemeLabel(CurrentTheme() == model.ThemeDark)
	line := title + "  " + strings.Join(navs, "  ") + "  " + styleNav.Render(theme)
	return clipLine(line, m.bodyWidth())
}

func (m appModel) renderFooter() string {
	var hint string
	switch m.view {
	case viewHome:
		if m.loggedIn {
			hint = "t: todo  p: profile  o: logout  ctrl+g: go to  ctrl+t: theme  q: quit"
		} else {
			hint = "l: login  r: register  ctrl+g: go to  ctrl+t: theme  q: quit"
		}
	case viewLogin:
		hint = "enter: sign in  tab: next field  esc: home"
	case viewRegister:
		hint = "enter: create account  tab: next field  ctrl+v: show/hide password  esc: home"
	case viewTodo:
		if m.todo.focus == todoFocusList {
			hint = "space/enter: toggle  e: edit  d: delete  n: new  j/k: move  tab: focus  esc: home"
		} else {
			hint = "enter: add  tab: focus  esc: home"
		}
	case viewProfile:
		hint = "enter: save  tab: next field  esc: home"
	case viewNotFound:
		hint = "h/esc: home  ctrl+g: go to  q: quit"
	}
	return styleFooter.Render(clipLine(hint, m.bodyWidth()))
}

func (m appModel) viewHome() string {
	md := "# Welcome to Daylist\n\nA small place to keep your day straight."
	if m.loggedIn {
		pending := len(m.tasks.Pending())
		done := len(m.tasks.Completed())
		md = fmt.Sprintf(
			"# Welcome back, %s\n\nYou have **%d** pending and **%d** completed tasks.",
			m.session.Username, pending, done)
	} else {
		md += "\n\nLog in or register to start keeping a list."
	}
	return renderMarkdown(md, m.bodyWidth())
}

func labeledInput(label string, inputView string, bodyW int) string {
	return styleInputLabel.Render(label) + "\n" + renderInputLine(bodyW, inputView)
}

func (m appModel) viewLogin() string {
	bodyW := modalBodyWidth(m.bodyWidth())
	var b strings.Builder
	b.WriteString(styleSectionTitle.Render("Login") + "\n\n")
	b.WriteString(labeledInput("Username", m.login.username.View(), bodyW) + "\n")
	b.WriteString(labeledInput("Password", m.login.password.View(), bodyW) + "\n")
	if m.login.busy {
		b.WriteString("\n" + styleNav.Render("Signing in…"))
	}
	if m.login.errText != "" {
		b.WriteString("\n" + styleErrorMsg.Render(m.login.errText))
	}
	if m.login.notice != "" {
		b.WriteString("\n" + styleSuccessMsg.Render(m.login.notice))
	}
	return b.String()
}

func (m appModel) viewRegister() string {
	bodyW := modalBodyWidth(m.bodyWidth())
	var b strings.Builder
	b.WriteString(styleSectionTitle.Render("Register") + "\n\n")
	b.WriteString(labeledInput("Username", m.register.username.View(), bodyW) + "\n")
	b.WriteString(labeledInput("Email", m.register.email.View(), bodyW) + "\n")
	b.WriteString(labeledInput("Password", m.register.password.View(), bodyW) + "\n")
	b.WriteString(labeledInput("Confirm password", m.register.confirm.View(), bodyW) + "\n")
	if m.register.busy {
		b.WriteString("\n" + styleNav.Render("Creating account…"))
	}
	for _, e := range m.register.errs {
		b.WriteString("\n" + styleErrorMsg.Render(e))
	}
	if m.register.notice != "" {
		b.WriteString("\n" + styleSuccessMsg.Render(m.register.notice))
	}
	return b.String()
}

func (m appModel) viewTodo() string {
	bodyW := m.bodyWidth()
	inputW := modalBodyWidth(bodyW)

	var b strings.Builder
	b.WriteString(labeledInput("New task", m.todo.text.View(), inputW) + "\n")
	b.WriteString(labeledInput("Due", m.todo.due.View(), inputW) + "\n")
	if m.todo.errText != "" {
		b.WriteString(styleErrorMsg.Render(m.todo.errText) + "\n")
	}
	b.WriteString("\n")

	pending := m.tasks.Pending()
	completed := m.tasks.Completed()

	b.WriteString(styleSectionTitle.Render(fmt.Sprintf("Pending (%d)", len(pending))) + "\n")
	if len(pending) == 0 {
		b.WriteString(styleNav.Render("  nothing pending") + "\n")
	}
	for i, t := range pending {
		b.WriteString(m.renderTaskRow(t, i) + "\n")
	}

	b.WriteString("\n" + styleSectionTitle.Render(fmt.Sprintf("Completed (%d)", len(completed))) + "\n")
	if len(completed) == 0 {
		b.WriteString(styleNav.Render("  nothing completed") + "\n")
	}
	for i, t := range completed {
		b.WriteString(m.renderTaskRow(t, len(pending)+i) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m appModel) renderTaskRow(t model.Task, idx int) string {
	bodyW := m.bodyWidth()
	selected := m.todo.focus == todoFocusList && idx == m.todo.sel

	var edge, text string
	if t.Completed {
		edge = styleDoneEdge.Render(glyphDone())
		text = styleDoneText.Render(t.Text)
	} else {
		edge = stylePendingEdge.Render(glyphPending())
		text = t.Text
	}

	due := styleDueLabel.Render(glyphCalendar() + " " + task.DisplayDue(t.Due))

	line := "  " + edge + " " + text + "  " + due
	if selected {
		toggle := styleBtnComplete.Render(glyphComplete())
		if t.Completed {
			toggle = styleBtnComplete.Render(glyphUndo())
		}
		actions := lipgloss.JoinHorizontal(lipgloss.Top,
			toggle, " ", styleBtnEdit.Render(glyphEdit()), " ", styleBtnDelete.Render(glyphDelete()))
		line += "  " + actions
		return styleSelectedRow.Render(padLine(line, bodyW))
	}
	return clipLine(line, bodyW)
}

func (m appModel) viewProfile() string {
	bodyW := modalBodyWidth(m.bodyWidth())
	var b strings.Builder
	b.WriteString(styleSectionTitle.Render("Profile") + "\n\n")
	b.WriteString(styleNav.Render("Avatar: "+imageSummary(m.session.Image)) + "\n\n")
	b.WriteString(labeledInput("Username", m.profile.username.View(), bodyW) + "\n")
	b.WriteString(labeledInput("Email", m.profile.email.View(), bodyW) + "\n")
	b.WriteString(labeledInput("Image file", m.profile.imagePath.View(), bodyW) + "\n")
	if m.profile.busy {
		b.WriteString("\n" + styleNav.Render("Saving…"))
	}
	if m.profile.notice != "" {
		style := styleSuccessMsg
		if m.profile.noticeErr {
			style = styleErrorMsg
		}
		b.WriteString("\n" + style.Render(m.profile.notice))
	}
	return b.String()
}

// imageSummary describes a stored data-URI avatar; terminals can't show the
// picture itself.
func imageSummary(dataURI string) string {
	if dataURI == "" {
		return "none"
	}
	rest, ok := strings.CutPrefix(dataURI, "data:")
	if !ok {
		return "set"
	}
	mime, payload, ok := strings.Cut(rest, ";base64,")
	if !ok || mime == "" {
		return "set"
	}
	// base64 expands by 4/3; report the decoded size.
	kb := float64(len(payload)) * 3 / 4 / 1024
	return fmt.Sprintf("%s, %.1f KB", mime, kb)
}

func (m appModel) viewNotFound() string {
	var b strings.Builder
	b.WriteString(styleSectionTitle.Render("Page not found") + "\n\n")
	b.WriteString(fmt.Sprintf("No view named %q.", m.notFoundToken))
	return b.String()
}
