package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func modalBodyWidth(width int) int {
	w := width - 10
	if w < 30 {
		w = 30
	}
	if w > 64 {
		w = 64
	}
	return w
}

func renderModalBox(width int, title string, content string) string {
	bodyW := modalBodyWidth(width)
	titleLine := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render(clipLine(title, bodyW))
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(0, 1).
		Width(bodyW + 2)
	return box.Render(titleLine + "\n\n" + content)
}

func (m appModel) placeCentered(box string) string {
	w, h := m.width, m.height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
}

func renderConfirmModal(width int, title string, body string, confirmLabel string, cancelLabel string, focus confirmModalFocus) string {
	// Avoid borders on the buttons: some terminals show background artifacts
	// when nesting bordered components inside a modal.
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Background(colorSurface).
		Foreground(colorText)
	btnConfirm := btnBase.Foreground(colorDanger)
	if focus == confirmFocusConfirm {
		btnConfirm = btnConfirm.Bold(true).Underline(true)
	}
	btnCancel := btnBase
	if focus == confirmFocusCancel {
		btnCancel = btnCancel.Bold(true).Underline(true)
	}

	controls := lipgloss.JoinHorizontal(lipgloss.Top,
		btnConfirm.Render(confirmLabel),
		" ",
		btnCancel.Render(cancelLabel),
	)

	bodyW := modalBodyWidth(width)
	help := styleFooter.Render("tab: focus   y/enter: confirm   esc/n: cancel")

	content := strings.Join([]string{
		lipgloss.NewStyle().Width(bodyW).Render(body),
		"",
		controls,
		"",
		help,
	}, "\n")
	return renderModalBox(width, title, content)
}

func renderInputModal(width int, title string, inputView string, help string) string {
	bodyW := modalBodyWidth(width)
	content := strings.Join([]string{
		renderInputLine(bodyW, inputView),
		"",
		styleFooter.Render(help),
	}, "\n")
	return renderModalBox(width, title, content)
}
