package tui

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"daylist/internal/model"
	"daylist/internal/store"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme handling.
//
// The app has an explicit two-valued light/dark preference (persisted under
// the theme key), not a terminal-adaptive palette: toggling must restyle
// everything immediately, whatever the terminal reports. The palette lives
// in package-level variables and applyTheme recomputes every derived style,
// which is the restyle pass the views rely on.

type palette struct {
	primary lipgloss.Color
	success lipgloss.Color
	info    lipgloss.Color
	danger  lipgloss.Color
	muted   lipgloss.Color
	text    lipgloss.Color
	surface lipgloss.Color
}

var (
	lightPalette = palette{
		primary: lipgloss.Color("#007bff"),
		success: lipgloss.Color("#2ecc71"),
		info:    lipgloss.Color("#3498db"),
		danger:  lipgloss.Color("#e74c3c"),
		muted:   lipgloss.Color("245"),
		text:    lipgloss.Color("235"),
		surface: lipgloss.Color("254"),
	}
	darkPalette = palette{
		primary: lipgloss.Color("#4dabf7"),
		success: lipgloss.Color("#51cf66"),
		info:    lipgloss.Color("#74c0fc"),
		danger:  lipgloss.Color("#ff6b6b"),
		muted:   lipgloss.Color("250"),
		text:    lipgloss.Color("252"),
		surface: lipgloss.Color("236"),
	}
)

var (
	themeMu     sync.RWMutex
	activeTheme = model.ThemeLight

	colorPrimary lipgloss.TerminalColor = lightPalette.primary
	colorSuccess lipgloss.TerminalColor = lightPalette.success
	colorInfo    lipgloss.TerminalColor = lightPalette.info
	colorDanger  lipgloss.TerminalColor = lightPalette.danger
	colorMuted   lipgloss.TerminalColor = lightPalette.muted
	colorText    lipgloss.TerminalColor = lightPalette.text
	colorSurface lipgloss.TerminalColor = lightPalette.surface

	styleHeader       lipgloss.Style
	styleNavActive    lipgloss.Style
	styleNav          lipgloss.Style
	styleFooter       lipgloss.Style
	styleSectionTitle lipgloss.Style
	styleSelectedRow  lipgloss.Style
	stylePendingEdge  lipgloss.Style
	styleDoneEdge     lipgloss.Style
	styleDoneText     lipgloss.Style
	styleDueLabel     lipgloss.Style
	styleErrorMsg     lipgloss.Style
	styleSuccessMsg   lipgloss.Style
	styleBtnComplete  lipgloss.Style
	styleBtnEdit      lipgloss.Style
	styleBtnDelete    lipgloss.Style
	styleInputLabel   lipgloss.Style
)

func init() {
	restyle()
}

// applyTheme installs the palette for t and recomputes every derived style.
// It must run after initial load and after every toggle.
func applyTheme(t model.Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()

	p := lightPalette
	if t == model.ThemeDark {
		p = darkPalette
	}
	activeTheme = t
	colorPrimary = p.primary
	colorSuccess = p.success
	colorInfo = p.info
	colorDanger = p.danger
	colorMuted = p.muted
	colorText = p.text
	colorSurface = p.surface
	restyle()
}

func restyle() {
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	styleNavActive = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Underline(true)
	styleNav = lipgloss.NewStyle().Foreground(colorMuted)
	styleFooter = lipgloss.NewStyle().Faint(true)
	styleSectionTitle = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	styleSelectedRow = lipgloss.NewStyle().Bold(true).Background(colorSurface)
	stylePendingEdge = lipgloss.NewStyle().Foreground(colorPrimary)
	styleDoneEdge = lipgloss.NewStyle().Foreground(colorSuccess)
	styleDoneText = lipgloss.NewStyle().Strikethrough(true).Foreground(colorMuted)
	styleDueLabel = lipgloss.NewStyle().Faint(true).Foreground(colorMuted)
	styleErrorMsg = lipgloss.NewStyle().Foreground(colorDanger)
	styleSuccessMsg = lipgloss.NewStyle().Foreground(colorSuccess)
	styleBtnComplete = lipgloss.NewStyle().Foreground(colorSuccess)
	styleBtnEdit = lipgloss.NewStyle().Foreground(colorInfo)
	styleBtnDelete = lipgloss.NewStyle().Foreground(colorDanger)
	styleInputLabel = lipgloss.NewStyle().Foreground(colorMuted)
}

// CurrentTheme returns the theme currently applied in this process.
func CurrentTheme() model.Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return activeTheme
}

// LoadTheme resolves and applies the theme: the persisted value when
// present, otherwise the system preference — which is then persisted so the
// next run is stable regardless of terminal detection.
func LoadTheme(kv store.KV) model.Theme {
	var stored string
	if kv.Get(store.KeyTheme, &stored) {
		if t, ok := model.ParseTheme(stored); ok {
			applyTheme(t)
			return t
		}
	}
	t := systemTheme()
	_ = kv.Set(store.KeyTheme, string(t))
	applyTheme(t)
	return t
}

// ToggleTheme flips the persisted and in-memory theme, then restyles.
func ToggleTheme(kv store.KV) (model.Theme, error) {
	next := LoadTheme(kv).Other()
	if err := kv.Set(store.KeyTheme, string(next)); err != nil {
		return "", err
	}
	applyTheme(next)
	return next, nil
}

// systemTheme guesses light/dark for first runs.
//
// Priority:
// 1) DAYLIST_TUI_THEME=light|dark
// 2) COLORFGBG heuristic (common in terminals; format like "15;0" = fg;bg)
// 3) termenv background probe
func systemTheme() model.Theme {
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("DAYLIST_TUI_THEME"))); v != "" {
		if t, ok := model.ParseTheme(v); ok {
			return t
		}
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		bgStr := strings.TrimSpace(parts[len(parts)-1])
		if bg, err := strconv.Atoi(bgStr); err == nil {
			if bg < 7 {
				return model.ThemeDark
			}
			return model.ThemeLight
		}
	}

	if lipgloss.HasDarkBackground() {
		return model.ThemeDark
	}
	return model.ThemeLight
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
//
// termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which can
// accidentally disable colors in a TUI; only honor NO_COLOR here.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	}
	lipgloss.SetColorProfile(profile)
}
