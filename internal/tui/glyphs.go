package tui

import (
	"os"
	"strings"
	"sync"
)

// Terminal apps can't load icon fonts, so action buttons use either Unicode
// or ASCII glyph sets. ASCII helps terminals/fonts that don't render some
// glyphs cleanly.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference() {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("DAYLIST_TUI_GLYPHS")))
	switch v {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	default:
		// Unknown value: ignore.
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphPending() string {
	if glyphs() == glyphSetASCII {
		return "[ ]"
	}
	return "☐"
}

func glyphDone() string {
	if glyphs() == glyphSetASCII {
		return "[x]"
	}
	return "☑"
}

func glyphComplete() string {
	if glyphs() == glyphSetASCII {
		return "ok"
	}
	return "✓"
}

func glyphUndo() string {
	if glyphs() == glyphSetASCII {
		return "undo"
	}
	return "↩"
}

func glyphEdit() string {
	if glyphs() == glyphSetASCII {
		return "edit"
	}
	return "✎"
}

func glyphDelete() string {
	if glyphs() == glyphSetASCII {
		return "del"
	}
	return "✕"
}

func glyphThemeLabel(dark bool) string {
	if glyphs() == glyphSetASCII {
		if dark {
			return "dark"
		}
		return "light"
	}
	if dark {
		return "🌙"
	}
	return "☀"
}

func glyphCalendar() string {
	if glyphs() == glyphSetASCII {
		return "@"
	}
	return "🗓"
}
