package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// clipLine forces s to at most width columns (ANSI-aware), terminating any
// styling so truncation can't bleed colors into the next cell.
func clipLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return xansi.Cut(s, 0, 1) + "\x1b[0m"
	}
	return xansi.Cut(s, 0, width-1) + "…" + "\x1b[0m"
}

// padLine pads s with spaces to exactly width columns (after clipping).
func padLine(s string, width int) string {
	s = clipLine(s, width)
	if w := xansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
