package tui

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestClipLine(t *testing.T) {
	t.Parallel()

	if got := clipLine("hello", 10); got != "hello" {
		t.Fatalf("no-op clip = %q", got)
	}
	if got := clipLine("hello world", 5); xansi.StringWidth(got) != 5 {
		t.Fatalf("clipped width = %d (%q)", xansi.StringWidth(got), got)
	}
	if got := clipLine("hello world", 5); !strings.HasSuffix(got, "…\x1b[0m") {
		t.Fatalf("clip missing ellipsis + reset: %q", got)
	}
	if got := clipLine("hello", 0); got != "" {
		t.Fatalf("zero width clip = %q", got)
	}
}

func TestPadLine(t *testing.T) {
	t.Parallel()

	got := padLine("hi", 6)
	if xansi.StringWidth(got) != 6 {
		t.Fatalf("padded width = %d (%q)", xansi.StringWidth(got), got)
	}
	if !strings.HasPrefix(got, "hi") {
		t.Fatalf("padded = %q", got)
	}

	// Overlong input clips down to exactly the target width.
	got = padLine("hello world", 5)
	if xansi.StringWidth(got) != 5 {
		t.Fatalf("clip-pad width = %d (%q)", xansi.StringWidth(got), got)
	}
}
