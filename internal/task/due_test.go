package task

import "testing"

func TestParseDue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: ""},
		{in: "   ", want: ""},
		{in: "2025-01-02", want: "2025-01-02"},
		{in: "2025-01-02 10:30", want: "2025-01-02 10:30"},
		{in: "  2025-01-02  ", want: "2025-01-02"},
		{in: "2025-1-2", wantErr: true}, // layouts are zero-padded
		{in: "tomorrow", wantErr: true},
		{in: "2025-13-40", wantErr: true},
		{in: "2025-01-02T10:30", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseDue(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseDue(%q): no error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseDue(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseDue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayDue(t *testing.T) {
	t.Parallel()

	if got := DisplayDue(""); got != "No date" {
		t.Fatalf("DisplayDue(\"\") = %q", got)
	}
	if got := DisplayDue("  "); got != "No date" {
		t.Fatalf("DisplayDue(blank) = %q", got)
	}
	if got := DisplayDue("2025-01-02"); got != "2025-01-02" {
		t.Fatalf("DisplayDue passthrough = %q", got)
	}
}
