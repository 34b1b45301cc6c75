package auth

import "testing"

func TestDigestIsDeterministic(t *testing.T) {
	t.Parallel()

	a := Digest("Abc123!")
	b := Digest("Abc123!")
	if a != b {
		t.Fatalf("Digest not deterministic: %q vs %q", a, b)
	}
	if a == Digest("abc123!") {
		t.Fatalf("Digest collides across different inputs")
	}
}

func TestDigestFormat(t *testing.T) {
	t.Parallel()

	d := Digest("anything")
	if len(d) != 64 {
		t.Fatalf("Digest length = %d, want 64 hex chars", len(d))
	}
	for _, r := range d {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			t.Fatalf("Digest contains non-lowercase-hex rune %q in %q", r, d)
		}
	}
}

func TestDigestKnownVector(t *testing.T) {
	t.Parallel()

	// SHA-256 of the empty string.
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := Digest(""); got != want {
		t.Fatalf("Digest(\"\") = %q, want %q", got, want)
	}
}
