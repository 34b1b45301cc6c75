package model

import (
	"encoding/json"
	"testing"
)

func TestThemeOther(t *testing.T) {
	t.Parallel()

	if ThemeLight.Other() != ThemeDark || ThemeDark.Other() != ThemeLight {
		t.Fatalf("Other does not flip")
	}
}

func TestParseTheme(t *testing.T) {
	t.Parallel()

	if th, ok := ParseTheme("light"); !ok || th != ThemeLight {
		t.Fatalf("ParseTheme(light) = %v %v", th, ok)
	}
	if th, ok := ParseTheme("dark"); !ok || th != ThemeDark {
		t.Fatalf("ParseTheme(dark) = %v %v", th, ok)
	}
	if _, ok := ParseTheme("sepia"); ok {
		t.Fatalf("ParseTheme accepted an unknown value")
	}
}

func TestTaskJSONFieldNames(t *testing.T) {
	t.Parallel()

	// Field names are a compatibility surface with existing stores.
	b, err := json.Marshal(Task{ID: 1724112000000, Text: "x", Completed: true, Due: "2030-01-02"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"id":1724112000000,"text":"x","completed":true,"date":"2030-01-02"}`
	if string(b) != want {
		t.Fatalf("task json = %s", b)
	}

	var back Task
	if err := json.Unmarshal([]byte(`{"id":5,"text":"y","completed":false}`), &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.ID != 5 || back.Due != "" {
		t.Fatalf("task = %+v", back)
	}
}

func TestSessionFromAccount(t *testing.T) {
	t.Parallel()

	a := Account{Username: "alice", Email: "a@b.com", PasswordDigest: "abcd", Image: "data:..."}
	s := SessionFromAccount(a)
	if s.Username != a.Username || s.Email != a.Email || s.PasswordDigest != a.PasswordDigest || s.Image != a.Image {
		t.Fatalf("session = %+v", s)
	}
}
