package task

import (
	"fmt"
	"strings"
	"time"
)

// Due dates are stored as strings in one of two layouts, matching what the
// date-picker has always produced.
const (
	dueLayoutDateTime = "2006-01-02 15:04"
	dueLayoutDate     = "2006-01-02"
)

// ParseDue normalizes a user-entered due date. Empty input stays empty
// (Add fills in today's date).
func ParseDue(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, layout := range []string{dueLayoutDateTime, dueLayoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(layout), nil
		}
	}
	return "", fmt.Errorf("invalid due date %q (expected Y-m-d or Y-m-d H:i)", s)
}

// DisplayDue renders a stored due date for lists; absent dates get a
// placeholder.
func DisplayDue(s string) string {
	if strings.TrimSpace(s) == "" {
		return "No date"
	}
	return s
}
