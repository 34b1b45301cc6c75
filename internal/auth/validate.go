package auth

import "strings"

// passwordSpecials is the accepted special-character set for passwords.
const passwordSpecials = "@$!%*?&"

// ValidateRegistration checks a registration form and returns every failure
// at once as a *ValidationError (nil when the form is valid).
//
// Password sub-checks short-circuit: only the first applicable password
// error is reported, matching how the form has always behaved.
func ValidateRegistration(username, email, password, confirm string) error {
	var msgs []string

	if username == "" {
		msgs = append(msgs, "Username is required")
	}

	switch {
	case email == "":
		msgs = append(msgs, "Email is required")
	case !strings.Contains(email, "@"):
		msgs = append(msgs, "Email must include @")
	}

	if msg := passwordMessage(password, confirm); msg != "" {
		msgs = append(msgs, msg)
	}

	if len(msgs) == 0 {
		return nil
	}
	return &ValidationError{Messages: msgs}
}

func passwordMessage(password, confirm string) string {
	switch {
	case password == "":
		return "Password is required"
	case confirm != password:
		return "Passwords do not match"
	case len(password) < 6 || len(password) > 20:
		return "Password must be 6 to 20 characters"
	case !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }):
		return "Password must contain lowercase"
	case !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }):
		return "Password must contain uppercase"
	case !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }):
		return "Password must contain number"
	case !strings.ContainsAny(password, passwordSpecials):
		return "Password must contain special character"
	default:
		return ""
	}
}
