package model

// Account is one registered user as persisted in the userData list.
//
// JSON field names match the original store layout: the password field holds
// the hex SHA-256 digest (never plaintext) and image holds an optional
// data-URI encoded profile picture.
type Account struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	PasswordDigest string `json:"password"`
	Image          string `json:"image"`
}

// Session is the denormalized copy of one Account persisted under the
// currentUser key while that user is logged in. It must be kept consistent
// with the corresponding Account record on every profile mutation.
type Session struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	PasswordDigest string `json:"password"`
	Image          string `json:"image"`
}

func SessionFromAccount(a Account) Session {
	return Session{
		Username:       a.Username,
		Email:          a.Email,
		PasswordDigest: a.PasswordDigest,
		Image:          a.Image,
	}
}

// Task is one to-do entry. IDs are integers for compatibility with stores
// written by earlier versions (which used creation timestamps in unix
// milliseconds); new ids are strictly monotonic.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Due       string `json:"date,omitempty"` // "2006-01-02" or "2006-01-02 15:04"
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Other() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	default:
		return "", false
	}
}
