package weburl

import (
	"strconv"
	"strings"
)

// Serialize returns the href of u, without the fragment when
// excludeFragment is set.
func (u *URL) Serialize(excludeFragment bool) string {
	var sb strings.Builder

	sb.WriteString(u.Scheme)
	sb.WriteByte(':')

	switch {
	case !u.Host.IsNull():
		sb.WriteString("//")

		if u.IncludesCredentials() {
			sb.WriteString(u.Username)

			if u.Password != "" {
				sb.WriteByte(':')
				sb.WriteString(u.Password)
			}

			sb.WriteByte('@')
		}

		sb.WriteString(u.Host.String())

		if u.Port != nil {
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(int(*u.Port)))
		}
	case u.Scheme == "file":
		sb.WriteString("//")
	case !u.CannotBeABaseURL && len(u.Path) > 1 && u.Path[0] == "":
		// Keeps "/.//x" from reading back as an authority.
		sb.WriteString("/.")
	}

	sb.WriteString(u.Pathname())

	if u.Query != nil {
		sb.WriteByte('?')
		sb.WriteString(*u.Query)
	}

	if !excludeFragment && u.Fragment != nil {
		sb.WriteByte('#')
		sb.WriteString(*u.Fragment)
	}

	return sb.String()
}

// Href returns the full serialization of u.
func (u *URL) Href() string { return u.Serialize(false) }

func (u *URL) String() string { return u.Href() }

// MarshalText implements encoding.TextMarshaler.
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.Href()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *URL) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*u = *parsed

	return nil
}
