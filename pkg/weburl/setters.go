package weburl

import (
	"strings"

	"github.com/Sumatoshi-tech/weburl/pkg/percent"
)

// SetHref replaces u with the parse of href. u is unchanged on failure.
func (u *URL) SetHref(href string) error {
	parsed, err := Parse(href)
	if err != nil {
		return err
	}

	*u = *parsed

	return nil
}

// reparse runs the state machine over input against a clone of u and
// commits the clone when it neither fails nor declines the change.
func (u *URL) reparse(input string, override state) bool {
	clone := u.Clone()

	if _, _, err := basicParse(input, nil, clone, override, nil); err != nil {
		return false
	}

	*u = *clone

	return true
}

// SetProtocol changes the scheme. Switching between special and non-special
// schemes, or to file while credentials or a port are set, is ignored.
func (u *URL) SetProtocol(protocol string) bool {
	return u.reparse(protocol+":", stateSchemeStart)
}

// SetUsername sets the percent-encoded username. It reports false when the
// URL cannot carry credentials.
func (u *URL) SetUsername(username string) bool {
	if u.CannotHaveUsernamePasswordPort() {
		return false
	}

	u.Username = percent.EncodeString(username, percent.Userinfo)

	return true
}

// SetPassword sets the percent-encoded password. It reports false when the
// URL cannot carry credentials.
func (u *URL) SetPassword(password string) bool {
	if u.CannotHaveUsernamePasswordPort() {
		return false
	}

	u.Password = percent.EncodeString(password, percent.Userinfo)

	return true
}

// SetHost sets the host and, when given, the port. An empty host is not
// applied while credentials or a port are set.
func (u *URL) SetHost(hostport string) bool {
	if u.CannotBeABaseURL {
		return false
	}

	return u.reparse(hostport, stateHost)
}

// SetHostname sets the host, rejecting input with a port.
func (u *URL) SetHostname(hostname string) bool {
	if u.CannotBeABaseURL {
		return false
	}

	return u.reparse(hostname, stateHostname)
}

// SetPort sets the port; "" removes it. Leading digits are used and the
// rest ignored; input without leading digits is not applied.
func (u *URL) SetPort(port string) bool {
	if u.CannotHaveUsernamePasswordPort() {
		return false
	}

	if port == "" {
		u.Port = nil

		return true
	}

	return u.reparse(port, statePort)
}

// SetPathname replaces the path.
func (u *URL) SetPathname(pathname string) bool {
	if u.CannotBeABaseURL {
		return false
	}

	clone := u.Clone()
	clone.Path = nil

	if _, _, err := basicParse(pathname, nil, clone, statePathStart, nil); err != nil {
		return false
	}

	*u = *clone

	return true
}

// SetSearch replaces the query; "" removes it. A leading '?' is dropped.
func (u *URL) SetSearch(search string) bool {
	if search == "" {
		u.Query = nil
		u.stripOpaquePathSpaces()

		return true
	}

	clone := u.Clone()
	clone.Query = ptr("")

	if _, _, err := basicParse(strings.TrimPrefix(search, "?"), nil, clone, stateQuery, nil); err != nil {
		return false
	}

	*u = *clone

	return true
}

// SetHash replaces the fragment; "" removes it. A leading '#' is dropped.
func (u *URL) SetHash(hash string) bool {
	if hash == "" {
		u.Fragment = nil
		u.stripOpaquePathSpaces()

		return true
	}

	clone := u.Clone()
	clone.Fragment = ptr("")

	if _, _, err := basicParse(strings.TrimPrefix(hash, "#"), nil, clone, stateFragment, nil); err != nil {
		return false
	}

	*u = *clone

	return true
}

// stripOpaquePathSpaces drops trailing spaces of an opaque path once nothing
// follows it, so that the href reparses to the same URL.
func (u *URL) stripOpaquePathSpaces() {
	if !u.CannotBeABaseURL || u.Query != nil || u.Fragment != nil || len(u.Path) == 0 {
		return
	}

	u.Path[0] = strings.TrimRight(u.Path[0], " ")
}
