// Package weburl parses and serializes URLs as the WHATWG URL Standard does
// in browsers: the basic URL parser state machine, relative resolution
// against a base, href and origin serialization, and the component setters
// of the URL API.
package weburl

import (
	"slices"
	"strconv"

	"github.com/Sumatoshi-tech/weburl/pkg/host"
)

var specialSchemes = map[string]int{
	"ftp":    21,
	"file":   -1,
	"gopher": 70,
	"http":   80,
	"https":  443,
	"ws":     80,
	"wss":    443,
}

// IsSpecial reports whether scheme is one of ftp, file, gopher, http, https,
// ws or wss.
func IsSpecial(scheme string) bool {
	_, ok := specialSchemes[scheme]

	return ok
}

// DefaultPort returns the default port of a special scheme. file has none.
func DefaultPort(scheme string) (uint16, bool) {
	p, ok := specialSchemes[scheme]
	if !ok || p < 0 {
		return 0, false
	}

	return uint16(p), true
}

// URL is a parsed URL record.
//
// Username, Password, Path, Query and Fragment hold percent-encoded text.
// When CannotBeABaseURL is set, Path holds exactly one element, the opaque
// path, and the URL has no host, credentials or port.
type URL struct {
	Scheme           string
	Username         string
	Password         string
	Host             host.Host
	Port             *uint16
	Path             []string
	Query            *string
	Fragment         *string
	CannotBeABaseURL bool
}

// Clone returns a deep copy of u.
func (u *URL) Clone() *URL {
	c := *u
	c.Path = slices.Clone(u.Path)
	c.Port = clonePtr(u.Port)
	c.Query = clonePtr(u.Query)
	c.Fragment = clonePtr(u.Fragment)

	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}

func ptr[T any](v T) *T { return &v }

// IsSpecial reports whether u has a special scheme.
func (u *URL) IsSpecial() bool { return IsSpecial(u.Scheme) }

// IncludesCredentials reports whether u has a username or password.
func (u *URL) IncludesCredentials() bool {
	return u.Username != "" || u.Password != ""
}

// CannotHaveUsernamePasswordPort reports whether credentials and port are
// meaningless for u: it has a null or empty host, an opaque path, or the
// file scheme.
func (u *URL) CannotHaveUsernamePasswordPort() bool {
	return u.Host.IsNull() || u.Host.IsEmpty() || u.CannotBeABaseURL || u.Scheme == "file"
}

// shortenPath removes the last path segment, keeping a lone normalized
// Windows drive letter of a file URL.
func (u *URL) shortenPath() {
	if u.Scheme == "file" && len(u.Path) == 1 && isNormalizedWindowsDriveLetter(u.Path[0]) {
		return
	}

	if len(u.Path) > 0 {
		u.Path = u.Path[:len(u.Path)-1]
	}
}

// Protocol returns the scheme followed by ':'.
func (u *URL) Protocol() string { return u.Scheme + ":" }

// Hostname returns the serialized host, or "" when it is null.
func (u *URL) Hostname() string { return u.Host.String() }

// HostPort returns the serialized host and, when present, ':' and the port.
func (u *URL) HostPort() string {
	if u.Host.IsNull() {
		return ""
	}

	if u.Port == nil {
		return u.Host.String()
	}

	return u.Host.String() + ":" + strconv.Itoa(int(*u.Port))
}

// PortString returns the port in decimal, or "".
func (u *URL) PortString() string {
	if u.Port == nil {
		return ""
	}

	return strconv.Itoa(int(*u.Port))
}

// Pathname returns the serialized path.
func (u *URL) Pathname() string {
	if u.CannotBeABaseURL {
		if len(u.Path) == 0 {
			return ""
		}

		return u.Path[0]
	}

	n := 0
	for _, seg := range u.Path {
		n += len(seg) + 1
	}

	b := make([]byte, 0, n)
	for _, seg := range u.Path {
		b = append(b, '/')
		b = append(b, seg...)
	}

	return string(b)
}

// Search returns "?" and the query, or "" when the query is null or empty.
func (u *URL) Search() string {
	if u.Query == nil || *u.Query == "" {
		return ""
	}

	return "?" + *u.Query
}

// Hash returns "#" and the fragment, or "" when it is null or empty.
func (u *URL) Hash() string {
	if u.Fragment == nil || *u.Fragment == "" {
		return ""
	}

	return "#" + *u.Fragment
}

// Components is the URL API view of a URL, as exposed by the CLI and the
// HTTP and MCP servers.
type Components struct {
	Href     string `json:"href"     yaml:"href"`
	Origin   string `json:"origin"   yaml:"origin"`
	Protocol string `json:"protocol" yaml:"protocol"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Host     string `json:"host"     yaml:"host"`
	Hostname string `json:"hostname" yaml:"hostname"`
	Port     string `json:"port"     yaml:"port"`
	Pathname string `json:"pathname" yaml:"pathname"`
	Search   string `json:"search"   yaml:"search"`
	Hash     string `json:"hash"     yaml:"hash"`
}

// Components returns every URL API attribute of u.
func (u *URL) Components() Components {
	return Components{
		Href:     u.Href(),
		Origin:   u.Origin(),
		Protocol: u.Protocol(),
		Username: u.Username,
		Password: u.Password,
		Host:     u.HostPort(),
		Hostname: u.Hostname(),
		Port:     u.PortString(),
		Pathname: u.Pathname(),
		Search:   u.Search(),
		Hash:     u.Hash(),
	}
}

func isASCIIAlpha(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isASCIIDigit(c rune) bool { return '0' <= c && c <= '9' }

func isASCIIAlphanumeric(c rune) bool { return isASCIIAlpha(c) || isASCIIDigit(c) }

func toLowerASCII(c rune) rune {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}

	return c
}

// isWindowsDriveLetter reports whether s is an ASCII letter followed by ':'
// or '|'.
func isWindowsDriveLetter(s string) bool {
	return len(s) == 2 && isASCIIAlpha(rune(s[0])) && (s[1] == ':' || s[1] == '|')
}

func isNormalizedWindowsDriveLetter(s string) bool {
	return isWindowsDriveLetter(s) && s[1] == ':'
}

// isURLCodePoint reports whether c may appear unescaped in a valid URL.
func isURLCodePoint(c rune) bool {
	if isASCIIAlphanumeric(c) {
		return true
	}

	switch c {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/', ':', ';', '=', '?', '@', '_', '~':
		return true
	}

	if c < 0xa0 || c > 0x10fffd {
		return false
	}

	if c >= 0xd800 && c <= 0xdfff {
		return false
	}

	if c >= 0xfdd0 && c <= 0xfdef || c&0xfffe == 0xfffe {
		return false
	}

	return true
}
