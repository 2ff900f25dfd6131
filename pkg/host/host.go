// Package host implements URL host parsing and serialization: domains run
// through IDNA, legacy IPv4 literals, bracketed IPv6 literals and the opaque
// hosts of non-special schemes.
package host

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Sumatoshi-tech/weburl/pkg/idna"
	"github.com/Sumatoshi-tech/weburl/pkg/percent"
)

// Host parsing errors.
var (
	ErrInvalidIPv6        = errors.New("invalid IPv6 address")
	ErrInvalidIPv4        = errors.New("invalid IPv4 address")
	ErrForbiddenCodePoint = errors.New("forbidden host code point")
	ErrEmptyHost          = errors.New("empty host")
	ErrInvalidDomain      = errors.New("invalid domain")
)

// Kind discriminates the variants of Host.
type Kind uint8

// Host kinds. KindNone is the zero value and stands for a null host.
const (
	KindNone Kind = iota
	KindEmpty
	KindDomain
	KindIPv4
	KindIPv6
	KindOpaque
)

var kindNames = [...]string{
	KindNone:   "none",
	KindEmpty:  "empty",
	KindDomain: "domain",
	KindIPv4:   "ipv4",
	KindIPv6:   "ipv6",
	KindOpaque: "opaque",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", k)
}

// Host is a parsed URL host. The zero value is the null host. Hosts are
// comparable with ==.
type Host struct {
	kind Kind
	text string
	ipv4 uint32
	ipv6 [8]uint16
}

// Empty returns the empty host of file URLs and "scheme://" URLs.
func Empty() Host { return Host{kind: KindEmpty} }

// Domain returns a domain host. name must already be in ASCII form.
func Domain(name string) Host { return Host{kind: KindDomain, text: name} }

// Opaque returns an opaque host of a non-special URL.
func Opaque(text string) Host { return Host{kind: KindOpaque, text: text} }

// IPv4 returns an IPv4 address host.
func IPv4(addr uint32) Host { return Host{kind: KindIPv4, ipv4: addr} }

// IPv6 returns an IPv6 address host.
func IPv6(addr [8]uint16) Host { return Host{kind: KindIPv6, ipv6: addr} }

// Kind returns the variant of h.
func (h Host) Kind() Kind { return h.kind }

// IsNull reports whether h is the null host.
func (h Host) IsNull() bool { return h.kind == KindNone }

// IsEmpty reports whether h is the empty host.
func (h Host) IsEmpty() bool { return h.kind == KindEmpty }

// Text returns the name of a domain or opaque host.
func (h Host) Text() string { return h.text }

// IPv4Addr returns the address of an IPv4 host.
func (h Host) IPv4Addr() (uint32, bool) { return h.ipv4, h.kind == KindIPv4 }

// IPv6Addr returns the address of an IPv6 host.
func (h Host) IPv6Addr() ([8]uint16, bool) { return h.ipv6, h.kind == KindIPv6 }

// Equal reports whether h and o are the same host.
func (h Host) Equal(o Host) bool { return h == o }

// String serializes h as it appears in a URL.
func (h Host) String() string {
	switch h.kind {
	case KindDomain, KindOpaque:
		return h.text
	case KindIPv4:
		return SerializeIPv4(h.ipv4)
	case KindIPv6:
		return "[" + SerializeIPv6(h.ipv6) + "]"
	default:
		return ""
	}
}

// Unicode returns the presentation form of h: domains have their Punycode
// labels decoded, every other kind serializes as String does.
func (h Host) Unicode() string {
	if h.kind != KindDomain {
		return h.String()
	}

	u, err := idna.ToUnicode(h.text)
	if err != nil {
		return h.text
	}

	return u
}

// MarshalText implements encoding.TextMarshaler.
func (h Host) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// Issue is a non-fatal problem noticed while parsing a host.
type Issue uint8

// Host issues.
const (
	IssueIPv4EmptyPart Issue = iota + 1
	IssueIPv4NonDecimalPart
	IssueIPv4OutOfRangePart
	IssueInvalidPercentEscape
)

var issueNames = [...]string{
	IssueIPv4EmptyPart:        "IPv4EmptyPart",
	IssueIPv4NonDecimalPart:   "IPv4NonDecimalPart",
	IssueIPv4OutOfRangePart:   "IPv4OutOfRangePart",
	IssueInvalidPercentEscape: "InvalidPercentEscape",
}

func (i Issue) String() string {
	if int(i) < len(issueNames) && issueNames[i] != "" {
		return issueNames[i]
	}

	return fmt.Sprintf("Issue(%d)", i)
}

// Reporter receives non-fatal issues. A nil Reporter discards them.
type Reporter func(Issue)

func (r Reporter) report(i Issue) {
	if r != nil {
		r(i)
	}
}

// Parse parses input as the host of a special or non-special URL.
func Parse(input string, isSpecial bool) (Host, error) {
	return ParseReport(input, isSpecial, nil)
}

// ParseReport is Parse with non-fatal issues delivered to report.
func ParseReport(input string, isSpecial bool, report Reporter) (Host, error) {
	if strings.HasPrefix(input, "[") {
		if len(input) < 2 || !strings.HasSuffix(input, "]") {
			return Host{}, fmt.Errorf("%w: unclosed bracket", ErrInvalidIPv6)
		}

		addr, err := ParseIPv6(input[1 : len(input)-1])
		if err != nil {
			return Host{}, err
		}

		return IPv6(addr), nil
	}

	if !isSpecial {
		return parseOpaque(input, report)
	}

	domain := percent.DecodeString(input)
	if !utf8.ValidString(domain) {
		domain = strings.ToValidUTF8(domain, string(utf8.RuneError))
	}

	ascii, err := domainToASCII(domain)
	if err != nil {
		return Host{}, fmt.Errorf("%w: %w", ErrInvalidDomain, err)
	}

	if ascii == "" {
		return Host{}, ErrEmptyHost
	}

	if i := strings.IndexFunc(ascii, isForbiddenDomainCodePoint); i >= 0 {
		return Host{}, fmt.Errorf("%w: %q", ErrForbiddenCodePoint, ascii[i])
	}

	addr, ok, err := parseIPv4(ascii, report)
	if err != nil {
		return Host{}, err
	}

	if ok {
		return IPv4(addr), nil
	}

	return Domain(ascii), nil
}

// ParseOpaque parses the host of a non-special URL.
func ParseOpaque(input string) (Host, error) {
	return parseOpaque(input, nil)
}

func parseOpaque(input string, report Reporter) (Host, error) {
	if input == "" {
		return Empty(), nil
	}

	for i, r := range input {
		if r != '%' && isForbiddenHostCodePoint(r) {
			return Host{}, fmt.Errorf("%w: %q", ErrForbiddenCodePoint, r)
		}

		if r == '%' && !validEscapeAt(input, i) {
			report.report(IssueInvalidPercentEscape)
		}
	}

	return Opaque(percent.EncodeString(input, percent.C0Control)), nil
}

// domainToASCII lowercases plain ASCII domains directly; anything else goes
// through IDNA. Both paths give the same result.
func domainToASCII(domain string) (string, error) {
	if isASCII(domain) && !hasACELabel(domain) {
		return strings.ToLower(domain), nil
	}

	return idna.ToASCII(domain)
}

func hasACELabel(domain string) bool {
	for label := range strings.SplitSeq(domain, ".") {
		if len(label) >= len(idna.ACEPrefix) && strings.EqualFold(label[:len(idna.ACEPrefix)], idna.ACEPrefix) {
			return true
		}
	}

	return false
}

func isASCII(s string) bool {
	for i := range len(s) {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}

	return true
}

func validEscapeAt(s string, i int) bool {
	return i+2 < len(s) && percent.IsHex(rune(s[i+1])) && percent.IsHex(rune(s[i+2]))
}

// isForbiddenHostCodePoint reports whether r may never appear in a host.
func isForbiddenHostCodePoint(r rune) bool {
	switch r {
	case 0x00, '\t', '\n', '\r', ' ', '#', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^', '|':
		return true
	default:
		return false
	}
}

// isForbiddenDomainCodePoint extends the host set with the C0 controls, '%'
// and DEL.
func isForbiddenDomainCodePoint(r rune) bool {
	return isForbiddenHostCodePoint(r) || r <= 0x1f || r == '%' || r == 0x7f
}
