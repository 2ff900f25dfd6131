// Package idna implements Unicode IDNA Compatibility Processing (UTS #46):
// the mapping table, Punycode transcoding and label validation that turn a
// Unicode domain name into its ASCII-compatible form and back.
package idna

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/secure/bidirule"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

// ACEPrefix marks a Punycode-encoded label.
const ACEPrefix = "xn--"

const (
	zwnj         = '‌'
	zwj          = '‍'
	cccVirama    = 9
	maxLabelLen  = 63
	maxDomainLen = 253
)

// Option configures a Profile.
type Option func(*options)

type options struct {
	transitional    bool
	useSTD3Rules    bool
	checkHyphens    bool
	checkBidi       bool
	checkJoiners    bool
	verifyDNSLength bool
}

// Transitional selects transitional processing, which maps deviation code
// points such as U+00DF instead of keeping them.
func Transitional(enable bool) Option {
	return func(o *options) { o.transitional = enable }
}

// UseSTD3ASCIIRules restricts ASCII to letters, digits and hyphen.
func UseSTD3ASCIIRules(enable bool) Option {
	return func(o *options) { o.useSTD3Rules = enable }
}

// CheckHyphens rejects labels with hyphens in the third and fourth position
// or at either end.
func CheckHyphens(enable bool) Option {
	return func(o *options) { o.checkHyphens = enable }
}

// CheckBidi applies the RFC 5893 Bidi rule to bidi domain names.
func CheckBidi(enable bool) Option {
	return func(o *options) { o.checkBidi = enable }
}

// CheckJoiners applies the RFC 5892 ContextJ rules to ZWJ and ZWNJ.
func CheckJoiners(enable bool) Option {
	return func(o *options) { o.checkJoiners = enable }
}

// VerifyDNSLength enforces the DNS label and domain length limits.
func VerifyDNSLength(enable bool) Option {
	return func(o *options) { o.verifyDNSLength = enable }
}

// Profile is an immutable set of UTS #46 processing flags. It is safe for
// concurrent use.
type Profile struct {
	options
}

// New returns a Profile with the given options applied over the
// non-transitional defaults with every check disabled.
func New(opts ...Option) *Profile {
	p := &Profile{}
	for _, opt := range opts {
		opt(&p.options)
	}

	return p
}

// Lookup is the profile the URL Standard uses for host parsing:
// non-transitional, STD3 rules off, hyphen checks off, Bidi and ContextJ
// checks on, DNS length unchecked.
var Lookup = New(CheckBidi(true), CheckJoiners(true))

// ToASCII converts domain with the Lookup profile.
func ToASCII(domain string) (string, error) {
	return Lookup.ToASCII(domain)
}

// ToUnicode converts domain with the Lookup profile.
func ToUnicode(domain string) (string, error) {
	return Lookup.ToUnicode(domain)
}

// String describes the enabled flags.
func (p *Profile) String() string {
	parts := []string{"NonTransitional"}
	if p.transitional {
		parts[0] = "Transitional"
	}

	flags := []struct {
		on   bool
		name string
	}{
		{p.useSTD3Rules, "UseSTD3ASCIIRules"},
		{p.checkHyphens, "CheckHyphens"},
		{p.checkBidi, "CheckBidi"},
		{p.checkJoiners, "CheckJoiners"},
		{p.verifyDNSLength, "VerifyDNSLength"},
	}

	for _, f := range flags {
		if f.on {
			parts = append(parts, f.name)
		}
	}

	return strings.Join(parts, ":")
}

// ToASCII returns the ASCII form of domain. Every label error found is
// reported in a single *Error; the partially converted domain is returned
// alongside it.
func (p *Profile) ToASCII(domain string) (string, error) {
	return p.process(domain, true)
}

// ToUnicode returns the Unicode form of domain, decoding Punycode labels.
func (p *Profile) ToUnicode(domain string) (string, error) {
	return p.process(domain, false)
}

func (p *Profile) process(domain string, toASCII bool) (string, error) {
	errs := &Error{Domain: domain}

	mapped := norm.NFC.String(p.mapRunes(domain, errs))
	labels := strings.Split(mapped, ".")

	for i, label := range labels {
		if !strings.HasPrefix(label, ACEPrefix) {
			p.validateLabel(label, p.transitional, errs)

			continue
		}

		if !isASCII(label) {
			errs.add(label, CodePunycode, 0)

			continue
		}

		decoded, err := Decode(label[len(ACEPrefix):])
		if err != nil {
			errs.add(label, CodePunycode, 0)

			continue
		}

		if decoded == "" || isASCII(decoded) {
			errs.add(label, CodePunycode, 0)
		}

		labels[i] = decoded
		p.validateLabel(decoded, false, errs)
	}

	if p.checkBidi && isBidiDomain(labels) {
		for _, label := range labels {
			if label != "" && !bidirule.ValidString(label) {
				errs.add(label, CodeBidi, 0)
			}
		}
	}

	if toASCII {
		for i, label := range labels {
			if isASCII(label) {
				continue
			}

			enc, err := Encode(label)
			if err != nil {
				errs.add(label, CodePunycode, 0)

				continue
			}

			labels[i] = ACEPrefix + enc
		}

		if p.verifyDNSLength {
			p.verifyLengths(labels, errs)
		}
	}

	out := strings.Join(labels, ".")
	if len(errs.Violations) > 0 {
		return out, errs
	}

	return out, nil
}

// mapRunes applies the mapping step, recording disallowed code points.
func (p *Profile) mapRunes(s string, errs *Error) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range s {
		st, mapping := lookup(r)

		switch p.simplify(st) {
		case statusValid:
			sb.WriteRune(r)
		case statusIgnored:
		case statusMapped:
			sb.WriteString(mapping)
		case statusDeviation:
			if p.transitional {
				sb.WriteString(mapping)
			} else {
				sb.WriteRune(r)
			}
		default:
			errs.add(s, CodeDisallowed, r)
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

func (p *Profile) simplify(st status) status {
	switch st {
	case statusDisallowedSTD3Valid:
		if p.useSTD3Rules {
			return statusDisallowed
		}

		return statusValid
	case statusDisallowedSTD3Mapped:
		if p.useSTD3Rules {
			return statusDisallowed
		}

		return statusMapped
	default:
		return st
	}
}

func (p *Profile) validateLabel(label string, transitional bool, errs *Error) {
	if label == "" {
		return
	}

	if !norm.NFC.IsNormalString(label) {
		errs.add(label, CodeNotNFC, 0)
	}

	if p.checkHyphens {
		if len(label) >= 4 && label[2:4] == "--" {
			errs.add(label, CodeHyphen34, 0)
		}

		if label[0] == '-' || label[len(label)-1] == '-' {
			errs.add(label, CodeHyphenEnds, 0)
		}
	} else if strings.HasPrefix(label, ACEPrefix) {
		errs.add(label, CodeACEPrefix, 0)
	}

	if strings.ContainsRune(label, '.') {
		errs.add(label, CodeFullStop, '.')
	}

	if first, _ := utf8.DecodeRuneInString(label); unicode.Is(unicode.M, first) {
		errs.add(label, CodeLeadingMark, first)
	}

	for _, r := range label {
		st, _ := lookup(r)

		switch p.simplify(st) {
		case statusValid:
		case statusDeviation:
			if transitional {
				errs.add(label, CodeInvalidStatus, r)
			}
		default:
			errs.add(label, CodeInvalidStatus, r)
		}
	}

	if p.checkJoiners && !validJoiners([]rune(label)) {
		errs.add(label, CodeContextJ, 0)
	}
}

func (p *Profile) verifyLengths(labels []string, errs *Error) {
	total := len(labels) - 1
	for i, label := range labels {
		if label == "" && i == len(labels)-1 && i > 0 {
			total--

			continue
		}

		if label == "" || len(label) > maxLabelLen {
			errs.add(label, CodeDNSLength, 0)
		}

		total += len(label)
	}

	if total < 1 || total > maxDomainLen {
		errs.add(strings.Join(labels, "."), CodeDNSLength, 0)
	}
}

// validJoiners implements the ContextJ rules of RFC 5892 appendix A.1 and A.2.
func validJoiners(rs []rune) bool {
	for i, r := range rs {
		if r != zwnj && r != zwj {
			continue
		}

		if i > 0 && isVirama(rs[i-1]) {
			continue
		}

		if r == zwj || !joinedZWNJ(rs, i) {
			return false
		}
	}

	return true
}

// joinedZWNJ reports whether the ZWNJ at rs[i] sits between a left-joining
// and a right-joining character, ignoring transparent ones.
func joinedZWNJ(rs []rune, i int) bool {
	left := false

	for j := i - 1; j >= 0; j-- {
		jt := joiningTypeOf(rs[j])
		if jt == joiningT {
			continue
		}

		left = jt == joiningL || jt == joiningD

		break
	}

	if !left {
		return false
	}

	for j := i + 1; j < len(rs); j++ {
		jt := joiningTypeOf(rs[j])
		if jt == joiningT {
			continue
		}

		return jt == joiningR || jt == joiningD
	}

	return false
}

func isVirama(r rune) bool {
	var buf [utf8.UTFMax]byte

	n := utf8.EncodeRune(buf[:], r)

	return norm.NFC.Properties(buf[:n]).CCC() == cccVirama
}

// isBidiDomain reports whether any label holds a right-to-left code point.
func isBidiDomain(labels []string) bool {
	for _, label := range labels {
		for _, r := range label {
			props, _ := bidi.LookupRune(r)

			switch props.Class() {
			case bidi.R, bidi.AL, bidi.AN:
				return true
			}
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

// Violation codes, following the step names of UTS #46 and RFC 5892/5893.
const (
	CodeDisallowed    = "P1"
	CodePunycode      = "P4"
	CodeNotNFC        = "V1"
	CodeHyphen34      = "V2"
	CodeHyphenEnds    = "V3"
	CodeACEPrefix     = "V4"
	CodeFullStop      = "V5"
	CodeLeadingMark   = "V6"
	CodeInvalidStatus = "V7"
	CodeContextJ      = "C"
	CodeBidi          = "B"
	CodeDNSLength     = "A4"
)

// Violation is a single processing error.
type Violation struct {
	Label string
	Code  string
	Rune  rune
}

func (v Violation) String() string {
	if v.Rune != 0 {
		return fmt.Sprintf("%s in %q (%U)", v.Code, v.Label, v.Rune)
	}

	return fmt.Sprintf("%s in %q", v.Code, v.Label)
}

// Error collects every violation found while processing a domain.
type Error struct {
	Domain     string
	Violations []Violation
}

func (e *Error) add(label, code string, r rune) {
	e.Violations = append(e.Violations, Violation{Label: label, Code: code, Rune: r})
}

// Has reports whether a violation with the given code was recorded.
func (e *Error) Has(code string) bool {
	for _, v := range e.Violations {
		if v.Code == code {
			return true
		}
	}

	return false
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.String())
	}

	return fmt.Sprintf("idna: invalid domain %q: %s", e.Domain, strings.Join(msgs, "; "))
}
