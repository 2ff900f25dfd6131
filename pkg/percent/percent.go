// Package percent implements the URL Standard percent-encode sets together
// with percent-encoding and percent-decoding.
package percent

import (
	"strings"
	"unicode/utf8"
)

const upperhex = "0123456789ABCDEF"

// Set is a percent-encode set. Code points above U+007E are members of every
// set; the bitmap covers the ASCII range.
type Set struct {
	lo, hi uint64
}

// Percent-encode sets, each a superset of the one it is derived from.
var (
	// C0Control holds the C0 controls and every code point above U+007E.
	C0Control = Set{lo: 1<<0x20 - 1}.With("\x7f")

	// Fragment is used for URL fragments.
	Fragment = C0Control.With(" \"<>`")

	// Query is used for the query of non-special URLs.
	Query = C0Control.With(" \"#<>")

	// SpecialQuery is used for the query of special URLs.
	SpecialQuery = Query.With("'")

	// Path is used for path segments.
	Path = Query.With("?`{}")

	// Userinfo is used for usernames and passwords.
	Userinfo = Path.With("/:;=@[\\]^|")

	// Component is the encodeURIComponent-compatible set.
	Component = Userinfo.With("$%&+,")

	// FormURLEncoded is the application/x-www-form-urlencoded set.
	FormURLEncoded = Component.With("!'()~")
)

// With returns a copy of s that also contains every ASCII byte of chars.
func (s Set) With(chars string) Set {
	for i := range len(chars) {
		c := chars[i]

		switch {
		case c < 64:
			s.lo |= 1 << c
		case c < utf8.RuneSelf:
			s.hi |= 1 << (c - 64)
		}
	}

	return s
}

// Contains reports whether r must be percent-encoded under s.
func (s Set) Contains(r rune) bool {
	switch {
	case r < 0:
		return true
	case r < 64:
		return s.lo&(1<<r) != 0
	case r < utf8.RuneSelf:
		return s.hi&(1<<(r-64)) != 0
	default:
		return true
	}
}

// ContainsByte reports whether the byte b must be percent-encoded under s.
func (s Set) ContainsByte(b byte) bool {
	return s.Contains(rune(b))
}

// AppendByte appends the %XX escape of b to dst.
func AppendByte(dst []byte, b byte) []byte {
	return append(dst, '%', upperhex[b>>4], upperhex[b&0xf])
}

// AppendRune appends r to dst, UTF-8 encoding and escaping it when it is a
// member of set.
func AppendRune(dst []byte, r rune, set Set) []byte {
	if !set.Contains(r) {
		return append(dst, byte(r))
	}

	var buf [utf8.UTFMax]byte

	n := utf8.EncodeRune(buf[:], r)
	for _, b := range buf[:n] {
		dst = AppendByte(dst, b)
	}

	return dst
}

// AppendBytes escapes every byte of src that is not printable ASCII or that
// is a member of set.
func AppendBytes(dst, src []byte, set Set) []byte {
	for _, b := range src {
		if set.ContainsByte(b) {
			dst = AppendByte(dst, b)

			continue
		}

		dst = append(dst, b)
	}

	return dst
}

// EncodeString percent-encodes s under set.
func EncodeString(s string, set Set) string {
	var sb strings.Builder

	buf := make([]byte, 0, utf8.UTFMax*3)

	for _, r := range s {
		buf = AppendRune(buf[:0], r, set)
		sb.Write(buf)
	}

	return sb.String()
}

// Decode appends the percent-decoding of src to dst. A '%' that does not
// start a valid escape is copied through literally.
func Decode(dst, src []byte) []byte {
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c == '%' && i+2 < len(src) && isHexByte(src[i+1]) && isHexByte(src[i+2]) {
			dst = append(dst, unhex(src[i+1])<<4|unhex(src[i+2]))
			i += 2

			continue
		}

		dst = append(dst, c)
	}

	return dst
}

// DecodeString percent-decodes s. The result may not be valid UTF-8.
func DecodeString(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}

	return string(Decode(make([]byte, 0, len(s)), []byte(s)))
}

// IsHex reports whether r is an ASCII hex digit.
func IsHex(r rune) bool {
	return r >= 0 && r < utf8.RuneSelf && isHexByte(byte(r))
}

// ValidEscapeAt reports whether rs[i] is a '%' followed by two hex digits.
func ValidEscapeAt(rs []rune, i int) bool {
	return i+2 < len(rs) && rs[i] == '%' && IsHex(rs[i+1]) && IsHex(rs[i+2])
}

func isHexByte(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
