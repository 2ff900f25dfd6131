package idna

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"
)

// Punycode parameters from RFC 3492 section 5.
const (
	base        int32 = 36
	tMin        int32 = 1
	tMax        int32 = 26
	skew        int32 = 38
	damp        int32 = 700
	initialBias int32 = 72
	initialN    int32 = 128
	delimiter         = '-'
	maxInt32    int32 = math.MaxInt32
)

// Punycode errors.
var (
	ErrOverflow        = errors.New("idna: punycode overflow")
	ErrInvalidPunycode = errors.New("idna: invalid punycode")
)

func adapt(delta, numPoints int32, firstTime bool) int32 {
	if firstTime {
		delta /= damp
	} else {
		delta /= 2
	}

	delta += delta / numPoints

	k := int32(0)
	for delta > ((base-tMin)*tMax)/2 {
		delta /= base - tMin
		k += base
	}

	return k + (base-tMin+1)*delta/(delta+skew)
}

func threshold(k, bias int32) int32 {
	t := k - bias

	switch {
	case t < tMin:
		return tMin
	case t > tMax:
		return tMax
	default:
		return t
	}
}

func digitValue(b byte) (int32, bool) {
	switch {
	case '0' <= b && b <= '9':
		return int32(b-'0') + 26, true
	case 'A' <= b && b <= 'Z':
		return int32(b - 'A'), true
	case 'a' <= b && b <= 'z':
		return int32(b - 'a'), true
	default:
		return 0, false
	}
}

func digitByte(d int32) byte {
	if d < 26 {
		return byte(d) + 'a'
	}

	return byte(d-26) + '0'
}

// Decode converts the Punycode label s (without the ACE prefix) back to
// Unicode.
func Decode(s string) (string, error) {
	basic := strings.LastIndexByte(s, delimiter)
	output := make([]rune, 0, len(s))

	for i := range max(basic, 0) {
		if s[i] >= utf8.RuneSelf {
			return "", ErrInvalidPunycode
		}

		output = append(output, rune(s[i]))
	}

	n, bias, i := initialN, initialBias, int32(0)

	pos := 0
	if basic > 0 {
		pos = basic + 1
	}

	for pos < len(s) {
		oldi, w := i, int32(1)

		for k := base; ; k += base {
			if pos == len(s) {
				return "", ErrInvalidPunycode
			}

			digit, ok := digitValue(s[pos])
			pos++

			if !ok {
				return "", ErrInvalidPunycode
			}

			if digit > (maxInt32-i)/w {
				return "", ErrOverflow
			}

			i += digit * w

			t := threshold(k, bias)
			if digit < t {
				break
			}

			if w > maxInt32/(base-t) {
				return "", ErrOverflow
			}

			w *= base - t
		}

		out := int32(len(output) + 1)
		bias = adapt(i-oldi, out, oldi == 0)

		if i/out > maxInt32-n {
			return "", ErrOverflow
		}

		n += i / out
		i %= out

		if n > utf8.MaxRune || (n >= 0xD800 && n <= 0xDFFF) {
			return "", ErrInvalidPunycode
		}

		output = append(output, 0)
		copy(output[i+1:], output[i:])
		output[i] = n
		i++
	}

	return string(output), nil
}

// Encode converts the Unicode label s to Punycode, without the ACE prefix.
func Encode(s string) (string, error) {
	runes := []rune(s)
	output := make([]byte, 0, len(s)+1)

	for _, r := range runes {
		if r < utf8.RuneSelf {
			output = append(output, byte(r))
		}
	}

	basicLen := int32(len(output))
	handled := basicLen

	if basicLen > 0 {
		output = append(output, delimiter)
	}

	n, delta, bias := initialN, int32(0), initialBias

	for int(handled) < len(runes) {
		m := maxInt32
		for _, r := range runes {
			if r >= n && r < m {
				m = r
			}
		}

		if m-n > (maxInt32-delta)/(handled+1) {
			return "", ErrOverflow
		}

		delta += (m - n) * (handled + 1)
		n = m

		for _, r := range runes {
			if r < n {
				if delta == maxInt32 {
					return "", ErrOverflow
				}

				delta++

				continue
			}

			if r > n {
				continue
			}

			q := delta
			for k := base; ; k += base {
				t := threshold(k, bias)
				if q < t {
					break
				}

				output = append(output, digitByte(t+(q-t)%(base-t)))
				q = (q - t) / (base - t)
			}

			output = append(output, digitByte(q))
			bias = adapt(delta, handled+1, handled == basicLen)
			delta = 0
			handled++
		}

		delta++
		n++
	}

	return string(output), nil
}
