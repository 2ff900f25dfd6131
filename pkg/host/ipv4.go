package host

import (
	"fmt"
	"strconv"
	"strings"
)

// ipv4Ceiling caps parsed numbers; anything at or above 2^32 is out of range.
const ipv4Ceiling = 1 << 40

// ParseIPv4 parses input with the legacy IPv4 grammar: one to four
// dot-separated decimal, 0x-hex or 0-octal numbers, the last of which fills
// the remaining bytes. ok is false when input is not an IPv4 address at all;
// an error means it looks like one but a number is out of range.
func ParseIPv4(input string) (addr uint32, ok bool, err error) {
	return parseIPv4(input, nil)
}

// parseIPv4 delivers issues to report only when input turns out to be an
// IPv4 address.
func parseIPv4(input string, report Reporter) (uint32, bool, error) {
	var issues []Issue

	flush := func() {
		for _, i := range issues {
			report.report(i)
		}
	}

	parts := strings.Split(input, ".")

	if parts[len(parts)-1] == "" {
		issues = append(issues, IssueIPv4EmptyPart)

		if len(parts) > 1 {
			parts = parts[:len(parts)-1]
		}
	}

	if len(parts) > 4 {
		return 0, false, nil
	}

	numbers := make([]uint64, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			return 0, false, nil
		}

		n, nonDecimal, ok := parseIPv4Number(part)
		if !ok {
			return 0, false, nil
		}

		if nonDecimal {
			issues = append(issues, IssueIPv4NonDecimalPart)
		}

		numbers = append(numbers, n)
	}

	last := len(numbers) - 1

	for i, n := range numbers {
		if n <= 255 {
			continue
		}

		issues = append(issues, IssueIPv4OutOfRangePart)

		if i != last {
			flush()

			return 0, false, fmt.Errorf("%w: part %d of %q exceeds 255", ErrInvalidIPv4, i+1, input)
		}
	}

	flush()

	if numbers[last] >= 1<<(8*(4-last)) {
		return 0, false, fmt.Errorf("%w: %q is out of range", ErrInvalidIPv4, input)
	}

	addr := numbers[last]
	for i, n := range numbers[:last] {
		addr += n << (8 * (3 - i))
	}

	return uint32(addr), true, nil
}

// parseIPv4Number parses one IPv4 part. ok is false when s is not a number
// in its radix.
func parseIPv4Number(s string) (n uint64, nonDecimal, ok bool) {
	radix := 10

	switch {
	case len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X"):
		radix, s = 16, s[2:]
	case len(s) >= 2 && s[0] == '0':
		radix, s = 8, s[1:]
	}

	nonDecimal = radix != 10

	if s == "" {
		return 0, nonDecimal, true
	}

	for i := range len(s) {
		d, valid := digit(s[i], radix)
		if !valid {
			return 0, nonDecimal, false
		}

		n = min(n*uint64(radix)+d, ipv4Ceiling)
	}

	return n, nonDecimal, true
}

func digit(c byte, radix int) (uint64, bool) {
	var d uint64

	switch {
	case '0' <= c && c <= '9':
		d = uint64(c - '0')
	case radix == 16 && 'a' <= c && c <= 'f':
		d = uint64(c-'a') + 10
	case radix == 16 && 'A' <= c && c <= 'F':
		d = uint64(c-'A') + 10
	default:
		return 0, false
	}

	return d, d < uint64(radix)
}

// SerializeIPv4 formats addr in dotted-decimal notation.
func SerializeIPv4(addr uint32) string {
	var sb strings.Builder

	for i := 3; i >= 0; i-- {
		sb.WriteString(strconv.FormatUint(uint64(addr>>(8*i)&0xff), 10))

		if i != 0 {
			sb.WriteByte('.')
		}
	}

	return sb.String()
}
