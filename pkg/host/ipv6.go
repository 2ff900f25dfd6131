package host

import (
	"fmt"
	"strconv"
	"strings"
)

const eof = -1

// ParseIPv6 parses the text between the brackets of an IPv6 host. It accepts
// one "::" compression and a trailing dotted IPv4 part.
func ParseIPv6(input string) ([8]uint16, error) {
	var addr [8]uint16

	at := func(i int) int {
		if i < len(input) {
			return int(input[i])
		}

		return eof
	}

	fail := func(reason string) ([8]uint16, error) {
		return [8]uint16{}, fmt.Errorf("%w: %s in %q", ErrInvalidIPv6, reason, input)
	}

	pieceIndex, compress, p := 0, -1, 0

	if at(p) == ':' {
		if at(p+1) != ':' {
			return fail("leading single colon")
		}

		p += 2
		pieceIndex++
		compress = pieceIndex
	}

	for at(p) != eof {
		if pieceIndex == len(addr) {
			return fail("too many pieces")
		}

		if at(p) == ':' {
			if compress != -1 {
				return fail("multiple compressions")
			}

			p++
			pieceIndex++
			compress = pieceIndex

			continue
		}

		value, length := 0, 0
		for length < 4 && hexValue(at(p)) >= 0 {
			value = value*0x10 + hexValue(at(p))
			p++
			length++
		}

		if at(p) == '.' {
			if length == 0 {
				return fail("empty IPv4 part")
			}

			p -= length

			if pieceIndex > 6 {
				return fail("IPv4 part too late")
			}

			numbersSeen := 0

			for at(p) != eof {
				piece := -1

				if numbersSeen > 0 {
					if at(p) != '.' || numbersSeen >= 4 {
						return fail("malformed IPv4 part")
					}

					p++
				}

				if !isDigit(at(p)) {
					return fail("malformed IPv4 part")
				}

				for isDigit(at(p)) {
					n := at(p) - '0'

					switch piece {
					case -1:
						piece = n
					case 0:
						return fail("IPv4 part with leading zero")
					default:
						piece = piece*10 + n
					}

					if piece > 255 {
						return fail("IPv4 part out of range")
					}

					p++
				}

				addr[pieceIndex] = addr[pieceIndex]<<8 | uint16(piece)
				numbersSeen++

				if numbersSeen == 2 || numbersSeen == 4 {
					pieceIndex++
				}
			}

			if numbersSeen != 4 {
				return fail("too few IPv4 parts")
			}

			break
		}

		switch at(p) {
		case ':':
			p++

			if at(p) == eof {
				return fail("trailing colon")
			}
		case eof:
		default:
			return fail(fmt.Sprintf("unexpected %q", rune(at(p))))
		}

		addr[pieceIndex] = uint16(value)
		pieceIndex++
	}

	if compress != -1 {
		swaps := pieceIndex - compress

		for pieceIndex = len(addr) - 1; pieceIndex != 0 && swaps > 0; pieceIndex-- {
			addr[pieceIndex], addr[compress+swaps-1] = addr[compress+swaps-1], addr[pieceIndex]
			swaps--
		}
	} else if pieceIndex != len(addr) {
		return fail("too few pieces")
	}

	return addr, nil
}

// SerializeIPv6 formats addr in the canonical text form: lower-case hex and
// the first longest run of two or more zero pieces compressed to "::".
func SerializeIPv6(addr [8]uint16) string {
	compress := longestZeroRun(addr)

	var sb strings.Builder

	ignoreZero := false

	for i, piece := range addr {
		if ignoreZero && piece == 0 {
			continue
		}

		ignoreZero = false

		if i == compress {
			if i == 0 {
				sb.WriteString("::")
			} else {
				sb.WriteByte(':')
			}

			ignoreZero = true

			continue
		}

		sb.WriteString(strconv.FormatUint(uint64(piece), 16))

		if i != len(addr)-1 {
			sb.WriteByte(':')
		}
	}

	return sb.String()
}

// longestZeroRun returns the start of the first longest run of zero pieces
// of length two or more, or -1.
func longestZeroRun(addr [8]uint16) int {
	best, bestLen := -1, 1
	start, length := -1, 0

	for i, piece := range addr {
		if piece != 0 {
			start, length = -1, 0

			continue
		}

		if start < 0 {
			start = i
		}

		length++

		if length > bestLen {
			best, bestLen = start, length
		}
	}

	return best
}

func hexValue(c int) int {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	default:
		return -1
	}
}

func isDigit(c int) bool { return '0' <= c && c <= '9' }
