package weburl

import (
	"errors"
	"fmt"
)

// Fatal parse conditions. A *Failure wraps one of these, or an error from the
// host package.
var (
	ErrMissingBase        = errors.New("relative URL without a base")
	ErrInvalidBase        = errors.New("invalid base URL")
	ErrInvalidPort        = errors.New("invalid port")
	ErrHostMissing        = errors.New("host missing")
	ErrInvalidScheme      = errors.New("invalid scheme")
	ErrInvalidCredentials = errors.New("credentials without host")
	ErrUnexpectedPort     = errors.New("port not allowed in hostname")
)

// ErrUnknownErrorKind is returned when decoding an unrecognized ErrorKind
// name.
var ErrUnknownErrorKind = errors.New("unknown validation error kind")

// errTerminate stops the state machine without failing, as a state override
// requires.
var errTerminate = errors.New("terminate")

// errNotApplied stops a state override run that leaves the record as it was.
var errNotApplied = errors.New("state override not applied")

// Failure is a fatal parse error. No URL is produced.
type Failure struct {
	Input string
	Err   error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("weburl: parse %q: %v", f.Input, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// ErrorKind names a non-fatal validation error.
type ErrorKind uint8

// Validation error kinds.
const (
	InvalidURLUnit ErrorKind = iota + 1
	SpecialSchemeMissingFollowingSolidus
	MissingSchemeNonRelativeURL
	InvalidReverseSolidus
	InvalidCredentials
	HostMissing
	PortOutOfRange
	PortInvalid
	FileInvalidWindowsDriveLetter
	FileInvalidWindowsDriveLetterHost
	LeadingOrTrailingC0ControlOrSpace
	TabOrNewline
	UnescapedPercent
	IPv4EmptyPart
	IPv4NonDecimalPart
	IPv4OutOfRangePart
	HostInvalid
)

var errorKindNames = [...]string{
	InvalidURLUnit:                       "invalid-URL-unit",
	SpecialSchemeMissingFollowingSolidus: "special-scheme-missing-following-solidus",
	MissingSchemeNonRelativeURL:          "missing-scheme-non-relative-URL",
	InvalidReverseSolidus:                "invalid-reverse-solidus",
	InvalidCredentials:                   "invalid-credentials",
	HostMissing:                          "host-missing",
	PortOutOfRange:                       "port-out-of-range",
	PortInvalid:                          "port-invalid",
	FileInvalidWindowsDriveLetter:        "file-invalid-Windows-drive-letter",
	FileInvalidWindowsDriveLetterHost:    "file-invalid-Windows-drive-letter-host",
	LeadingOrTrailingC0ControlOrSpace:    "leading-or-trailing-C0-control-or-space",
	TabOrNewline:                         "tab-or-newline",
	UnescapedPercent:                     "unescaped-percent",
	IPv4EmptyPart:                        "IPv4-empty-part",
	IPv4NonDecimalPart:                   "IPv4-non-decimal-part",
	IPv4OutOfRangePart:                   "IPv4-out-of-range-part",
	HostInvalid:                          "host-invalid",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) && errorKindNames[k] != "" {
		return errorKindNames[k]
	}

	return fmt.Sprintf("ErrorKind(%d)", k)
}

// MarshalText implements encoding.TextMarshaler.
func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ErrorKind) UnmarshalText(text []byte) error {
	for i, name := range errorKindNames {
		if name != "" && name == string(text) {
			*k = ErrorKind(i)

			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownErrorKind, text)
}

// ValidationError is a non-fatal diagnostic. Offset indexes the code points
// of the input after tab and newline removal; -1 means no position.
type ValidationError struct {
	Kind   ErrorKind `json:"kind"   yaml:"kind"`
	Offset int       `json:"offset" yaml:"offset"`
}

func (e ValidationError) Error() string {
	if e.Offset < 0 {
		return e.Kind.String()
	}

	return fmt.Sprintf("%s at %d", e.Kind, e.Offset)
}
