package weburl

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"

	"github.com/Sumatoshi-tech/weburl/pkg/host"
	"github.com/Sumatoshi-tech/weburl/pkg/percent"
)

// state is a state of the basic URL parser.
type state uint8

const (
	stateNone state = iota
	stateSchemeStart
	stateScheme
	stateNoScheme
	stateSpecialRelativeOrAuthority
	statePathOrAuthority
	stateRelative
	stateRelativeSlash
	stateSpecialAuthoritySlashes
	stateSpecialAuthorityIgnoreSlashes
	stateAuthority
	stateHost
	stateHostname
	statePort
	stateFile
	stateFileSlash
	stateFileHost
	statePathStart
	statePath
	stateCannotBeABaseURLPath
	stateQuery
	stateFragment
)

var stateNames = [...]string{
	stateNone:                          "none",
	stateSchemeStart:                   "scheme start",
	stateScheme:                        "scheme",
	stateNoScheme:                      "no scheme",
	stateSpecialRelativeOrAuthority:    "special relative or authority",
	statePathOrAuthority:               "path or authority",
	stateRelative:                      "relative",
	stateRelativeSlash:                 "relative slash",
	stateSpecialAuthoritySlashes:       "special authority slashes",
	stateSpecialAuthorityIgnoreSlashes: "special authority ignore slashes",
	stateAuthority:                     "authority",
	stateHost:                          "host",
	stateHostname:                      "hostname",
	statePort:                          "port",
	stateFile:                          "file",
	stateFileSlash:                     "file slash",
	stateFileHost:                      "file host",
	statePathStart:                     "path start",
	statePath:                          "path",
	stateCannotBeABaseURLPath:          "cannot-be-a-base-URL path",
	stateQuery:                         "query",
	stateFragment:                      "fragment",
}

func (s state) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}

	return "state(" + strconv.Itoa(int(s)) + ")"
}

const eof rune = -1

const maxPort = 65535

// parser is the mutable context of one basic URL parser run.
type parser struct {
	input    []rune
	pointer  int
	buffer   []rune
	base     *URL
	url      *URL
	state    state
	override state
	encoding encoding.Encoding

	atSignSeen        bool
	insideBrackets    bool
	passwordTokenSeen bool

	escapeStrayPercent bool

	errs []ValidationError
}

// basicParse runs the state machine. With a non-nil url and a state override
// it modifies url in place; callers pass a clone and commit on success.
func basicParse(input string, base, url *URL, override state, cfg *config) (*URL, []ValidationError, error) {
	orig := input

	p := &parser{
		base:     base,
		url:      url,
		override: override,
		state:    stateSchemeStart,
	}

	if cfg != nil {
		p.encoding = cfg.encoding
		p.escapeStrayPercent = cfg.escapeStrayPercent
	}

	if p.url == nil {
		p.url = &URL{}

		trimmed := strings.TrimFunc(input, func(r rune) bool { return r >= 0 && r <= 0x20 })
		if trimmed != input {
			p.validation(LeadingOrTrailingC0ControlOrSpace)

			input = trimmed
		}
	}

	if strings.ContainsAny(input, "\t\n\r") {
		p.validation(TabOrNewline)

		input = strings.Map(func(r rune) rune {
			if r == '\t' || r == '\n' || r == '\r' {
				return -1
			}

			return r
		}, input)
	}

	if override != stateNone {
		p.state = override
	}

	p.input = []rune(input)

	for ; p.pointer <= len(p.input); p.pointer++ {
		err := p.step(p.at(p.pointer))
		if errors.Is(err, errTerminate) {
			break
		}

		if errors.Is(err, errNotApplied) {
			return nil, p.errs, err
		}

		if err != nil {
			return nil, p.errs, &Failure{Input: orig, Err: err}
		}
	}

	return p.url, p.errs, nil
}

// step dispatches c to the handler of the current state.
func (p *parser) step(c rune) error {
	switch p.state {
	case stateSchemeStart:
		return p.schemeStart(c)
	case stateScheme:
		return p.scheme(c)
	case stateNoScheme:
		return p.noScheme(c)
	case stateSpecialRelativeOrAuthority:
		return p.specialRelativeOrAuthority(c)
	case statePathOrAuthority:
		return p.pathOrAuthority(c)
	case stateRelative:
		return p.relative(c)
	case stateRelativeSlash:
		return p.relativeSlash(c)
	case stateSpecialAuthoritySlashes:
		return p.specialAuthoritySlashes(c)
	case stateSpecialAuthorityIgnoreSlashes:
		return p.specialAuthorityIgnoreSlashes(c)
	case stateAuthority:
		return p.authority(c)
	case stateHost, stateHostname:
		return p.host(c)
	case statePort:
		return p.port(c)
	case stateFile:
		return p.file(c)
	case stateFileSlash:
		return p.fileSlash(c)
	case stateFileHost:
		return p.fileHost(c)
	case statePathStart:
		return p.pathStart(c)
	case statePath:
		return p.path(c)
	case stateCannotBeABaseURLPath:
		return p.cannotBeABaseURLPath(c)
	case stateQuery:
		return p.query(c)
	case stateFragment:
		return p.fragment(c)
	default:
		return errTerminate
	}
}

func (p *parser) at(i int) rune {
	if i >= 0 && i < len(p.input) {
		return p.input[i]
	}

	return eof
}

func (p *parser) validation(kind ErrorKind) {
	p.errs = append(p.errs, ValidationError{Kind: kind, Offset: p.pointer})
}

func (p *parser) special() bool { return p.url.IsSpecial() }

// isTerminator reports whether c ends an authority, host or port.
func (p *parser) isTerminator(c rune) bool {
	return c == eof || c == '/' || c == '?' || c == '#' || (c == '\\' && p.special())
}

// startsWithWindowsDriveLetter reports whether the input at i begins with a
// drive letter followed by the end or by one of / \ ? #.
func (p *parser) startsWithWindowsDriveLetter(i int) bool {
	if len(p.input)-i < 2 {
		return false
	}

	if !isWindowsDriveLetter(string(p.input[i : i+2])) {
		return false
	}

	switch p.at(i + 2) {
	case eof, '/', '\\', '?', '#':
		return true
	default:
		return false
	}
}

func (p *parser) parseHost(input string) (host.Host, error) {
	h, err := host.ParseReport(input, p.special(), func(issue host.Issue) {
		switch issue {
		case host.IssueIPv4EmptyPart:
			p.validation(IPv4EmptyPart)
		case host.IssueIPv4NonDecimalPart:
			p.validation(IPv4NonDecimalPart)
		case host.IssueIPv4OutOfRangePart:
			p.validation(IPv4OutOfRangePart)
		case host.IssueInvalidPercentEscape:
			p.validation(UnescapedPercent)
		}
	})
	if err != nil {
		p.validation(HostInvalid)
	}

	return h, err
}

// checkCodePoint records validation errors for a code point appended to a
// path, query or fragment.
func (p *parser) checkCodePoint(c rune) {
	if c == '%' {
		if !percent.ValidEscapeAt(p.input, p.pointer) {
			p.validation(UnescapedPercent)
		}

		return
	}

	if !isURLCodePoint(c) {
		p.validation(InvalidURLUnit)
	}
}

// strayPercent reports whether the '%' at the pointer must be escaped.
func (p *parser) strayPercent(c rune) bool {
	return p.escapeStrayPercent && c == '%' && !percent.ValidEscapeAt(p.input, p.pointer)
}

func (p *parser) appendEncoded(dst []rune, c rune, set percent.Set) []rune {
	if p.strayPercent(c) {
		return append(dst, '%', '2', '5')
	}

	if !set.Contains(c) {
		return append(dst, c)
	}

	var buf [3 * utf8.UTFMax]byte

	for _, b := range percent.AppendRune(buf[:0], c, set) {
		dst = append(dst, rune(b))
	}

	return dst
}

func (p *parser) schemeStart(c rune) error {
	switch {
	case isASCIIAlpha(c):
		p.buffer = append(p.buffer, toLowerASCII(c))
		p.state = stateScheme
	case p.override == stateNone:
		p.state = stateNoScheme
		p.pointer--
	default:
		return ErrInvalidScheme
	}

	return nil
}

func (p *parser) scheme(c rune) error {
	switch {
	case isASCIIAlphanumeric(c) || c == '+' || c == '-' || c == '.':
		p.buffer = append(p.buffer, toLowerASCII(c))

		return nil
	case c == ':':
		return p.commitScheme()
	case p.override == stateNone:
		p.buffer = p.buffer[:0]
		p.state = stateNoScheme
		p.pointer = -1

		return nil
	default:
		return ErrInvalidScheme
	}
}

func (p *parser) commitScheme() error {
	scheme := string(p.buffer)

	if p.override != stateNone {
		if IsSpecial(p.url.Scheme) != IsSpecial(scheme) {
			return errNotApplied
		}

		if (p.url.IncludesCredentials() || p.url.Port != nil) && scheme == "file" {
			return errNotApplied
		}

		if p.url.Scheme == "file" && (p.url.Host.IsEmpty() || p.url.Host.IsNull()) {
			return errNotApplied
		}
	}

	p.url.Scheme = scheme

	if p.override != stateNone {
		if def, ok := DefaultPort(scheme); ok && p.url.Port != nil && *p.url.Port == def {
			p.url.Port = nil
		}

		return errTerminate
	}

	p.buffer = p.buffer[:0]

	switch {
	case scheme == "file":
		if p.at(p.pointer+1) != '/' || p.at(p.pointer+2) != '/' {
			p.validation(SpecialSchemeMissingFollowingSolidus)
		}

		p.state = stateFile
	case p.special() && p.base != nil && p.base.Scheme == scheme:
		p.state = stateSpecialRelativeOrAuthority
	case p.special():
		p.state = stateSpecialAuthoritySlashes
	case p.at(p.pointer+1) == '/':
		p.state = statePathOrAuthority
		p.pointer++
	default:
		p.url.CannotBeABaseURL = true
		p.url.Path = []string{""}
		p.state = stateCannotBeABaseURLPath
	}

	return nil
}

func (p *parser) noScheme(c rune) error {
	switch {
	case p.base == nil || (p.base.CannotBeABaseURL && c != '#'):
		p.validation(MissingSchemeNonRelativeURL)

		return ErrMissingBase
	case p.base.CannotBeABaseURL && c == '#':
		p.url.Scheme = p.base.Scheme
		p.url.Path = append([]string(nil), p.base.Path...)
		p.url.Query = clonePtr(p.base.Query)
		p.url.Fragment = ptr("")
		p.url.CannotBeABaseURL = true
		p.state = stateFragment
	case p.base.Scheme != "file":
		p.state = stateRelative
		p.pointer--
	default:
		p.state = stateFile
		p.pointer--
	}

	return nil
}

func (p *parser) specialRelativeOrAuthority(c rune) error {
	if c == '/' && p.at(p.pointer+1) == '/' {
		p.state = stateSpecialAuthorityIgnoreSlashes
		p.pointer++

		return nil
	}

	p.validation(SpecialSchemeMissingFollowingSolidus)
	p.state = stateRelative
	p.pointer--

	return nil
}

func (p *parser) pathOrAuthority(c rune) error {
	if c == '/' {
		p.state = stateAuthority
	} else {
		p.state = statePath
		p.pointer--
	}

	return nil
}

func (p *parser) relative(c rune) error {
	p.url.Scheme = p.base.Scheme

	switch {
	case c == '/':
		p.state = stateRelativeSlash
	case p.special() && c == '\\':
		p.validation(InvalidReverseSolidus)
		p.state = stateRelativeSlash
	default:
		p.url.Username = p.base.Username
		p.url.Password = p.base.Password
		p.url.Host = p.base.Host
		p.url.Port = clonePtr(p.base.Port)
		p.url.Path = append([]string(nil), p.base.Path...)
		p.url.Query = clonePtr(p.base.Query)

		switch c {
		case '?':
			p.url.Query = ptr("")
			p.state = stateQuery
		case '#':
			p.url.Fragment = ptr("")
			p.state = stateFragment
		case eof:
		default:
			p.url.Query = nil
			p.url.shortenPath()
			p.state = statePath
			p.pointer--
		}
	}

	return nil
}

func (p *parser) relativeSlash(c rune) error {
	switch {
	case p.special() && (c == '/' || c == '\\'):
		if c == '\\' {
			p.validation(InvalidReverseSolidus)
		}

		p.state = stateSpecialAuthorityIgnoreSlashes
	case c == '/':
		p.state = stateAuthority
	default:
		p.url.Username = p.base.Username
		p.url.Password = p.base.Password
		p.url.Host = p.base.Host
		p.url.Port = clonePtr(p.base.Port)
		p.state = statePath
		p.pointer--
	}

	return nil
}

func (p *parser) specialAuthoritySlashes(c rune) error {
	if c == '/' && p.at(p.pointer+1) == '/' {
		p.state = stateSpecialAuthorityIgnoreSlashes
		p.pointer++

		return nil
	}

	p.validation(SpecialSchemeMissingFollowingSolidus)
	p.state = stateSpecialAuthorityIgnoreSlashes
	p.pointer--

	return nil
}

func (p *parser) specialAuthorityIgnoreSlashes(c rune) error {
	if c != '/' && c != '\\' {
		p.state = stateAuthority
		p.pointer--

		return nil
	}

	p.validation(SpecialSchemeMissingFollowingSolidus)

	return nil
}

func (p *parser) authority(c rune) error {
	switch {
	case c == '@':
		p.validation(InvalidCredentials)

		if p.atSignSeen {
			p.buffer = append([]rune("%40"), p.buffer...)
		}

		p.atSignSeen = true
		p.appendCredentials()
		p.buffer = p.buffer[:0]
	case p.isTerminator(c):
		if p.atSignSeen && len(p.buffer) == 0 {
			p.validation(HostMissing)

			return ErrInvalidCredentials
		}

		p.pointer -= len(p.buffer) + 1
		p.buffer = p.buffer[:0]
		p.state = stateHost
	default:
		p.buffer = append(p.buffer, c)
	}

	return nil
}

// appendCredentials splits the buffer at the first ':' into username and
// password, userinfo-encoding both.
func (p *parser) appendCredentials() {
	var user, pass []byte

	for i, c := range p.buffer {
		if c == ':' && !p.passwordTokenSeen {
			p.passwordTokenSeen = true

			continue
		}

		var enc []byte
		if p.escapeStrayPercent && c == '%' && !percent.ValidEscapeAt(p.buffer, i) {
			enc = []byte("%25")
		} else {
			enc = percent.AppendRune(nil, c, percent.Userinfo)
		}

		if p.passwordTokenSeen {
			pass = append(pass, enc...)
		} else {
			user = append(user, enc...)
		}
	}

	p.url.Username += string(user)
	p.url.Password += string(pass)
}

func (p *parser) host(c rune) error {
	switch {
	case p.override != stateNone && p.url.Scheme == "file":
		p.pointer--
		p.state = stateFileHost
	case c == ':' && !p.insideBrackets:
		if len(p.buffer) == 0 {
			p.validation(HostMissing)

			return ErrHostMissing
		}

		if p.override == stateHostname {
			return ErrUnexpectedPort
		}

		h, err := p.parseHost(string(p.buffer))
		if err != nil {
			return err
		}

		p.url.Host = h
		p.buffer = p.buffer[:0]
		p.state = statePort
	case p.isTerminator(c):
		p.pointer--

		if p.special() && len(p.buffer) == 0 {
			p.validation(HostMissing)

			return ErrHostMissing
		}

		if p.override != stateNone && len(p.buffer) == 0 && (p.url.IncludesCredentials() || p.url.Port != nil) {
			return errNotApplied
		}

		h, err := p.parseHost(string(p.buffer))
		if err != nil {
			return err
		}

		p.url.Host = h
		p.buffer = p.buffer[:0]
		p.state = statePathStart

		if p.override != stateNone {
			return errTerminate
		}
	default:
		switch c {
		case '[':
			p.insideBrackets = true
		case ']':
			p.insideBrackets = false
		}

		p.buffer = append(p.buffer, c)
	}

	return nil
}

func (p *parser) port(c rune) error {
	switch {
	case isASCIIDigit(c):
		p.buffer = append(p.buffer, c)
	case p.isTerminator(c) || p.override != stateNone:
		if p.override == statePort && len(p.buffer) == 0 {
			return errNotApplied
		}

		if len(p.buffer) > 0 {
			n := 0
			for _, d := range p.buffer {
				n = n*10 + int(d-'0')
				if n > maxPort {
					p.validation(PortOutOfRange)

					return ErrInvalidPort
				}
			}

			port := uint16(n)
			if def, ok := DefaultPort(p.url.Scheme); ok && def == port {
				p.url.Port = nil
			} else {
				p.url.Port = &port
			}

			p.buffer = p.buffer[:0]
		}

		if p.override != stateNone {
			return errTerminate
		}

		p.state = statePathStart
		p.pointer--
	default:
		p.validation(PortInvalid)

		return ErrInvalidPort
	}

	return nil
}

func (p *parser) file(c rune) error {
	p.url.Scheme = "file"
	p.url.Host = host.Empty()

	switch {
	case c == '/' || c == '\\':
		if c == '\\' {
			p.validation(InvalidReverseSolidus)
		}

		p.state = stateFileSlash
	case p.base != nil && p.base.Scheme == "file":
		p.url.Host = p.base.Host
		p.url.Path = append([]string(nil), p.base.Path...)
		p.url.Query = clonePtr(p.base.Query)

		switch c {
		case '?':
			p.url.Query = ptr("")
			p.state = stateQuery
		case '#':
			p.url.Fragment = ptr("")
			p.state = stateFragment
		case eof:
		default:
			p.url.Query = nil

			if p.startsWithWindowsDriveLetter(p.pointer) {
				p.validation(FileInvalidWindowsDriveLetter)
				p.url.Path = nil
			} else {
				p.url.shortenPath()
			}

			p.state = statePath
			p.pointer--
		}
	default:
		p.state = statePath
		p.pointer--
	}

	return nil
}

func (p *parser) fileSlash(c rune) error {
	if c == '/' || c == '\\' {
		if c == '\\' {
			p.validation(InvalidReverseSolidus)
		}

		p.state = stateFileHost

		return nil
	}

	if p.base != nil && p.base.Scheme == "file" {
		p.url.Host = p.base.Host

		if !p.startsWithWindowsDriveLetter(p.pointer) && len(p.base.Path) > 0 &&
			isNormalizedWindowsDriveLetter(p.base.Path[0]) {
			p.url.Path = append(p.url.Path, p.base.Path[0])
		}
	}

	p.state = statePath
	p.pointer--

	return nil
}

func (p *parser) fileHost(c rune) error {
	switch c {
	case eof, '/', '\\', '?', '#':
	default:
		p.buffer = append(p.buffer, c)

		return nil
	}

	p.pointer--

	switch {
	case p.override == stateNone && isWindowsDriveLetter(string(p.buffer)):
		p.validation(FileInvalidWindowsDriveLetterHost)
		p.state = statePath
	case len(p.buffer) == 0:
		p.url.Host = host.Empty()

		if p.override != stateNone {
			return errTerminate
		}

		p.state = statePathStart
	default:
		h, err := p.parseHost(string(p.buffer))
		if err != nil {
			return err
		}

		if h.Kind() == host.KindDomain && h.Text() == "localhost" {
			h = host.Empty()
		}

		p.url.Host = h

		if p.override != stateNone {
			return errTerminate
		}

		p.buffer = p.buffer[:0]
		p.state = statePathStart
	}

	return nil
}

func (p *parser) pathStart(c rune) error {
	switch {
	case p.special():
		if c == '\\' {
			p.validation(InvalidReverseSolidus)
		}

		p.state = statePath

		if c != '/' && c != '\\' {
			p.pointer--
		}
	case p.override == stateNone && c == '?':
		p.url.Query = ptr("")
		p.state = stateQuery
	case p.override == stateNone && c == '#':
		p.url.Fragment = ptr("")
		p.state = stateFragment
	case c != eof:
		p.state = statePath

		if c != '/' {
			p.pointer--
		}
	case p.override != stateNone && p.url.Host.IsNull():
		p.url.Path = append(p.url.Path, "")
	}

	return nil
}

func (p *parser) path(c rune) error {
	slash := c == '/' || (c == '\\' && p.special())

	if !(c == eof || slash || (p.override == stateNone && (c == '?' || c == '#'))) {
		p.checkCodePoint(c)
		p.buffer = p.appendEncoded(p.buffer, c, percent.Path)

		return nil
	}

	if c == '\\' && slash {
		p.validation(InvalidReverseSolidus)
	}

	segment := string(p.buffer)

	switch {
	case isDoubleDotSegment(segment):
		p.url.shortenPath()

		if !slash {
			p.url.Path = append(p.url.Path, "")
		}
	case isSingleDotSegment(segment):
		if !slash {
			p.url.Path = append(p.url.Path, "")
		}
	default:
		if p.url.Scheme == "file" && len(p.url.Path) == 0 && isWindowsDriveLetter(segment) {
			segment = segment[:1] + ":"
		}

		p.url.Path = append(p.url.Path, segment)
	}

	p.buffer = p.buffer[:0]

	switch c {
	case '?':
		p.url.Query = ptr("")
		p.state = stateQuery
	case '#':
		p.url.Fragment = ptr("")
		p.state = stateFragment
	}

	return nil
}

func (p *parser) cannotBeABaseURLPath(c rune) error {
	switch c {
	case '?':
		p.url.Query = ptr("")
		p.state = stateQuery
	case '#':
		p.url.Fragment = ptr("")
		p.state = stateFragment
	case eof:
	default:
		p.checkCodePoint(c)
		p.url.Path[0] += string(p.appendEncoded(nil, c, percent.C0Control))
	}

	return nil
}

func (p *parser) query(c rune) error {
	if p.encoding != nil && (!p.special() || p.url.Scheme == "ws" || p.url.Scheme == "wss") {
		p.encoding = nil
	}

	if (p.override == stateNone && c == '#') || c == eof {
		set := percent.Query
		if p.special() {
			set = percent.SpecialQuery
		}

		if p.url.Query == nil {
			p.url.Query = ptr("")
		}

		*p.url.Query += string(encodeQuery(nil, p.buffer, p.encoding, set))
		p.buffer = p.buffer[:0]

		if c == '#' {
			p.url.Fragment = ptr("")
			p.state = stateFragment
		}

		return nil
	}

	p.checkCodePoint(c)

	if p.strayPercent(c) {
		p.buffer = append(p.buffer, '%', '2', '5')
	} else {
		p.buffer = append(p.buffer, c)
	}

	return nil
}

func (p *parser) fragment(c rune) error {
	if c == eof {
		return nil
	}

	p.checkCodePoint(c)

	if p.url.Fragment == nil {
		p.url.Fragment = ptr("")
	}

	*p.url.Fragment += string(p.appendEncoded(nil, c, percent.Fragment))

	return nil
}

// encodeQuery encodes rs with enc, or UTF-8 when enc is nil, and
// percent-encodes the resulting bytes under set. Code points enc cannot
// represent become a percent-encoded HTML numeric character reference.
func encodeQuery(dst []byte, rs []rune, enc encoding.Encoding, set percent.Set) []byte {
	if enc == nil {
		return percent.AppendBytes(dst, []byte(string(rs)), set)
	}

	encoder := enc.NewEncoder()

	for _, r := range rs {
		b, err := encoder.Bytes([]byte(string(r)))
		if err != nil {
			dst = append(dst, "%26%23"...)
			dst = strconv.AppendInt(dst, int64(r), 10)
			dst = append(dst, "%3B"...)

			continue
		}

		dst = percent.AppendBytes(dst, b, set)
	}

	return dst
}

func isSingleDotSegment(s string) bool {
	return s == "." || strings.EqualFold(s, "%2e")
}

func isDoubleDotSegment(s string) bool {
	switch strings.ToLower(s) {
	case "..", ".%2e", "%2e.", "%2e%2e":
		return true
	default:
		return false
	}
}
