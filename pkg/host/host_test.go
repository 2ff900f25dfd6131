package host_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/weburl/pkg/host"
)

func TestParseSpecial(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		kind  host.Kind
		want  string
	}{
		{"lowercased", "EXAMPLE.com", host.KindDomain, "example.com"},
		{"idna", "bücher.de", host.KindDomain, "xn--bcher-kva.de"},
		{"percent encoded idna", "b%C3%BCcher.de", host.KindDomain, "xn--bcher-kva.de"},
		{"percent encoded ascii", "%41bc.com", host.KindDomain, "abc.com"},
		{"ipv4", "192.168.0.1", host.KindIPv4, "192.168.0.1"},
		{"ipv4 hex", "0x7f.1", host.KindIPv4, "127.0.0.1"},
		{"ipv4 single number", "3232235521", host.KindIPv4, "192.168.0.1"},
		{"ipv4 octal", "0300.0250.0.01", host.KindIPv4, "192.168.0.1"},
		{"ipv4 trailing dot", "1.2.3.4.", host.KindIPv4, "1.2.3.4"},
		{"ipv6", "[0:0:0:0:0:0:0:1]", host.KindIPv6, "[::1]"},
		{"mixed numeric domain", "1.2.foo.3", host.KindDomain, "1.2.foo.3"},
		{"five parts is a domain", "1.2.3.4.5", host.KindDomain, "1.2.3.4.5"},
		{"empty labels", "a..b", host.KindDomain, "a..b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, err := host.Parse(tt.input, true)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, h.Kind())
			assert.Equal(t, tt.want, h.String())
		})
	}
}

func TestParseSpecialFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		err   error
	}{
		{"unclosed bracket", "[::1", host.ErrInvalidIPv6},
		{"bad ipv6", "[::g]", host.ErrInvalidIPv6},
		{"forbidden", "exa mple.com", host.ErrForbiddenCodePoint},
		{"forbidden caret", "a^b", host.ErrForbiddenCodePoint},
		{"malformed escape kept literally", "ex%zzample.com", host.ErrForbiddenCodePoint},
		{"decoded forbidden", "a%2Fb", host.ErrForbiddenCodePoint},
		{"ignored only", "\u00ad", host.ErrEmptyHost},
		{"disallowed", "\ue000.com", host.ErrInvalidDomain},
		{"ipv4 part too large", "256.1.1.1", host.ErrInvalidIPv4},
		{"ipv4 last too large", "1.2.3.256", host.ErrInvalidIPv4},
		{"ipv4 overflow", "4294967296", host.ErrInvalidIPv4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, err := host.Parse(tt.input, true)
			require.ErrorIs(t, err, tt.err)
			assert.True(t, h.IsNull())
		})
	}
}

func TestParseOpaque(t *testing.T) {
	t.Parallel()

	h, err := host.Parse("Ex%41mple", false)
	require.NoError(t, err)
	assert.Equal(t, host.KindOpaque, h.Kind())
	assert.Equal(t, "Ex%41mple", h.String())

	h, err = host.Parse("é.x", false)
	require.NoError(t, err)
	assert.Equal(t, "%C3%A9.x", h.String())

	h, err = host.ParseOpaque("")
	require.NoError(t, err)
	assert.True(t, h.IsEmpty())

	_, err = host.Parse("a b", false)
	require.ErrorIs(t, err, host.ErrForbiddenCodePoint)

	h, err = host.Parse("[::1]", false)
	require.NoError(t, err)
	assert.Equal(t, host.KindIPv6, h.Kind())
}

func TestParseReportIssues(t *testing.T) {
	t.Parallel()

	var issues []host.Issue

	report := func(i host.Issue) { issues = append(issues, i) }

	_, err := host.ParseReport("0x7f.1.", true, report)
	require.NoError(t, err)
	assert.Contains(t, issues, host.IssueIPv4EmptyPart)
	assert.Contains(t, issues, host.IssueIPv4NonDecimalPart)

	issues = nil

	_, err = host.ParseReport("example.com.", true, report)
	require.NoError(t, err)
	assert.Empty(t, issues)

	_, err = host.ParseReport("a%zz", false, report)
	require.NoError(t, err)
	assert.Equal(t, []host.Issue{host.IssueInvalidPercentEscape}, issues)
}

func TestHostEqualAndUnicode(t *testing.T) {
	t.Parallel()

	a, err := host.Parse("xn--bcher-kva.de", true)
	require.NoError(t, err)

	b, err := host.Parse("bücher.de", true)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, "bücher.de", a.Unicode())
	assert.False(t, a.Equal(host.Domain("example.com")))
	assert.True(t, host.Host{}.IsNull())
	assert.Equal(t, "", host.Empty().String())

	ip := host.IPv4(0x7f000001)
	addr, ok := ip.IPv4Addr()
	assert.True(t, ok)
	assert.Equal(t, uint32(0x7f000001), addr)
	assert.Equal(t, "127.0.0.1", ip.Unicode())
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "domain", host.KindDomain.String())
	assert.Equal(t, "none", host.KindNone.String())
}
