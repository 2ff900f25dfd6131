package idna_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/weburl/pkg/idna"
)

func TestToASCII(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in, want string
	}{
		{"ascii passthrough", "example.com", "example.com"},
		{"uppercase", "EXAMPLE.Com", "example.com"},
		{"unicode label", "bücher.de", "xn--bcher-kva.de"},
		{"mapped uppercase unicode", "BÜCHER.de", "xn--bcher-kva.de"},
		{"fullwidth", "ＥＸＡＭＰＬＥ.com", "example.com"},
		{"ideographic full stop", "example。com", "example.com"},
		{"soft hyphen ignored", "ex\u00adample.com", "example.com"},
		{"deviation kept", "faß.de", "xn--fa-hia.de"},
		{"already encoded", "xn--bcher-kva.de", "xn--bcher-kva.de"},
		{"emoji", "💩.la", "xn--ls8h.la"},
		{"trailing dot", "example.com.", "example.com."},
		{"empty labels", "a..b", "a..b"},
		{"hyphens unchecked", "-a-.com", "-a-.com"},
		{"virama before zwj", "क्\u200d.in", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := idna.ToASCII(tt.in)
			require.NoError(t, err)

			if tt.want != "" {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestToASCIIErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		code string
	}{
		{"disallowed", "\ue000.com", idna.CodeDisallowed},
		{"leading mark", "\u0301a.com", idna.CodeLeadingMark},
		{"lone zwj", "a\u200db.com", idna.CodeContextJ},
		{"lone zwnj", "a\u200cb.com", idna.CodeContextJ},
		{"ascii punycode", "xn--abc-.com", idna.CodePunycode},
		{"empty punycode", "xn--.com", idna.CodePunycode},
		{"bad punycode", "xn--a!b.com", idna.CodePunycode},
		{"rtl label with latin", "אa.com", idna.CodeBidi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := idna.ToASCII(tt.in)
			require.Error(t, err)

			var idnaErr *idna.Error
			require.True(t, errors.As(err, &idnaErr))
			assert.Truef(t, idnaErr.Has(tt.code), "missing %s in %v", tt.code, idnaErr)
			assert.Equal(t, tt.in, idnaErr.Domain)
		})
	}
}

func TestTransitional(t *testing.T) {
	t.Parallel()

	p := idna.New(idna.Transitional(true))

	got, err := p.ToASCII("faß.de")
	require.NoError(t, err)
	assert.Equal(t, "fass.de", got)
}

func TestCheckHyphens(t *testing.T) {
	t.Parallel()

	p := idna.New(idna.CheckHyphens(true))

	_, err := p.ToASCII("-a.com")
	require.Error(t, err)

	var idnaErr *idna.Error
	require.True(t, errors.As(err, &idnaErr))
	assert.True(t, idnaErr.Has(idna.CodeHyphenEnds))

	_, err = p.ToASCII("ab--c.com")
	require.Error(t, err)
}

func TestVerifyDNSLength(t *testing.T) {
	t.Parallel()

	p := idna.New(idna.VerifyDNSLength(true))

	_, err := p.ToASCII(strings.Repeat("a", 63) + ".com")
	require.NoError(t, err)

	_, err = p.ToASCII(strings.Repeat("a", 64) + ".com")
	require.Error(t, err)

	_, err = p.ToASCII("a..com")
	require.Error(t, err)

	_, err = idna.ToASCII(strings.Repeat("a", 64) + ".com")
	require.NoError(t, err)
}

func TestToUnicode(t *testing.T) {
	t.Parallel()

	got, err := idna.ToUnicode("xn--bcher-kva.de")
	require.NoError(t, err)
	assert.Equal(t, "bücher.de", got)

	got, err = idna.ToUnicode("XN--BCHER-KVA.DE")
	require.NoError(t, err)
	assert.Equal(t, "bücher.de", got)

	got, err = idna.ToUnicode("plain.example")
	require.NoError(t, err)
	assert.Equal(t, "plain.example", got)
}

func TestRoundTripRTL(t *testing.T) {
	t.Parallel()

	in := "אב.com"

	ascii, err := idna.ToASCII(in)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ascii, idna.ACEPrefix))

	back, err := idna.ToUnicode(ascii)
	require.NoError(t, err)
	assert.Equal(t, in, back)
}

func TestProfileString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "NonTransitional:CheckBidi:CheckJoiners", idna.Lookup.String())
	assert.Equal(t, "Transitional", idna.New(idna.Transitional(true)).String())
}
