package idna_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xidna "golang.org/x/net/idna"

	"github.com/Sumatoshi-tech/weburl/pkg/idna"
)

func TestPunycodeRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		unicode, puny string
	}{
		{"bücher", "bcher-kva"},
		{"münchen", "mnchen-3ya"},
		{"faß", "fa-hia"},
		{"ß", "zca"},
		{"日本語", "wgv71a119e"},
		{"💩", "ls8h"},
	}

	for _, tt := range tests {
		t.Run(tt.puny, func(t *testing.T) {
			t.Parallel()

			enc, err := idna.Encode(tt.unicode)
			require.NoError(t, err)
			assert.Equal(t, tt.puny, enc)

			dec, err := idna.Decode(tt.puny)
			require.NoError(t, err)
			assert.Equal(t, tt.unicode, dec)
		})
	}
}

func TestPunycodeDecodeBasicOnly(t *testing.T) {
	t.Parallel()

	dec, err := idna.Decode("abc-")
	require.NoError(t, err)
	assert.Equal(t, "abc", dec)
}

func TestPunycodeDecodeInvalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"ü-abc", "a!", "99999999999"} {
		_, err := idna.Decode(in)
		assert.Errorf(t, err, "decode %q", in)
	}
}

func TestEncodeAgreesWithXNet(t *testing.T) {
	t.Parallel()

	for _, label := range []string{"bücher", "münchen", "ß", "日本語", "💩", "abc-é"} {
		want, err := xidna.Punycode.ToASCII(label)
		require.NoError(t, err)

		got, err := idna.Encode(label)
		require.NoError(t, err)
		assert.Equal(t, want, "xn--"+got, label)

		back, err := xidna.Punycode.ToUnicode("xn--" + got)
		require.NoError(t, err)
		assert.Equal(t, label, back)
	}
}
