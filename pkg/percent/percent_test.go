package percent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/weburl/pkg/percent"
)

func TestSetsAreNested(t *testing.T) {
	t.Parallel()

	chain := []percent.Set{percent.C0Control, percent.Fragment, percent.Path, percent.Userinfo, percent.Component}

	for r := rune(0); r < 0x80; r++ {
		for i := 1; i < len(chain); i++ {
			if chain[i-1].Contains(r) {
				assert.Truef(t, chain[i].Contains(r), "set %d drops %q", i, r)
			}
		}
	}
}

func TestSetMembership(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		set  percent.Set
		in   []rune
		out  []rune
	}{
		{"c0", percent.C0Control, []rune{0, 0x1f, 0x7f, 0x80, 'é'}, []rune{' ', '%', 'a', '~'}},
		{"fragment", percent.Fragment, []rune{' ', '"', '<', '>', '`'}, []rune{'#', '?', '{', '\''}},
		{"query", percent.Query, []rune{' ', '"', '#', '<', '>'}, []rune{'\'', '?', '`'}},
		{"special query", percent.SpecialQuery, []rune{'\''}, []rune{'?', '/'}},
		{"path", percent.Path, []rune{'?', '`', '{', '}', '#'}, []rune{'/', '%', '|', '['}},
		{"userinfo", percent.Userinfo, []rune{'/', ':', ';', '=', '@', '[', '\\', ']', '^', '|'}, []rune{'%', '!', '&'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, r := range tt.in {
				assert.Truef(t, tt.set.Contains(r), "%q should be encoded", r)
			}

			for _, r := range tt.out {
				assert.Falsef(t, tt.set.Contains(r), "%q should pass through", r)
			}
		})
	}
}

func TestEncodeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a%20b%E2%82%AC", percent.EncodeString("a b€", percent.Path))
	assert.Equal(t, "x%7Fy", percent.EncodeString("x\x7fy", percent.C0Control))
	assert.Equal(t, "user%40host%3Aname", percent.EncodeString("user@host:name", percent.Userinfo))
	assert.Equal(t, "%F0%9F%98%80", percent.EncodeString("😀", percent.C0Control))
}

func TestAppendBytes(t *testing.T) {
	t.Parallel()

	got := percent.AppendBytes(nil, []byte("a'b\xe9"), percent.SpecialQuery)
	assert.Equal(t, "a%27b%E9", string(got))

	got = percent.AppendBytes(nil, []byte("a'b"), percent.Query)
	assert.Equal(t, "a'b", string(got))
}

func TestDecodeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"%41%62c", "Abc"},
		{"%e2%82%ac", "€"},
		{"100%", "100%"},
		{"%4", "%4"},
		{"%zz%41", "%zzA"},
		{"%%41", "%A"},
		{"a%2", "a%2"},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, percent.DecodeString(tt.in), "decode %q", tt.in)
	}
}

func TestValidEscapeAt(t *testing.T) {
	t.Parallel()

	rs := []rune("%4g%41%")

	assert.False(t, percent.ValidEscapeAt(rs, 0))
	assert.True(t, percent.ValidEscapeAt(rs, 3))
	assert.False(t, percent.ValidEscapeAt(rs, 6))
	assert.False(t, percent.ValidEscapeAt(rs, 1))
}
