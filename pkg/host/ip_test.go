package host_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/weburl/pkg/host"
)

func TestParseIPv4(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  uint32
	}{
		{"0x1.1", 0x01000001},
		{"1.1", 0x01000001},
		{"127.1", 0x7f000001},
		{"127.0.1", 0x7f000001},
		{"0", 0},
		{"0x", 0},
		{"0xffffffff", 0xffffffff},
		{"010.0.0.1", 0x08000001},
		{"255.255.255.255", 0xffffffff},
	}

	for _, tt := range tests {
		addr, ok, err := host.ParseIPv4(tt.input)
		require.NoErrorf(t, err, "input %q", tt.input)
		assert.Truef(t, ok, "input %q", tt.input)
		assert.Equalf(t, tt.want, addr, "input %q", tt.input)
	}
}

func TestParseIPv4NotAnAddress(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"example", "1.2.3.4.5", "1..2", "09", "0xg", "1.2.3.a"} {
		_, ok, err := host.ParseIPv4(in)
		require.NoErrorf(t, err, "input %q", in)
		assert.Falsef(t, ok, "input %q", in)
	}
}

func TestParseIPv4OutOfRange(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"256.0.0.1", "1.1.1.256", "1.16777216", "0x100000000", "999999999999999999999999"} {
		_, _, err := host.ParseIPv4(in)
		require.ErrorIsf(t, err, host.ErrInvalidIPv4, "input %q", in)
	}
}

func TestSerializeIPv4(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.0.0.0", host.SerializeIPv4(0))
	assert.Equal(t, "1.0.0.1", host.SerializeIPv4(0x01000001))
	assert.Equal(t, "255.255.255.255", host.SerializeIPv4(0xffffffff))
}

func TestParseIPv6(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  [8]uint16
	}{
		{"::", [8]uint16{}},
		{"::1", [8]uint16{7: 1}},
		{"1::", [8]uint16{0: 1}},
		{"1::2", [8]uint16{0: 1, 7: 2}},
		{"1:2:3:4:5:6:7:8", [8]uint16{1, 2, 3, 4, 5, 6, 7, 8}},
		{"1:2:3:4:5:6:7::", [8]uint16{1, 2, 3, 4, 5, 6, 7, 0}},
		{"::ffff:1.2.3.4", [8]uint16{5: 0xffff, 6: 0x0102, 7: 0x0304}},
		{"ABCD::EF", [8]uint16{0: 0xabcd, 7: 0xef}},
		{"1:2:3:4:5:6:1.2.3.4", [8]uint16{1, 2, 3, 4, 5, 6, 0x0102, 0x0304}},
	}

	for _, tt := range tests {
		got, err := host.ParseIPv6(tt.input)
		require.NoErrorf(t, err, "input %q", tt.input)
		assert.Equalf(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParseIPv6Failures(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"", ":1", "1:", "1::2::3", "1:2:3:4:5:6:7:8:9", "1:2:3", "::g",
		"12345::", "::1.2.3", "::1.2.3.4.5", "::01.2.3.4", "::256.1.1.1",
		"1:2:3:4:5:6:7:1.2.3.4", "::.1.2.3", "1:2:3:4:5:6:7:8::",
	} {
		_, err := host.ParseIPv6(in)
		require.ErrorIsf(t, err, host.ErrInvalidIPv6, "input %q", in)
	}
}

func TestSerializeIPv6(t *testing.T) {
	t.Parallel()

	tests := []struct {
		addr [8]uint16
		want string
	}{
		{[8]uint16{}, "::"},
		{[8]uint16{7: 1}, "::1"},
		{[8]uint16{0: 1}, "1::"},
		{[8]uint16{1, 0, 0, 2, 0, 0, 0, 3}, "1:0:0:2::3"},
		{[8]uint16{1, 0, 0, 2, 0, 0, 3, 4}, "1::2:0:0:3:4"},
		{[8]uint16{1, 0, 2, 3, 4, 5, 6, 7}, "1:0:2:3:4:5:6:7"},
		{[8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0, 0xABCD}, "2001:db8::abcd"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, host.SerializeIPv6(tt.addr))
	}
}
