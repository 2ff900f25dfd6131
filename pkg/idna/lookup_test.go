package idna

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMappingTableRuns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rune(0), mappingTable[0].lo)

	for i := 1; i < len(mappingTable); i++ {
		prev, cur := mappingTable[i-1], mappingTable[i]

		assert.Less(t, prev.lo, cur.lo, "entry %d", i)
		assert.False(t, prev.status == cur.status && prev.mapping == cur.mapping,
			"entry %d (U+%04X) repeats the run before it", i, cur.lo)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r      rune
		status status
		mapped string
	}{
		{',', statusDisallowedSTD3Valid, ""},
		{'-', statusValid, ""},
		{'A', statusMapped, "a"},
		{'z', statusValid, ""},
		{'\u00ad', statusIgnored, ""},
		{'\u00df', statusDeviation, "ss"},
	}

	for _, tt := range tests {
		st, mapped := lookup(tt.r)
		assert.Equalf(t, tt.status, st, "U+%04X", tt.r)
		assert.Equalf(t, tt.mapped, mapped, "U+%04X", tt.r)
	}
}
