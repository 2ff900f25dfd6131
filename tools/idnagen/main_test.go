package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMapping = `# IdnaMappingTable.txt excerpt
0000..002C    ; disallowed_STD3_valid                  # 1.1  <control-0000>..COMMA
002D..002E    ; valid                                  # 1.1  HYPHEN-MINUS..FULL STOP
002F          ; disallowed_STD3_valid                  # 1.1  SOLIDUS
0030..0039    ; valid                                  # 1.1  DIGIT ZERO..DIGIT NINE
003A..0040    ; disallowed_STD3_valid                  # 1.1  COLON..COMMERCIAL AT
0041          ; mapped                 ; 0061          # 1.1  LATIN CAPITAL LETTER A
0042          ; mapped                 ; 0062          # 1.1  LATIN CAPITAL LETTER B
00A0          ; disallowed_STD3_mapped ; 0020          # 1.1  NO-BREAK SPACE
00A1..00A7    ; valid                                  # 1.1  INVERTED EXCLAMATION MARK..SECTION SIGN
00A8          ; disallowed_STD3_mapped ; 0020 0308     # 1.1  DIAERESIS
00AD          ; ignored                                # 1.1  SOFT HYPHEN
00AE          ; ignored                                # 1.1  REGISTERED SIGN
`

func TestParseMappings(t *testing.T) {
	t.Parallel()

	mappings, strs, err := parseMappings(strings.NewReader(sampleMapping))
	require.NoError(t, err)
	require.Len(t, mappings, 12)

	assert.Equal(t, []string{"", "a", "b", " ", "\u0020\u0308"}, strs)
	assert.Equal(t, mapping{lo: 0x41, status: "statusMapped", index: 1}, mappings[5])
	assert.Equal(t, mapping{lo: 0xA8, status: "statusDisallowedSTD3Mapped", index: 4}, mappings[9])
}

func TestParseMappings_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	_, _, err := parseMappings(strings.NewReader("0041 ; shiny\n"))
	require.ErrorIs(t, err, errBadLine)
}

func TestMergeRuns(t *testing.T) {
	t.Parallel()

	mappings, _, err := parseMappings(strings.NewReader(sampleMapping))
	require.NoError(t, err)

	merged := mergeRuns(mappings)

	los := make([]rune, 0, len(merged))
	for _, m := range merged {
		los = append(los, m.lo)
	}

	// Both ignored entries collapse into one run. The two mapped entries stay
	// apart because their replacements differ.
	assert.Equal(t, []rune{0x00, 0x2D, 0x2F, 0x30, 0x3A, 0x41, 0x42, 0xA0, 0xA1, 0xA8, 0xAD}, los)
}

func TestRender(t *testing.T) {
	t.Parallel()

	mappings, strs, err := parseMappings(strings.NewReader(sampleMapping))
	require.NoError(t, err)

	joinings, err := parseJoinings(strings.NewReader("0620 ; D # Lo ARABIC LETTER KASHMIRI YEH\n200D ; C # Cf ZERO WIDTH JOINER\n"))
	require.NoError(t, err)

	out := string(render("15.1.0", mergeRuns(mappings), strs, joinings))

	assert.Contains(t, out, `const UnicodeVersion = "15.1.0"`)
	assert.Contains(t, out, "\t{0x00AD, statusIgnored, 0},\n")
	assert.NotContains(t, out, "0x00AE")
	assert.Contains(t, out, "\t{0x200D, 0x200D, joiningC},\n")
}
