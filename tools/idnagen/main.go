// Package main generates pkg/idna/tables.go from the Unicode IDNA mapping
// table and the derived joining type data.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

var errBadLine = errors.New("malformed data line")

var statusIdents = map[string]string{
	"valid":                  "statusValid",
	"mapped":                 "statusMapped",
	"deviation":              "statusDeviation",
	"disallowed":             "statusDisallowed",
	"ignored":                "statusIgnored",
	"disallowed_STD3_valid":  "statusDisallowedSTD3Valid",
	"disallowed_STD3_mapped": "statusDisallowedSTD3Mapped",
}

var joiningIdents = map[string]string{
	"C": "joiningC",
	"D": "joiningD",
	"L": "joiningL",
	"R": "joiningR",
	"T": "joiningT",
}

type mapping struct {
	lo     rune
	status string
	index  int
}

type joining struct {
	lo, hi rune
	jt     string
}

func main() {
	mappingPath := flag.String("mapping", "IdnaMappingTable.txt", "UTS #46 IdnaMappingTable.txt")
	joiningPath := flag.String("joining", "DerivedJoiningType.txt", "Unicode DerivedJoiningType.txt")
	version := flag.String("version", "15.1.0", "Unicode version of the input files")
	output := flag.String("o", "tables.go", "output file")

	flag.Parse()

	if err := run(*mappingPath, *joiningPath, *version, *output); err != nil {
		fmt.Fprintf(os.Stderr, "idnagen: %v\n", err)
		os.Exit(1)
	}
}

func run(mappingPath, joiningPath, version, output string) error {
	mf, err := os.Open(mappingPath)
	if err != nil {
		return err
	}
	defer mf.Close()

	mappings, strs, err := parseMappings(mf)
	if err != nil {
		return fmt.Errorf("%s: %w", mappingPath, err)
	}

	jf, err := os.Open(joiningPath)
	if err != nil {
		return err
	}
	defer jf.Close()

	joinings, err := parseJoinings(jf)
	if err != nil {
		return fmt.Errorf("%s: %w", joiningPath, err)
	}

	src, err := format.Source(render(version, mergeRuns(mappings), strs, joinings))
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}

	return os.WriteFile(output, src, 0o644)
}

// fields strips the trailing comment and splits a data line on ';'.
func fields(line string) []string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	parts := strings.Split(line, ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

func parseRange(s string) (rune, rune, error) {
	loStr, hiStr, found := strings.Cut(s, "..")
	if !found {
		hiStr = loStr
	}

	lo, err := strconv.ParseUint(loStr, 16, 32)
	if err != nil {
		return 0, 0, err
	}

	hi, err := strconv.ParseUint(hiStr, 16, 32)
	if err != nil {
		return 0, 0, err
	}

	return rune(lo), rune(hi), nil
}

func parseMappings(r io.Reader) ([]mapping, []string, error) {
	strs := []string{""}
	index := map[string]int{"": 0}

	var out []mapping

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		f := fields(sc.Text())
		if f == nil {
			continue
		}

		if len(f) < 2 {
			return nil, nil, fmt.Errorf("%w: %q", errBadLine, sc.Text())
		}

		lo, _, err := parseRange(f[0])
		if err != nil {
			return nil, nil, err
		}

		status, ok := statusIdents[f[1]]
		if !ok {
			return nil, nil, fmt.Errorf("%w: unknown status %q", errBadLine, f[1])
		}

		m := mapping{lo: lo, status: status}

		if len(f) > 2 && f[2] != "" {
			var sb strings.Builder

			for _, cp := range strings.Fields(f[2]) {
				v, err := strconv.ParseUint(cp, 16, 32)
				if err != nil {
					return nil, nil, err
				}

				sb.WriteRune(rune(v))
			}

			s := sb.String()

			idx, seen := index[s]
			if !seen {
				idx = len(strs)
				index[s] = idx
				strs = append(strs, s)
			}

			m.index = idx
		}

		out = append(out, m)
	}

	slices.SortFunc(out, func(a, b mapping) int { return int(a.lo - b.lo) })

	return out, strs, sc.Err()
}

// mergeRuns drops every entry that repeats the status and mapping of the one
// before it. The input covers the code space without gaps, so each surviving
// entry still starts the run it describes.
func mergeRuns(mappings []mapping) []mapping {
	out := make([]mapping, 0, len(mappings))

	for _, m := range mappings {
		if n := len(out); n > 0 && out[n-1].status == m.status && out[n-1].index == m.index {
			continue
		}

		out = append(out, m)
	}

	return out
}

func parseJoinings(r io.Reader) ([]joining, error) {
	var out []joining

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		f := fields(sc.Text())
		if len(f) < 2 {
			continue
		}

		jt, ok := joiningIdents[f[1]]
		if !ok {
			continue
		}

		lo, hi, err := parseRange(f[0])
		if err != nil {
			return nil, err
		}

		out = append(out, joining{lo: lo, hi: hi, jt: jt})
	}

	slices.SortFunc(out, func(a, b joining) int { return int(a.lo - b.lo) })

	return out, sc.Err()
}

func render(version string, mappings []mapping, strs []string, joinings []joining) []byte {
	var b bytes.Buffer

	b.WriteString("// Code generated by idnagen from IdnaMappingTable.txt and DerivedJoiningType.txt. DO NOT EDIT.\n\n")
	b.WriteString("package idna\n\n")
	b.WriteString("// UnicodeVersion is the version of the UTS #46 mapping data compiled into this package.\n")
	fmt.Fprintf(&b, "const UnicodeVersion = %q\n\n", version)

	b.WriteString("// mappingTable holds the first code point of every run sharing a status and\n")
	b.WriteString("// mapping, sorted ascending. A run ends where the next entry begins.\n")
	b.WriteString("var mappingTable = [...]mappingEntry{\n")

	for _, m := range mappings {
		fmt.Fprintf(&b, "\t{0x%04X, %s, %d},\n", m.lo, m.status, m.index)
	}

	b.WriteString("}\n\n")
	b.WriteString("// mappingStrings holds the distinct replacement strings; index 0 is empty.\n")
	b.WriteString("var mappingStrings = [...]string{\n")

	for _, s := range strs {
		fmt.Fprintf(&b, "\t%+q,\n", s)
	}

	b.WriteString("}\n\n")
	b.WriteString("// joiningTable lists code points with a non-U joining type, as inclusive ranges.\n")
	b.WriteString("var joiningTable = [...]joiningRange{\n")

	for _, j := range joinings {
		fmt.Fprintf(&b, "\t{0x%04X, 0x%04X, %s},\n", j.lo, j.hi, j.jt)
	}

	b.WriteString("}\n")

	return b.Bytes()
}
