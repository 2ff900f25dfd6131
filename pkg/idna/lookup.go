package idna

import "sort"

//go:generate go run ../../tools/idnagen -mapping IdnaMappingTable.txt -joining DerivedJoiningType.txt -o tables.go

// status is the UTS #46 status of a code point.
type status uint8

const (
	statusValid status = iota
	statusMapped
	statusDeviation
	statusDisallowed
	statusIgnored
	statusDisallowedSTD3Valid
	statusDisallowedSTD3Mapped
)

var statusNames = [...]string{
	statusValid:                "valid",
	statusMapped:               "mapped",
	statusDeviation:            "deviation",
	statusDisallowed:           "disallowed",
	statusIgnored:              "ignored",
	statusDisallowedSTD3Valid:  "disallowed_STD3_valid",
	statusDisallowedSTD3Mapped: "disallowed_STD3_mapped",
}

func (s status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}

	return "unknown"
}

type mappingEntry struct {
	lo      rune
	status  status
	mapping uint16
}

// joiningType is the Unicode Joining_Type property; zero is U (non-joining).
type joiningType uint8

const (
	joiningU joiningType = iota
	joiningC
	joiningD
	joiningL
	joiningR
	joiningT
)

type joiningRange struct {
	lo, hi rune
	jt     joiningType
}

// lookup returns the status of r and, for mapped and deviation code points,
// its replacement.
func lookup(r rune) (status, string) {
	i := sort.Search(len(mappingTable), func(i int) bool {
		return mappingTable[i].lo > r
	}) - 1
	if i < 0 {
		return statusDisallowed, ""
	}

	e := mappingTable[i]

	return e.status, mappingStrings[e.mapping]
}

func joiningTypeOf(r rune) joiningType {
	i := sort.Search(len(joiningTable), func(i int) bool {
		return joiningTable[i].hi >= r
	})
	if i < len(joiningTable) && joiningTable[i].lo <= r {
		return joiningTable[i].jt
	}

	return joiningU
}
