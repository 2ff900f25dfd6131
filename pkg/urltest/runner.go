package urltest

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sumatoshi-tech/weburl/pkg/weburl"
)

// ErrUnexpectedSuccess is the outcome error of a failure case that parsed.
var ErrUnexpectedSuccess = errors.New("expected failure, parsed")

// Mismatch is one attribute whose parsed value differs from the vector.
type Mismatch struct {
	Field string
	Want  string
	Got   string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: want %q, got %q", m.Field, m.Want, m.Got)
}

// Outcome is the result of running one case.
type Outcome struct {
	Case       Case
	Err        error
	Got        *weburl.Components
	Mismatches []Mismatch
}

// Passed reports whether the case held.
func (o *Outcome) Passed() bool {
	return o.Err == nil && len(o.Mismatches) == 0
}

// Summary counts outcomes.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// Summarize tallies outcomes.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}

	for i := range outcomes {
		if outcomes[i].Passed() {
			s.Passed++
		} else {
			s.Failed++
		}
	}

	return s
}

// Run runs every case in order. It stops early, returning the outcomes so
// far and the context error, when ctx is cancelled.
func Run(ctx context.Context, cases []Case) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(cases))

	for i := range cases {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}

		outcomes = append(outcomes, RunCase(cases[i]))
	}

	return outcomes, nil
}

// RunCase parses c.Input against c.Base and compares the result.
func RunCase(c Case) Outcome {
	out := Outcome{Case: c}

	var (
		u   *weburl.URL
		err error
	)

	if base := c.BaseURL(); base != "" {
		u, err = weburl.ParseWithBase(c.Input, base)
	} else {
		u, err = weburl.Parse(c.Input)
	}

	if c.Failure {
		if err == nil {
			got := u.Components()
			out.Got = &got
			out.Err = fmt.Errorf("%w: %s", ErrUnexpectedSuccess, got.Href)
		}

		return out
	}

	if err != nil {
		out.Err = err

		return out
	}

	got := u.Components()
	out.Got = &got
	out.Mismatches = compare(&c, &got)

	return out
}

func compare(c *Case, got *weburl.Components) []Mismatch {
	fields := []struct {
		name string
		want *string
		got  string
	}{
		{"href", c.Href, got.Href},
		{"origin", c.Origin, got.Origin},
		{"protocol", c.Protocol, got.Protocol},
		{"username", c.Username, got.Username},
		{"password", c.Password, got.Password},
		{"host", c.Host, got.Host},
		{"hostname", c.Hostname, got.Hostname},
		{"port", c.Port, got.Port},
		{"pathname", c.Pathname, got.Pathname},
		{"search", c.Search, got.Search},
		{"hash", c.Hash, got.Hash},
	}

	var mismatches []Mismatch

	for _, f := range fields {
		if f.want != nil && *f.want != f.got {
			mismatches = append(mismatches, Mismatch{Field: f.name, Want: *f.want, Got: f.got})
		}
	}

	return mismatches
}
