package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/weburl/pkg/urltest"
)

// ErrCheckFailed is returned when any vector does not hold.
var ErrCheckFailed = errors.New("conformance check failed")

var (
	passColor    = color.New(color.FgGreen)
	failColor    = color.New(color.FgRed)
	addedColor   = color.New(color.FgGreen, color.Bold)
	removedColor = color.New(color.FgRed, color.CrossedOut)
	detailColor  = color.New(color.FgYellow)
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	var showPassed bool

	cmd := &cobra.Command{
		Use:   "check <vectors.json[.lz4]>",
		Short: "Run a urltestdata.json vector file",
		Long: `Parse every case of a URL test-vector file in the urltestdata.json format
and compare the result with the expected components. The file is validated
against an embedded JSON schema first and may be lz4 compressed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], showPassed)
		},
	}

	cmd.Flags().BoolVar(&showPassed, "show-passed", false, "also list the cases that pass")

	return cmd
}

func runCheck(cmd *cobra.Command, path string, showPassed bool) error {
	absPath, size, err := resolveUserFile(path)
	if err != nil {
		return err
	}

	cases, err := urltest.Open(absPath)
	if err != nil {
		return err
	}

	outcomes, err := urltest.Run(cmd.Context(), cases)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	for i := range outcomes {
		o := &outcomes[i]

		if o.Passed() {
			if showPassed {
				passColor.Fprintf(w, "PASS #%d %s\n", o.Case.Index, describeCase(&o.Case))
			}

			continue
		}

		failColor.Fprintf(w, "FAIL #%d %s\n", o.Case.Index, describeCase(&o.Case))

		if o.Err != nil {
			detailColor.Fprintf(w, "  %v\n", o.Err)
		}

		for _, m := range o.Mismatches {
			fmt.Fprintf(w, "  %-8s %s\n", m.Field+":", renderDiff(m.Want, m.Got))
		}
	}

	summary := urltest.Summarize(outcomes)
	writeSummary(w, path, size, summary)

	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d cases", ErrCheckFailed, summary.Failed, summary.Total)
	}

	return nil
}

func describeCase(c *urltest.Case) string {
	if base := c.BaseURL(); base != "" {
		return fmt.Sprintf("%q against %q", c.Input, base)
	}

	return fmt.Sprintf("%q", c.Input)
}

// renderDiff marks the characters of want that got drops as [-x-] and the
// ones it adds as {+x+}.
func renderDiff(want, got string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(want, got, false))

	var b strings.Builder

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			b.WriteString(addedColor.Sprint("{+" + d.Text + "+}"))
		case diffmatchpatch.DiffDelete:
			b.WriteString(removedColor.Sprint("[-" + d.Text + "-]"))
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}

	return b.String()
}

func writeSummary(w io.Writer, path string, size int64, s urltest.Summary) {
	rate := 0.0
	if s.Total > 0 {
		rate = float64(s.Passed) / float64(s.Total) * 100
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle(fmt.Sprintf("%s (%s)", path, humanize.Bytes(uint64(size))))
	tbl.AppendRows([]table.Row{
		{"Cases", humanize.Comma(int64(s.Total))},
		{"Passed", humanize.Comma(int64(s.Passed))},
		{"Failed", humanize.Comma(int64(s.Failed))},
		{"Pass rate", fmt.Sprintf("%.1f%%", rate)},
	})
	tbl.Render()
}
