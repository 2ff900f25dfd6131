package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/weburl/pkg/weburl"
)

// Output formats of parse.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
	FormatHref  = "href"
)

var formats = []string{FormatJSON, FormatYAML, FormatTable, FormatHref}

// Parse errors.
var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrParseFailed   = errors.New("some inputs failed to parse")
)

type parseFlags struct {
	base               string
	format             string
	encoding           string
	escapeStrayPercent bool
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	var flags parseFlags

	cmd := &cobra.Command{
		Use:   "parse [url...]",
		Short: "Parse URLs and print their components",
		Long: `Parse each URL argument, or each line of stdin when there are none, and
print the href, origin and URL API components. Relative references need
--base. The exit status is 1 when any input fails to parse.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.base, "base", "", "base URL to resolve relative references against")
	cmd.Flags().StringVarP(&flags.format, "format", "f", FormatJSON, "output format: json, yaml, table or href")
	cmd.Flags().StringVar(&flags.encoding, "encoding", "", "WHATWG encoding label for the query (default from config, else utf-8)")
	cmd.Flags().BoolVar(&flags.escapeStrayPercent, "escape-stray-percent", false, "encode % signs not followed by two hex digits")

	return cmd
}

// parseRecord is one rendered parse result.
type parseRecord struct {
	Input            string                   `json:"input"                       yaml:"input"`
	URL              *weburl.Components       `json:"url,omitempty"               yaml:"url,omitempty"`
	HostKind         string                   `json:"host_kind,omitempty"         yaml:"host_kind,omitempty"`
	ValidationErrors []weburl.ValidationError `json:"validation_errors,omitempty" yaml:"validation_errors,omitempty"`
	Error            string                   `json:"error,omitempty"             yaml:"error,omitempty"`
}

func runParse(cmd *cobra.Command, args []string, flags parseFlags) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts, err := cfg.ParserOptions()
	if err != nil {
		return err
	}

	if flags.encoding != "" {
		enc, encErr := weburl.LookupEncoding(flags.encoding)
		if encErr != nil {
			return encErr
		}

		opts = append(opts, weburl.WithEncoding(enc))
	}

	if flags.escapeStrayPercent {
		opts = append(opts, weburl.WithEscapeStrayPercent())
	}

	if flags.base != "" {
		base, baseErr := weburl.Parse(flags.base)
		if baseErr != nil {
			return fmt.Errorf("%w: %w", weburl.ErrInvalidBase, baseErr)
		}

		opts = append(opts, weburl.WithBase(base))
	}

	opts = append(opts, weburl.WithLogger(cliLogger(cmd, cfg)))

	out, err := newRenderer(flags.format, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	parser := weburl.NewParser(opts...)

	var total, failed int

	for input, readErr := range inputs(args, cmd.InOrStdin()) {
		if readErr != nil {
			return readErr
		}

		rec := parseOne(cmd.Context(), parser, input)

		total++

		if rec.Error != "" {
			failed++
		}

		if err := out.write(rec); err != nil {
			return err
		}
	}

	if err := out.flush(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrParseFailed, failed, total)
	}

	return nil
}

func parseOne(ctx context.Context, parser *weburl.Parser, input string) parseRecord {
	rec := parseRecord{Input: input}

	res, err := parser.ParseContext(ctx, input)
	if err != nil {
		rec.Error = err.Error()

		return rec
	}

	components := res.URL.Components()
	rec.URL = &components
	rec.HostKind = res.URL.Host.Kind().String()
	rec.ValidationErrors = res.Errors

	return rec
}

type renderer interface {
	write(rec parseRecord) error
	flush() error
}

func newRenderer(format string, stdout, stderr io.Writer) (renderer, error) {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")

		return &jsonRenderer{enc: enc}, nil
	case FormatYAML:
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)

		return &yamlRenderer{enc: enc}, nil
	case FormatTable:
		tbl := table.NewWriter()
		tbl.SetOutputMirror(stdout)
		tbl.SetStyle(table.StyleLight)
		tbl.AppendHeader(table.Row{"Input", "Href", "Host kind", "Validation errors"})

		return &tableRenderer{tbl: tbl}, nil
	case FormatHref:
		return &hrefRenderer{stdout: stdout, stderr: stderr}, nil
	default:
		return nil, unknownChoice(ErrUnknownFormat, format, formats)
	}
}

type jsonRenderer struct{ enc *json.Encoder }

func (r *jsonRenderer) write(rec parseRecord) error {
	if err := r.enc.Encode(rec); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

func (r *jsonRenderer) flush() error { return nil }

type yamlRenderer struct{ enc *yaml.Encoder }

func (r *yamlRenderer) write(rec parseRecord) error {
	if err := r.enc.Encode(rec); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return nil
}

func (r *yamlRenderer) flush() error {
	if err := r.enc.Close(); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return nil
}

type tableRenderer struct{ tbl table.Writer }

func (r *tableRenderer) write(rec parseRecord) error {
	if rec.URL == nil {
		r.tbl.AppendRow(table.Row{rec.Input, "FAILURE: " + rec.Error, "", ""})

		return nil
	}

	kinds := make([]string, 0, len(rec.ValidationErrors))
	for _, ve := range rec.ValidationErrors {
		kinds = append(kinds, ve.Kind.String())
	}

	r.tbl.AppendRow(table.Row{rec.Input, rec.URL.Href, rec.HostKind, strings.Join(kinds, ", ")})

	return nil
}

func (r *tableRenderer) flush() error {
	r.tbl.Render()

	return nil
}

type hrefRenderer struct {
	stdout io.Writer
	stderr io.Writer
}

func (r *hrefRenderer) write(rec parseRecord) error {
	var err error
	if rec.URL == nil {
		_, err = fmt.Fprintln(r.stderr, rec.Error)
	} else {
		_, err = fmt.Fprintln(r.stdout, rec.URL.Href)
	}

	if err != nil {
		return fmt.Errorf("write href: %w", err)
	}

	return nil
}

func (r *hrefRenderer) flush() error { return nil }
