// Package commands implements the weburl CLI subcommands.
package commands

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/weburl/internal/config"
	"github.com/Sumatoshi-tech/weburl/pkg/levenshtein"
	"github.com/Sumatoshi-tech/weburl/pkg/observability"
	"github.com/Sumatoshi-tech/weburl/pkg/version"
)

// FlagConfig is the persistent --config flag of the root command.
const FlagConfig = "config"

const (
	maxLineBytes = 1 << 20

	// maxSuggestDistance bounds the edits between a mistyped choice and the
	// suggestion offered for it.
	maxSuggestDistance = 2
)

// loadConfig reads the file named by --config, if the command tree has one.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var path string
	if f := cmd.Flag(FlagConfig); f != nil {
		path = f.Value.String()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// cliLogger is the stderr logger of one-shot commands.
func cliLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	obs := cfg.Observability(observability.ModeCLI, version.Version)
	obs.LogWriter = cmd.ErrOrStderr()

	return observability.NewLogger(obs)
}

// inputs yields args, or the non-blank lines of r when args is empty.
func inputs(args []string, r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if len(args) > 0 {
			for _, arg := range args {
				if !yield(arg, nil) {
					return
				}
			}

			return
		}

		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

		for sc.Scan() {
			line := strings.TrimRight(sc.Text(), "\r")
			if strings.TrimSpace(line) == "" {
				continue
			}

			if !yield(line, nil) {
				return
			}
		}

		if err := sc.Err(); err != nil {
			yield("", fmt.Errorf("read stdin: %w", err))
		}
	}
}

// unknownChoice wraps err for a value outside choices, suggesting the
// nearest choice when one is close.
func unknownChoice(err error, value string, choices []string) error {
	if s, ok := levenshtein.Closest(value, choices, maxSuggestDistance); ok {
		return fmt.Errorf("%w: %q (did you mean %q?)", err, value, s)
	}

	return fmt.Errorf("%w: %q", err, value)
}
