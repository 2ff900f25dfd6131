package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/weburl/pkg/idna"
)

// ErrIDNAFailed is returned when any domain fails to convert.
var ErrIDNAFailed = errors.New("some domains failed to convert")

// NewIDNACommand creates the idna command with its to-ascii and to-unicode
// subcommands.
func NewIDNACommand() *cobra.Command {
	var transitional bool

	cmd := &cobra.Command{
		Use:   "idna",
		Short: "Convert domains to and from Punycode (UTS #46)",
	}

	cmd.PersistentFlags().BoolVar(&transitional, "transitional", false, "map deviation characters such as ß the IDNA2003 way")

	profile := func() *idna.Profile {
		if transitional {
			return idna.New(idna.Transitional(true), idna.CheckBidi(true), idna.CheckJoiners(true))
		}

		return idna.Lookup
	}

	cmd.AddCommand(idnaSubcommand("to-ascii", "Convert domains to their ASCII form", func(d string) (string, error) {
		return profile().ToASCII(d)
	}))
	cmd.AddCommand(idnaSubcommand("to-unicode", "Convert domains to their Unicode form", func(d string) (string, error) {
		return profile().ToUnicode(d)
	}))

	return cmd
}

func idnaSubcommand(use, short string, convert func(string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [domain...]",
		Short: short,
		Long:  short + ". Domains are read from stdin, one per line, when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var total, failed int

			for domain, readErr := range inputs(args, cmd.InOrStdin()) {
				if readErr != nil {
					return readErr
				}

				total++

				out, err := convert(domain)
				if err != nil {
					failed++

					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", domain, err)

					continue
				}

				fmt.Fprintln(cmd.OutOrStdout(), out)
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", ErrIDNAFailed, failed, total)
			}

			return nil
		},
	}
}
