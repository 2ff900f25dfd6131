package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/weburl/pkg/weburl"
)

// setter pairs a flag with the URL API setter it drives. setters is in
// application order.
type setter struct {
	flag  string
	usage string
	apply func(u *weburl.URL, v string) bool
}

var setters = []setter{
	{"protocol", "new scheme, with or without the trailing colon", (*weburl.URL).SetProtocol},
	{"username", "new username", (*weburl.URL).SetUsername},
	{"password", "new password", (*weburl.URL).SetPassword},
	{"host", "new host, optionally with :port", (*weburl.URL).SetHost},
	{"hostname", "new host without port", (*weburl.URL).SetHostname},
	{"port", "new port; empty removes it", (*weburl.URL).SetPort},
	{"pathname", "new path", (*weburl.URL).SetPathname},
	{"search", "new query, with or without the leading ?", (*weburl.URL).SetSearch},
	{"hash", "new fragment, with or without the leading #", (*weburl.URL).SetHash},
}

// NewSetCommand creates the set command.
func NewSetCommand() *cobra.Command {
	values := make(map[string]*string, len(setters))

	cmd := &cobra.Command{
		Use:   "set <url>",
		Short: "Apply URL API setters to a URL",
		Long: `Parse the URL, apply each given setter in the order protocol, username,
password, host, hostname, port, pathname, search, hash and print the
resulting href. Setters that leave the URL unchanged are listed on stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := weburl.Parse(args[0])
			if err != nil {
				return err
			}

			var ignored []string

			for _, s := range setters {
				if !cmd.Flags().Changed(s.flag) {
					continue
				}

				if !s.apply(u, *values[s.flag]) {
					ignored = append(ignored, s.flag)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), u.Href())

			if len(ignored) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "unchanged: %s\n", strings.Join(ignored, ", "))
			}

			return nil
		},
	}

	for _, s := range setters {
		values[s.flag] = cmd.Flags().String(s.flag, "", s.usage)
	}

	return cmd
}
