// Package main provides the entry point for the weburl CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/weburl/cmd/weburl/commands"
	"github.com/Sumatoshi-tech/weburl/pkg/version"
)

func main() {
	version.InitBinaryVersion()

	rootCmd := &cobra.Command{
		Use:   "weburl",
		Short: "weburl - WHATWG URL parser",
		Long: `weburl parses, resolves and serializes URLs the way web browsers do.

Commands:
  parse     Parse URLs and print their components
  set       Apply URL API setters to a URL
  idna      Convert domains to and from Punycode
  check     Run a urltestdata.json vector file
  serve     Serve the HTTP JSON API
  mcp       Serve the MCP tools on stdio`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(commands.FlagConfig, "", "config file (default is ./weburl.yaml or $HOME/.config/weburl/weburl.yaml)")

	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewSetCommand())
	rootCmd.AddCommand(commands.NewIDNACommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMCPCommand())
	rootCmd.AddCommand(commands.NewCompletionCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
