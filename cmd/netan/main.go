package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "netan",
		Short:   "Slack network analysis - turn an exported workspace archive into normalized tables",
		Version: version,
	}

	rootCmd.AddCommand(ingestCmd())
	rootCmd.AddCommand(messagesCmd())
	rootCmd.AddCommand(reactionsCmd())
	rootCmd.AddCommand(participationCmd())
	rootCmd.AddCommand(usersCmd())
	rootCmd.AddCommand(channelsCmd())
	rootCmd.AddCommand(browseCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
