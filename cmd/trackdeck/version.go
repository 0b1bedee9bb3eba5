// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/trackdeck"
	"github.com/ik5/trackdeck/sink"
)

var (
	// Version information, set during build
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print version, git commit, build date and supported formats for trackdeck.",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "trackdeck version %s\n", Version)
		fmt.Fprintf(out, "Git commit: %s\n", GitCommit)
		fmt.Fprintf(out, "Built: %s\n", BuildDate)
		fmt.Fprintf(out, "Formats: %s\n", strings.Join(trackdeck.NewRegistry().Formats(), ", "))
		fmt.Fprintf(out, "Backends: %s\n", strings.Join(sink.Backends(), ", "))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
