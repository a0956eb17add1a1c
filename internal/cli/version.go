package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit, and build date of folio.`,
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "folio %s\n", Version)
	fmt.Fprintf(w, "  commit: %s\n", Commit)
	fmt.Fprintf(w, "  built:  %s\n", BuildDate)
}

// SetVersionInfo sets the version information (called from main)
func SetVersionInfo(version, commit, buildDate string) {
	if version != "" {
		Version = version
	}
	if commit != "" {
		Commit = commit
	}
	if buildDate != "" {
		BuildDate = buildDate
	}
}
