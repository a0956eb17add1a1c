package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Didstopia/folio/internal/content"
	"github.com/Didstopia/folio/internal/header"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the site routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		printRoutes(cmd.OutOrStdout(), header.Links(cfg.ResumeURL))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

func printRoutes(w io.Writer, links []header.Link) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("KEY", "PATH", "LABEL", "TITLE")

	for i, l := range links {
		if l.External() {
			t.Row("y", l.URL, l.Label, "copied to clipboard")
			continue
		}
		t.Row(fmt.Sprintf("%d", i+1), l.Path, l.Label, content.Title(l.Path))
	}

	fmt.Fprintln(w, t.Render())
}
