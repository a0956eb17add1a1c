package content

import (
	"fmt"
	"strings"

	"github.com/Didstopia/folio/internal/github"
)

// WorksMarkdown appends the works list and an optional notice to the works page
func WorksMarkdown(page string, works []github.Work, notice string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(page, "\n"))
	b.WriteString("\n")

	if notice != "" {
		fmt.Fprintf(&b, "\n> %s\n", notice)
	}

	for _, w := range works {
		name := w.Name
		if name == "" {
			name = w.FullName
		}
		fmt.Fprintf(&b, "\n## %s\n\n", name)
		if w.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", w.Description)
		}

		var meta []string
		if w.Language != "" {
			meta = append(meta, w.Language)
		}
		meta = append(meta, fmt.Sprintf("★ %d", w.Stars))
		if w.URL != "" {
			meta = append(meta, w.URL)
		}
		fmt.Fprintf(&b, "%s\n", strings.Join(meta, " · "))
	}

	return b.String()
}
