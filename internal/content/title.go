package content

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Didstopia/folio/internal/header"
)

var titleCaser = cases.Title(language.English)

// Title returns a display title for a route path, "/" being "Home"
func Title(routePath string) string {
	if routePath == header.PathHome || routePath == "" {
		return "Home"
	}
	name := strings.Trim(routePath, "/")
	name = strings.NewReplacer("-", " ", "_", " ", "/", " ").Replace(name)
	return titleCaser.String(name)
}
