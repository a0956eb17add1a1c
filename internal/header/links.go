package header

// Route paths
const (
	PathHome    = "/"
	PathAbout   = "/about"
	PathWorks   = "/works"
	PathContact = "/contact"
)

// Root class names swapped by the theme sync effect
const (
	ClassLight = "headerWrapper"
	ClassDark  = "headerWrapperDark"
)

// Link is a navigation entry in the header
type Link struct {
	Label string
	Path  string
	// External links carry a URL instead of a route path
	URL string
}

// External reports whether the link leaves the site
func (l Link) External() bool {
	return l.URL != ""
}

// Active reports whether the link matches the active route
func (l Link) Active(activeRoute string) bool {
	return !l.External() && l.Path == activeRoute
}

// Routes returns the in-site links in display order
func Routes() []Link {
	return []Link{
		{Label: "Home", Path: PathHome},
		{Label: "About me", Path: PathAbout},
		{Label: "Works", Path: PathWorks},
		{Label: "Contact me", Path: PathContact},
	}
}

// Links returns the route links followed by the résumé link
func Links(resumeURL string) []Link {
	links := Routes()
	if resumeURL != "" {
		links = append(links, Link{Label: "Resumé", URL: resumeURL})
	}
	return links
}

// KnownRoute reports whether path is one of the header routes
func KnownRoute(path string) bool {
	for _, l := range Routes() {
		if l.Path == path {
			return true
		}
	}
	return false
}

// RootClass returns the root class name for the given theme
func RootClass(dark bool) string {
	if dark {
		return ClassDark
	}
	return ClassLight
}
