package index

import (
	_ "embed"
	"html/template"

	"go.trai.ch/dex/internal/core/domain"
)

//go:embed assets/default.css
var defaultCSS string

// Theme carries the presentation of listing pages.
type Theme struct {
	Title string
	// CSS is inlined into every page.
	CSS template.CSS
	// Footer is trusted HTML from the settings file.
	Footer template.HTML
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Title: domain.DefaultSiteTitle,
		CSS:   template.CSS(defaultCSS), //nolint:gosec // Embedded asset
	}
}

// ThemeFromSite builds a theme from site settings, falling back to the
// built-in stylesheet and title.
func ThemeFromSite(site domain.Site) Theme {
	theme := DefaultTheme()
	if site.Title != "" {
		theme.Title = site.Title
	}
	if site.Stylesheet != "" {
		theme.CSS = template.CSS(site.Stylesheet) //nolint:gosec // Operator supplied
	}
	theme.Footer = template.HTML(site.Footer) //nolint:gosec // Operator supplied
	return theme
}
