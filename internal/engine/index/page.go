package index

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/url"

	"go.trai.ch/dex/internal/core/domain"
	"go.trai.ch/zerr"
)

//go:embed assets/page.html.tmpl
var pageTemplate string

// Link targets are escaped as single path segments so names holding '#' or
// '?' stay file names.
var pageTmpl = template.Must(template.New("page").
	Funcs(template.FuncMap{"segment": url.PathEscape}).
	Parse(pageTemplate))

// PageRenderer renders listing pages with a fixed theme.
type PageRenderer struct {
	theme Theme
}

// NewPageRenderer creates a renderer for theme.
func NewPageRenderer(theme Theme) *PageRenderer {
	return &PageRenderer{theme: theme}
}

type pageData struct {
	Theme
	domain.Listing
}

// Render returns the listing page for l. Names are escaped; the theme's CSS
// and footer are inserted as is.
func (r *PageRenderer) Render(l domain.Listing) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, pageData{Theme: r.theme, Listing: l}); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPageRenderFailed.Error()), "path", l.Path)
	}
	return buf.Bytes(), nil
}
