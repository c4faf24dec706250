package components

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// DefaultTitle is the brand title shown when no override is supplied.
const DefaultTitle = "DevGenius"

type navRoute struct {
	Path string
	Name string
}

// navRoutes is the closed route table, in display order. The header renders
// exactly these three links regardless of the current path.
var navRoutes = []navRoute{
	{Path: "/", Name: "home"},
	{Path: "/about", Name: "about"},
	{Path: "/dashboard", Name: "dashboard"},
}

// Header renders the shared navigation bar. An empty title falls back to
// DefaultTitle; any other value is rendered verbatim.
func Header(title string) g.Node {
	if title == "" {
		title = DefaultTitle
	}
	caser := cases.Title(language.English)

	return h.Nav(
		h.Class("bg-indigo-700 text-white shadow-lg"),
		h.Div(
			h.Class("container mx-auto px-4 py-4 flex items-center justify-between"),
			h.Span(h.Class("text-2xl font-bold tracking-tight"), g.Text(title)),
			h.Div(
				h.Class("flex gap-6"),
				g.Group(g.Map(navRoutes, func(r navRoute) g.Node {
					return h.A(
						h.Href(r.Path),
						h.Class("hover:text-indigo-200 transition-colors"),
						g.Text(caser.String(r.Name)),
					)
				})),
			),
		),
	)
}
