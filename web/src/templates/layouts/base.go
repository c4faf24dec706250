package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/devgenius/devgenius/internal/view"
	"github.com/devgenius/devgenius/web/src/templates/components"
)

// Base wraps page content in the full HTML document: head, shared header
// navigation, main content area, and the static footer. The document tree is
// gomponents; the result is exposed as a templ.Component, which is what the
// renderer receives for every full page.
func Base(title string, content g.Node) templ.Component {
	doc := h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(title))),
				h.Script(h.Src("https://cdn.tailwindcss.com")),
				h.Script(h.Src("https://unpkg.com/htmx.org@1.9.12")),
				h.Script(h.Src("https://unpkg.com/htmx.org@1.9.12/dist/ext/ws.js")),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/app.css")),
			),
			h.Body(
				h.Class("min-h-screen bg-gray-100 flex flex-col"),
				components.Header(""),
				h.Main(h.Class("flex-grow"), content),
				view.AdaptTemplToGomponent(footer()),
				// Site-wide websocket hookup. Fragments pushed by the hub
				// arrive here and swap out-of-band into their targets.
				h.Div(hx.Ext("ws"), g.Attr("ws-connect", "/ws")),
			),
		),
	)
	return view.AdaptGomponentToTempl(doc)
}

// footer is a hand-written templ component. Its markup is static, so it
// writes the HTML directly instead of building a node tree.
func footer() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<footer class="bg-gray-900 text-gray-400 text-center py-6 text-sm"><p>DevGenius, your AI-powered DevOps team.</p></footer>`)
		return err
	})
}
