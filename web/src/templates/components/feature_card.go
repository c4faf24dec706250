package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// FeatureCard renders one marketing feature blurb: an icon glyph, a title,
// and a description. All three values are rendered verbatim; empty strings
// produce empty elements.
func FeatureCard(title, description, icon string) g.Node {
	return h.Div(
		h.Class("bg-white rounded-xl shadow-lg p-8 text-center"),
		h.Div(h.Class("text-5xl mb-4"), g.Text(icon)),
		h.H3(h.Class("text-xl font-semibold text-gray-900 mb-2"), g.Text(title)),
		h.P(h.Class("text-gray-600 leading-relaxed"), g.Text(description)),
	)
}
