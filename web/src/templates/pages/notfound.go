package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// NotFound renders the 404 page for paths outside the route table.
func NotFound(path string) g.Node {
	return Div(
		Class("container mx-auto px-4 py-24 text-center"),
		H1(Class("text-6xl font-extrabold text-gray-300 mb-4"), g.Text("404")),
		P(
			Class("text-xl text-gray-600 mb-8"),
			g.Text("No page exists at "+path+"."),
		),
		A(
			Href("/"),
			Class("inline-block bg-indigo-600 hover:bg-indigo-700 text-white font-semibold px-6 py-3 rounded-lg"),
			g.Text("Back to Home"),
		),
	)
}
