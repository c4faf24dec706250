package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/devgenius/devgenius/web/src/templates/components"
)

type feature struct {
	Title       string
	Description string
	Icon        string
}

// features are the three marketing blurbs shown on the home page.
var features = []feature{
	{
		Title:       "CI/CD Pipelines",
		Description: "GitHub Actions workflows generated and tuned for your stack, from lint to release.",
		Icon:        "🚀",
	},
	{
		Title:       "Docker Containers",
		Description: "Production-ready container builds without hand-writing a single Dockerfile.",
		Icon:        "🐳",
	},
	{
		Title:       "Build Prediction",
		Description: "An AI agent flags builds likely to fail before the pipeline ever runs.",
		Icon:        "🤖",
	},
}

// Home renders the landing page: a hero section and the three feature cards.
func Home() g.Node {
	return Div(
		Class("container mx-auto px-4 py-16"),
		Div(
			Class("text-center mb-16"),
			H1(
				Class("text-5xl font-extrabold text-gray-900 mb-4"),
				g.Text("Welcome to DevGenius"),
			),
			P(
				Class("text-xl text-gray-600 max-w-2xl mx-auto"),
				g.Text("Your AI-powered DevOps team. Pipelines, containers, and build insight, handled for you."),
			),
			A(
				Href("/dashboard"),
				Class("inline-block mt-8 bg-indigo-600 hover:bg-indigo-700 text-white font-semibold px-8 py-3 rounded-lg shadow"),
				g.Text("View Dashboard"),
			),
		),
		Div(
			Class("grid gap-8 md:grid-cols-3"),
			g.Group(g.Map(features, func(f feature) g.Node {
				return components.FeatureCard(f.Title, f.Description, f.Icon)
			})),
		),
	)
}
