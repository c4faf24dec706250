package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// About renders the static about page.
func About() g.Node {
	return Div(
		Class("container mx-auto px-4 py-16"),
		Div(
			Class("bg-white shadow-2xl rounded-xl p-10 max-w-3xl mx-auto"),
			H1(
				Class("text-4xl font-extrabold text-indigo-700 mb-4 border-b pb-2"),
				g.Text("About DevGenius"),
			),
			P(
				Class("text-gray-700 mb-6 leading-relaxed"),
				g.Text("DevGenius is a demonstration of an AI-assisted DevOps workflow: a team of agents that analyzes your frontend stack, generates CI/CD pipelines and container builds, and predicts build outcomes before they happen."),
			),
			Div(
				Class("space-y-4"),
				infoCard(
					"Automated Infrastructure",
					"Workflows and Dockerfiles are generated from what the agents detect in your repository, not from templates you have to maintain.",
				),
				infoCard(
					"Insight Before Failure",
					"The build predictor scores every change against the detected tech stack, so broken builds are caught before they cost pipeline minutes.",
				),
			),
			Div(
				Class("mt-8 pt-4 border-t text-sm text-gray-500"),
				g.Text("Thanks for exploring DevGenius!"),
			),
		),
	)
}

func infoCard(title, body string) g.Node {
	return Div(
		Class("p-6 bg-gray-50 rounded-lg shadow"),
		Div(Class("font-bold text-xl mb-2"), g.Text(title)),
		P(Class("text-gray-700 text-base"), g.Text(body)),
	)
}
