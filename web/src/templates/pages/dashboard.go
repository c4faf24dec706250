package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/devgenius/devgenius/internal/status"
	"github.com/devgenius/devgenius/web/src/templates/components"
)

// Dashboard renders the status page. The widget container refreshes itself:
// htmx polls /dashboard/status, and pushed websocket fragments swap the same
// container out-of-band.
func Dashboard(s status.Snapshot) g.Node {
	return Div(
		Class("container mx-auto px-4 py-16"),
		H1(
			Class("text-4xl font-extrabold text-gray-900 mb-2"),
			g.Text("Dashboard"),
		),
		P(
			Class("text-gray-600 mb-10"),
			g.Text("Build and deployment status for the DevGenius frontend."),
		),
		components.DashboardStatus(s),
	)
}
