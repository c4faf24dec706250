package components

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/devgenius/devgenius/internal/status"
)

// StatusTargetID is the DOM id of the dashboard status container. Both the
// polling fragment and the websocket push swap against this id.
const StatusTargetID = "dashboard-status"

// DashboardStatus renders the two status widgets. The container carries its
// own polling attributes, so every swapped-in fragment re-arms the poll.
func DashboardStatus(s status.Snapshot) g.Node {
	return statusWidgets(s, false)
}

// DashboardStatusOOB renders the same widgets as an out-of-band swap for
// delivery over the websocket.
func DashboardStatusOOB(s status.Snapshot) g.Node {
	return statusWidgets(s, true)
}

func statusWidgets(s status.Snapshot, oob bool) g.Node {
	return h.Div(
		h.ID(StatusTargetID),
		g.If(oob, hx.SwapOOB("true")),
		hx.Get("/dashboard/status"),
		hx.Trigger("every 60s"),
		hx.Swap("outerHTML"),
		h.Class("grid gap-6 md:grid-cols-2"),
		BuildStatusWidget(s.Build),
		DeploymentWidget(s.Deployment),
	)
}

// BuildStatusWidget shows the state of the most recent frontend build.
func BuildStatusWidget(b status.Build) g.Node {
	return h.Div(
		h.Class("bg-white rounded-xl shadow-lg p-6"),
		h.H3(h.Class("text-lg font-semibold text-gray-900 mb-4"), g.Text("Build Status")),
		h.Div(
			h.Class("flex items-center gap-2 mb-2"),
			h.Span(h.Class(stateDotClass(b.State))),
			h.Span(h.Class("font-medium text-gray-800"), g.Text(b.State)),
		),
		h.P(h.Class("text-sm text-gray-500"), g.Text("Branch: "+b.Branch)),
		h.P(h.Class("text-sm text-gray-500"), g.Text("Finished: "+b.FinishedAgo)),
	)
}

// DeploymentWidget shows metadata about the release currently being served.
func DeploymentWidget(d status.Deployment) g.Node {
	return h.Div(
		h.Class("bg-white rounded-xl shadow-lg p-6"),
		h.H3(h.Class("text-lg font-semibold text-gray-900 mb-4"), g.Text("Deployment Info")),
		h.P(h.Class("text-sm text-gray-500 mb-2"), g.Text("Version: "+d.Version)),
		h.P(h.Class("text-sm text-gray-500 mb-2"), g.Text("Environment: "+d.Environment)),
		h.P(h.Class("text-sm text-gray-500"), g.Text("Last Deployed: "+d.DeployedAgo)),
	)
}

func stateDotClass(state string) string {
	base := "inline-block w-3 h-3 rounded-full "
	switch state {
	case "Successful":
		return base + "bg-green-500"
	case "Failed":
		return base + "bg-red-500"
	default:
		return base + "bg-yellow-500"
	}
}
