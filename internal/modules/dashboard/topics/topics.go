// Package topics defines the pub/sub topic names owned by the dashboard module.
package topics

const (
	// Updated carries events.StatusUpdated payloads whenever the poller
	// publishes a fresh snapshot.
	Updated = "status.updated"
)
