package dashboard

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/devgenius/devgenius/internal/hub"
	"github.com/devgenius/devgenius/internal/modules/dashboard/events"
	"github.com/devgenius/devgenius/internal/modules/dashboard/topics"
	"github.com/devgenius/devgenius/internal/pubsub"
	"github.com/devgenius/devgenius/internal/rendering"
	"github.com/devgenius/devgenius/internal/status"
)

func testFragment(s status.Snapshot) g.Node {
	return html.Div(html.ID("status"), g.Text(s.Build.State))
}

func TestStatusSubscriberBroadcastsRenderedFragment(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := hub.New()
	go h.Run(ctx)

	browser := &hub.Subscriber{ID: "browser", Send: make(chan []byte, 4)}
	h.Register <- browser

	bridge := pubsub.NewWatermillBridge()
	defer bridge.Close()

	sub := NewStatusSubscriber(bridge, rendering.NewUniversalRenderer(), h, testFragment)
	require.NoError(t, sub.Start(ctx))

	evt := events.NewStatusUpdated(status.Fallback())
	payload, err := json.Marshal(evt)
	require.NoError(t, err)
	require.NoError(t, bridge.Publish(ctx, pubsub.Message{Topic: topics.Updated, ID: evt.ID.String(), Payload: payload}))

	select {
	case fragment := <-browser.Send:
		assert.Contains(t, string(fragment), `<div id="status">Successful</div>`)
	case <-time.After(2 * time.Second):
		t.Fatal("no fragment was broadcast to the hub")
	}
}

func TestStatusSubscriberRejectsMalformedEvents(t *testing.T) {
	h := hub.New()
	sub := NewStatusSubscriber(nil, rendering.NewUniversalRenderer(), h, testFragment)

	err := sub.handle(context.Background(), pubsub.Message{Topic: topics.Updated, Payload: []byte("not json")})

	assert.ErrorContains(t, err, "decode status event")
}
