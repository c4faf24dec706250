package dashboard

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devgenius/devgenius/internal/hub"
	"github.com/devgenius/devgenius/internal/status"
)

func TestServeWSDeliversBroadcasts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := hub.New()
	go h.Run(ctx)

	e := newStatusEcho()
	handler := NewHandler(status.NewStaticProvider(), h, testFragment)
	e.GET("/ws", handler.ServeWS)

	srv := httptest.NewServer(e)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	// Registration races the handshake, so keep broadcasting until the
	// client observes a frame.
	readCtx, readCancel := context.WithTimeout(ctx, 2*time.Second)
	defer readCancel()
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-readCtx.Done():
				return
			case <-ticker.C:
				h.Broadcast <- []byte("<div>push</div>")
			}
		}
	}()

	_, data, err := conn.Read(readCtx)
	require.NoError(t, err)
	assert.Contains(t, string(data), "push")
}
