package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tobacco_drying/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 1 * time.Second
	maxInterval      = 10 * time.Second
	maxIntervalMilli = 10_000 // 10s in ms
	eventBuffer      = 64
)

// Envelope types sent to the dashboard.
const (
	envState = "state" // one chamber snapshot, or all of them when no chamber was requested
	envEvent = "event" // notification-worthy chamber event
	envTick  = "tick"  // countdown progress
	envError = "error"
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Upgrader for HTTP -> WebSocket. Browser origins are enforced by the CORS layer.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsConnect streams chamber snapshots every interval and pushes chamber
// events as they happen. ?chamber=<id> narrows both to one chamber.
func (h *Handler) wsConnect(c *gin.Context) {
	interval := h.parseInterval(c)
	chamberID := strings.TrimSpace(c.Query("chamber"))

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine to handle control frames and detect disconnects.
	done := make(chan struct{})
	go h.startReader(conn, done)

	// Send initial state immediately. An unknown chamber gets an error envelope.
	if err := h.sendState(c.Request.Context(), conn, chamberID); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err, "chamber", chamberID)
		}
		return
	}

	var events <-chan models.ChamberEvent
	if h.services.Events != nil {
		ch, cancel := h.services.Events.Subscribe(eventBuffer)
		defer cancel()
		events = ch
	}

	// Prepare periodic writers: state updates and pings.
	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	// Writer/select loop.
	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-ticker.C:
			if err := h.sendState(c.Request.Context(), conn, chamberID); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		case ev, ok := <-events:
			if !ok {
				return
			}
			if chamberID != "" && ev.ChamberID != chamberID {
				continue
			}
			if err := h.sendEvent(conn, ev); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// Helper: parseInterval reads ?interval=2s or ?interval_ms=2000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	interval := defaultInterval

	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}

	return interval
}

// Helper: startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
	}
}

// Helper: sendState writes one snapshot (or all of them) with a write deadline.
// A lookup failure is reported to the client before the error is returned.
func (h *Handler) sendState(ctx context.Context, conn *websocket.Conn, chamberID string) error {
	var (
		data interface{}
		err  error
	)
	if chamberID != "" {
		data, err = h.services.Monitoring.GetChamber(ctx, chamberID)
	} else {
		data, err = h.services.Monitoring.ListChambers(ctx)
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_get_state_failed", "err", err, "chamber", chamberID)
		}
		_ = conn.WriteJSON(wsEnvelope{Type: envError, Error: err.Error()})
		return err
	}
	return conn.WriteJSON(wsEnvelope{Type: envState, Data: data})
}

func (h *Handler) sendEvent(conn *websocket.Conn, ev models.ChamberEvent) error {
	typ := envEvent
	if ev.Type == models.EventDryingTick {
		typ = envTick
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(wsEnvelope{Type: typ, Data: ev})
}
