// Package realtime consumes the change feed of the configuration database so
// a running bot picks up dashboard edits without a restart.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"exobot/internal/metrics"
	"exobot/pkg/retrylimit"
)

// Tables carried on the feed.
const (
	TableGuildFeatures  = "guild_features"
	TableChannelTopics  = "channel_topics"
	TableCustomCommands = "custom_commands"
	TableWorkflows      = "workflows"
)

// Event is one change notification.
type Event struct {
	Table  string          `json:"table"`
	Type   string          `json:"type"` // INSERT, UPDATE, DELETE
	Record json.RawMessage `json:"record"`
}

// Handler consumes events for one table. Handlers must be idempotent: the
// feed may replay changes after a reconnect.
type Handler func(evt Event)

// Client maintains a websocket subscription with automatic reconnection.
type Client struct {
	url    string
	dialer *websocket.Dialer

	mu       sync.RWMutex
	handlers map[string]Handler
}

func New(url string) *Client {
	return &Client{
		url:      url,
		dialer:   &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
		handlers: map[string]Handler{},
	}
}

// OnTable registers the handler for one table. Must be called before Run.
func (c *Client) OnTable(table string, h Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[table] = h
}

// Run connects and consumes events until ctx is done. Every disconnect is
// retried with exponential backoff; the method only returns on cancellation.
func (c *Client) Run(ctx context.Context) error {
	cfg := retrylimit.DefaultRetryConfig()
	cfg.OnRetry = func(attempt int, err error) {
		log.Warn().Err(err).Int("attempt", attempt).Msg("realtime stream disconnected, reconnecting")
	}

	for {
		err := retrylimit.WithRetry(ctx, func() error {
			return c.consume(ctx)
		}, nil, cfg)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			log.Error().Err(err).Msg("realtime stream retry loop ended")
		}
	}
}

// consume holds one connection open and dispatches events until it breaks.
func (c *Client) consume(ctx context.Context) error {
	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.url, err)
	}
	defer conn.Close()

	if err := c.subscribe(conn); err != nil {
		return err
	}
	log.Info().Str("url", c.url).Msg("realtime stream connected")

	// Unblock ReadJSON when the context is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		var evt Event
		if err := conn.ReadJSON(&evt); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read event: %w", err)
		}
		c.dispatch(evt)
	}
}

// subscribe announces which tables this client wants.
func (c *Client) subscribe(conn *websocket.Conn) error {
	c.mu.RLock()
	tables := make([]string, 0, len(c.handlers))
	for table := range c.handlers {
		tables = append(tables, table)
	}
	c.mu.RUnlock()

	return conn.WriteJSON(map[string]interface{}{
		"action": "subscribe",
		"tables": tables,
	})
}

func (c *Client) dispatch(evt Event) {
	c.mu.RLock()
	h, ok := c.handlers[evt.Table]
	c.mu.RUnlock()
	if !ok {
		log.Debug().Str("table", evt.Table).Msg("event for unhandled table")
		return
	}

	metrics.SyncEvents.WithLabelValues(evt.Table).Inc()
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Str("table", evt.Table).Msg("sync handler panicked")
		}
	}()
	h(evt)
}
