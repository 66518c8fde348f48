package stream

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	ws "github.com/coder/websocket"
	"github.com/sethvargo/go-retry"
)

// reconnectDelay is the fixed wait between sessions. There is no backoff;
// the backend is either there or it isn't.
const reconnectDelay = 5 * time.Second

// Handler consumes inbound envelopes.
type Handler interface {
	Handle(Envelope)
}

// connection is the slice of *ws.Conn the client uses, split out so tests
// can run sessions without a network.
type connection interface {
	Read(ctx context.Context) (ws.MessageType, []byte, error)
	Write(ctx context.Context, typ ws.MessageType, p []byte) error
	Close(code ws.StatusCode, reason string) error
}

type dialFunc func(ctx context.Context) (connection, error)

// Client maintains a WebSocket to the event stream endpoint. On connect it
// authenticates with the current user id, then feeds inbound envelopes to
// the handler. Any disconnect, clean or not, schedules a reconnect after a
// fixed delay; Stop cancels a pending reconnect.
type Client struct {
	url     string
	userID  string
	handler Handler
	logger  *slog.Logger
	dial    dialFunc
	delay   time.Duration

	mu     sync.Mutex
	conn   connection
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func NewClient(url, userID string, handler Handler, logger *slog.Logger) *Client {
	c := &Client{
		url:     url,
		userID:  userID,
		handler: handler,
		logger:  logger,
		delay:   reconnectDelay,
	}
	c.dial = c.dialWebSocket
	return c
}

// Start launches the connect/read/reconnect loop.
func (c *Client) Start(ctx context.Context) {
	c.mu.Lock()
	ctx, c.cancel = context.WithCancel(ctx)
	c.ctx = ctx
	c.done = make(chan struct{})
	c.mu.Unlock()

	go c.run(ctx)
}

// Stop tears the client down: it closes any open connection and cancels a
// pending reconnect, then waits for the loop to exit.
func (c *Client) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Send emits an envelope if connected. While disconnected it silently drops
// the message; there is no outbound queue.
func (c *Client) Send(event Event, data any) {
	c.mu.Lock()
	conn, ctx := c.conn, c.ctx
	c.mu.Unlock()

	if conn == nil {
		c.logger.Debug("dropping outbound event while disconnected", "event", string(event))
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		c.logger.Warn("marshal outbound event", "event", string(event), "error", err)
		return
	}
	msg, err := json.Marshal(Envelope{Event: event, Data: payload, Timestamp: time.Now()})
	if err != nil {
		c.logger.Warn("marshal envelope", "event", string(event), "error", err)
		return
	}
	if err := conn.Write(ctx, ws.MessageText, msg); err != nil {
		c.logger.Debug("write failed", "event", string(event), "error", err)
	}
}

// Connected reports whether a session is currently open.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

func (c *Client) run(ctx context.Context) {
	defer close(c.done)

	backoff := retry.NewConstant(c.delay)
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.session(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.logger.Info("stream disconnected, reconnecting", "delay", c.delay, "error", err)
		return retry.RetryableError(err)
	})
	if err != nil && ctx.Err() == nil {
		c.logger.Error("stream loop exited", "error", err)
	}
}

// session dials, authenticates, and reads until the connection drops.
func (c *Client) session(ctx context.Context) error {
	conn, err := c.dial(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.conn = nil
		c.mu.Unlock()
		conn.Close(ws.StatusNormalClosure, "teardown")
	}()

	c.logger.Info("stream connected", "url", c.url)
	c.Send(EventAuth, AuthData{UserID: c.userID})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			c.logger.Warn("unparseable stream message", "error", err)
			continue
		}
		c.handler.Handle(env)
	}
}

func (c *Client) dialWebSocket(ctx context.Context) (connection, error) {
	conn, _, err := ws.Dial(ctx, c.url, nil)
	if err != nil {
		return nil, err
	}
	return conn, nil
}
