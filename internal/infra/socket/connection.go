// Package socket implements the realtime push channel over websockets.
package socket

import (
	"sync"
	"time"

	"harvest/config"
	"harvest/internal/errors"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	defaultWriteWait      = 10 * time.Second
	defaultPongWait       = 60 * time.Second
	defaultMaxMessageSize = 64 << 10
	defaultSendBuffer     = 64
)

// ErrConnectionClosed is returned by Send after Close.
var ErrConnectionClosed = errors.New("connection closed")

// ErrSendBufferFull is returned by Send when the peer does not keep up.
var ErrSendBufferFull = errors.New("connection buffer exceeded")

// Options tunes a Connection.
type Options struct {
	WriteWait      time.Duration
	PongWait       time.Duration
	PingPeriod     time.Duration
	MaxMessageSize int64
	SendBuffer     int
}

// OptionsFromConfig fills Options from the socket config, applying defaults.
func OptionsFromConfig(cfg *config.SocketConfig) Options {
	var opts Options
	if cfg != nil {
		opts = Options{
			WriteWait:      cfg.WriteWait,
			PongWait:       cfg.PongWait,
			PingPeriod:     cfg.PingPeriod,
			MaxMessageSize: cfg.MaxMessageSize,
			SendBuffer:     cfg.SendBuffer,
		}
	}

	if opts.WriteWait <= 0 {
		opts.WriteWait = defaultWriteWait
	}
	if opts.PongWait <= 0 {
		opts.PongWait = defaultPongWait
	}
	if opts.PingPeriod <= 0 || opts.PingPeriod >= opts.PongWait {
		opts.PingPeriod = opts.PongWait * 9 / 10
	}
	if opts.MaxMessageSize <= 0 {
		opts.MaxMessageSize = defaultMaxMessageSize
	}
	if opts.SendBuffer <= 0 {
		opts.SendBuffer = defaultSendBuffer
	}

	return opts
}

// Connection wraps a websocket and serialises outbound writes through a buffered channel.
// It is safe for concurrent use.
type Connection struct {
	ID string

	ws    *websocket.Conn
	opts  Options
	send  chan []byte
	once  sync.Once
	close chan struct{}
}

// NewConnection wraps ws. Start must be called before Send.
func NewConnection(ws *websocket.Conn, opts Options) *Connection {
	return &Connection{
		ID:    uuid.NewString(),
		ws:    ws,
		opts:  opts,
		send:  make(chan []byte, opts.SendBuffer),
		close: make(chan struct{}),
	}
}

// Start arms the read deadline and launches the write loop. Call it exactly once.
func (c *Connection) Start() {
	c.ws.SetReadLimit(c.opts.MaxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(c.opts.PongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(c.opts.PongWait))
	})

	go c.writeLoop()
}

// Send enqueues payload. A full buffer closes the connection.
func (c *Connection) Send(payload []byte) error {
	select {
	case <-c.close:
		return ErrConnectionClosed
	default:
	}

	select {
	case <-c.close:
		return ErrConnectionClosed
	case c.send <- payload:
		return nil
	default:
		c.Close(websocket.CloseGoingAway, "send buffer full")

		return ErrSendBufferFull
	}
}

// Read blocks for the next data message. Any inbound frame extends the read deadline.
func (c *Connection) Read() ([]byte, error) {
	_, data, err := c.ws.ReadMessage()
	if err != nil {
		return nil, err
	}
	_ = c.ws.SetReadDeadline(time.Now().Add(c.opts.PongWait))

	return data, nil
}

// Done is closed once the connection is closed.
func (c *Connection) Done() <-chan struct{} {
	return c.close
}

// Close sends a close frame and releases the socket.
func (c *Connection) Close(code int, reason string) {
	c.once.Do(func() {
		close(c.close)
		_ = c.ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(c.opts.WriteWait))
		_ = c.ws.Close()
	})
}

func (c *Connection) writeLoop() {
	ticker := time.NewTicker(c.opts.PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.close:
			return
		case msg := <-c.send:
			if err := c.write(websocket.TextMessage, msg); err != nil {
				c.Close(websocket.CloseAbnormalClosure, "write failed")

				return
			}
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				c.Close(websocket.CloseAbnormalClosure, "ping failed")

				return
			}
		}
	}
}

func (c *Connection) write(messageType int, payload []byte) error {
	if err := c.ws.SetWriteDeadline(time.Now().Add(c.opts.WriteWait)); err != nil {
		return err
	}

	return c.ws.WriteMessage(messageType, payload)
}
