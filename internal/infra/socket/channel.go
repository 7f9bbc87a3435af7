package socket

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"harvest/config"
	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"
	"harvest/internal/errors"

	"github.com/gorilla/websocket"
	"go.uber.org/fx"
)

const (
	defaultReconnectMin = time.Second
	defaultReconnectMax = 30 * time.Second
)

// ErrNotConnected is returned by Emit while no connection is up.
var ErrNotConnected = errors.New("push channel not connected")

// pushChannel implements service.PushChannel. One websocket is kept per
// session; it is redialled with exponential backoff and the user identity is
// registered again after every successful dial.
type pushChannel struct {
	url          string
	opts         Options
	reconnectMin time.Duration
	reconnectMax time.Duration
	dialer       *websocket.Dialer
	logger       *slog.Logger

	mu     sync.Mutex
	conn   *Connection
	cancel context.CancelFunc
	done   chan struct{}
}

// PushChannelParams holds dependencies for PushChannel, injected by Fx.
type PushChannelParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPushChannel creates the websocket push channel.
func NewPushChannel(params PushChannelParams) service.PushChannel {
	cfg := params.Config.Socket
	if cfg == nil {
		cfg = &config.SocketConfig{}
	}

	reconnectMin := cfg.ReconnectMin
	if reconnectMin <= 0 {
		reconnectMin = defaultReconnectMin
	}
	reconnectMax := cfg.ReconnectMax
	if reconnectMax < reconnectMin {
		reconnectMax = max(defaultReconnectMax, reconnectMin)
	}

	return &pushChannel{
		url:          cfg.URL,
		opts:         OptionsFromConfig(cfg),
		reconnectMin: reconnectMin,
		reconnectMax: reconnectMax,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		},
		logger: params.Logger,
	}
}

// Connect dials synchronously so the caller learns about a bad endpoint, then
// keeps the connection alive in the background until Close.
func (p *pushChannel) Connect(ctx context.Context, session *entity.Session, handler service.PushHandler) error {
	if p.url == "" {
		return errors.New("socket.url is not configured")
	}
	if session == nil || handler == nil {
		return errors.New("session and handler are required")
	}

	if err := p.Close(); err != nil {
		p.logger.Warn("[Socket] Failed to close previous connection", slog.Any("error", err))
	}

	conn, err := p.dial(ctx, session)
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	p.mu.Lock()
	p.conn = conn
	p.cancel = cancel
	p.done = done
	p.mu.Unlock()

	go p.run(runCtx, session, handler, conn, done)

	return nil
}

func (p *pushChannel) dial(ctx context.Context, session *entity.Session) (*Connection, error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+session.Token)

	ws, resp, err := p.dialer.DialContext(ctx, p.url, header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", p.url)
	}

	conn := NewConnection(ws, p.opts)
	conn.Start()

	payload, err := encodeFrame(constants.PushEventRegister, session.UserID())
	if err != nil {
		conn.Close(websocket.CloseInternalServerErr, "encode failed")

		return nil, err
	}
	if err := conn.Send(payload); err != nil {
		conn.Close(websocket.CloseInternalServerErr, "register failed")

		return nil, errors.Wrap(err, "register user")
	}

	p.logger.Info("[Socket] Connected",
		slog.String("connection_id", conn.ID),
		slog.String("user_id", session.UserID()),
	)

	return conn, nil
}

func (p *pushChannel) run(ctx context.Context, session *entity.Session, handler service.PushHandler, conn *Connection, done chan struct{}) {
	defer close(done)

	backoff := p.reconnectMin
	for {
		p.readLoop(conn, handler)
		conn.Close(websocket.CloseNormalClosure, "")

		p.mu.Lock()
		if p.conn == conn {
			p.conn = nil
		}
		p.mu.Unlock()

		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}

			next, err := p.dial(ctx, session)
			if err == nil {
				conn = next
				backoff = p.reconnectMin

				break
			}

			p.logger.Warn("[Socket] Reconnect failed",
				slog.Duration("retry_in", backoff),
				slog.Any("error", err),
			)
			backoff = min(backoff*2, p.reconnectMax)
		}

		p.mu.Lock()
		if ctx.Err() != nil {
			p.mu.Unlock()
			conn.Close(websocket.CloseNormalClosure, "")

			return
		}
		p.conn = conn
		p.mu.Unlock()
	}
}

func (p *pushChannel) readLoop(conn *Connection, handler service.PushHandler) {
	for {
		data, err := conn.Read()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				p.logger.Warn("[Socket] Connection lost", slog.String("connection_id", conn.ID), slog.Any("error", err))
			}

			return
		}

		p.dispatch(conn, data, handler)
	}
}

func (p *pushChannel) dispatch(conn *Connection, data []byte, handler service.PushHandler) {
	f, err := decodeFrame(data)
	if err != nil {
		p.logger.Debug("[Socket] Ignoring malformed frame", slog.String("connection_id", conn.ID), slog.Any("error", err))

		return
	}

	if f.Type != constants.PushEventReceive {
		p.logger.Debug("[Socket] Ignoring frame", slog.String("type", f.Type))

		return
	}

	var event entity.PushEvent
	if err := json.Unmarshal(f.Payload, &event); err != nil {
		p.logger.Warn("[Socket] Ignoring malformed message payload", slog.Any("error", err))

		return
	}

	handler(&event)
}

// Emit sends a send notification on the current connection.
func (p *pushChannel) Emit(_ context.Context, event *entity.PushEvent) error {
	p.mu.Lock()
	conn := p.conn
	p.mu.Unlock()

	if conn == nil {
		return ErrNotConnected
	}

	payload, err := encodeFrame(constants.PushEventSend, event)
	if err != nil {
		return err
	}

	return conn.Send(payload)
}

// Close stops reconnecting and closes the current connection.
func (p *pushChannel) Close() error {
	p.mu.Lock()
	cancel, conn, done := p.cancel, p.conn, p.done
	p.cancel, p.conn, p.done = nil, nil, nil
	if cancel != nil {
		cancel()
	}
	p.mu.Unlock()

	if cancel == nil {
		return nil
	}

	if conn != nil {
		conn.Close(websocket.CloseNormalClosure, "session ended")
	}

	select {
	case <-done:
	case <-time.After(p.opts.WriteWait):
		return errors.New("timed out waiting for push channel to stop")
	}

	p.logger.Info("[Socket] Closed")

	return nil
}
