package handler

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"

	"harvest/config"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/infra/socket"
	"harvest/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandlerParams defines the dependencies for the event stream handler.
type EventHandlerParams struct {
	fx.In

	ChatUC usecase.ChatUsecase
	Config *config.Config
	Logger *slog.Logger
}

// EventHandler streams chat manager events over a websocket.
type EventHandler struct {
	chatUC   usecase.ChatUsecase
	opts     socket.Options
	buffer   int
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(params EventHandlerParams) *EventHandler {
	buffer := 0
	if params.Config.Chat != nil {
		buffer = params.Config.Chat.EventBuffer
	}

	return &EventHandler{
		chatUC: params.ChatUC,
		opts:   socket.OptionsFromConfig(params.Config.Socket),
		buffer: buffer,
		upgrader: websocket.Upgrader{
			CheckOrigin: localOrigin,
		},
		logger: params.Logger,
	}
}

// Stream handles GET /chat/events. Each manager event is written as one JSON text frame.
func (h *EventHandler) Stream(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
	if session := deliverycontext.GetSession(c); session != nil {
		logger = logger.With(slog.String("user_id", session.UserID()))
	}

	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// the upgrader already wrote the error response
		logger.Warn("[Events] Upgrade failed", slog.Any("error", err))

		return nil
	}

	conn := socket.NewConnection(ws, h.opts)
	conn.Start()

	sub := h.chatUC.Subscribe(h.buffer)
	defer sub.Unsubscribe()

	logger.Info("[Events] Subscriber connected", slog.String("connection_id", conn.ID))

	// inbound frames are ignored; reading keeps the pong handler running and detects a client close
	go func() {
		for {
			if _, err := conn.Read(); err != nil {
				conn.Close(websocket.CloseNormalClosure, "")

				return
			}
		}
	}()

	for {
		select {
		case <-conn.Done():
			logger.Info("[Events] Subscriber disconnected", slog.String("connection_id", conn.ID))

			return nil
		case event, ok := <-sub.C:
			if !ok {
				conn.Close(websocket.CloseNormalClosure, "")

				return nil
			}
			payload, err := json.Marshal(event)
			if err != nil {
				logger.Error("[Events] Encode event failed", slog.Any("error", err))

				continue
			}
			if err := conn.Send(payload); err != nil {
				logger.Warn("[Events] Subscriber dropped",
					slog.String("connection_id", conn.ID),
					slog.Any("error", err),
				)

				return nil
			}
		}
	}
}

// localOrigin accepts clients without an Origin header, same-host pages and pages
// served from loopback. The gateway only listens for a local UI.
func localOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}

	if strings.EqualFold(u.Host, r.Host) {
		return true
	}

	host := u.Hostname()
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)

	return ip != nil && ip.IsLoopback()
}
