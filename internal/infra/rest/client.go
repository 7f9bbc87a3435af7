// Package rest implements the marketplace REST backend adapters.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"harvest/config"
	deliverycontext "harvest/internal/delivery/context"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const maxResponseBytes = 4 << 20

// envelope is the response wrapper used by every backend endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func (e *envelope) reason() string {
	if e.Error != "" {
		return e.Error
	}

	return e.Message
}

// Client performs authenticated JSON calls against the backend and maps
// failures onto the domain error kinds.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientParams holds dependencies for Client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates a REST client bounded by the configured api timeout.
func NewClient(params ClientParams) *Client {
	timeout := params.Config.API.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(params.Config.API.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: params.Logger,
	}
}

// do sends body as JSON and decodes the envelope data into out when out is not nil.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	endpoint := method + " " + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set(deliverycontext.HeaderXRequestID, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		details := endpoint
		if errors.IsTimeout(err) {
			details = endpoint + " timed out"
		}
		c.logger.Warn("[REST] Request failed",
			slog.String("endpoint", endpoint),
			slog.String("request_id", requestID),
			slog.Any("error", err),
		)

		return domainerrors.NewNetworkError(err, details)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domainerrors.NewNetworkError(err, endpoint)
	}

	c.logger.Debug("[REST] Request completed",
		slog.String("endpoint", endpoint),
		slog.String("request_id", requestID),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, endpoint, env.reason())
	}
	if decodeErr != nil {
		return domainerrors.NewNetworkError(errors.Wrap(decodeErr, "decode envelope"), endpoint)
	}
	if !env.Success {
		return domainerrors.NewNetworkError(errors.Errorf("backend reported failure: %s", env.reason()), endpoint)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return domainerrors.NewNetworkError(errors.Wrap(err, "decode data"), endpoint)
	}

	return nil
}

// statusError maps a non-2xx status onto the domain error kinds.
func statusError(status int, endpoint, reason string) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domainerrors.ErrNotAuthenticated.WithDetails(reason)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if reason == "" {
			return domainerrors.ErrValidation
		}

		return domainerrors.ErrValidation.Derive(reason)
	default:
		return domainerrors.NewNetworkError(errors.Errorf("unexpected status %d", status), strings.TrimSpace(endpoint+" "+reason))
	}
}
