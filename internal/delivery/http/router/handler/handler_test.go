package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"harvest/config"
	"harvest/internal/delivery/http/middleware"
	"harvest/internal/delivery/http/validator"
	domainerrors "harvest/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool                    `json:"success"`
	Code    int                     `json:"code"`
	Message string                  `json:"message"`
	Data    json.RawMessage         `json:"data"`
	Error   *domainerrors.ErrorInfo `json:"error"`
}

func testConfig() *config.Config {
	return &config.Config{
		API:    &config.APIConfig{BaseURL: "http://api.test", UploadsURL: "http://api.test"},
		Socket: &config.SocketConfig{},
		Chat:   &config.ChatConfig{},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(testLogger()).HandleHTTPError

	return e
}

func doRequest(t *testing.T, e *echo.Echo, method, target, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec.Code, env
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	e.GET("/health", HealthCheck)

	code, env := doRequest(t, e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.Success)
	require.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}
