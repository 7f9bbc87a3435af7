package errors

import (
	"context"
	"net/http"
	"testing"

	"harvest/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesKind(t *testing.T) {
	assert.True(t, errors.Is(ErrEmptyMessage, ErrValidation))
	assert.True(t, errors.Is(ErrSelfConversation, ErrValidation))
	assert.False(t, errors.Is(ErrSelfConversation, ErrEmptyMessage))
	assert.False(t, errors.Is(ErrValidation, ErrEmptyMessage))

	detailed := ErrNotAuthenticated.WithDetails("no session")
	assert.True(t, errors.Is(detailed, ErrNotAuthenticated))
	assert.Equal(t, "Please sign in to continue: no session", detailed.Error())
}

func TestBaseError_WrappedStillMatches(t *testing.T) {
	err := ErrEmptyMessage.WrapMessage("send message")

	assert.True(t, errors.Is(err, ErrValidation))

	appErr := AsAppError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "Message text cannot be empty", appErr.Message())
}

func TestNetworkError(t *testing.T) {
	err := NewNetworkErrorAs(ErrSendFailed, context.DeadlineExceeded, "POST /api/v1/chats/c1/messages")

	assert.True(t, errors.Is(err, ErrNetwork))
	assert.True(t, errors.Is(err, ErrSendFailed))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.False(t, errors.Is(err, ErrStartChatFailed))
	assert.Equal(t, "NETWORK_ERROR", err.ErrorCode())
	assert.Equal(t, "Failed to send message", err.Message())
	assert.Contains(t, err.Error(), "context deadline exceeded")
}

func TestAsAppError_FallsBackToInternal(t *testing.T) {
	appErr := AsAppError(errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "INTERNAL_ERROR", appErr.ErrorCode())
	assert.Equal(t, "boom", appErr.Details())
}
