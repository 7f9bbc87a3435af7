package errors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestIsTimeout(t *testing.T) {
	assert.True(t, IsTimeout(context.DeadlineExceeded))
	assert.True(t, IsTimeout(Wrap(context.DeadlineExceeded, "get chats")))
	assert.True(t, IsTimeout(Wrap(timeoutErr{}, "dial")))
	assert.False(t, IsTimeout(New("connection refused")))
	assert.False(t, IsTimeout(context.Canceled))
}
