package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage_Validation(t *testing.T) {
	tests := []struct {
		name          string
		userID        uint
		message       string
		expectedError string
	}{
		{name: "missing user", message: "hello", expectedError: "user ID is required"},
		{name: "empty message", userID: 1, expectedError: "message is required"},
		{name: "message too long", userID: 1, message: strings.Repeat("a", 2001), expectedError: "message exceeds maximum length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := NewMessage(tt.userID, tt.message)

			require.Error(t, err)
			assert.Nil(t, msg)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}

	msg, err := NewMessage(1, "hello")
	require.NoError(t, err)
	assert.Nil(t, msg.Response())
	assert.False(t, msg.CreatedAt().IsZero())
}

func TestMessage_SetResponse_WriteOnce(t *testing.T) {
	msg, err := NewMessage(1, "hello")
	require.NoError(t, err)

	require.Error(t, msg.SetResponse(""))

	require.NoError(t, msg.SetResponse("first answer"))
	require.NotNil(t, msg.Response())
	assert.Equal(t, "first answer", *msg.Response())

	err = msg.SetResponse("second answer")
	require.Error(t, err)
	assert.Equal(t, "first answer", *msg.Response())
}
