package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocietyErrorFormat(t *testing.T) {
	err := New(ErrCodeAuthLoginFailed, "login failed").
		WithSuggestion("check your password")

	msg := err.Error()
	assert.Contains(t, msg, "[AUTH-002]")
	assert.Contains(t, msg, "login failed")
	assert.Contains(t, msg, "check your password")
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeFileWriteFailed, "failed to save credentials", cause)

	assert.Contains(t, err.Error(), "disk full")
	assert.True(t, stderrors.Is(err, cause))
}

func TestNewAPIErrorCodes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   ErrorCode
	}{
		{name: "unauthorized", status: 401, want: ErrCodeAuthUnauthorized},
		{name: "forbidden", status: 403, want: ErrCodeAPIForbidden},
		{name: "not found", status: 404, want: ErrCodeAPINotFound},
		{name: "validation", status: 400, want: ErrCodeAPIRejected},
		{name: "server error", status: 502, want: ErrCodeAPIUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAPIError(tt.status, "detail message")
			assert.Equal(t, tt.want, err.Code)
			assert.Equal(t, "detail message", err.Message)
		})
	}
}

func TestErrorsAsSocietyError(t *testing.T) {
	var target *SocietyError
	err := NewNoSocietyError()
	require.True(t, stderrors.As(err, &target))
	assert.Equal(t, ErrCodeSocietyNoneSelected, target.Code)
}
