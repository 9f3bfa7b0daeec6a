package exitcode

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/socfin/societyctl/internal/errors"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: Success},
		{name: "plain error", err: stderrors.New("boom"), want: GeneralError},
		{name: "unauthorized", err: errors.NewUnauthorizedError(), want: AuthError},
		{name: "not logged in", err: errors.NewNotLoggedInError(), want: AuthError},
		{name: "forbidden", err: errors.NewAPIError(403, "Insufficient permissions"), want: PermissionError},
		{name: "server down", err: errors.NewAPIError(503, "unavailable"), want: NetworkError},
		{name: "validation", err: errors.NewAPIError(400, "Nothing to update"), want: GeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineExitCode(tt.err))
		})
	}
}
