package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSession bool

func (f fakeSession) Authenticated() bool { return bool(f) }

type fakeSelection bool

func (f fakeSelection) HasSelection() bool { return bool(f) }

func TestResolve(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		hasSociety    bool
		want          State
	}{
		{name: "unauthenticated", authenticated: false, hasSociety: false, want: StateLogin},
		{name: "unauthenticated with stale selection", authenticated: false, hasSociety: true, want: StateLogin},
		{name: "authenticated without society", authenticated: true, hasSociety: false, want: StateSelectSociety},
		{name: "authenticated with society", authenticated: true, hasSociety: true, want: StateReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(fakeSession(tt.authenticated), fakeSelection(tt.hasSociety))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "login", StateLogin.String())
	assert.Equal(t, "select-society", StateSelectSociety.String())
	assert.Equal(t, "ready", StateReady.String())
}
