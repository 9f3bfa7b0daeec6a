// Package guard decides what a protected navigation target may show.
// The decision is recomputed on every navigation and on every store
// change; nothing is cached and there is no intermediate loading state.
package guard

// State is the routing decision for a protected target
type State int

const (
	// StateLogin means the user is unauthenticated and must sign in
	StateLogin State = iota
	// StateSelectSociety means the user is signed in but has no society
	StateSelectSociety
	// StateReady means the requested view can render inside the shell
	StateReady
)

// String returns a readable name for the state
func (s State) String() string {
	switch s {
	case StateLogin:
		return "login"
	case StateSelectSociety:
		return "select-society"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Session is the slice of the session service the guard needs
type Session interface {
	Authenticated() bool
}

// Selection is the slice of the society service the guard needs
type Selection interface {
	HasSelection() bool
}

// Resolve computes the routing state from the two stores
func Resolve(session Session, selection Selection) State {
	if !session.Authenticated() {
		return StateLogin
	}
	if !selection.HasSelection() {
		return StateSelectSociety
	}
	return StateReady
}
