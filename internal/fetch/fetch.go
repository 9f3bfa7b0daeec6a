// Package fetch serializes a view's data loads with request tokens.
// A view issues a token per load and checks it when the response lands;
// responses whose token was superseded are discarded, so a slow fetch for
// a previously selected society can never overwrite newer state.
package fetch

import (
	"sync"

	"github.com/google/uuid"
)

// Token identifies one issued load
type Token string

// Coordinator tracks the latest issued token per view instance
type Coordinator struct {
	mu     sync.Mutex
	latest Token
}

// NewCoordinator creates an empty coordinator
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// Issue mints a token for a new load and supersedes all previous ones
func (c *Coordinator) Issue() Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.latest = Token(uuid.NewString())
	return c.latest
}

// Current reports whether the token still identifies the latest load
func (c *Coordinator) Current(token Token) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return token != "" && token == c.latest
}

// Invalidate supersedes all outstanding tokens without issuing a new one.
// Used when the view's inputs vanish: the session expired or the user is
// switching societies.
func (c *Coordinator) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.latest = ""
}
