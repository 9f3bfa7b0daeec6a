package fetch

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatestTokenWins(t *testing.T) {
	c := NewCoordinator()

	first := c.Issue()
	second := c.Issue()

	assert.False(t, c.Current(first), "superseded token must be stale")
	assert.True(t, c.Current(second))
}

func TestStaleResponseDiscarded(t *testing.T) {
	c := NewCoordinator()

	// Simulates switching society while a fetch for the old one is in
	// flight: the old response arrives last but must not be applied.
	tokenA := c.Issue()
	tokenB := c.Issue()

	var applied []string
	apply := func(token Token, result string) {
		if c.Current(token) {
			applied = append(applied, result)
		}
	}

	apply(tokenB, "society-B data")
	apply(tokenA, "society-A data")

	assert.Equal(t, []string{"society-B data"}, applied)
}

func TestInvalidate(t *testing.T) {
	c := NewCoordinator()
	token := c.Issue()

	c.Invalidate()

	assert.False(t, c.Current(token))
}

func TestEmptyTokenNeverCurrent(t *testing.T) {
	c := NewCoordinator()
	assert.False(t, c.Current(""))
	c.Invalidate()
	assert.False(t, c.Current(""))
}

func TestConcurrentIssue(t *testing.T) {
	c := NewCoordinator()

	var wg sync.WaitGroup
	tokens := make([]Token, 16)
	for i := range tokens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i] = c.Issue()
		}(i)
	}
	wg.Wait()

	current := 0
	for _, token := range tokens {
		if c.Current(token) {
			current++
		}
	}
	assert.Equal(t, 1, current, "exactly one issued token can be current")
}
