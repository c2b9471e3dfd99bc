package tapered

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBacklogPushDedupes(t *testing.T) {
	b := NewBacklog()
	b.Push("A")
	b.Push("B")
	b.Push("A")
	assert.Equal(t, []string{"A", "B"}, b.Items())
	assert.Equal(t, 2, b.Len())
}

func TestBacklogConverges(t *testing.T) {
	// A waits on B, B waits on C, C is ready.
	ready := map[string]bool{"C": true}
	deps := map[string]string{"A": "B", "B": "C"}

	b := NewBacklog()
	for _, n := range []string{"A", "B", "C"} {
		b.Push(n)
	}

	try := func(name string) bool {
		if ready[name] {
			return true
		}
		if ready[deps[name]] {
			ready[name] = true
			return true
		}
		return false
	}

	passes := 0
	for b.Len() > 0 {
		require.NoError(t, b.Pass(try))
		passes++
		require.LessOrEqual(t, passes, 3)
	}
	assert.True(t, ready["A"])
}

func TestBacklogNoProgress(t *testing.T) {
	b := NewBacklog()
	b.Push("A")
	b.Push("B")

	err := b.Pass(func(string) bool { return false })
	assert.ErrorIs(t, err, ErrNoProgress)
	assert.Equal(t, []string{"A", "B"}, b.Items())

	assert.Equal(t, []string{"A", "B"}, b.Drain())
	assert.Zero(t, b.Len())
}

func TestBacklogPushDuringPassCountsAsProgress(t *testing.T) {
	b := NewBacklog()
	b.Push("A")

	err := b.Pass(func(name string) bool {
		b.Push("B")
		return false
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, b.Items())

	assert.ErrorIs(t, b.Pass(func(string) bool { return false }), ErrNoProgress)
}

func TestBacklogEmptyPass(t *testing.T) {
	assert.NoError(t, NewBacklog().Pass(func(string) bool { return false }))
}
