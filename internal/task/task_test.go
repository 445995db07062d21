package task

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInlineDeliversValue(t *testing.T) {
	var got Result[string]
	Run(Inline{}, func() (string, error) {
		return "done", nil
	}, func(res Result[string]) {
		got = res
	})

	require.True(t, got.OK())
	assert.Equal(t, "done", got.Value)
}

func TestRunInlineDeliversError(t *testing.T) {
	boom := errors.New("boom")

	var got Result[int]
	Run(Inline{}, func() (int, error) {
		return 0, boom
	}, func(res Result[int]) {
		got = res
	})

	assert.False(t, got.OK())
	assert.ErrorIs(t, got.Err, boom)
}

// queue posts continuations to a slice so the test controls when they run.
type queue struct {
	mu      sync.Mutex
	wg      sync.WaitGroup
	pending []func()
}

func (q *queue) Go(fn func()) {
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		fn()
	}()
}

func (q *queue) Post(fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, fn)
}

func TestRunPostsContinuation(t *testing.T) {
	q := &queue{}
	called := false

	Run(q, func() (int, error) { return 42, nil }, func(res Result[int]) {
		called = true
		assert.Equal(t, 42, res.Value)
	})

	q.wg.Wait()
	assert.False(t, called, "continuation must wait for the UI goroutine")

	require.Len(t, q.pending, 1)
	q.pending[0]()
	assert.True(t, called)
}
