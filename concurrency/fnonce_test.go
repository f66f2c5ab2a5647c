package concurrency

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFnOnceCall(t *testing.T) {
	calls := 0
	f := NewFnOnce(func() int {
		calls++
		return 42
	})

	assert.False(t, f.IsUsed())
	assert.Equal(t, 42, f.Call())
	assert.True(t, f.IsUsed())
	assert.Equal(t, 1, calls)

	assert.PanicsWithValue(t, "called Call on a used FnOnce", func() { f.Call() })
}

func TestFnOnceTryCall(t *testing.T) {
	f := NewFnOnce(func() string { return "once" })

	assert.Equal(t, "once", f.TryCall().Unwrap())
	assert.True(t, f.TryCall().IsNone(), "the second TryCall must return None")
	assert.True(t, f.IsUsed())
}

func TestFnOnceDiscard(t *testing.T) {
	called := false
	f := NewFnOnce(func() int {
		called = true
		return 1
	})

	f.Discard()
	assert.True(t, f.IsUsed())
	assert.False(t, called, "Discard must not invoke the function")
	assert.True(t, f.TryCall().IsNone())
}

func TestFnOnceConcurrentTryCall(t *testing.T) {
	var calls atomic.Int32
	f := NewFnOnce(func() int {
		calls.Add(1)
		return 42
	})

	const goroutines = 50
	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if f.TryCall().IsSome() {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load(), "exactly one caller wins")
	assert.Equal(t, int32(1), calls.Load(), "the function runs once")
}
