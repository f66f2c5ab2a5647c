package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestMutexBasicOperations(t *testing.T) {
	m := NewMutex(10)

	assert.Equal(t, 10, m.Get())

	m.Set(20)
	assert.Equal(t, 20, m.Get())

	assert.Equal(t, 20, m.Replace(30), "Replace returns the previous value")
	assert.Equal(t, 30, m.Get())

	m.Update(func(x int) int { return x + 12 })
	assert.Equal(t, 42, m.Get())

	m.Do(func(x *int) { *x *= 2 })
	assert.Equal(t, 84, m.Get())
}

func TestMutexTryOpsUnderContention(t *testing.T) {
	m := NewMutex(1)
	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		m.Do(func(*int) {
			close(entered)
			<-release
		})
	}()

	<-entered
	assert.True(t, m.TryGet().IsNone(), "TryGet must return None while the lock is held")
	assert.False(t, m.TryUpdate(func(x int) int { return x + 1 }), "TryUpdate must refuse while the lock is held")

	close(release)
	<-done

	assert.Equal(t, 1, m.TryGet().Unwrap(), "TryGet succeeds on a free lock")
	assert.True(t, m.TryUpdate(func(x int) int { return x + 1 }))
	assert.Equal(t, 2, m.Get())
}

func TestMutexConcurrentUpdates(t *testing.T) {
	const goroutines = 20
	const increments = 100

	m := NewMutex(0)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j++ {
				m.Update(func(x int) int { return x + 1 })
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines*increments, m.Get())
}

// TestMutexSequentialModel verifies the guarded value tracks a plain variable
// under any single-threaded operation sequence.
func TestMutexSequentialModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		model := rapid.Int().Draw(t, "initial")
		m := NewMutex(model)

		numOps := rapid.IntRange(1, 200).Draw(t, "numOps")
		for i := 0; i < numOps; i++ {
			switch rapid.IntRange(0, 3).Draw(t, "op") {
			case 0:
				if got := m.Get(); got != model {
					t.Fatalf("Get: expected %d, got %d", model, got)
				}
			case 1:
				v := rapid.Int().Draw(t, "set")
				m.Set(v)
				model = v
			case 2:
				v := rapid.Int().Draw(t, "replace")
				if old := m.Replace(v); old != model {
					t.Fatalf("Replace: expected previous %d, got %d", model, old)
				}
				model = v
			case 3:
				delta := rapid.IntRange(-1000, 1000).Draw(t, "delta")
				m.Update(func(x int) int { return x + delta })
				model += delta
			}
		}

		if got := m.Get(); got != model {
			t.Fatalf("final value: expected %d, got %d", model, got)
		}
	})
}
