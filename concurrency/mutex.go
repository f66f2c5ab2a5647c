package concurrency

import (
	"sync"

	rusty "github.com/JiangJie/happy-rusty-sub000"
)

// Mutex guards a value of type T behind a lock; all access goes through its
// methods. The zero value guards T's zero value.
type Mutex[T any] struct {
	mu    sync.Mutex
	value T
}

// NewMutex returns a Mutex guarding the given value.
func NewMutex[T any](value T) *Mutex[T] {
	return &Mutex[T]{value: value}
}

// Get returns a copy of the guarded value.
func (m *Mutex[T]) Get() T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value
}

// Set replaces the guarded value.
func (m *Mutex[T]) Set(value T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = value
}

// Replace stores value and returns the previous one.
func (m *Mutex[T]) Replace(value T) T {
	m.mu.Lock()
	defer m.mu.Unlock()
	old := m.value
	m.value = value
	return old
}

// Update applies fn to the guarded value under the lock.
func (m *Mutex[T]) Update(fn func(T) T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = fn(m.value)
}

// Do runs fn with the guarded value under the lock. fn may mutate through the
// pointer but must not retain it.
func (m *Mutex[T]) Do(fn func(*T)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.value)
}

// TryGet returns a copy of the guarded value, or None when the lock is
// currently held.
func (m *Mutex[T]) TryGet() rusty.Option[T] {
	if !m.mu.TryLock() {
		return rusty.None[T]()
	}
	defer m.mu.Unlock()
	return rusty.Some(m.value)
}

// TryUpdate applies fn under the lock if it can be taken without blocking,
// reporting whether it ran.
func (m *Mutex[T]) TryUpdate(fn func(T) T) bool {
	if !m.mu.TryLock() {
		return false
	}
	defer m.mu.Unlock()
	m.value = fn(m.value)
	return true
}
