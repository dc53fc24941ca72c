// Package observable holds goroutine-safe state cells that UI layers can read
// and subscribe to. Every cell is last-write-wins: a subscriber that falls
// behind only ever sees the most recent value.
package observable

import "sync"

// Readable is the read-only face of a cell or of a view derived from one.
type Readable[T any] interface {
	Get() T
	// Subscribe returns a channel that receives every published value
	// (coalesced to the latest one) and a cancel func that closes it.
	Subscribe() (<-chan T, func())
}

type Value[T any] struct {
	mu     sync.RWMutex
	value  T
	subs   map[int]chan T
	nextID int
}

func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		value: initial,
		subs:  make(map[int]chan T),
	}
}

func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.value = value
	v.publishLocked(value)
}

// Update applies fn to the current value and publishes the result atomically
// with respect to other writers of the same cell.
func (v *Value[T]) Update(fn func(current T) T) T {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.value = fn(v.value)
	v.publishLocked(v.value)
	return v.value
}

func (v *Value[T]) Subscribe() (<-chan T, func()) {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextID
	v.nextID++
	ch := make(chan T, 1)
	v.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			delete(v.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (v *Value[T]) publishLocked(value T) {
	for _, ch := range v.subs {
		offer(ch, value)
	}
}

// offer delivers value without blocking, replacing a stale pending value.
func offer[T any](ch chan T, value T) {
	select {
	case ch <- value:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- value:
	default:
	}
}
