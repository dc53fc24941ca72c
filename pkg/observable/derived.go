package observable

import "sync"

type mapped[S, T any] struct {
	src Readable[S]
	fn  func(S) T
}

// Map derives a view that re-evaluates fn against the latest value of src.
// The view stores nothing of its own.
func Map[S, T any](src Readable[S], fn func(S) T) Readable[T] {
	return &mapped[S, T]{src: src, fn: fn}
}

func (m *mapped[S, T]) Get() T {
	return m.fn(m.src.Get())
}

func (m *mapped[S, T]) Subscribe() (<-chan T, func()) {
	in, cancelIn := m.src.Subscribe()
	out := make(chan T, 1)

	go func() {
		defer close(out)
		for v := range in {
			offer(out, m.fn(v))
		}
	}()
	return out, cancelIn
}

type combined[A, B, T any] struct {
	a  Readable[A]
	b  Readable[B]
	fn func(A, B) T
}

// Combine joins two views. Whenever either side publishes, fn is evaluated
// against the current snapshot of both.
func Combine[A, B, T any](a Readable[A], b Readable[B], fn func(A, B) T) Readable[T] {
	return &combined[A, B, T]{a: a, b: b, fn: fn}
}

func (c *combined[A, B, T]) Get() T {
	return c.fn(c.a.Get(), c.b.Get())
}

func (c *combined[A, B, T]) Subscribe() (<-chan T, func()) {
	inA, cancelA := c.a.Subscribe()
	inB, cancelB := c.b.Subscribe()
	out := make(chan T, 1)

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			cancelA()
			cancelB()
		})
	}

	go func() {
		defer close(out)
		for {
			select {
			case _, ok := <-inA:
				if !ok {
					cancel()
					return
				}
			case _, ok := <-inB:
				if !ok {
					cancel()
					return
				}
			}
			offer(out, c.Get())
		}
	}()
	return out, cancel
}
