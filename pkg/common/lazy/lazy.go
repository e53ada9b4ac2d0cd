// Package lazy provides a memoized value that is computed on first access
// and can be explicitly invalidated to force recomputation.
package lazy

import "sync"

// Value holds a lazily computed T. The compute function runs on the first
// Get and its result is cached until Invalidate is called. A failed
// computation is not cached; the next Get retries.
type Value[T any] struct {
	mu      sync.Mutex
	compute func() (T, error)
	cached  bool
	val     T
}

// New creates a lazy value backed by the given compute function.
func New[T any](compute func() (T, error)) *Value[T] {
	return &Value[T]{compute: compute}
}

// Get returns the cached value, computing it first if needed.
func (v *Value[T]) Get() (T, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.cached {
		val, err := v.compute()
		if err != nil {
			var zero T
			return zero, err
		}
		v.val = val
		v.cached = true
	}
	return v.val, nil
}

// Invalidate discards the cached value so the next Get recomputes it.
func (v *Value[T]) Invalidate() {
	v.mu.Lock()
	defer v.mu.Unlock()

	var zero T
	v.val = zero
	v.cached = false
}
