// Package lock provides per-key advisory mutual exclusion.
package lock

import "sync"

// Keyed is a table of held keys guarding one in-flight money-moving
// operation per account. It is process-local; coordinating across
// service instances is the wallet's job, not ours.
type Keyed struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewKeyed creates an empty lock table.
func NewKeyed() *Keyed {
	return &Keyed{held: make(map[string]struct{})}
}

// TryAcquire marks key as held. It returns false without blocking if the
// key is already held.
func (k *Keyed) TryAcquire(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	if _, busy := k.held[key]; busy {
		return false
	}
	k.held[key] = struct{}{}
	return true
}

// Release clears key unconditionally. Releasing a key that is not held is
// a no-op.
func (k *Keyed) Release(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.held, key)
}
