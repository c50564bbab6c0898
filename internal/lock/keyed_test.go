package lock_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/iho/tipbot/internal/lock"
)

func TestKeyedAcquireRelease(t *testing.T) {
	k := lock.NewKeyed()

	if !k.TryAcquire("acc-1") {
		t.Fatal("expected first acquire to succeed")
	}

	if k.TryAcquire("acc-1") {
		t.Fatal("expected second acquire on held key to fail")
	}

	// Other keys are independent.
	if !k.TryAcquire("acc-2") {
		t.Fatal("expected acquire on a different key to succeed")
	}

	k.Release("acc-1")

	if !k.TryAcquire("acc-1") {
		t.Fatal("expected acquire after release to succeed")
	}
}

func TestKeyedReleaseUnheldIsNoop(t *testing.T) {
	k := lock.NewKeyed()

	k.Release("acc-1")

	if !k.TryAcquire("acc-1") {
		t.Fatal("expected acquire to succeed after releasing an unheld key")
	}
}

func TestKeyedConcurrentSingleWinner(t *testing.T) {
	k := lock.NewKeyed()

	const goroutines = 64

	var (
		wg   sync.WaitGroup
		wins atomic.Int64
	)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if k.TryAcquire("acc-1") {
				wins.Add(1)
			}
		}()
	}

	wg.Wait()

	if wins.Load() != 1 {
		t.Fatalf("expected exactly one winner, got %d", wins.Load())
	}
}
