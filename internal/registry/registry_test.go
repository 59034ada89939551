package registry_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"

	"keywire/internal/domain"
	"keywire/internal/registry"
)

func newMocked(t *testing.T) (*registry.Registry, *clock.Mock) {
	t.Helper()
	mock := clock.NewMock()
	r := registry.New(registry.Config{Clock: mock})
	t.Cleanup(r.Close)
	return r, mock
}

func TestRegisterGet(t *testing.T) {
	r, _ := newMocked(t)
	key := domain.SessionKey{1, 2, 3}
	r.Register("s1", key, registry.NoTTL)

	// Get is idempotent: repeated lookups without mutation agree.
	for i := 0; i < 3; i++ {
		got, ok := r.Get("s1")
		if !ok || got != key {
			t.Fatalf("lookup %d: got %v ok=%v", i, got, ok)
		}
	}
	if _, ok := r.Get("missing"); ok {
		t.Fatal("unexpected hit for unknown id")
	}
}

func TestTimerEvicts(t *testing.T) {
	r, mock := newMocked(t)
	r.Register("s1", domain.SessionKey{1}, time.Second)

	mock.Add(999 * time.Millisecond)
	if _, ok := r.Get("s1"); !ok {
		t.Fatal("entry gone before its TTL elapsed")
	}
	mock.Add(2 * time.Millisecond)
	if _, ok := r.Get("s1"); ok {
		t.Fatal("entry survived its TTL")
	}
	if err := r.ResetTimeout("s1", time.Second); !errors.Is(err, registry.ErrSessionExpired) {
		t.Fatalf("want ErrSessionExpired after eviction, got %v", err)
	}
}

func TestReRegisterCancelsOldTimer(t *testing.T) {
	r, mock := newMocked(t)
	k1 := domain.SessionKey{1}
	k2 := domain.SessionKey{2}

	r.Register("s1", k1, 1*time.Second)
	r.Register("s1", k2, 5*time.Second)

	// The first timer's deadline passes; only the second may count.
	mock.Add(1100 * time.Millisecond)
	got, ok := r.Get("s1")
	if !ok || got != k2 {
		t.Fatalf("after first deadline: got %v ok=%v, want k2", got, ok)
	}
	mock.Add(4 * time.Second)
	if _, ok := r.Get("s1"); ok {
		t.Fatal("entry survived the second timer")
	}
}

func TestForgetCancelsEviction(t *testing.T) {
	r, mock := newMocked(t)
	r.Register("s1", domain.SessionKey{1}, 500*time.Millisecond)
	r.Forget("s1")

	if _, ok := r.Get("s1"); ok {
		t.Fatal("entry present after Forget")
	}
	mock.Add(time.Second)
	// A forgotten id reads as never registered, not as expired.
	if err := r.ResetTimeout("s1", time.Second); !errors.Is(err, registry.ErrSessionNotFound) {
		t.Fatalf("want ErrSessionNotFound after Forget, got %v", err)
	}

	// Forget of an absent id stays a no-op.
	r.Forget("s1")
}

func TestResetTimeoutRenews(t *testing.T) {
	r, mock := newMocked(t)
	r.Register("s1", domain.SessionKey{1}, time.Second)

	mock.Add(900 * time.Millisecond)
	if err := r.ResetTimeout("s1", time.Second); err != nil {
		t.Fatalf("renew: %v", err)
	}
	mock.Add(900 * time.Millisecond)
	if _, ok := r.Get("s1"); !ok {
		t.Fatal("entry evicted despite renewal")
	}
	mock.Add(200 * time.Millisecond)
	if _, ok := r.Get("s1"); ok {
		t.Fatal("entry survived the renewed TTL")
	}
}

func TestResetTimeout_InfiniteEntryLeftAlone(t *testing.T) {
	r, mock := newMocked(t)
	r.Register("s1", domain.SessionKey{1}, registry.NoTTL)

	if err := r.ResetTimeout("s1", time.Second); err != nil {
		t.Fatalf("reset on infinite entry: %v", err)
	}
	// No timer was armed by the reset.
	mock.Add(time.Hour)
	if _, ok := r.Get("s1"); !ok {
		t.Fatal("infinite entry was evicted")
	}
}

func TestResetTimeout_NeverRegistered(t *testing.T) {
	r, _ := newMocked(t)
	if err := r.ResetTimeout("nope", time.Second); !errors.Is(err, registry.ErrSessionNotFound) {
		t.Fatalf("want ErrSessionNotFound, got %v", err)
	}
}

func TestRegisterAfterEviction_FreshState(t *testing.T) {
	r, mock := newMocked(t)
	r.Register("s1", domain.SessionKey{1}, time.Second)
	mock.Add(2 * time.Second)

	// Re-registering clears the eviction marker.
	r.Register("s1", domain.SessionKey{2}, registry.NoTTL)
	if err := r.ResetTimeout("s1", time.Second); err != nil {
		t.Fatalf("reset after re-register: %v", err)
	}
	r.Forget("s1")
	if err := r.ResetTimeout("s1", time.Second); !errors.Is(err, registry.ErrSessionNotFound) {
		t.Fatalf("want ErrSessionNotFound, got %v", err)
	}
}

func TestClose_StopsPendingEvictions(t *testing.T) {
	mock := clock.NewMock()
	r := registry.New(registry.Config{Clock: mock})
	r.Register("s1", domain.SessionKey{1}, 100*time.Millisecond)
	r.Close()

	// Firing the old deadline after Close must not touch anything.
	mock.Add(time.Second)
	if _, ok := r.Get("s1"); ok {
		t.Fatal("entry present after Close")
	}
	if got := r.Len(); got != 0 {
		t.Fatalf("Len after Close = %d", got)
	}
	r.Close() // idempotent
}

func TestLen(t *testing.T) {
	r, mock := newMocked(t)
	r.Register("a", domain.SessionKey{1}, registry.NoTTL)
	r.Register("b", domain.SessionKey{2}, 50*time.Millisecond)
	if got := r.Len(); got != 2 {
		t.Fatalf("Len = %d, want 2", got)
	}
	mock.Add(100 * time.Millisecond)
	if got := r.Len(); got != 1 {
		t.Fatalf("Len after eviction = %d, want 1", got)
	}
}

func TestConcurrentMutation(t *testing.T) {
	r := registry.New(registry.Config{})
	defer r.Close()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			id := domain.SessionID(fmt.Sprintf("sess-%d", g%4))
			for i := 0; i < 200; i++ {
				r.Register(id, domain.SessionKey{byte(g)}, time.Millisecond)
				r.Get(id)
				_ = r.ResetTimeout(id, time.Millisecond)
				if i%10 == 0 {
					r.Forget(id)
				}
			}
		}(g)
	}
	wg.Wait()
}
