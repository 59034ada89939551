package registry

import (
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	lru "github.com/hashicorp/golang-lru/v2"

	"keywire/internal/domain"
)

// ErrSessionNotFound is returned by ResetTimeout for an id that was never
// registered, or that was explicitly forgotten.
var ErrSessionNotFound = errors.New("session not found")

// ErrSessionExpired is returned by ResetTimeout for an id the eviction timer
// already removed. It is distinct from ErrSessionNotFound so callers can
// detect a renewal that lost the race against expiry.
var ErrSessionExpired = errors.New("session expired")

// NoTTL registers an entry without an eviction timer.
const NoTTL time.Duration = 0

const defaultEvictedCacheSize = 1024

// Config holds construction options for a Registry.
type Config struct {
	// Clock supplies the eviction timers. Defaults to the wall clock; tests
	// inject a mock.
	Clock clock.Clock

	// EvictedCacheSize bounds how many recently evicted ids are remembered
	// for the expired/not-found distinction. Defaults to 1024.
	EvictedCacheSize int
}

type entry struct {
	key   domain.SessionKey
	ttl   time.Duration
	timer *clock.Timer // nil for entries without expiry
	gen   uint64       // bumped on every re-arm; stale timers check it
}

// Registry is a concurrent map of session id to session key with optional
// per-entry eviction timers. At most one timer is live per id: registering
// or renewing always cancels the previous timer before arming the next, and
// a timer that fires after its cancellation was issued can never evict the
// entry that replaced it.
type Registry struct {
	clk clock.Clock

	mu      sync.RWMutex
	entries map[domain.SessionID]*entry
	evicted *lru.Cache[domain.SessionID, time.Time]
	closed  bool
}

// New returns a ready-to-use Registry. Callers own its lifecycle and must
// Close it before discarding it.
func New(cfg Config) *Registry {
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	size := cfg.EvictedCacheSize
	if size <= 0 {
		size = defaultEvictedCacheSize
	}
	evicted, err := lru.New[domain.SessionID, time.Time](size)
	if err != nil {
		panic(err) // unreachable: size is clamped positive
	}
	return &Registry{
		clk:     clk,
		entries: make(map[domain.SessionID]*entry),
		evicted: evicted,
	}
}

// Register stores key under id, replacing any prior entry and cancelling its
// timer. A ttl greater than zero arms an eviction timer; NoTTL (or any
// non-positive ttl) registers the entry without expiry. After Close,
// Register is a no-op.
func (r *Registry) Register(id domain.SessionID, key domain.SessionKey, ttl time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	if old, ok := r.entries[id]; ok && old.timer != nil {
		old.timer.Stop()
	}
	r.evicted.Remove(id)

	e := &entry{key: key, ttl: ttl}
	r.entries[id] = e
	if ttl > 0 {
		r.arm(id, e)
	}
}

// Get returns the key for id. It does not touch the eviction timer. The
// second return is false both for ids never registered and for ids already
// evicted.
func (r *Registry) Get(id domain.SessionID) (domain.SessionKey, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return domain.SessionKey{}, false
	}
	return e.key, true
}

// Forget removes id and cancels its timer. Forgetting an absent id is a
// silent no-op. A forgotten id reads as never registered afterwards.
func (r *Registry) Forget(id domain.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[id]; ok {
		if e.timer != nil {
			e.timer.Stop()
		}
		delete(r.entries, id)
	}
	r.evicted.Remove(id)
}

// ResetTimeout renews the eviction timer for id. Entries registered without
// expiry do not participate in renewal and are left alone. The error
// distinguishes an id the timer already evicted (ErrSessionExpired) from one
// that was never registered or was forgotten (ErrSessionNotFound).
func (r *Registry) ResetTimeout(id domain.SessionID, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		if r.evicted.Contains(id) {
			return ErrSessionExpired
		}
		return ErrSessionNotFound
	}
	if e.timer == nil {
		return nil
	}
	e.timer.Stop()
	e.timer = nil
	e.ttl = ttl
	if ttl > 0 {
		r.arm(id, e)
	}
	return nil
}

// Len reports the number of live entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Close cancels every pending timer and drops all entries. No eviction fires
// after Close returns; the registry must not be used afterwards.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	for _, e := range r.entries {
		if e.timer != nil {
			e.timer.Stop()
		}
	}
	r.entries = make(map[domain.SessionID]*entry)
	r.evicted.Purge()
}

// arm schedules eviction for e. Caller holds r.mu.
func (r *Registry) arm(id domain.SessionID, e *entry) {
	e.gen++
	gen := e.gen
	e.timer = r.clk.AfterFunc(e.ttl, func() {
		r.expire(id, e, gen)
	})
}

// expire is the timer callback. The entry pointer and generation pin the
// exact schedule this timer was armed for: if the id was re-registered,
// renewed, or forgotten since, the check fails and nothing is evicted.
func (r *Registry) expire(id domain.SessionID, e *entry, gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	cur, ok := r.entries[id]
	if !ok || cur != e || cur.gen != gen {
		return
	}
	delete(r.entries, id)
	r.evicted.Add(id, r.clk.Now())
}
