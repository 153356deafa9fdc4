package service

import (
	"sync"
	"time"
)

const (
	defaultPinMaxAttempts = 5
	defaultPinLockout     = 5 * time.Minute
)

type attemptState struct {
	failures    int
	lockedUntil time.Time
}

// attemptLimiter tracks consecutive failed PIN verifications per owner and
// enforces a cooling-off period after too many of them. State is in-process
// only: a restart clears it, which is acceptable for a brute-force brake.
type attemptLimiter struct {
	mu       sync.Mutex
	attempts map[string]*attemptState

	maxAttempts int
	lockout     time.Duration

	// now is swappable in tests
	now func() time.Time
}

func newAttemptLimiter(maxAttempts int, lockout time.Duration) *attemptLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultPinMaxAttempts
	}
	if lockout <= 0 {
		lockout = defaultPinLockout
	}

	return &attemptLimiter{
		attempts:    make(map[string]*attemptState),
		maxAttempts: maxAttempts,
		lockout:     lockout,
		now:         time.Now,
	}
}

// allowed reports whether the owner may attempt a verification right now.
func (l *attemptLimiter) allowed(ownerID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.attempts[ownerID]
	if !ok {
		return true
	}

	if state.lockedUntil.IsZero() {
		return true
	}

	if l.now().After(state.lockedUntil) {
		delete(l.attempts, ownerID)
		return true
	}

	return false
}

// recordFailure counts a failed verification and starts the lockout once the
// owner reaches the configured maximum.
func (l *attemptLimiter) recordFailure(ownerID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.attempts[ownerID]
	if !ok {
		state = &attemptState{}
		l.attempts[ownerID] = state
	}

	state.failures++
	if state.failures >= l.maxAttempts {
		state.lockedUntil = l.now().Add(l.lockout)
	}
}

// reset clears the owner's failure history after a successful verification
// or a fresh PIN set.
func (l *attemptLimiter) reset(ownerID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, ownerID)
}

// purgeExpired drops entries whose lockout has passed. Entries still counting
// failures below the maximum are kept; only reset or a served lockout clears
// them.
func (l *attemptLimiter) purgeExpired() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for ownerID, state := range l.attempts {
		if !state.lockedUntil.IsZero() && now.After(state.lockedUntil) {
			delete(l.attempts, ownerID)
		}
	}
}
