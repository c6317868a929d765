package auth

import (
	"sync"
	"time"
)

const (
	maxLoginAttempts = 5
	throttleWindow   = 15 * time.Minute
)

type windowCount struct {
	count   int
	resetAt time.Time
}

// loginThrottle counts login attempts per client IP in fixed 15-minute
// windows. The counter only resets when the window expires — a successful
// login inside the window does not clear it. State is in-process: limits are
// per instance and vanish on restart.
type loginThrottle struct {
	mu       sync.Mutex
	attempts map[string]*windowCount
	now      func() time.Time
}

func newLoginThrottle() *loginThrottle {
	return &loginThrottle{
		attempts: make(map[string]*windowCount),
		now:      time.Now,
	}
}

// allow records one attempt for ip and reports whether it is within budget.
func (t *loginThrottle) allow(ip string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	entry, ok := t.attempts[ip]
	if !ok || now.After(entry.resetAt) {
		t.attempts[ip] = &windowCount{count: 1, resetAt: now.Add(throttleWindow)}
		return true
	}

	if entry.count >= maxLoginAttempts {
		return false
	}
	entry.count++
	return true
}
