package discord

import (
	"sync"
	"time"
)

// userLimiter deja pasar una acción por usuario cada win.
type userLimiter struct {
	mu   sync.Mutex
	next map[string]time.Time
	win  time.Duration
	now  func() time.Time
}

func newUserLimiter(window time.Duration) *userLimiter {
	return &userLimiter{next: map[string]time.Time{}, win: window, now: time.Now}
}

func (l *userLimiter) Allow(userID string) bool {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	if until, ok := l.next[userID]; ok && now.Before(until) {
		return false
	}
	if len(l.next) > 1024 {
		l.sweep(now)
	}
	l.next[userID] = now.Add(l.win)
	return true
}

// sweep tira las ventanas vencidas; requiere l.mu
func (l *userLimiter) sweep(now time.Time) {
	for id, until := range l.next {
		if !now.Before(until) {
			delete(l.next, id)
		}
	}
}
