package ratelimiter

import (
	"sync"
	"time"
)

// Limiter implements a token bucket rate limiter for one identity.
type Limiter struct {
	tokens     float64
	capacity   float64
	rate       float64
	lastRefill time.Time
	mu         sync.Mutex
	timer      *time.Timer
	identity   string
	parent     *PerIdentityLimiter
}

// PerIdentityLimiter manages one token bucket per identity (user id or
// client IP). Idle buckets expire after expirationTime to bound memory.
type PerIdentityLimiter struct {
	limiters       map[string]*Limiter
	mu             sync.RWMutex
	rate           float64
	capacity       float64
	expirationTime time.Duration
}

func New(rate float64, capacity float64, expirationTime time.Duration) *PerIdentityLimiter {
	return &PerIdentityLimiter{
		limiters:       make(map[string]*Limiter),
		rate:           rate,
		capacity:       capacity,
		expirationTime: expirationTime,
	}
}

func (p *PerIdentityLimiter) cleanup(identity string) {
	p.mu.Lock()
	delete(p.limiters, identity)
	p.mu.Unlock()
}

func (l *Limiter) resetTimer() {
	if l.timer != nil {
		l.timer.Stop()
	}

	l.timer = time.AfterFunc(l.parent.expirationTime, func() {
		l.parent.cleanup(l.identity)
	})
}

func (p *PerIdentityLimiter) getLimiter(identity string) *Limiter {
	p.mu.RLock()
	limiter, exists := p.limiters[identity]
	p.mu.RUnlock()

	if exists {
		limiter.resetTimer()
		return limiter
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Double-check after acquiring write lock
	limiter, exists = p.limiters[identity]
	if exists {
		limiter.resetTimer()
		return limiter
	}

	limiter = &Limiter{
		tokens:     p.capacity,
		capacity:   p.capacity,
		rate:       p.rate,
		lastRefill: time.Now(),
		identity:   identity,
		parent:     p,
	}
	p.limiters[identity] = limiter
	limiter.resetTimer()

	return limiter
}

func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(l.lastRefill).Seconds()

	l.tokens += elapsed * l.rate
	if l.tokens > l.capacity {
		l.tokens = l.capacity
	}

	l.lastRefill = now

	if l.tokens >= 1 {
		l.tokens--
		return true
	}

	return false
}

// Allow checks if a request should be allowed for a given identity.
func (p *PerIdentityLimiter) Allow(identity string) bool {
	return p.getLimiter(identity).Allow()
}

// Stop cleans up all expiration timers.
func (p *PerIdentityLimiter) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, limiter := range p.limiters {
		if limiter.timer != nil {
			limiter.timer.Stop()
		}
	}
}

// Common presets.
func OnceInSecond() *PerIdentityLimiter { return New(1, 1, 1*time.Hour) }
func Rps10() *PerIdentityLimiter       { return New(10, 10, 1*time.Hour) }
func Rps100() *PerIdentityLimiter      { return New(100, 100, 1*time.Hour) }
