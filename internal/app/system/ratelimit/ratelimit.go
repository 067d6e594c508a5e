// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dalemusser/folio/internal/app/system/apiresp"
	"github.com/dalemusser/folio/internal/app/system/apperror"
)

// Limiter is a fixed-window request counter keyed by caller.
// It is safe for concurrent use.
type Limiter struct {
	mu       sync.Mutex
	windows  map[string]*window
	limit    int           // max requests per window
	duration time.Duration // window duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

type window struct {
	count     int
	expiresAt time.Time
}

// New creates a limiter allowing limit requests per duration per key.
// A background goroutine drops expired windows until Stop is called.
func New(limit int, duration time.Duration) *Limiter {
	l := &Limiter{
		windows:  make(map[string]*window),
		limit:    limit,
		duration: duration,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
	go l.cleanupLoop(duration * 2)
	return l
}

// Allow counts a request for key and reports whether it is within the limit.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, exists := l.windows[key]

	if !exists || now.After(w.expiresAt) {
		l.windows[key] = &window{
			count:     1,
			expiresAt: now.Add(l.duration),
		}
		return true
	}

	if w.count >= l.limit {
		return false
	}

	w.count++
	return true
}

// Remaining returns how many requests are left for key in the current window.
func (l *Limiter) Remaining(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, exists := l.windows[key]
	if !exists || l.now().After(w.expiresAt) {
		return l.limit
	}

	remaining := l.limit - w.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Reset clears the window for key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, key)
}

// Stop ends the cleanup goroutine. Allow keeps working afterwards.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}

func (l *Limiter) cleanupLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopCh:
			return
		case <-ticker.C:
			l.mu.Lock()
			now := l.now()
			for key, w := range l.windows {
				if now.After(w.expiresAt) {
					delete(l.windows, key)
				}
			}
			l.mu.Unlock()
		}
	}
}

// Middleware rejects callers over the per-IP limit with a JSON 429.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(ClientIP(r)) {
			w.Header().Set("Retry-After", retryAfter(l.duration))
			apiresp.Error(w, nil, apperror.TooManyRequests("Too many requests"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func retryAfter(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// ClientIP extracts the client IP, preferring X-Forwarded-For and X-Real-IP
// (set by the reverse proxy) over RemoteAddr.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// LoginLimiter tracks login attempts per IP and per email.
type LoginLimiter struct {
	ipLimiter    *Limiter
	emailLimiter *Limiter
}

// NewLoginLimiter allows 10 attempts per IP per minute and 5 per email per 5 minutes.
func NewLoginLimiter() *LoginLimiter {
	return NewLoginLimiterWithConfig(10, time.Minute, 5, 5*time.Minute)
}

// NewLoginLimiterWithConfig creates a login limiter with custom limits.
func NewLoginLimiterWithConfig(ipLimit int, ipDuration time.Duration, emailLimit int, emailDuration time.Duration) *LoginLimiter {
	return &LoginLimiter{
		ipLimiter:    New(ipLimit, ipDuration),
		emailLimiter: New(emailLimit, emailDuration),
	}
}

// Check reports whether a login attempt may proceed, and if not, why.
func (ll *LoginLimiter) Check(r *http.Request, email string) (bool, string) {
	if !ll.ipLimiter.Allow(ClientIP(r)) {
		return false, "Too many login attempts. Please wait a minute before trying again."
	}

	if key := emailKey(email); key != "" {
		if !ll.emailLimiter.Allow(key) {
			return false, "Too many login attempts for this account. Please wait a few minutes."
		}
	}

	return true, ""
}

// ResetEmail clears the email window after a successful login.
func (ll *LoginLimiter) ResetEmail(email string) {
	if key := emailKey(email); key != "" {
		ll.emailLimiter.Reset(key)
	}
}

// Stop ends both cleanup goroutines.
func (ll *LoginLimiter) Stop() {
	ll.ipLimiter.Stop()
	ll.emailLimiter.Stop()
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
