package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Limiter counts hits per key in fixed windows. Allow reports whether the
// hit is within limit and how long until the window resets.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error)
}

type rejectionRecorder interface {
	RateLimitRejected(class string)
}

// RateLimitPolicy sets separate budgets for reads and writes.
type RateLimitPolicy struct {
	Reads  int
	Writes int
	Window time.Duration
}

// RateLimit returns middleware that limits each client address per path.
// Limiter errors let the request through.
func RateLimit(limiter Limiter, policy RateLimitPolicy, recorder rejectionRecorder, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			class, limit := "write", policy.Writes
			if isRead(r.Method) {
				class, limit = "read", policy.Reads
			}
			key := class + ":" + ClientIP(r) + ":" + r.URL.Path

			ok, retryAfter, err := limiter.Allow(r.Context(), key, limit, policy.Window)
			if err != nil {
				logger.WarnContext(r.Context(), "rate limiter unavailable",
					slog.String("error", err.Error()),
				)
				next.ServeHTTP(w, r)
				return
			}
			if !ok {
				if recorder != nil {
					recorder.RateLimitRejected(class)
				}
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded", "")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isRead(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// MemoryLimiter is a process-local fixed-window Limiter. Counts are not
// shared between instances.
type MemoryLimiter struct {
	windows sync.Map // map[string]*window
	stop    chan struct{}
	now     func() time.Time
}

type window struct {
	count   int
	resetAt time.Time
	mu      sync.Mutex
}

// NewMemoryLimiter creates a limiter with background cleanup of expired
// windows. Call Stop() on shutdown.
func NewMemoryLimiter(cleanupInterval time.Duration) *MemoryLimiter {
	l := &MemoryLimiter{stop: make(chan struct{}), now: time.Now}
	go l.cleanup(cleanupInterval)
	return l
}

// Stop terminates the background cleanup goroutine.
func (l *MemoryLimiter) Stop() {
	close(l.stop)
}

// Allow implements Limiter.
func (l *MemoryLimiter) Allow(_ context.Context, key string, limit int, d time.Duration) (bool, time.Duration, error) {
	now := l.now()
	val, _ := l.windows.LoadOrStore(key, &window{resetAt: now.Add(d)})
	win := val.(*window)

	win.mu.Lock()
	defer win.mu.Unlock()

	if !now.Before(win.resetAt) {
		win.count = 0
		win.resetAt = now.Add(d)
	}
	win.count++
	return win.count <= limit, win.resetAt.Sub(now), nil
}

func (l *MemoryLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			now := l.now()
			l.windows.Range(func(key, value any) bool {
				win := value.(*window)
				win.mu.Lock()
				expired := !now.Before(win.resetAt)
				win.mu.Unlock()
				if expired {
					l.windows.Delete(key)
				}
				return true
			})
		}
	}
}
