package restapi

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitMiddleware applies a token-bucket limit per API key (falling back
// to the client IP when no key is present). Stale limiters are evicted by a
// background sweeper until Stop is called.
type RateLimitMiddleware struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	stopOnce sync.Once
	stopCh   chan struct{}
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const limiterIdleEviction = 3 * time.Minute

// NewRateLimitMiddleware allows requestsPerWindow requests per key per window.
func NewRateLimitMiddleware(requestsPerWindow int, window time.Duration) *RateLimitMiddleware {
	if requestsPerWindow <= 0 {
		requestsPerWindow = 1
	}
	m := &RateLimitMiddleware{
		limit:    rate.Every(window / time.Duration(requestsPerWindow)),
		burst:    requestsPerWindow,
		limiters: make(map[string]*clientLimiter),
		stopCh:   make(chan struct{}),
	}
	go m.sweep()
	return m
}

func (m *RateLimitMiddleware) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-limiterIdleEviction)
			m.mu.Lock()
			for key, cl := range m.limiters {
				if cl.lastSeen.Before(cutoff) {
					delete(m.limiters, key)
				}
			}
			m.mu.Unlock()
		}
	}
}

func (m *RateLimitMiddleware) limiterFor(key string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()
	cl, ok := m.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.limiters[key] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter
}

// Handler returns the middleware wrapper.
func (m *RateLimitMiddleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.URL.Query().Get("key")
			if key == "" {
				host, _, err := net.SplitHostPort(r.RemoteAddr)
				if err != nil {
					host = r.RemoteAddr
				}
				key = host
			}

			if !m.limiterFor(key).Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Stop terminates the background sweeper. Idempotent.
func (m *RateLimitMiddleware) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopCh)
	})
}
