package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/bibbank/ibankit/pkg/auth"
)

// RateLimiter implements a simple token bucket rate limiter.
type RateLimiter struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// NewRateLimiter creates a rate limiter that allows rps requests per second
// with bursts of up to burst requests.
func NewRateLimiter(rps, burst int) *RateLimiter {
	if burst <= 0 {
		burst = rps
	}
	return &RateLimiter{
		tokens:     float64(burst),
		maxTokens:  float64(burst),
		refillRate: float64(rps),
		lastRefill: time.Now(),
	}
}

// Allow reports whether a single request is permitted.
// It consumes one token if available.
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(rl.lastRefill).Seconds()
	rl.tokens += elapsed * rl.refillRate
	if rl.tokens > rl.maxTokens {
		rl.tokens = rl.maxTokens
	}
	rl.lastRefill = now

	if rl.tokens >= 1 {
		rl.tokens--
		return true
	}
	return false
}

// RetryAfter is how long until one token is available again.
func (rl *RateLimiter) RetryAfter() time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	missing := 1 - rl.tokens
	if missing <= 0 {
		return 0
	}
	return time.Duration(missing / rl.refillRate * float64(time.Second))
}

func (rl *RateLimiter) idleSince() time.Time {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.lastRefill
}

// PerClientRateLimiter keeps one token bucket per client key.
type PerClientRateLimiter struct {
	mu      sync.Mutex
	rps     int
	burst   int
	clients map[string]*RateLimiter
}

// NewPerClientRateLimiter creates a limiter giving each client rps requests
// per second with bursts of up to burst requests.
func NewPerClientRateLimiter(rps, burst int) *PerClientRateLimiter {
	return &PerClientRateLimiter{
		rps:     rps,
		burst:   burst,
		clients: make(map[string]*RateLimiter),
	}
}

func (p *PerClientRateLimiter) limiter(key string) *RateLimiter {
	p.mu.Lock()
	defer p.mu.Unlock()
	rl, ok := p.clients[key]
	if !ok {
		rl = NewRateLimiter(p.rps, p.burst)
		p.clients[key] = rl
	}
	return rl
}

// Allow reports whether the client identified by key may make a request.
func (p *PerClientRateLimiter) Allow(key string) bool {
	return p.limiter(key).Allow()
}

// Len returns the number of tracked clients.
func (p *PerClientRateLimiter) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.clients)
}

// Evict drops buckets that have not been used for idle. A dropped bucket is
// full again when the client returns, so nothing is lost.
func (p *PerClientRateLimiter) Evict(idle time.Duration) int {
	cutoff := time.Now().Add(-idle)
	p.mu.Lock()
	defer p.mu.Unlock()
	evicted := 0
	for key, rl := range p.clients {
		if rl.idleSince().Before(cutoff) {
			delete(p.clients, key)
			evicted++
		}
	}
	return evicted
}

// clientKey prefers the authenticated client ID and falls back to the
// remote IP for anonymous routes.
func clientKey(r *http.Request) string {
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
		return "client:" + claims.ClientID.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

// PerClientRateLimitMiddleware rejects requests over the caller's budget
// with 429 and a Retry-After header.
func PerClientRateLimitMiddleware(limiter *PerClientRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rl := limiter.limiter(clientKey(r))
			if !rl.Allow() {
				secs := int(rl.RetryAfter().Seconds()) + 1
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
