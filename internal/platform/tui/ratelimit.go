package tui

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"golang.org/x/time/rate"
)

// RateLimitConfig limits how often one remote host may open a session.
type RateLimitConfig struct {
	Enabled  bool
	Interval time.Duration // One new session per Interval once the burst is spent
	Burst    int
}

// DefaultRateLimitConfig allows a burst of 3 sessions, then one every 10 seconds.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled:  true,
		Interval: 10 * time.Second,
		Burst:    3,
	}
}

// RateLimiter keeps a token bucket per remote host.
type RateLimiter struct {
	config  RateLimitConfig
	clients map[string]*rate.Limiter
	mu      sync.Mutex
}

// NewRateLimiter creates a rate limiter with the given configuration.
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		config:  config,
		clients: make(map[string]*rate.Limiter),
	}
}

func (rl *RateLimiter) getLimiter(host string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.clients[host]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(rl.config.Interval), rl.config.Burst)
		rl.clients[host] = limiter
	}
	return limiter
}

// Allow reports whether host may open a session now and spends a token if so.
func (rl *RateLimiter) Allow(host string) bool {
	if !rl.config.Enabled {
		return true
	}
	return rl.getLimiter(host).Allow()
}

// Len returns the number of tracked hosts.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// Cleanup forgets hosts whose bucket has refilled completely.
func (rl *RateLimiter) Cleanup(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for host, limiter := range rl.clients {
		if limiter.TokensAt(now) >= float64(rl.config.Burst) {
			delete(rl.clients, host)
		}
	}
}

// Run calls Cleanup every minute until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			rl.Cleanup(now)
		}
	}
}

// Middleware rejects sessions from hosts over their limit.
func (rl *RateLimiter) Middleware(logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			host := remoteHost(sess.RemoteAddr())
			if !rl.Allow(host) {
				logger.Warn("rate limit exceeded",
					"user", sess.User(),
					"remote", host,
					"burst", rl.config.Burst,
					"interval", rl.config.Interval,
				)
				wish.Fatalln(sess, "Too many sessions, try again later.")
				return
			}
			next(sess)
		}
	}
}

// remoteHost strips the port from a remote address ("192.168.1.1:12345" -> "192.168.1.1").
func remoteHost(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}
