package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	authRoutePrefix    = "/api/v1/auth"
	defaultGeneralRPM  = 100
	defaultAuthRPM     = 10
	visitorSweepAt     = 1000
	visitorIdleTimeout = 10 * time.Minute
)

type visitor struct {
	general  *rate.Limiter
	auth     *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware keeps one token bucket pair per client ip. The auth routes get the
// tighter bucket since every call there hits the identity provider or rotates tokens.
type RateLimitMiddleware struct {
	generalRPM int
	authRPM    int

	mu       sync.Mutex
	visitors map[string]*visitor
}

// NewRateLimitMiddleware treats a negative general limit as unlimited. Zero means the default.
func NewRateLimitMiddleware(generalRPM int, authRPM int) *RateLimitMiddleware {
	if generalRPM == 0 {
		generalRPM = defaultGeneralRPM
	}
	if authRPM <= 0 {
		authRPM = defaultAuthRPM
	}

	return &RateLimitMiddleware{
		generalRPM: generalRPM,
		authRPM:    authRPM,
		visitors:   map[string]*visitor{},
	}
}

func (m *RateLimitMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		v := m.visitorFor(ClientIP(r))

		bucket := v.general
		if strings.HasPrefix(strings.ToLower(r.URL.Path), authRoutePrefix) {
			bucket = v.auth
		}

		if bucket != nil {
			reservation := bucket.Reserve()
			if delay := reservation.Delay(); delay > 0 {
				reservation.Cancel()
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				writeJSONError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests")
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func (m *RateLimitMiddleware) visitorFor(ip string) *visitor {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	v, ok := m.visitors[ip]
	if !ok {
		v = &visitor{
			general: perMinute(m.generalRPM),
			auth:    perMinute(m.authRPM),
		}
		m.visitors[ip] = v
	}
	v.lastSeen = now

	if len(m.visitors) >= visitorSweepAt {
		for key, candidate := range m.visitors {
			if now.Sub(candidate.lastSeen) > visitorIdleTimeout {
				delete(m.visitors, key)
			}
		}
	}

	return v
}

// perMinute returns nil for a non-positive limit, which disables the bucket.
func perMinute(rpm int) *rate.Limiter {
	if rpm <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), rpm)
}

// ClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the socket peer.
func ClientIP(r *http.Request) string {
	if forwarded := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); forwarded != "" {
		if first := strings.TrimSpace(strings.Split(forwarded, ",")[0]); first != "" {
			return first
		}
	}

	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}

	remote := strings.TrimSpace(r.RemoteAddr)
	if host, _, err := net.SplitHostPort(remote); err == nil && host != "" {
		return host
	}
	if remote == "" {
		return "unknown"
	}
	return remote
}
