package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/GlebRadaev/codequiz/pkg/utils"
	"golang.org/x/time/rate"
)

const idleTTL = 5 * time.Minute

type KeyFunc func(r *http.Request) string

type entry struct {
	limiter *rate.Limiter
	expires time.Time
}

// Limiter is a token bucket per client key.
type Limiter struct {
	mu      sync.Mutex
	clients map[string]*entry
	swept   time.Time
	limit   rate.Limit
	burst   int
	key     KeyFunc
	now     func() time.Time
}

func New(perMinute int, key KeyFunc) *Limiter {
	if perMinute < 1 {
		perMinute = 1
	}
	if key == nil {
		key = ByIP
	}
	return &Limiter{
		clients: make(map[string]*entry),
		limit:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   max(perMinute/2, 1),
		key:     key,
		now:     time.Now,
	}
}

func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.swept) >= idleTTL {
		l.sweep(now)
	}

	e, ok := l.clients[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = e
	}
	e.expires = now.Add(idleTTL)
	return e.limiter.AllowN(now, 1)
}

// sweep drops clients idle past their expiry. Callers hold l.mu.
func (l *Limiter) sweep(now time.Time) {
	for k, e := range l.clients {
		if now.After(e.expires) {
			delete(l.clients, k)
		}
	}
	l.swept = now
}

func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(l.key(r)) {
			w.Header().Set("Retry-After", "60")
			utils.RespondWithError(w, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func ByIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
