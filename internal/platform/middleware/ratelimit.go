package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/libris/internal/platform/apperr"
	"github.com/taibuivan/libris/internal/platform/constants"
	"github.com/taibuivan/libris/internal/platform/respond"
)

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimitTable is the per-IP token bucket table.
type rateLimitTable struct {
	mu      sync.Mutex
	clients map[string]*rateLimitClient
	rps     rate.Limit
	burst   int
}

func (table *rateLimitTable) allow(ip string, now time.Time) bool {
	table.mu.Lock()
	defer table.mu.Unlock()

	client, found := table.clients[ip]
	if !found {
		client = &rateLimitClient{limiter: rate.NewLimiter(table.rps, table.burst)}
		table.clients[ip] = client
	}
	client.lastSeen = now

	return client.limiter.AllowN(now, 1)
}

func (table *rateLimitTable) evict(now time.Time) {
	table.mu.Lock()
	defer table.mu.Unlock()

	for ip, client := range table.clients {
		if now.Sub(client.lastSeen) > constants.RateLimitClientTTL {
			delete(table.clients, ip)
		}
	}
}

// RateLimit limits requests per IP using the token bucket algorithm. Idle
// clients are evicted until context is cancelled.
func RateLimit(context context.Context, rps float64, burst int) func(http.Handler) http.Handler {
	table := &rateLimitTable{
		clients: make(map[string]*rateLimitClient),
		rps:     rate.Limit(rps),
		burst:   burst,
	}

	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case now := <-ticker.C:
				table.evict(now)
			case <-context.Done():
				return
			}
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !table.allow(RealIP(request), time.Now()) {
				writer.Header().Set("Retry-After", "1")
				respond.Error(writer, request, apperr.RateLimited(1))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
