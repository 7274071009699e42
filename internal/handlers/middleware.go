package handlers

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/fightcast/predictor-api/internal/metrics"
)

// clientLimiters hands out one token bucket per client IP. Idle buckets expire.
type clientLimiters struct {
	mu       sync.Mutex
	limiters *gocache.Cache
	limit    rate.Limit
	burst    int
}

func newClientLimiters(perSecond, burst int) *clientLimiters {
	return &clientLimiters{
		limiters: gocache.New(10*time.Minute, 5*time.Minute),
		limit:    rate.Limit(perSecond),
		burst:    burst,
	}
}

func (c *clientLimiters) get(ip string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.limiters.Get(ip); ok {
		return v.(*rate.Limiter)
	}
	l := rate.NewLimiter(c.limit, c.burst)
	c.limiters.SetDefault(ip, l)
	return l
}

type peerAddrKey struct{}

// PeerAddr keeps the connection's remote address before RealIP rewrites it from
// client-supplied forwarding headers.
func PeerAddr(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), peerAddrKey{}, r.RemoteAddr)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// peerIP is the host part of the connection address, ignoring X-Forwarded-For and X-Real-IP.
func peerIP(r *http.Request) string {
	addr, ok := r.Context().Value(peerAddrKey{}).(string)
	if !ok {
		addr = r.RemoteAddr
	}
	ip, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return ip
}

// RateLimit rejects clients exceeding the configured request rate. A zero rate disables it.
func (h *Handler) RateLimit(next http.Handler) http.Handler {
	if h.cfg.RateLimitPerSecond <= 0 {
		return next
	}
	limiters := newClientLimiters(h.cfg.RateLimitPerSecond, max(h.cfg.RateLimitBurst, 1))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiters.get(peerIP(r)).Allow() {
			metrics.RateLimited.Inc()
			w.Header().Set("Retry-After", "1")
			h.errorResponse(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// cachedWriter tees the response body so it can be stored after the handler returns.
type cachedWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (c *cachedWriter) WriteHeader(status int) {
	c.status = status
	c.ResponseWriter.WriteHeader(status)
}

func (c *cachedWriter) Write(b []byte) (int, error) {
	if c.status == 0 {
		c.status = http.StatusOK
	}
	c.buf.Write(b)
	return c.ResponseWriter.Write(b)
}

// CacheResponse serves successful GET responses from the response cache for ttl.
// The key includes the query string.
func (h *Handler) CacheResponse(ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if h.cfg.Cache == nil || ttl <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}
			key := "response:" + r.URL.RequestURI()
			body, ok, err := h.cfg.Cache.Get(r.Context(), key)
			if err != nil {
				h.logger.Warnw("Response cache read failed", "key", key, "error", err)
			}
			if ok {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(http.StatusOK)
				w.Write(body)
				return
			}

			cw := &cachedWriter{ResponseWriter: w}
			w.Header().Set("X-Cache", "MISS")
			next.ServeHTTP(cw, r)
			if cw.status != http.StatusOK {
				return
			}
			if err := h.cfg.Cache.Set(r.Context(), key, cw.buf.Bytes(), ttl); err != nil {
				h.logger.Warnw("Response cache write failed", "key", key, "error", err)
			}
		})
	}
}

// RequestMetrics counts requests by matched route pattern and status.
func RequestMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	})
}
