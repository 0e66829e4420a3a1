package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
)

const (
	msgTooManyRequests = "too many requests, try again later"

	// после этого числа записей неактивные лимитеры вычищаются
	limiterSweepThreshold = 10000
	limiterIdleTTL        = 10 * time.Minute
	// очистка не чаще одного раза за интервал
	limiterSweepInterval = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов с одного IP
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
	limit     rate.Limit
	burst     int
	trusted   []*net.IPNet
	now       func() time.Time
	logger    Logger
}

// NewRateLimiter создает лимитер: perMinute запросов в минуту с запасом burst
// Заголовки X-Forwarded-For и X-Real-IP учитываются только от прокси из trusted
func NewRateLimiter(perMinute, burst int, trusted []*net.IPNet, logger Logger) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		trusted:  trusted,
		now:      time.Now,
		logger:   logger,
	}
}

// Middleware отвечает 429 при превышении лимита
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := rl.clientIP(r)
		limiter := rl.getLimiter(ip)

		if !limiter.AllowN(rl.now(), 1) {
			rl.logger.Warn("RateLimiter: limit exceeded for ip=%s on %s", ip, r.URL.Path)
			retryAfter := int(time.Duration(float64(time.Second) / float64(rl.limit)).Seconds())
			handlers.RespondRateLimited(w, msgTooManyRequests, retryAfter)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if len(rl.visitors) >= limiterSweepThreshold && now.Sub(rl.lastSweep) >= limiterSweepInterval {
		rl.lastSweep = now
		for key, v := range rl.visitors {
			if now.Sub(v.lastSeen) > limiterIdleTTL {
				delete(rl.visitors, key)
			}
		}
	}

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// clientIP возвращает адрес клиента
// За доверенным прокси X-Forwarded-For читается справа налево до первого недоверенного адреса
func (rl *RateLimiter) clientIP(r *http.Request) string {
	peer := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		peer = host
	}
	if !rl.isTrusted(net.ParseIP(peer)) {
		return peer
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			ip := net.ParseIP(strings.TrimSpace(hops[i]))
			if ip == nil {
				break
			}
			if !rl.isTrusted(ip) {
				return ip.String()
			}
		}
	}
	if ip := net.ParseIP(strings.TrimSpace(r.Header.Get("X-Real-IP"))); ip != nil {
		return ip.String()
	}
	return peer
}

func (rl *RateLimiter) isTrusted(ip net.IP) bool {
	if ip == nil {
		return false
	}
	for _, n := range rl.trusted {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}
