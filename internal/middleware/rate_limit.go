package middleware

import (
	"net/http"
	"sync"
	"time"

	"go-groupware/internal/shared/apperror"
	"go-groupware/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// sweepInterval jarak minimum antar pembersihan map limiter.
const sweepInterval = time.Minute

type KeyedRateLimiter struct {
	limiters  map[string]*rate.Limiter
	mu        sync.Mutex
	r         rate.Limit // jumlah request per detik
	b         int        // burst (kapasitas kantong)
	lastSweep time.Time
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		r:         r,
		b:         b,
		lastSweep: time.Now(),
	}
}

func (l *KeyedRateLimiter) GetLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.lastSweep) >= sweepInterval {
		l.sweepLocked(now)
	}

	limiter, exists := l.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.limiters[key] = limiter
	}

	return limiter
}

// Sweep membuang limiter yang kantongnya sudah penuh lagi pada waktu now.
// Limiter seperti itu sama dengan limiter baru, jadi tidak ada state yang hilang.
func (l *KeyedRateLimiter) Sweep(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sweepLocked(now)
}

func (l *KeyedRateLimiter) sweepLocked(now time.Time) int {
	removed := 0
	for key, limiter := range l.limiters {
		if limiter.TokensAt(now) >= float64(l.b) {
			delete(l.limiters, key)
			removed++
		}
	}
	l.lastSweep = now
	return removed
}

// Len jumlah key yang sedang dilacak.
func (l *KeyedRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

func tooManyRequests(c *gin.Context, message string) {
	response.Error(c, http.StatusTooManyRequests, apperror.CodeTooManyRequests, message, nil)
	c.Abort()
}

// RateLimitByIP dipakai untuk endpoint publik seperti login.
func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			tooManyRequests(c, "Too many requests from this IP")
			return
		}
		c.Next()
	}
}

// RateLimitBySubject harus dipasang setelah AuthGate. r = request per detik, b = burst
func RateLimitBySubject(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		subject := Subject(c)
		if subject == "" {
			c.Next()
			return
		}
		if !limiter.GetLimiter(subject).Allow() {
			tooManyRequests(c, "Too many requests from this employee")
			return
		}
		c.Next()
	}
}
