package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/dto"
)

// LoginLimiter limita los intentos de login por IP (token bucket de x/time/rate).
type LoginLimiter struct {
	mu    sync.Mutex
	perIP map[string]*rate.Limiter
	every rate.Limit
	burst int
}

// NewLoginLimiter perMinute intentos por minuto y por IP; <= 0 desactiva el límite.
func NewLoginLimiter(perMinute int) *LoginLimiter {
	if perMinute <= 0 {
		return &LoginLimiter{every: rate.Inf, perIP: map[string]*rate.Limiter{}}
	}
	return &LoginLimiter{
		perIP: map[string]*rate.Limiter{},
		every: rate.Every(time.Minute / time.Duration(perMinute)),
		burst: perMinute,
	}
}

// Allow consume un intento de la IP.
func (l *LoginLimiter) Allow(ip string) bool {
	if l.every == rate.Inf {
		return true
	}
	l.mu.Lock()
	lim, ok := l.perIP[ip]
	if !ok {
		lim = rate.NewLimiter(l.every, l.burst)
		l.perIP[ip] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}

// Middleware responde 429 cuando la IP agotó sus intentos.
func (l *LoginLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !l.Allow(c.IP()) {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code: "RATE_LIMITED", Message: "Demasiados intentos de inicio de sesión, espere un momento",
			})
		}
		return c.Next()
	}
}
