package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Estefan29/frontend-eventos-sub000/internal/apierror"
)

// ventana tracks request counts per IP within a sliding window.
type ventana struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

type limitador struct {
	mu      sync.Mutex
	porIP   map[string]*ventana
	limite  int
	periodo time.Duration
}

func nuevoLimitador(limite int, periodo time.Duration) *limitador {
	l := &limitador{porIP: make(map[string]*ventana), limite: limite, periodo: periodo}
	go l.purgar()
	return l
}

func (l *limitador) permitir(ip string) (bool, time.Time) {
	l.mu.Lock()
	v, ok := l.porIP[ip]
	if !ok {
		v = &ventana{}
		l.porIP[ip] = v
	}
	l.mu.Unlock()

	v.mu.Lock()
	defer v.mu.Unlock()

	now := time.Now()
	if now.After(v.windowEnd) {
		v.count = 0
		v.windowEnd = now.Add(l.periodo)
	}
	v.count++
	return v.count <= l.limite, v.windowEnd
}

// purgar evicts expired windows so IPs that never return don't accumulate.
func (l *limitador) purgar() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		purged := 0
		for ip, v := range l.porIP {
			v.mu.Lock()
			if now.After(v.windowEnd) {
				delete(l.porIP, ip)
				purged++
			}
			v.mu.Unlock()
		}
		restantes := len(l.porIP)
		l.mu.Unlock()
		if purged > 0 {
			log.Debug().Int("purged", purged).Int("remaining", restantes).Msg("rate limiter window purge")
		}
	}
}

// RateLimiter is the general sliding-window limiter applied to every route.
func RateLimiter(limite int, periodo time.Duration) gin.HandlerFunc {
	l := nuevoLimitador(limite, periodo)
	return func(c *gin.Context) {
		ok, fin := l.permitir(c.ClientIP())
		if !ok {
			c.Header("Retry-After", fin.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter keeps credential guessing slow: 20 attempts/min per IP.
func LoginRateLimiter() gin.HandlerFunc {
	l := nuevoLimitador(20, time.Minute)
	return func(c *gin.Context) {
		if ok, _ := l.permitir(c.ClientIP()); !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiados intentos de login. Intente en 1 minuto."))
			return
		}
		c.Next()
	}
}
