package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLimitador_Permitir(t *testing.T) {
	l := &limitador{porIP: make(map[string]*ventana), limite: 3, periodo: time.Minute}

	for i := 0; i < 3; i++ {
		ok, _ := l.permitir("1.2.3.4")
		assert.True(t, ok, "intento %d", i+1)
	}
	ok, _ := l.permitir("1.2.3.4")
	assert.False(t, ok)

	// another IP has its own window
	ok, _ = l.permitir("5.6.7.8")
	assert.True(t, ok)
}

func TestLimitador_VentanaExpiraYReabre(t *testing.T) {
	l := &limitador{porIP: make(map[string]*ventana), limite: 1, periodo: 20 * time.Millisecond}

	ok, _ := l.permitir("1.2.3.4")
	assert.True(t, ok)
	ok, _ = l.permitir("1.2.3.4")
	assert.False(t, ok)

	time.Sleep(30 * time.Millisecond)
	ok, _ = l.permitir("1.2.3.4")
	assert.True(t, ok)
}

func TestLoginRateLimiter_Responde429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", LoginRateLimiter(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	var ultimo int
	for i := 0; i < 25; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:12345"
		r.ServeHTTP(w, req)
		ultimo = w.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, ultimo)
}
