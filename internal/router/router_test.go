package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Estefan29/frontend-eventos-sub000/internal/config"
	"github.com/Estefan29/frontend-eventos-sub000/internal/infra"
	"github.com/Estefan29/frontend-eventos-sub000/internal/remote"
	"github.com/Estefan29/frontend-eventos-sub000/internal/worker"
)

// apiFalsa emulates the remote events platform for end-to-end routing tests.
func apiFalsa(t *testing.T, rol string) (*httptest.Server, *http.Request) {
	t.Helper()
	var ultimo http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ultimo = *r
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/auth/login":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"usuario": map[string]string{"id": "u1", "nombre": "Ana", "email": "ana@uni.edu", "rol": rol},
				"token":   "tok123",
			})
		case r.URL.Path == "/eventos":
			_ = json.NewEncoder(w).Encode([]map[string]any{{"id": "e1", "titulo": "Congreso"}})
		case r.URL.Path == "/health":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "no existe"})
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &ultimo
}

func portalDePrueba(t *testing.T, rol string) (*gin.Engine, *http.Request) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	srv, ultimo := apiFalsa(t, rol)

	cfg := &config.Config{
		Env:             "development",
		APIBaseURL:      srv.URL,
		SessionTTLHours: 1,
		CookieNombre:    "portal_sesion",
	}
	api := remote.New(srv.URL)
	r := New(cfg, rdb, api, worker.NewDispatcher(rdb), infra.NewCircuitBreaker(infra.DefaultCBConfig()))
	return r, ultimo
}

func login(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"ana@uni.edu","password":"secreta1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == "portal_sesion" {
			return c
		}
	}
	t.Fatal("no se acuno la cookie de sesion")
	return nil
}

func TestRouter_AnonimoRedirigeALogin(t *testing.T) {
	r, _ := portalDePrueba(t, "estudiante")

	for _, ruta := range []string{"/dashboard", "/eventos", "/vistas/dashboard", "/inscripciones/propias"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, ruta, nil))
		assert.Equal(t, http.StatusSeeOther, w.Code, ruta)
		assert.Equal(t, "/login", w.Header().Get("Location"), ruta)
	}
}

func TestRouter_LoginYNavegacionConCookie(t *testing.T) {
	r, ultimo := portalDePrueba(t, "estudiante")
	cookie := login(t, r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/eventos", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Congreso")
	// the stored token travels to the remote API, never to the browser
	assert.Equal(t, "Bearer tok123", ultimo.Header.Get("Authorization"))
}

func TestRouter_EstudianteNoAdministra(t *testing.T) {
	r, _ := portalDePrueba(t, "estudiante")
	cookie := login(t, r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Gestión de Usuarios")
	assert.Contains(t, w.Body.String(), "estudiante")
}

func TestRouter_AdministrativoSiAdministra(t *testing.T) {
	r, ultimo := portalDePrueba(t, "administrativo")
	cookie := login(t, r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	// passes the access gate; the fake API answers 404 for /usuarios and
	// that status is relayed as-is
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no existe")
	assert.Equal(t, "/usuarios", ultimo.URL.Path)
}

func TestRouter_LogoutInvalidaLaCookie(t *testing.T) {
	r, _ := portalDePrueba(t, "estudiante")
	cookie := login(t, r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestRouter_SesionSobreviveAlReinicio(t *testing.T) {
	// Same Redis, new engine: the session record rehydrates the login.
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	srv, _ := apiFalsa(t, "profesor")

	cfg := &config.Config{
		Env:             "development",
		APIBaseURL:      srv.URL,
		SessionTTLHours: 1,
		CookieNombre:    "portal_sesion",
	}
	nuevoPortal := func() *gin.Engine {
		return New(cfg, rdb, remote.New(srv.URL), worker.NewDispatcher(rdb), infra.NewCircuitBreaker(infra.DefaultCBConfig()))
	}

	cookie := login(t, nuevoPortal())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/eventos", nil)
	req.AddCookie(cookie)
	nuevoPortal().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_Health(t *testing.T) {
	r, _ := portalDePrueba(t, "estudiante")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redis":"connected"`)
	assert.Contains(t, w.Body.String(), `"mail_cb":"closed"`)
}
