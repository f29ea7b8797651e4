package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Estefan29/frontend-eventos-sub000/internal/middleware"
	"github.com/Estefan29/frontend-eventos-sub000/internal/model"
	"github.com/Estefan29/frontend-eventos-sub000/internal/remote"
	"github.com/Estefan29/frontend-eventos-sub000/internal/session"
)

// ── EventosAPI Stub ───────────────────────────────────────────────────────────

type stubEventosAPI struct {
	eventos []model.Evento
	evento  *model.Evento
	err     error
	filtro  map[string]string
}

func (s *stubEventosAPI) Listar(_ context.Context, _ *session.Store, filtro map[string]string) ([]model.Evento, error) {
	s.filtro = filtro
	return s.eventos, s.err
}

func (s *stubEventosAPI) Obtener(_ context.Context, _ *session.Store, _ string) (*model.Evento, error) {
	return s.evento, s.err
}

func (s *stubEventosAPI) Crear(_ context.Context, _ *session.Store, _ remote.EventoPayload) (*model.Evento, error) {
	return s.evento, s.err
}

func (s *stubEventosAPI) Actualizar(_ context.Context, _ *session.Store, _ string, _ remote.EventoPayload) (*model.Evento, error) {
	return s.evento, s.err
}

func (s *stubEventosAPI) Eliminar(_ context.Context, _ *session.Store, _ string) error {
	return s.err
}

func eventosRouter(api remote.EventosAPI, st *session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(conStore(st))
	h := NewEventosHandler(api)
	r.GET("/eventos", h.Listar)
	r.GET("/eventos/:id", h.Obtener)
	return r
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestEventosListar_PasaLosFiltros(t *testing.T) {
	api := &stubEventosAPI{eventos: []model.Evento{{ID: "e1", Titulo: "Congreso"}}}
	r := eventosRouter(api, session.NewStore("s1", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/eventos?categoria=academico&buscar=congreso", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "academico", api.filtro["categoria"])
	assert.Equal(t, "congreso", api.filtro["buscar"])
	assert.Contains(t, w.Body.String(), "Congreso")
}

func TestRelay_SesionExpiradaRedirige(t *testing.T) {
	api := &stubEventosAPI{err: &remote.ErrSesionExpirada{Redirigir: true}}
	r := eventosRouter(api, session.NewStore("s1", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/eventos", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, middleware.RutaLogin, w.Header().Get("Location"))
}

func TestRelay_SesionExpiradaSinRedireccion(t *testing.T) {
	api := &stubEventosAPI{err: &remote.ErrSesionExpirada{Redirigir: false}}
	r := eventosRouter(api, session.NewStore("s1", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/eventos", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
}

func TestRelay_ErrorRemotoConservaStatusYDetalle(t *testing.T) {
	api := &stubEventosAPI{err: &remote.ErrRemoto{Status: http.StatusNotFound, Detalle: "Evento no encontrado"}}
	r := eventosRouter(api, session.NewStore("s1", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/eventos/e9", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Evento no encontrado")
}

func TestRelay_FalloDeTransporteEs502(t *testing.T) {
	api := &stubEventosAPI{err: errors.New("connection refused")}
	r := eventosRouter(api, session.NewStore("s1", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/eventos", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "No se pudo contactar")
	assert.NotContains(t, w.Body.String(), "connection refused")
}
