package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Estefan29/frontend-eventos-sub000/internal/model"
	"github.com/Estefan29/frontend-eventos-sub000/internal/remote"
	"github.com/Estefan29/frontend-eventos-sub000/internal/session"
)

// ── API Stubs ─────────────────────────────────────────────────────────────────

type stubEventos struct {
	eventos []model.Evento
	obtener *model.Evento
	err     error
}

func (s *stubEventos) Listar(context.Context, *session.Store, map[string]string) ([]model.Evento, error) {
	return s.eventos, s.err
}
func (s *stubEventos) Obtener(context.Context, *session.Store, string) (*model.Evento, error) {
	return s.obtener, s.err
}
func (s *stubEventos) Crear(context.Context, *session.Store, remote.EventoPayload) (*model.Evento, error) {
	return nil, s.err
}
func (s *stubEventos) Actualizar(context.Context, *session.Store, string, remote.EventoPayload) (*model.Evento, error) {
	return nil, s.err
}
func (s *stubEventos) Eliminar(context.Context, *session.Store, string) error { return s.err }

type stubInscripciones struct {
	ins     []model.Inscripcion
	obtener *model.Inscripcion
	err     error
}

func (s *stubInscripciones) ListarPropias(context.Context, *session.Store) ([]model.Inscripcion, error) {
	return s.ins, s.err
}
func (s *stubInscripciones) ListarTodas(context.Context, *session.Store) ([]model.Inscripcion, error) {
	return s.ins, s.err
}
func (s *stubInscripciones) Obtener(context.Context, *session.Store, string) (*model.Inscripcion, error) {
	return s.obtener, s.err
}
func (s *stubInscripciones) Crear(context.Context, *session.Store, string) (*model.Inscripcion, error) {
	return nil, s.err
}
func (s *stubInscripciones) Cancelar(context.Context, *session.Store, string) error { return s.err }

type stubPagos struct {
	pagos []model.Pago
	err   error
}

func (s *stubPagos) ListarPropios(context.Context, *session.Store) ([]model.Pago, error) {
	return s.pagos, s.err
}
func (s *stubPagos) ListarTodos(context.Context, *session.Store) ([]model.Pago, error) {
	return s.pagos, s.err
}
func (s *stubPagos) Registrar(context.Context, *session.Store, remote.PagoPayload) (*model.Pago, error) {
	return nil, s.err
}
func (s *stubPagos) Obtener(context.Context, *session.Store, string) (*model.Pago, error) {
	return nil, s.err
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestResumen_CargaCompleta(t *testing.T) {
	svc := NewDashboardService(
		&stubEventos{eventos: []model.Evento{{ID: "e1"}, {ID: "e2"}}},
		&stubInscripciones{ins: []model.Inscripcion{{ID: "i1"}}},
		&stubPagos{pagos: []model.Pago{{ID: "p1"}}},
	)

	resumen, err := svc.Resumen(context.Background(), session.NewStore("s1", nil))
	require.NoError(t, err)
	assert.Len(t, resumen.Eventos, 2)
	assert.Len(t, resumen.Inscripciones, 1)
	assert.Len(t, resumen.Pagos, 1)
}

func TestResumen_PataCaidaRindeSeccionVacia(t *testing.T) {
	svc := NewDashboardService(
		&stubEventos{eventos: []model.Evento{{ID: "e1"}}},
		&stubInscripciones{err: &remote.ErrRemoto{Status: 500, Detalle: "boom"}},
		&stubPagos{err: errors.New("connection refused")},
	)

	resumen, err := svc.Resumen(context.Background(), session.NewStore("s1", nil))
	require.NoError(t, err, "fallos parciales no tumban el dashboard")
	assert.Len(t, resumen.Eventos, 1)
	assert.NotNil(t, resumen.Inscripciones)
	assert.Empty(t, resumen.Inscripciones)
	assert.NotNil(t, resumen.Pagos)
	assert.Empty(t, resumen.Pagos)
}

func TestResumen_TodoCaidoRindeVacio(t *testing.T) {
	falla := errors.New("api caida")
	svc := NewDashboardService(
		&stubEventos{err: falla},
		&stubInscripciones{err: falla},
		&stubPagos{err: falla},
	)

	resumen, err := svc.Resumen(context.Background(), session.NewStore("s1", nil))
	require.NoError(t, err)
	assert.Empty(t, resumen.Eventos)
	assert.Empty(t, resumen.Inscripciones)
	assert.Empty(t, resumen.Pagos)
}

func TestResumen_SesionExpiradaSiPropaga(t *testing.T) {
	svc := NewDashboardService(
		&stubEventos{eventos: []model.Evento{{ID: "e1"}}},
		&stubInscripciones{err: &remote.ErrSesionExpirada{Redirigir: true}},
		&stubPagos{pagos: []model.Pago{{ID: "p1"}}},
	)

	_, err := svc.Resumen(context.Background(), session.NewStore("s1", nil))
	var expirada *remote.ErrSesionExpirada
	require.ErrorAs(t, err, &expirada)
	assert.True(t, expirada.Redirigir)
}
