package remote

import (
	"context"
	"net/http"

	"github.com/Estefan29/frontend-eventos-sub000/internal/gate"
	"github.com/Estefan29/frontend-eventos-sub000/internal/model"
	"github.com/Estefan29/frontend-eventos-sub000/internal/session"
)

// InscripcionesAPI is the registrations resource. ListarTodas is the
// admin-wide listing; everything else is scoped to the session's own user
// by the remote API itself.
type InscripcionesAPI interface {
	ListarPropias(ctx context.Context, st *session.Store) ([]model.Inscripcion, error)
	ListarTodas(ctx context.Context, st *session.Store) ([]model.Inscripcion, error)
	Obtener(ctx context.Context, st *session.Store, id string) (*model.Inscripcion, error)
	Crear(ctx context.Context, st *session.Store, eventoID string) (*model.Inscripcion, error)
	Cancelar(ctx context.Context, st *session.Store, id string) error
}

type inscripcionesAPI struct{ c *Client }

func NewInscripcionesAPI(c *Client) InscripcionesAPI { return &inscripcionesAPI{c: c} }

func (i *inscripcionesAPI) ListarPropias(ctx context.Context, st *session.Store) ([]model.Inscripcion, error) {
	var ins []model.Inscripcion
	err := i.c.do(ctx, st, gate.VistaMisInscripciones, llamada{
		metodo:    http.MethodGet,
		ruta:      "/inscripciones/propias",
		resultado: &ins,
	})
	return ins, err
}

func (i *inscripcionesAPI) ListarTodas(ctx context.Context, st *session.Store) ([]model.Inscripcion, error) {
	var ins []model.Inscripcion
	err := i.c.do(ctx, st, gate.VistaGestionInscrip, llamada{
		metodo:    http.MethodGet,
		ruta:      "/inscripciones",
		resultado: &ins,
	})
	return ins, err
}

func (i *inscripcionesAPI) Obtener(ctx context.Context, st *session.Store, id string) (*model.Inscripcion, error) {
	var ins model.Inscripcion
	err := i.c.do(ctx, st, gate.VistaMisInscripciones, llamada{
		metodo:    http.MethodGet,
		ruta:      "/inscripciones/" + id,
		resultado: &ins,
	})
	if err != nil {
		return nil, err
	}
	return &ins, nil
}

func (i *inscripcionesAPI) Crear(ctx context.Context, st *session.Store, eventoID string) (*model.Inscripcion, error) {
	var ins model.Inscripcion
	err := i.c.do(ctx, st, gate.VistaEventos, llamada{
		metodo:    http.MethodPost,
		ruta:      "/inscripciones",
		cuerpo:    map[string]string{"evento_id": eventoID},
		resultado: &ins,
	})
	if err != nil {
		return nil, err
	}
	return &ins, nil
}

func (i *inscripcionesAPI) Cancelar(ctx context.Context, st *session.Store, id string) error {
	return i.c.do(ctx, st, gate.VistaMisInscripciones, llamada{
		metodo: http.MethodDelete,
		ruta:   "/inscripciones/" + id,
	})
}
