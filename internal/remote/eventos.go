package remote

import (
	"context"
	"net/http"

	"github.com/Estefan29/frontend-eventos-sub000/internal/gate"
	"github.com/Estefan29/frontend-eventos-sub000/internal/model"
	"github.com/Estefan29/frontend-eventos-sub000/internal/session"
)

// EventosAPI is the event-catalog resource of the remote platform.
type EventosAPI interface {
	Listar(ctx context.Context, st *session.Store, filtro map[string]string) ([]model.Evento, error)
	Obtener(ctx context.Context, st *session.Store, id string) (*model.Evento, error)
	Crear(ctx context.Context, st *session.Store, p EventoPayload) (*model.Evento, error)
	Actualizar(ctx context.Context, st *session.Store, id string, p EventoPayload) (*model.Evento, error)
	Eliminar(ctx context.Context, st *session.Store, id string) error
}

// EventoPayload carries event create/update fields.
type EventoPayload struct {
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Lugar       string `json:"lugar"`
	Categoria   string `json:"categoria"`
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
	Capacidad   int    `json:"capacidad"`
	Costo       string `json:"costo"`
	Publicado   bool   `json:"publicado"`
}

type eventosAPI struct{ c *Client }

func NewEventosAPI(c *Client) EventosAPI { return &eventosAPI{c: c} }

func (e *eventosAPI) Listar(ctx context.Context, st *session.Store, filtro map[string]string) ([]model.Evento, error) {
	var eventos []model.Evento
	err := e.c.do(ctx, st, gate.VistaEventos, llamada{
		metodo:    http.MethodGet,
		ruta:      "/eventos",
		query:     filtro,
		resultado: &eventos,
	})
	return eventos, err
}

func (e *eventosAPI) Obtener(ctx context.Context, st *session.Store, id string) (*model.Evento, error) {
	var ev model.Evento
	err := e.c.do(ctx, st, gate.VistaEventos, llamada{
		metodo:    http.MethodGet,
		ruta:      "/eventos/" + id,
		resultado: &ev,
	})
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (e *eventosAPI) Crear(ctx context.Context, st *session.Store, p EventoPayload) (*model.Evento, error) {
	var ev model.Evento
	err := e.c.do(ctx, st, gate.VistaEventos, llamada{
		metodo:    http.MethodPost,
		ruta:      "/eventos",
		cuerpo:    p,
		resultado: &ev,
	})
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (e *eventosAPI) Actualizar(ctx context.Context, st *session.Store, id string, p EventoPayload) (*model.Evento, error) {
	var ev model.Evento
	err := e.c.do(ctx, st, gate.VistaEventos, llamada{
		metodo:    http.MethodPut,
		ruta:      "/eventos/" + id,
		cuerpo:    p,
		resultado: &ev,
	})
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (e *eventosAPI) Eliminar(ctx context.Context, st *session.Store, id string) error {
	return e.c.do(ctx, st, gate.VistaEventos, llamada{
		metodo: http.MethodDelete,
		ruta:   "/eventos/" + id,
	})
}
