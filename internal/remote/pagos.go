package remote

import (
	"context"
	"net/http"

	"github.com/Estefan29/frontend-eventos-sub000/internal/gate"
	"github.com/Estefan29/frontend-eventos-sub000/internal/model"
	"github.com/Estefan29/frontend-eventos-sub000/internal/session"
)

// PagosAPI is the payments resource.
type PagosAPI interface {
	ListarPropios(ctx context.Context, st *session.Store) ([]model.Pago, error)
	ListarTodos(ctx context.Context, st *session.Store) ([]model.Pago, error)
	Registrar(ctx context.Context, st *session.Store, p PagoPayload) (*model.Pago, error)
	Obtener(ctx context.Context, st *session.Store, id string) (*model.Pago, error)
}

// PagoPayload carries a payment submission. Monto travels as a string to
// keep the decimal exact on the wire.
type PagoPayload struct {
	InscripcionID string `json:"inscripcion_id"`
	Monto         string `json:"monto"`
	Metodo        string `json:"metodo"`
}

type pagosAPI struct{ c *Client }

func NewPagosAPI(c *Client) PagosAPI { return &pagosAPI{c: c} }

func (p *pagosAPI) ListarPropios(ctx context.Context, st *session.Store) ([]model.Pago, error) {
	var pagos []model.Pago
	err := p.c.do(ctx, st, gate.VistaMisInscripciones, llamada{
		metodo:    http.MethodGet,
		ruta:      "/pagos/propios",
		resultado: &pagos,
	})
	return pagos, err
}

func (p *pagosAPI) ListarTodos(ctx context.Context, st *session.Store) ([]model.Pago, error) {
	var pagos []model.Pago
	err := p.c.do(ctx, st, gate.VistaGestionPagos, llamada{
		metodo:    http.MethodGet,
		ruta:      "/pagos",
		resultado: &pagos,
	})
	return pagos, err
}

func (p *pagosAPI) Registrar(ctx context.Context, st *session.Store, payload PagoPayload) (*model.Pago, error) {
	var pago model.Pago
	err := p.c.do(ctx, st, gate.VistaMisInscripciones, llamada{
		metodo:    http.MethodPost,
		ruta:      "/pagos",
		cuerpo:    payload,
		resultado: &pago,
	})
	if err != nil {
		return nil, err
	}
	return &pago, nil
}

func (p *pagosAPI) Obtener(ctx context.Context, st *session.Store, id string) (*model.Pago, error) {
	var pago model.Pago
	err := p.c.do(ctx, st, gate.VistaGestionPagos, llamada{
		metodo:    http.MethodGet,
		ruta:      "/pagos/" + id,
		resultado: &pago,
	})
	if err != nil {
		return nil, err
	}
	return &pago, nil
}
