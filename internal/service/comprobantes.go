package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Estefan29/frontend-eventos-sub000/internal/infra"
	"github.com/Estefan29/frontend-eventos-sub000/internal/model"
	"github.com/Estefan29/frontend-eventos-sub000/internal/remote"
	"github.com/Estefan29/frontend-eventos-sub000/internal/session"
	"github.com/Estefan29/frontend-eventos-sub000/internal/worker"
)

var ErrSinUsuario = errors.New("comprobantes: sesion sin usuario")

// ComprobanteService produces inscription receipts: synchronously as a PDF
// download, or asynchronously as an email through the worker pool.
type ComprobanteService struct {
	inscripciones remote.InscripcionesAPI
	eventos       remote.EventosAPI
	dispatcher    *worker.Dispatcher
	storagePath   string
}

func NewComprobanteService(i remote.InscripcionesAPI, e remote.EventosAPI, d *worker.Dispatcher, storagePath string) *ComprobanteService {
	return &ComprobanteService{inscripciones: i, eventos: e, dispatcher: d, storagePath: storagePath}
}

// GenerarPDF builds the receipt file for download and returns its path.
// Ownership of the inscription is enforced by the remote API.
func (s *ComprobanteService) GenerarPDF(ctx context.Context, st *session.Store, inscripcionID string) (string, error) {
	ins, evento, usuario, err := s.cargar(ctx, st, inscripcionID)
	if err != nil {
		return "", err
	}
	return infra.GenerarComprobantePDF(ins, evento, usuario, s.storagePath)
}

// EnviarPorEmail enqueues the receipt job; the worker pool does the rest.
func (s *ComprobanteService) EnviarPorEmail(ctx context.Context, st *session.Store, inscripcionID string) error {
	ins, evento, usuario, err := s.cargar(ctx, st, inscripcionID)
	if err != nil {
		return err
	}
	return s.dispatcher.EncolarComprobante(ctx, worker.ComprobanteJob{
		Inscripcion: *ins,
		Evento:      *evento,
		Usuario:     *usuario,
	})
}

func (s *ComprobanteService) cargar(ctx context.Context, st *session.Store, inscripcionID string) (*model.Inscripcion, *model.Evento, *model.Usuario, error) {
	snap := st.Snapshot()
	if snap.Usuario == nil {
		return nil, nil, nil, ErrSinUsuario
	}

	ins, err := s.inscripciones.Obtener(ctx, st, inscripcionID)
	if err != nil {
		return nil, nil, nil, err
	}

	evento := ins.Evento
	if evento == nil {
		evento, err = s.eventos.Obtener(ctx, st, ins.EventoID)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("comprobantes: evento de la inscripcion: %w", err)
		}
	}
	return ins, evento, snap.Usuario, nil
}
