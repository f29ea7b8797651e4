package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Estefan29/frontend-eventos-sub000/internal/dto"
	"github.com/Estefan29/frontend-eventos-sub000/internal/model"
	"github.com/Estefan29/frontend-eventos-sub000/internal/remote"
	"github.com/Estefan29/frontend-eventos-sub000/internal/session"
)

// DashboardService loads the landing page data: published events, the
// user's own inscriptions, and their payments. The three reads run in
// parallel and complete in any order; a failed leg contributes an empty
// collection instead of aborting the page. Only a forced logout (401 on
// any leg) propagates.
type DashboardService struct {
	eventos       remote.EventosAPI
	inscripciones remote.InscripcionesAPI
	pagos         remote.PagosAPI
}

func NewDashboardService(e remote.EventosAPI, i remote.InscripcionesAPI, p remote.PagosAPI) *DashboardService {
	return &DashboardService{eventos: e, inscripciones: i, pagos: p}
}

func (s *DashboardService) Resumen(ctx context.Context, st *session.Store) (*dto.ResumenDashboard, error) {
	var (
		wg      sync.WaitGroup
		eventos []model.Evento
		ins     []model.Inscripcion
		pagos   []model.Pago
		errs    [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		eventos, errs[0] = s.eventos.Listar(ctx, st, map[string]string{"publicado": "true"})
	}()
	go func() {
		defer wg.Done()
		ins, errs[1] = s.inscripciones.ListarPropias(ctx, st)
	}()
	go func() {
		defer wg.Done()
		pagos, errs[2] = s.pagos.ListarPropios(ctx, st)
	}()
	wg.Wait()

	resumen := &dto.ResumenDashboard{
		Eventos:       eventos,
		Inscripciones: ins,
		Pagos:         pagos,
	}
	for _, err := range errs {
		if err == nil {
			continue
		}
		var expirada *remote.ErrSesionExpirada
		if errors.As(err, &expirada) {
			return nil, err
		}
		log.Warn().Err(err).Msg("dashboard: partial load failed, rendering empty section")
	}

	if resumen.Eventos == nil {
		resumen.Eventos = []model.Evento{}
	}
	if resumen.Inscripciones == nil {
		resumen.Inscripciones = []model.Inscripcion{}
	}
	if resumen.Pagos == nil {
		resumen.Pagos = []model.Pago{}
	}
	return resumen, nil
}
