package dto

import "github.com/Estefan29/frontend-eventos-sub000/internal/model"

type CrearInscripcionRequest struct {
	EventoID string `json:"evento_id" validate:"required"`
}

// ResumenDashboard merges the three parallel loads of the landing page.
// A load that failed contributes an empty collection instead of aborting
// the others.
type ResumenDashboard struct {
	Eventos       []model.Evento      `json:"eventos"`
	Inscripciones []model.Inscripcion `json:"inscripciones"`
	Pagos         []model.Pago        `json:"pagos"`
}
