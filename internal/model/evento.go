package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Evento mirrors the event payload of the remote API.
type Evento struct {
	ID          string          `json:"id"`
	Titulo      string          `json:"titulo"`
	Descripcion string          `json:"descripcion"`
	Lugar       string          `json:"lugar"`
	Categoria   string          `json:"categoria"`
	FechaInicio time.Time       `json:"fecha_inicio"`
	FechaFin    time.Time       `json:"fecha_fin"`
	Capacidad   int             `json:"capacidad"`
	Costo       decimal.Decimal `json:"costo"`
	Publicado   bool            `json:"publicado"`
}
