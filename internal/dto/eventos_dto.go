package dto

import "github.com/shopspring/decimal"

type CrearEventoRequest struct {
	Titulo      string          `json:"titulo"       validate:"required,min=3,max=150"`
	Descripcion string          `json:"descripcion"  validate:"omitempty,max=2000"`
	Lugar       string          `json:"lugar"        validate:"required,max=150"`
	Categoria   string          `json:"categoria"    validate:"omitempty,max=50"`
	FechaInicio string          `json:"fecha_inicio" validate:"required"`
	FechaFin    string          `json:"fecha_fin"    validate:"required"`
	Capacidad   int             `json:"capacidad"    validate:"required,gt=0"`
	Costo       decimal.Decimal `json:"costo"        validate:"min=0"`
	Publicado   bool            `json:"publicado"`
}

type ActualizarEventoRequest struct {
	Titulo      string          `json:"titulo"       validate:"omitempty,min=3,max=150"`
	Descripcion string          `json:"descripcion"  validate:"omitempty,max=2000"`
	Lugar       string          `json:"lugar"        validate:"omitempty,max=150"`
	Categoria   string          `json:"categoria"    validate:"omitempty,max=50"`
	FechaInicio string          `json:"fecha_inicio" validate:"omitempty"`
	FechaFin    string          `json:"fecha_fin"    validate:"omitempty"`
	Capacidad   int             `json:"capacidad"    validate:"omitempty,gt=0"`
	Costo       decimal.Decimal `json:"costo"        validate:"min=0"`
	Publicado   bool            `json:"publicado"`
}
