package dto

import "github.com/shopspring/decimal"

type RegistrarPagoRequest struct {
	InscripcionID string          `json:"inscripcion_id" validate:"required"`
	Monto         decimal.Decimal `json:"monto"          validate:"required,gt=0"`
	Metodo        string          `json:"metodo"         validate:"required,oneof=tarjeta transferencia efectivo"`
}
