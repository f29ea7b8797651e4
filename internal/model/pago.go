package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pago is a payment attached to an inscription.
// Estado: "pendiente" | "aprobado" | "rechazado"
type Pago struct {
	ID            string          `json:"id"`
	InscripcionID string          `json:"inscripcion_id"`
	UsuarioID     string          `json:"usuario_id"`
	Monto         decimal.Decimal `json:"monto"`
	Metodo        string          `json:"metodo"`
	Estado        string          `json:"estado"`
	Fecha         time.Time       `json:"fecha"`
}
