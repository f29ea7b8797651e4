package model

import "time"

// Inscripcion links a user to an event.
// Estado: "pendiente" | "confirmada" | "cancelada"
type Inscripcion struct {
	ID        string    `json:"id"`
	EventoID  string    `json:"evento_id"`
	UsuarioID string    `json:"usuario_id"`
	Estado    string    `json:"estado"`
	Fecha     time.Time `json:"fecha"`
	// Evento comes expanded on list endpoints; nil otherwise.
	Evento *Evento `json:"evento,omitempty"`
}
