package dto

import "github.com/Estefan29/frontend-eventos-sub000/internal/roles"

// VistaResponse describes what the browser should render for a navigation
// the gate allowed. Capacidades drives which actions the page shows.
type VistaResponse struct {
	Vista       string            `json:"vista"`
	Capacidades roles.Capacidades `json:"capacidades"`
}
