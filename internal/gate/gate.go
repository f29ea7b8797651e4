// Package gate decides, per navigation, whether the current session may see
// a requested view. The decision is pure and synchronous: inputs are the
// in-memory session snapshot and a view key, output is render / access
// denied / redirect to login. No I/O happens here.
package gate

import (
	"github.com/Estefan29/frontend-eventos-sub000/internal/roles"
	"github.com/Estefan29/frontend-eventos-sub000/internal/session"
)

// Vista identifies a navigable page of the portal.
type Vista string

const (
	VistaLogin            Vista = "login"
	VistaResetPassword    Vista = "reset-password"
	VistaDashboard        Vista = "dashboard"
	VistaEventos          Vista = "eventos"
	VistaMisInscripciones Vista = "mis-inscripciones"
	VistaAjustes          Vista = "ajustes"
	VistaGestionUsuarios  Vista = "gestion-usuarios"
	VistaGestionInscrip   Vista = "gestion-inscripciones"
	VistaGestionPagos     Vista = "gestion-pagos"
)

// titulos names the admin sections for the access-denied screen.
var titulos = map[Vista]string{
	VistaGestionUsuarios: "Gestión de Usuarios",
	VistaGestionInscrip:  "Gestión de Inscripciones",
	VistaGestionPagos:    "Gestión de Pagos",
}

// EsPublica reports whether the view is reachable without a session.
func EsPublica(v Vista) bool {
	return v == VistaLogin || v == VistaResetPassword
}

// Tipo is the three-way outcome of a gate decision.
type Tipo int

const (
	Renderizar Tipo = iota
	AccesoDenegado
	RedirigirLogin
)

// Decision is the outcome of Decidir.
//   - Renderizar: render Vista (which may differ from the requested one when
//     the request fell back to the dashboard).
//   - AccesoDenegado: the route stays reachable but its content is replaced
//     by a denial naming Seccion and Rol.
//   - RedirigirLogin: no protected content is ever rendered anonymously.
type Decision struct {
	Tipo    Tipo
	Vista   Vista
	Seccion string
	Rol     string
}

// Decidir gates one navigation. Unknown view keys fall back to the dashboard.
func Decidir(s session.Sesion, solicitada Vista) Decision {
	if !s.Autenticada {
		return Decision{Tipo: RedirigirLogin, Vista: VistaLogin}
	}

	switch solicitada {
	case VistaDashboard, VistaEventos, VistaMisInscripciones, VistaAjustes:
		return Decision{Tipo: Renderizar, Vista: solicitada}

	case VistaGestionUsuarios, VistaGestionInscrip, VistaGestionPagos:
		if roles.Resolver(s.Usuario.Rol).AccesoTotal {
			return Decision{Tipo: Renderizar, Vista: solicitada}
		}
		return Decision{
			Tipo:    AccesoDenegado,
			Vista:   solicitada,
			Seccion: titulos[solicitada],
			Rol:     s.Usuario.Rol,
		}

	default:
		return Decision{Tipo: Renderizar, Vista: VistaDashboard}
	}
}
