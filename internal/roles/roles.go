// Package roles is the single source of truth for role → capability mapping.
// Every access-control decision in the portal (route gate, session EsAdmin,
// per-page action rendering) must go through Resolver instead of comparing
// role strings at the call site.
package roles

// Known roles of the events platform.
const (
	RolAdmin          = "admin"
	RolAdministrativo = "administrativo"
	RolEstudiante     = "estudiante"
	RolProfesor       = "profesor"
	RolExterno        = "externo"
)

// Capacidades is the capability tier derived from a role.
// AccesoTotal and Autoservicio are mutually exclusive and together cover
// all five known roles; an unknown role has neither.
type Capacidades struct {
	AccesoTotal  bool // administration of usuarios, inscripciones, pagos
	Autoservicio bool // browse events, manage own inscripciones/perfil
}

// Resolver maps a role string to its capability tier.
func Resolver(rol string) Capacidades {
	switch rol {
	case RolAdmin, RolAdministrativo:
		return Capacidades{AccesoTotal: true}
	case RolEstudiante, RolProfesor, RolExterno:
		return Capacidades{Autoservicio: true}
	default:
		return Capacidades{}
	}
}

// EsAdministrador reports whether the role has the full-access tier.
// "administrativo" counts as administrator for all purposes.
func EsAdministrador(rol string) bool {
	return Resolver(rol).AccesoTotal
}
