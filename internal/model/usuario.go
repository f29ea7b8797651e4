package model

// Usuario is the user record as the remote events API returns it.
// The portal caches it inside the session; it is never written anywhere else.
// Rol: "admin" | "administrativo" | "estudiante" | "profesor" | "externo"
type Usuario struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Rol      string `json:"rol"`
	Telefono string `json:"telefono,omitempty"`
	Programa string `json:"programa,omitempty"`
}
