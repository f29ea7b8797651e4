// Package session holds the portal-side authentication state: the cached
// user record, the opaque bearer token issued by the remote API, and the
// derived authenticated flag. One record per browser session, persisted to
// Redis so it survives portal restarts and page reloads.
package session

import (
	"github.com/Estefan29/frontend-eventos-sub000/internal/model"
)

// Sesion is the persisted triple. It is the exact and only slice of state
// the portal writes to durable storage.
type Sesion struct {
	Usuario     *model.Usuario `json:"usuario"`
	Token       string         `json:"token"`
	Autenticada bool           `json:"autenticada"`
}

// normalizar recomputes the derived flag from the other two fields.
// The stored flag is never trusted: a rehydrated record with an empty token
// is anonymous regardless of what was written.
func (s *Sesion) normalizar() {
	s.Autenticada = s.Usuario != nil && s.Token != ""
}
