package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Estefan29/frontend-eventos-sub000/internal/model"
	"github.com/Estefan29/frontend-eventos-sub000/internal/roles"
)

// Store is the single source of truth for "who is logged in" within one
// browser session. Instances are constructor-built and dependency-passed —
// there is no package-level singleton, so tests can run isolated sessions.
//
// Every mutation replaces a complete, disjoint slice of the triple and then
// writes the whole record through the Persister. Persistence failures are
// logged and never surfaced to the mutation caller: the in-memory snapshot
// is authoritative for the lifetime of the request.
type Store struct {
	id      string
	mu      sync.RWMutex
	actual  Sesion
	persist Persister
}

// NewStore creates an empty (anonymous) store for the given session ID.
func NewStore(id string, p Persister) *Store {
	return &Store{id: id, persist: p}
}

// Rehidratar loads the persisted record for id, re-validates the
// authenticated invariant, and returns a live store. A missing record
// yields an anonymous store.
func Rehidratar(ctx context.Context, id string, p Persister) *Store {
	st := NewStore(id, p)
	s, err := p.Cargar(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("sesion_id", id).Msg("session: rehydration failed, starting anonymous")
		return st
	}
	if s != nil {
		s.normalizar()
		st.actual = *s
	}
	return st
}

// ID returns the opaque session identifier (the cookie value).
func (st *Store) ID() string { return st.id }

// Login unconditionally sets the full triple. The caller is trusted: it runs
// only after a successful login round-trip to the remote API.
func (st *Store) Login(usuario *model.Usuario, token string) {
	st.mu.Lock()
	st.actual = Sesion{Usuario: usuario, Token: token}
	st.actual.normalizar()
	copia := st.actual
	st.mu.Unlock()
	st.guardar(copia)
}

// Logout unconditionally clears the triple. Used both for user-initiated
// logout and for the forced logout on a 401 from the remote API. Idempotent.
func (st *Store) Logout() {
	st.mu.Lock()
	st.actual = Sesion{}
	st.mu.Unlock()
	st.guardar(Sesion{})
}

// ActualizarUsuario replaces the cached user record after a profile edit.
// Token and authenticated flag are left untouched.
func (st *Store) ActualizarUsuario(usuario *model.Usuario) {
	st.mu.Lock()
	st.actual.Usuario = usuario
	st.actual.normalizar()
	copia := st.actual
	st.mu.Unlock()
	st.guardar(copia)
}

// Snapshot returns a copy of the current triple for pure consumers
// (route gate, outbound request hooks, page rendering).
func (st *Store) Snapshot() Sesion {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.actual
}

// EsAdmin reports whether the current user has the full-access tier.
// Delegates to the roles resolver so "administrativo" counts everywhere.
func (st *Store) EsAdmin() bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.actual.Usuario != nil && roles.EsAdministrador(st.actual.Usuario.Rol)
}

func (st *Store) guardar(s Sesion) {
	if st.persist == nil {
		return
	}
	if err := st.persist.Guardar(context.Background(), st.id, s); err != nil {
		log.Error().Err(err).Str("sesion_id", st.id).Msg("session: persist failed")
	}
}
