package remote

import (
	"context"
	"net/http"

	"github.com/Estefan29/frontend-eventos-sub000/internal/gate"
	"github.com/Estefan29/frontend-eventos-sub000/internal/model"
	"github.com/Estefan29/frontend-eventos-sub000/internal/session"
)

// UsuariosAPI is the user-administration resource (full-access tier only;
// the remote API enforces that server-side as well).
type UsuariosAPI interface {
	Listar(ctx context.Context, st *session.Store) ([]model.Usuario, error)
	Obtener(ctx context.Context, st *session.Store, id string) (*model.Usuario, error)
	Crear(ctx context.Context, st *session.Store, p UsuarioPayload) (*model.Usuario, error)
	Actualizar(ctx context.Context, st *session.Store, id string, p UsuarioPayload) (*model.Usuario, error)
	Eliminar(ctx context.Context, st *session.Store, id string) error
}

// UsuarioPayload carries admin user create/update fields.
type UsuarioPayload struct {
	Nombre   string `json:"nombre,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Rol      string `json:"rol,omitempty"`
	Telefono string `json:"telefono,omitempty"`
	Programa string `json:"programa,omitempty"`
}

type usuariosAPI struct{ c *Client }

func NewUsuariosAPI(c *Client) UsuariosAPI { return &usuariosAPI{c: c} }

func (u *usuariosAPI) Listar(ctx context.Context, st *session.Store) ([]model.Usuario, error) {
	var usuarios []model.Usuario
	err := u.c.do(ctx, st, gate.VistaGestionUsuarios, llamada{
		metodo:    http.MethodGet,
		ruta:      "/usuarios",
		resultado: &usuarios,
	})
	return usuarios, err
}

func (u *usuariosAPI) Obtener(ctx context.Context, st *session.Store, id string) (*model.Usuario, error) {
	var usuario model.Usuario
	err := u.c.do(ctx, st, gate.VistaGestionUsuarios, llamada{
		metodo:    http.MethodGet,
		ruta:      "/usuarios/" + id,
		resultado: &usuario,
	})
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (u *usuariosAPI) Crear(ctx context.Context, st *session.Store, p UsuarioPayload) (*model.Usuario, error) {
	var usuario model.Usuario
	err := u.c.do(ctx, st, gate.VistaGestionUsuarios, llamada{
		metodo:    http.MethodPost,
		ruta:      "/usuarios",
		cuerpo:    p,
		resultado: &usuario,
	})
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (u *usuariosAPI) Actualizar(ctx context.Context, st *session.Store, id string, p UsuarioPayload) (*model.Usuario, error) {
	var usuario model.Usuario
	err := u.c.do(ctx, st, gate.VistaGestionUsuarios, llamada{
		metodo:    http.MethodPut,
		ruta:      "/usuarios/" + id,
		cuerpo:    p,
		resultado: &usuario,
	})
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (u *usuariosAPI) Eliminar(ctx context.Context, st *session.Store, id string) error {
	return u.c.do(ctx, st, gate.VistaGestionUsuarios, llamada{
		metodo: http.MethodDelete,
		ruta:   "/usuarios/" + id,
	})
}
