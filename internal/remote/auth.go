package remote

import (
	"context"
	"net/http"

	"github.com/Estefan29/frontend-eventos-sub000/internal/gate"
	"github.com/Estefan29/frontend-eventos-sub000/internal/model"
	"github.com/Estefan29/frontend-eventos-sub000/internal/session"
)

// AuthAPI covers the authentication endpoints of the remote platform.
type AuthAPI interface {
	Login(ctx context.Context, st *session.Store, email, password string) (*RespuestaLogin, error)
	Registrar(ctx context.Context, st *session.Store, p RegistroPayload) error
	RecuperarPassword(ctx context.Context, st *session.Store, email string) error
	ResetPassword(ctx context.Context, st *session.Store, token, password string) error
	CambiarPassword(ctx context.Context, st *session.Store, actual, nueva string) error
	ActualizarPerfil(ctx context.Context, st *session.Store, p PerfilPayload) (*model.Usuario, error)
}

// RespuestaLogin is the wire shape of a successful login.
type RespuestaLogin struct {
	Usuario model.Usuario `json:"usuario"`
	Token   string        `json:"token"`
}

// RegistroPayload carries the new-account fields.
type RegistroPayload struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
	Telefono string `json:"telefono,omitempty"`
	Programa string `json:"programa,omitempty"`
}

// PerfilPayload carries a partial profile edit.
type PerfilPayload struct {
	Nombre   string `json:"nombre,omitempty"`
	Telefono string `json:"telefono,omitempty"`
	Programa string `json:"programa,omitempty"`
}

type authAPI struct{ c *Client }

func NewAuthAPI(c *Client) AuthAPI { return &authAPI{c: c} }

func (a *authAPI) Login(ctx context.Context, st *session.Store, email, password string) (*RespuestaLogin, error) {
	var resp RespuestaLogin
	err := a.c.do(ctx, st, gate.VistaLogin, llamada{
		metodo:    http.MethodPost,
		ruta:      "/auth/login",
		cuerpo:    map[string]string{"email": email, "password": password},
		resultado: &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *authAPI) Registrar(ctx context.Context, st *session.Store, p RegistroPayload) error {
	return a.c.do(ctx, st, gate.VistaLogin, llamada{
		metodo: http.MethodPost,
		ruta:   "/auth/registro",
		cuerpo: p,
	})
}

func (a *authAPI) RecuperarPassword(ctx context.Context, st *session.Store, email string) error {
	return a.c.do(ctx, st, gate.VistaLogin, llamada{
		metodo: http.MethodPost,
		ruta:   "/auth/recuperar",
		cuerpo: map[string]string{"email": email},
	})
}

func (a *authAPI) ResetPassword(ctx context.Context, st *session.Store, token, password string) error {
	return a.c.do(ctx, st, gate.VistaResetPassword, llamada{
		metodo: http.MethodPost,
		ruta:   "/auth/reset",
		cuerpo: map[string]string{"token": token, "password": password},
	})
}

func (a *authAPI) CambiarPassword(ctx context.Context, st *session.Store, actual, nueva string) error {
	return a.c.do(ctx, st, gate.VistaAjustes, llamada{
		metodo: http.MethodPut,
		ruta:   "/auth/password",
		cuerpo: map[string]string{"password_actual": actual, "password_nueva": nueva},
	})
}

func (a *authAPI) ActualizarPerfil(ctx context.Context, st *session.Store, p PerfilPayload) (*model.Usuario, error) {
	var u model.Usuario
	err := a.c.do(ctx, st, gate.VistaAjustes, llamada{
		metodo:    http.MethodPut,
		ruta:      "/auth/perfil",
		cuerpo:    p,
		resultado: &u,
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}
