package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Estefan29/frontend-eventos-sub000/internal/apierror"
	"github.com/Estefan29/frontend-eventos-sub000/internal/dto"
	"github.com/Estefan29/frontend-eventos-sub000/internal/middleware"
	"github.com/Estefan29/frontend-eventos-sub000/internal/remote"
	"github.com/Estefan29/frontend-eventos-sub000/internal/roles"
	"github.com/Estefan29/frontend-eventos-sub000/internal/session"
)

// timeNow is a seam so tests can pin the reset-link expiry check.
var timeNow = time.Now

type AuthHandler struct {
	api remote.AuthAPI
	// dominiosPermitidos is the optional registration allowlist. A typo
	// check for institutional addresses, not real verification.
	dominiosPermitidos []string
}

func NewAuthHandler(api remote.AuthAPI, dominiosPermitidos []string) *AuthHandler {
	return &AuthHandler{api: api, dominiosPermitidos: dominiosPermitidos}
}

// Login godoc
// @Summary Login contra la plataforma de eventos
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.SesionResponse
// @Failure 401 {object} apierror.APIError
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	st := middleware.GetStore(c)
	resp, err := h.api.Login(c.Request.Context(), st, req.Email, req.Password)
	if err != nil {
		// On the login route a 401 means bad credentials, not an expired
		// session; it surfaces inline, never as a redirect.
		var expirada *remote.ErrSesionExpirada
		if errors.As(err, &expirada) {
			c.JSON(http.StatusUnauthorized, apierror.New("Credenciales invalidas"))
			return
		}
		relayError(c, err)
		return
	}

	st.Login(&resp.Usuario, resp.Token)
	c.JSON(http.StatusOK, sesionResponse(st))
}

// Logout clears the session. Idempotent: logging out twice is fine.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.GetStore(c).Logout()
	c.Status(http.StatusNoContent)
}

// Sesion reports the current session so the page layer can restore its
// state after a reload. The bearer token never leaves the portal.
func (h *AuthHandler) Sesion(c *gin.Context) {
	c.JSON(http.StatusOK, sesionResponse(middleware.GetStore(c)))
}

func (h *AuthHandler) Registrar(c *gin.Context) {
	var req dto.RegistroRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if req.Password != req.ConfirmarPassword {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(map[string]string{"confirmar_password": "no coincide"}))
		return
	}
	if !h.dominioPermitido(req.Email) {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(map[string]string{"email": "dominio no permitido"}))
		return
	}

	err := h.api.Registrar(c.Request.Context(), middleware.GetStore(c), remote.RegistroPayload{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Password: req.Password,
		Rol:      req.Rol,
		Telefono: req.Telefono,
		Programa: req.Programa,
	})
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"detail": "Cuenta creada. Ya puede iniciar sesion."})
}

func (h *AuthHandler) RecuperarPassword(c *gin.Context) {
	var req dto.RecuperarRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.api.RecuperarPassword(c.Request.Context(), middleware.GetStore(c), req.Email); err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Si el correo existe, recibira un enlace de recuperacion."})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if req.Password != req.ConfirmarPassword {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(map[string]string{"confirmar_password": "no coincide"}))
		return
	}
	// Decode the emailed token WITHOUT verifying it: only the remote API
	// can judge it, but an already-expired link can be told apart here,
	// saving the round-trip and giving a clearer message.
	if enlaceExpirado(req.Token) {
		c.JSON(http.StatusBadRequest, apierror.New("El enlace de recuperacion expiro. Solicite uno nuevo."))
		return
	}

	if err := h.api.ResetPassword(c.Request.Context(), middleware.GetStore(c), req.Token, req.Password); err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Contrasena restablecida. Ya puede iniciar sesion."})
}

func (h *AuthHandler) CambiarPassword(c *gin.Context) {
	var req dto.CambiarPasswordRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if req.PasswordNueva != req.ConfirmarPassword {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(map[string]string{"confirmar_password": "no coincide"}))
		return
	}
	if err := h.api.CambiarPassword(c.Request.Context(), middleware.GetStore(c), req.PasswordActual, req.PasswordNueva); err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Contrasena actualizada."})
}

// ActualizarPerfil edits the profile and refreshes the cached user so the
// UI reflects the new values without forcing a re-login.
func (h *AuthHandler) ActualizarPerfil(c *gin.Context) {
	var req dto.PerfilRequest
	if !bindAndValidate(c, &req) {
		return
	}
	st := middleware.GetStore(c)
	usuario, err := h.api.ActualizarPerfil(c.Request.Context(), st, remote.PerfilPayload{
		Nombre:   req.Nombre,
		Telefono: req.Telefono,
		Programa: req.Programa,
	})
	if err != nil {
		relayError(c, err)
		return
	}
	st.ActualizarUsuario(usuario)
	c.JSON(http.StatusOK, usuario)
}

func (h *AuthHandler) dominioPermitido(email string) bool {
	if len(h.dominiosPermitidos) == 0 {
		return true
	}
	arroba := strings.LastIndex(email, "@")
	if arroba < 0 {
		return false
	}
	dominio := strings.ToLower(email[arroba+1:])
	for _, d := range h.dominiosPermitidos {
		if dominio == d {
			return true
		}
	}
	return false
}

// enlaceExpirado reports whether the reset token is a JWT whose exp claim
// already passed. Unparseable tokens are left for the remote API to reject.
func enlaceExpirado(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Time.Before(timeNow())
}

func sesionResponse(st *session.Store) dto.SesionResponse {
	snap := st.Snapshot()
	resp := dto.SesionResponse{Usuario: snap.Usuario, Autenticada: snap.Autenticada}
	if snap.Usuario != nil {
		resp.Capacidades = roles.Resolver(snap.Usuario.Rol)
	}
	return resp
}
