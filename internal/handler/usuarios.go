package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Estefan29/frontend-eventos-sub000/internal/dto"
	"github.com/Estefan29/frontend-eventos-sub000/internal/middleware"
	"github.com/Estefan29/frontend-eventos-sub000/internal/remote"
)

// UsuariosHandler covers Gestión de Usuarios. The whole group sits behind
// RequireAccesoTotal; the remote API enforces the same tier on its side.
type UsuariosHandler struct{ api remote.UsuariosAPI }

func NewUsuariosHandler(api remote.UsuariosAPI) *UsuariosHandler {
	return &UsuariosHandler{api: api}
}

func (h *UsuariosHandler) Listar(c *gin.Context) {
	usuarios, err := h.api.Listar(c.Request.Context(), middleware.GetStore(c))
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, usuarios)
}

func (h *UsuariosHandler) Obtener(c *gin.Context) {
	usuario, err := h.api.Obtener(c.Request.Context(), middleware.GetStore(c), c.Param("id"))
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, usuario)
}

func (h *UsuariosHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuario, err := h.api.Crear(c.Request.Context(), middleware.GetStore(c), remote.UsuarioPayload{
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
	c.JSON(http.StatusCreated, usuario)
}

func (h *UsuariosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuario, err := h.api.Actualizar(c.Request.Context(), middleware.GetStore(c), c.Param("id"), remote.UsuarioPayload{
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
	c.JSON(http.StatusOK, usuario)
}

func (h *UsuariosHandler) Eliminar(c *gin.Context) {
	if err := h.api.Eliminar(c.Request.Context(), middleware.GetStore(c), c.Param("id")); err != nil {
		relayError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
