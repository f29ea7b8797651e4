package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Estefan29/frontend-eventos-sub000/internal/dto"
	"github.com/Estefan29/frontend-eventos-sub000/internal/middleware"
	"github.com/Estefan29/frontend-eventos-sub000/internal/remote"
)

type EventosHandler struct{ api remote.EventosAPI }

func NewEventosHandler(api remote.EventosAPI) *EventosHandler {
	return &EventosHandler{api: api}
}

func (h *EventosHandler) Listar(c *gin.Context) {
	filtro := map[string]string{}
	if v := c.Query("categoria"); v != "" {
		filtro["categoria"] = v
	}
	if v := c.Query("buscar"); v != "" {
		filtro["buscar"] = v
	}
	eventos, err := h.api.Listar(c.Request.Context(), middleware.GetStore(c), filtro)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, eventos)
}

func (h *EventosHandler) Obtener(c *gin.Context) {
	evento, err := h.api.Obtener(c.Request.Context(), middleware.GetStore(c), c.Param("id"))
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, evento)
}

func (h *EventosHandler) Crear(c *gin.Context) {
	var req dto.CrearEventoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	evento, err := h.api.Crear(c.Request.Context(), middleware.GetStore(c), payloadEvento(req.Titulo, req.Descripcion, req.Lugar, req.Categoria, req.FechaInicio, req.FechaFin, req.Capacidad, req.Costo.String(), req.Publicado))
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusCreated, evento)
}

func (h *EventosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarEventoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	evento, err := h.api.Actualizar(c.Request.Context(), middleware.GetStore(c), c.Param("id"), payloadEvento(req.Titulo, req.Descripcion, req.Lugar, req.Categoria, req.FechaInicio, req.FechaFin, req.Capacidad, req.Costo.String(), req.Publicado))
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, evento)
}

func (h *EventosHandler) Eliminar(c *gin.Context) {
	if err := h.api.Eliminar(c.Request.Context(), middleware.GetStore(c), c.Param("id")); err != nil {
		relayError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func payloadEvento(titulo, descripcion, lugar, categoria, inicio, fin string, capacidad int, costo string, publicado bool) remote.EventoPayload {
	return remote.EventoPayload{
		Titulo:      titulo,
		Descripcion: descripcion,
		Lugar:       lugar,
		Categoria:   categoria,
		FechaInicio: inicio,
		FechaFin:    fin,
		Capacidad:   capacidad,
		Costo:       costo,
		Publicado:   publicado,
	}
}
