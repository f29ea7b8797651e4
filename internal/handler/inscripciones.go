package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Estefan29/frontend-eventos-sub000/internal/dto"
	"github.com/Estefan29/frontend-eventos-sub000/internal/middleware"
	"github.com/Estefan29/frontend-eventos-sub000/internal/remote"
	"github.com/Estefan29/frontend-eventos-sub000/internal/service"
)

type InscripcionesHandler struct {
	api          remote.InscripcionesAPI
	comprobantes *service.ComprobanteService
}

func NewInscripcionesHandler(api remote.InscripcionesAPI, comprobantes *service.ComprobanteService) *InscripcionesHandler {
	return &InscripcionesHandler{api: api, comprobantes: comprobantes}
}

func (h *InscripcionesHandler) ListarPropias(c *gin.Context) {
	ins, err := h.api.ListarPropias(c.Request.Context(), middleware.GetStore(c))
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, ins)
}

// ListarTodas is the admin-wide listing behind RequireAccesoTotal.
func (h *InscripcionesHandler) ListarTodas(c *gin.Context) {
	ins, err := h.api.ListarTodas(c.Request.Context(), middleware.GetStore(c))
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, ins)
}

// Crear registers the current user in an event. When the remote API
// confirms on the spot, the receipt email is enqueued right away; a
// failure to enqueue never fails the inscription itself.
func (h *InscripcionesHandler) Crear(c *gin.Context) {
	var req dto.CrearInscripcionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	st := middleware.GetStore(c)
	ins, err := h.api.Crear(c.Request.Context(), st, req.EventoID)
	if err != nil {
		relayError(c, err)
		return
	}

	if ins.Estado == "confirmada" {
		if err := h.comprobantes.EnviarPorEmail(c.Request.Context(), st, ins.ID); err != nil {
			log.Warn().Err(err).Str("inscripcion_id", ins.ID).Msg("inscripciones: could not enqueue receipt")
		}
	}
	c.JSON(http.StatusCreated, ins)
}

func (h *InscripcionesHandler) Cancelar(c *gin.Context) {
	if err := h.api.Cancelar(c.Request.Context(), middleware.GetStore(c), c.Param("id")); err != nil {
		relayError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DescargarComprobante serves the receipt PDF for one of the user's
// inscriptions.
func (h *InscripcionesHandler) DescargarComprobante(c *gin.Context) {
	path, err := h.comprobantes.GenerarPDF(c.Request.Context(), middleware.GetStore(c), c.Param("id"))
	if err != nil {
		relayError(c, err)
		return
	}
	c.FileAttachment(path, "comprobante.pdf")
}

// EnviarComprobante re-sends the receipt email on demand.
func (h *InscripcionesHandler) EnviarComprobante(c *gin.Context) {
	if err := h.comprobantes.EnviarPorEmail(c.Request.Context(), middleware.GetStore(c), c.Param("id")); err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"detail": "Comprobante en camino a su correo."})
}
