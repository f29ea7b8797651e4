package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Estefan29/frontend-eventos-sub000/internal/dto"
	"github.com/Estefan29/frontend-eventos-sub000/internal/middleware"
	"github.com/Estefan29/frontend-eventos-sub000/internal/remote"
)

type PagosHandler struct{ api remote.PagosAPI }

func NewPagosHandler(api remote.PagosAPI) *PagosHandler {
	return &PagosHandler{api: api}
}

func (h *PagosHandler) ListarPropios(c *gin.Context) {
	pagos, err := h.api.ListarPropios(c.Request.Context(), middleware.GetStore(c))
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, pagos)
}

// ListarTodos is the admin-wide listing behind RequireAccesoTotal.
func (h *PagosHandler) ListarTodos(c *gin.Context) {
	pagos, err := h.api.ListarTodos(c.Request.Context(), middleware.GetStore(c))
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, pagos)
}

func (h *PagosHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	pago, err := h.api.Registrar(c.Request.Context(), middleware.GetStore(c), remote.PagoPayload{
		InscripcionID: req.InscripcionID,
		Monto:         req.Monto.String(),
		Metodo:        req.Metodo,
	})
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pago)
}

func (h *PagosHandler) Obtener(c *gin.Context) {
	pago, err := h.api.Obtener(c.Request.Context(), middleware.GetStore(c), c.Param("id"))
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, pago)
}
