package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Estefan29/frontend-eventos-sub000/internal/middleware"
	"github.com/Estefan29/frontend-eventos-sub000/internal/service"
)

type DashboardHandler struct{ svc *service.DashboardService }

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Resumen(c *gin.Context) {
	resumen, err := h.svc.Resumen(c.Request.Context(), middleware.GetStore(c))
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resumen)
}
