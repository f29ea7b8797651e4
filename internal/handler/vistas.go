package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Estefan29/frontend-eventos-sub000/internal/apierror"
	"github.com/Estefan29/frontend-eventos-sub000/internal/dto"
	"github.com/Estefan29/frontend-eventos-sub000/internal/gate"
	"github.com/Estefan29/frontend-eventos-sub000/internal/middleware"
	"github.com/Estefan29/frontend-eventos-sub000/internal/roles"
)

// VistasHandler turns gate decisions into responses. The admin routes stay
// reachable for every authenticated user; what changes is the content: the
// view descriptor, or the access-denied body naming the section and role.
type VistasHandler struct{}

func NewVistasHandler() *VistasHandler { return &VistasHandler{} }

func (h *VistasHandler) Resolver(c *gin.Context) {
	snap := middleware.GetStore(c).Snapshot()
	decision := gate.Decidir(snap, gate.Vista(c.Param("vista")))

	switch decision.Tipo {
	case gate.RedirigirLogin:
		c.Redirect(http.StatusSeeOther, middleware.RutaLogin)

	case gate.AccesoDenegado:
		c.JSON(http.StatusForbidden, apierror.NewAccesoDenegado(decision.Seccion, decision.Rol))

	default:
		c.JSON(http.StatusOK, dto.VistaResponse{
			Vista:       string(decision.Vista),
			Capacidades: roles.Resolver(snap.Usuario.Rol),
		})
	}
}
