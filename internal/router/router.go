package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Estefan29/frontend-eventos-sub000/internal/config"
	"github.com/Estefan29/frontend-eventos-sub000/internal/handler"
	"github.com/Estefan29/frontend-eventos-sub000/internal/infra"
	"github.com/Estefan29/frontend-eventos-sub000/internal/middleware"
	"github.com/Estefan29/frontend-eventos-sub000/internal/remote"
	"github.com/Estefan29/frontend-eventos-sub000/internal/service"
	"github.com/Estefan29/frontend-eventos-sub000/internal/session"
	"github.com/Estefan29/frontend-eventos-sub000/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Remote API client ← Session store
func New(cfg *config.Config, rdb *redis.Client, api *remote.Client, dispatcher *worker.Dispatcher, mailCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters): the session hydrates last
	// so every log line already carries a request_id.
	persister := session.NewRedisPersister(rdb, time.Duration(cfg.SessionTTLHours)*time.Hour)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))
	r.Use(middleware.Sesion(persister, cfg.CookieNombre, cfg.CookieSegura))

	// ── Remote resource clients ──────────────────────────────────────────────
	authAPI := remote.NewAuthAPI(api)
	eventosAPI := remote.NewEventosAPI(api)
	inscripcionesAPI := remote.NewInscripcionesAPI(api)
	pagosAPI := remote.NewPagosAPI(api)
	usuariosAPI := remote.NewUsuariosAPI(api)

	// ── Services ─────────────────────────────────────────────────────────────
	dashboardSvc := service.NewDashboardService(eventosAPI, inscripcionesAPI, pagosAPI)
	comprobanteSvc := service.NewComprobanteService(inscripcionesAPI, eventosAPI, dispatcher, cfg.PDFStoragePath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authAPI, cfg.DominiosPermitidos())
	vistasH := handler.NewVistasHandler()
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	eventosH := handler.NewEventosHandler(eventosAPI)
	inscripcionesH := handler.NewInscripcionesHandler(inscripcionesAPI, comprobanteSvc)
	pagosH := handler.NewPagosHandler(pagosAPI)
	usuariosH := handler.NewUsuariosHandler(usuariosAPI)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(rdb, api, mailCB))

	// Public surface: login entry and password reset via emailed token.
	r.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	r.POST("/registro", authH.Registrar)
	r.POST("/recuperar-password", authH.RecuperarPassword)
	r.POST("/reset-password", authH.ResetPassword)

	// Session introspection is reachable either way: the page layer asks
	// it on boot to decide between login and dashboard.
	r.GET("/sesion", authH.Sesion)

	// Protected subtree — everything below redirects anonymous visitors
	// to /login.
	priv := r.Group("/", middleware.RequireAutenticada())
	{
		priv.POST("/logout", authH.Logout)
		priv.PUT("/perfil", authH.ActualizarPerfil)
		priv.PUT("/password", authH.CambiarPassword)

		// Navigation gate: allow, substitute access-denied, or redirect.
		priv.GET("/vistas/:vista", vistasH.Resolver)

		priv.GET("/dashboard", dashboardH.Resumen)

		priv.GET("/eventos", eventosH.Listar)
		priv.GET("/eventos/:id", eventosH.Obtener)

		priv.GET("/inscripciones/propias", inscripcionesH.ListarPropias)
		priv.POST("/inscripciones", inscripcionesH.Crear)
		priv.DELETE("/inscripciones/:id", inscripcionesH.Cancelar)
		priv.GET("/inscripciones/:id/comprobante", inscripcionesH.DescargarComprobante)
		priv.POST("/inscripciones/:id/comprobante/enviar", inscripcionesH.EnviarComprobante)

		priv.GET("/pagos/propios", pagosH.ListarPropios)
		priv.POST("/pagos", pagosH.Registrar)

		// Administration — full-access tier (admin, administrativo).
		eventosAdmin := priv.Group("/eventos", middleware.RequireAccesoTotal("Gestión de Eventos"))
		{
			eventosAdmin.POST("", eventosH.Crear)
			eventosAdmin.PUT("/:id", eventosH.Actualizar)
			eventosAdmin.DELETE("/:id", eventosH.Eliminar)
		}

		priv.GET("/inscripciones", middleware.RequireAccesoTotal("Gestión de Inscripciones"), inscripcionesH.ListarTodas)

		pagosAdmin := priv.Group("/pagos", middleware.RequireAccesoTotal("Gestión de Pagos"))
		{
			pagosAdmin.GET("", pagosH.ListarTodos)
			pagosAdmin.GET("/:id", pagosH.Obtener)
		}

		usuarios := priv.Group("/usuarios", middleware.RequireAccesoTotal("Gestión de Usuarios"))
		{
			usuarios.GET("", usuariosH.Listar)
			usuarios.GET("/:id", usuariosH.Obtener)
			usuarios.POST("", usuariosH.Crear)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Eliminar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
