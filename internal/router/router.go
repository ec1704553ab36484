package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/config"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/handler"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/impresora"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/middleware"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/repository"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/service"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/ticket"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← data files
func New(cfg *config.Config) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	printerStore := impresora.NewConfigStore(cfg.DataDir)
	printer := impresora.NewManager(printerStore)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(cfg.DataDir)
	catalogoRepo := repository.NewCatalogoRepository(cfg.DataDir)
	corteRepo := repository.NewCorteRepository(cfg.DataDir)

	// ── Domain state ─────────────────────────────────────────────────────────
	// One ticket and one day counter: the terminal serves a single counter.
	tick := ticket.Nuevo()
	dia := service.NewDiaVentas()

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	ticketSvc := service.NewTicketService(tick, catalogoRepo)
	pagoSvc := service.NewPagoService(tick, dia, printer)
	corteSvc := service.NewCorteService(dia, corteRepo, printer)
	reporteSvc := service.NewReporteService(corteRepo)
	menuSvc := service.NewMenuService(catalogoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	ticketH := handler.NewTicketHandler(ticketSvc)
	pagoH := handler.NewPagoHandler(pagoSvc)
	corteH := handler.NewCorteHandler(corteSvc)
	reportesH := handler.NewReportesHandler(reporteSvc, cfg.PDFStoragePath)
	menuH := handler.NewMenuHandler(menuSvc)
	impresoraH := handler.NewImpresoraHandler(printerStore, printer)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(cfg.DataDir))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Ticket — any signed-in operator
		v1.GET("/ticket", ticketH.Ver)
		v1.POST("/ticket/items", ticketH.Agregar)
		v1.PUT("/ticket/items/:index", ticketH.Editar)
		v1.DELETE("/ticket/items/:index", ticketH.Quitar)
		v1.DELETE("/ticket", ticketH.Cancelar)
		v1.GET("/categorias", ticketH.Categorias)

		// Payment
		v1.POST("/pago", pagoH.Cobrar)
		v1.GET("/pago/preview", pagoH.Preview)

		// Daily cut
		v1.POST("/corte", corteH.Realizar)
		v1.GET("/corte/preview", corteH.Preview)

		// Reports
		reportes := v1.Group("/reportes")
		{
			reportes.GET("", reportesH.Totales)
			reportes.GET("/cortes", reportesH.Cortes)
			reportes.GET("/mes/:mes", reportesH.PorMes)
			reportes.GET("/mes/:mes/pdf", reportesH.PDF)
		}

		// Menu editing — administrador only
		menu := v1.Group("/menu", middleware.RequireRole("administrador"))
		{
			menu.GET("/:familia", menuH.Ver)
			menu.PUT("/:familia", menuH.Guardar)
			menu.POST("/:familia", menuH.Agregar)
			menu.DELETE("/:familia/:nombre", menuH.Quitar)
		}

		// Printer — administrador only
		imp := v1.Group("/impresora", middleware.RequireRole("administrador"))
		{
			imp.GET("/config", impresoraH.VerConfig)
			imp.PUT("/config", impresoraH.GuardarConfig)
			imp.POST("/prueba", impresoraH.Probar)
			imp.POST("/detectar", impresoraH.Detectar)
			imp.GET("/detectadas", impresoraH.Detectadas)
		}

		// Operators — administrador only
		usuarios := v1.Group("/usuarios", middleware.RequireRole("administrador"))
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
