package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/shipment-sync/docs"
	"github.com/99minutos/shipment-sync/internal/api/handler"
	"github.com/99minutos/shipment-sync/internal/api/middleware"
	"github.com/99minutos/shipment-sync/internal/core/ports"
)

// Dependencies groups everything the HTTP layer needs.
type Dependencies struct {
	Shipments    ports.ShipmentService
	Connectivity ports.ConnectivityOracle
	// Switch is set only when connectivity is controlled by hand.
	Switch    handler.ConnectivitySwitch
	Readiness map[string]handler.Pinger
	// JWTSecret protects /v1 when non-empty.
	JWTSecret string
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Log))

	// --- Handlers ---
	shipmentHandler := handler.NewShipmentHandler(deps.Shipments)
	syncHandler := handler.NewSyncHandler(deps.Shipments)
	connectivityHandler := handler.NewConnectivityHandler(deps.Connectivity, deps.Switch)

	// --- Health probes, metrics and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – is the storage medium up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API v1 ---
	v1 := e.Group("/v1")
	if deps.JWTSecret != "" {
		v1.Use(middleware.Auth(deps.JWTSecret))
	}

	v1.POST("/shipments", shipmentHandler.Create)
	v1.GET("/shipments", shipmentHandler.List)
	v1.GET("/shipments/:id", shipmentHandler.Get)
	v1.POST("/sync", syncHandler.Sync)
	v1.GET("/connectivity", connectivityHandler.Get)
	v1.PUT("/connectivity", connectivityHandler.Set)

	return e
}
