package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/shipment-sync/internal/core/ports"
)

// ConnectivitySwitch is implemented by oracles whose state can be set by hand.
type ConnectivitySwitch interface {
	Set(online bool)
}

// ConnectivityHandler reports and, in manual mode, overrides reachability.
type ConnectivityHandler struct {
	oracle ports.ConnectivityOracle
	sw     ConnectivitySwitch
}

// NewConnectivityHandler builds the handler. sw may be nil when the oracle
// probes the network on its own.
func NewConnectivityHandler(oracle ports.ConnectivityOracle, sw ConnectivitySwitch) *ConnectivityHandler {
	return &ConnectivityHandler{oracle: oracle, sw: sw}
}

// Get handles GET /v1/connectivity.
//
// @Summary      Current connectivity snapshot
// @Tags         connectivity
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  connectivityResponse
// @Router       /v1/connectivity [get]
func (h *ConnectivityHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, connectivityResponse{Online: h.oracle.CurrentlyOnline(c.Request().Context())})
}

// Set handles PUT /v1/connectivity. Going online fires the transition listeners.
//
// @Summary      Override connectivity (manual mode only)
// @Tags         connectivity
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      setConnectivityRequest  true  "New state"
// @Success      200   {object}  connectivityResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/connectivity [put]
func (h *ConnectivityHandler) Set(c echo.Context) error {
	if h.sw == nil {
		return echo.NewHTTPError(http.StatusConflict, "connectivity is probed automatically")
	}

	var req setConnectivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	h.sw.Set(*req.Online)
	return c.JSON(http.StatusOK, connectivityResponse{Online: h.oracle.CurrentlyOnline(c.Request().Context())})
}
