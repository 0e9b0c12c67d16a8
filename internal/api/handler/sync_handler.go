package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/shipment-sync/internal/core/ports"
)

// SyncHandler exposes the manual refresh trigger.
type SyncHandler struct {
	service ports.ShipmentService
}

func NewSyncHandler(service ports.ShipmentService) *SyncHandler {
	return &SyncHandler{service: service}
}

// Sync handles POST /v1/sync — runs a sync pass and waits for it, the
// equivalent of pull-to-refresh. Delivery failures are reported, never returned as errors.
//
// @Summary      Sync pending shipments now
// @Tags         sync
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  syncResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/sync [post]
func (h *SyncHandler) Sync(c echo.Context) error {
	report, ran := h.service.TriggerSync(c.Request().Context())
	if !ran {
		return c.JSON(http.StatusOK, syncResponse{Ran: false, Message: "offline, sync skipped"})
	}
	return c.JSON(http.StatusOK, syncResponse{
		Ran:     true,
		Message: "sync pass completed",
		Report:  toSyncReportResponse(report),
	})
}
