package handler

import (
	"github.com/99minutos/shipment-sync/internal/core/domain"
	"github.com/99minutos/shipment-sync/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createShipmentRequest) ports.CreateShipmentInput {
	return ports.CreateShipmentInput{
		Origin:      req.Origin,
		Destination: req.Destination,
		Weight:      req.Weight,
		Description: req.Description,
	}
}

// --- Service result → HTTP response ---

func toShipmentResponse(s domain.Shipment) shipmentResponse {
	return shipmentResponse{
		ID:          s.ID,
		Origin:      s.Origin,
		Destination: s.Destination,
		Weight:      s.Weight,
		Description: s.Description,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt.UTC(),
		Links:       shipmentLinks{Self: "/v1/shipments/" + s.ID},
	}
}

func toCreateResponse(s *domain.Shipment) createShipmentResponse {
	offline := s.Status == domain.StatusPending
	msg := "Shipment created and synced"
	if offline {
		msg = "Shipment saved offline. Will sync when online"
	}
	return createShipmentResponse{
		Shipment:     toShipmentResponse(*s),
		SavedOffline: offline,
		Message:      msg,
	}
}

func toListResponse(items []domain.Shipment, status domain.SyncStatus, pending int) listShipmentsResponse {
	resp := listShipmentsResponse{
		Data:    make([]shipmentResponse, 0, len(items)),
		Pending: pending,
	}
	for _, s := range items {
		if status != "" && s.Status != status {
			continue
		}
		resp.Data = append(resp.Data, toShipmentResponse(s))
	}
	resp.Total = len(resp.Data)
	return resp
}

func toSyncReportResponse(r domain.SyncReport) *syncReportResponse {
	out := &syncReportResponse{
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		Attempted:  r.Attempted,
		Synced:     r.Synced,
		Failed:     r.Failed,
		Results:    make([]deliveryResultResponse, 0, len(r.Results)),
	}
	for _, res := range r.Results {
		out.Results = append(out.Results, deliveryResultResponse{
			ShipmentID: res.ShipmentID,
			Outcome:    string(res.Outcome),
			Error:      res.Error,
		})
	}
	return out
}
