package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createShipmentRequest struct {
	Origin      string  `json:"origin"      validate:"required"`
	Destination string  `json:"destination" validate:"required"`
	Weight      float64 `json:"weight"      validate:"required,gt=0"`
	Description string  `json:"description"`
}

type shipmentLinks struct {
	Self string `json:"self"`
}

// Response-only types owned by the transport layer.
// These are intentionally separate from domain types so the JSON
// contract is not coupled to internal service changes.

type shipmentResponse struct {
	ID          string        `json:"id"`
	Origin      string        `json:"origin"`
	Destination string        `json:"destination"`
	Weight      float64       `json:"weight"`
	Description string        `json:"description"`
	Status      string        `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	Links       shipmentLinks `json:"_links"`
}

type createShipmentResponse struct {
	Shipment     shipmentResponse `json:"shipment"`
	SavedOffline bool             `json:"saved_offline"`
	Message      string           `json:"message"`
}

type listShipmentsResponse struct {
	Data    []shipmentResponse `json:"data"`
	Total   int                `json:"total"`
	Pending int                `json:"pending"`
}

type deliveryResultResponse struct {
	ShipmentID string `json:"shipment_id"`
	Outcome    string `json:"outcome"`
	Error      string `json:"error,omitempty"`
}

type syncReportResponse struct {
	StartedAt  time.Time                `json:"started_at"`
	FinishedAt time.Time                `json:"finished_at"`
	Attempted  int                      `json:"attempted"`
	Synced     int                      `json:"synced"`
	Failed     int                      `json:"failed"`
	Results    []deliveryResultResponse `json:"results"`
}

type syncResponse struct {
	Ran     bool                `json:"ran"`
	Message string              `json:"message"`
	Report  *syncReportResponse `json:"report,omitempty"`
}

type connectivityResponse struct {
	Online bool `json:"online"`
}

type setConnectivityRequest struct {
	Online *bool `json:"online" validate:"required"`
}
