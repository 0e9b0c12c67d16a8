package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/shipment-sync/internal/core/domain"
	"github.com/99minutos/shipment-sync/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub service
// ---------------------------------------------------------------------------

type stubShipmentService struct {
	online    bool
	items     []domain.Shipment
	createErr error
	lastInput ports.CreateShipmentInput
	report    domain.SyncReport
	countErr  error
	counted   int
}

func (s *stubShipmentService) CreateShipment(_ context.Context, in ports.CreateShipmentInput) (*domain.Shipment, error) {
	s.lastInput = in
	if s.createErr != nil {
		return nil, s.createErr
	}
	status := domain.StatusPending
	if s.online {
		status = domain.StatusSynced
	}
	sh := domain.Shipment{
		ID:          "shp-1",
		Origin:      in.Origin,
		Destination: in.Destination,
		Weight:      in.Weight,
		Description: in.Description,
		Status:      status,
		CreatedAt:   time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	s.items = append(s.items, sh)
	return &sh, nil
}

func (s *stubShipmentService) ListShipments(context.Context) ([]domain.Shipment, error) {
	return s.items, nil
}

func (s *stubShipmentService) GetShipment(_ context.Context, id string) (*domain.Shipment, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i], nil
		}
	}
	return nil, domain.ErrShipmentNotFound
}

func (s *stubShipmentService) TriggerSync(context.Context) (domain.SyncReport, bool) {
	return s.report, s.online
}

func (s *stubShipmentService) PendingCount(context.Context) (int, error) {
	s.counted++
	if s.countErr != nil {
		return 0, s.countErr
	}
	n := 0
	for _, sh := range s.items {
		if sh.Status == domain.StatusPending {
			n++
		}
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func do(e *echo.Echo, h echo.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, error) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return rec, h(e.NewContext(req, rec))
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestShipmentHandler_Create_Online(t *testing.T) {
	svc := &stubShipmentService{online: true}
	h := NewShipmentHandler(svc)

	rec, err := do(newTestEcho(), h.Create, http.MethodPost, "/v1/shipments",
		`{"origin":"CDMX","destination":"Puebla","weight":2.5,"description":"books"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp createShipmentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.SavedOffline {
		t.Error("online create must not be saved_offline")
	}
	if resp.Shipment.Status != "synced" || resp.Shipment.Links.Self != "/v1/shipments/shp-1" {
		t.Errorf("unexpected shipment: %+v", resp.Shipment)
	}
	if svc.lastInput.Weight != 2.5 || svc.lastInput.Description != "books" {
		t.Errorf("input not mapped: %+v", svc.lastInput)
	}
}

func TestShipmentHandler_Create_OfflineMessage(t *testing.T) {
	h := NewShipmentHandler(&stubShipmentService{online: false})

	rec, err := do(newTestEcho(), h.Create, http.MethodPost, "/v1/shipments",
		`{"origin":"CDMX","destination":"Puebla","weight":1}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp createShipmentResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if !resp.SavedOffline || resp.Message != "Shipment saved offline. Will sync when online" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestShipmentHandler_Create_Rejections(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"origin":`, http.StatusBadRequest},
		{"missing origin", `{"destination":"Puebla","weight":1}`, http.StatusUnprocessableEntity},
		{"missing destination", `{"origin":"CDMX","weight":1}`, http.StatusUnprocessableEntity},
		{"zero weight", `{"origin":"CDMX","destination":"Puebla","weight":0}`, http.StatusUnprocessableEntity},
		{"negative weight", `{"origin":"CDMX","destination":"Puebla","weight":-1}`, http.StatusUnprocessableEntity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubShipmentService{}
			h := NewShipmentHandler(svc)

			_, err := do(newTestEcho(), h.Create, http.MethodPost, "/v1/shipments", tc.body)
			if got := httpCode(t, err); got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
			if len(svc.items) != 0 {
				t.Error("rejected request must not create a shipment")
			}
		})
	}
}

func TestShipmentHandler_Create_ServiceErrorPassesThrough(t *testing.T) {
	h := NewShipmentHandler(&stubShipmentService{createErr: domain.ErrStorageWrite})

	_, err := do(newTestEcho(), h.Create, http.MethodPost, "/v1/shipments",
		`{"origin":"CDMX","destination":"Puebla","weight":1}`)
	if !errors.Is(err, domain.ErrStorageWrite) {
		t.Errorf("expected ErrStorageWrite, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// List / Get
// ---------------------------------------------------------------------------

func seededService() *stubShipmentService {
	return &stubShipmentService{items: []domain.Shipment{
		{ID: "b", Status: domain.StatusPending},
		{ID: "a", Status: domain.StatusSynced},
	}}
}

func TestShipmentHandler_List(t *testing.T) {
	h := NewShipmentHandler(seededService())

	rec, err := do(newTestEcho(), h.List, http.MethodGet, "/v1/shipments", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp listShipmentsResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Total != 2 || resp.Pending != 1 {
		t.Errorf("unexpected totals: %+v", resp)
	}
	if resp.Data[0].ID != "b" {
		t.Errorf("service order must be preserved, got %s first", resp.Data[0].ID)
	}
}

func TestShipmentHandler_List_StatusFilter(t *testing.T) {
	h := NewShipmentHandler(seededService())

	rec, err := do(newTestEcho(), h.List, http.MethodGet, "/v1/shipments?status=synced", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp listShipmentsResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Total != 1 || resp.Data[0].ID != "a" {
		t.Errorf("unexpected filtered list: %+v", resp)
	}
	if resp.Pending != 1 {
		t.Errorf("pending counts the whole collection, got %d", resp.Pending)
	}

	_, err = do(newTestEcho(), h.List, http.MethodGet, "/v1/shipments?status=lost", "")
	if got := httpCode(t, err); got != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown status, got %d", got)
	}
}

func TestShipmentHandler_List_PendingFromService(t *testing.T) {
	svc := seededService()
	h := NewShipmentHandler(svc)

	rec, err := do(newTestEcho(), h.List, http.MethodGet, "/v1/shipments?status=synced", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp listShipmentsResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if svc.counted != 1 || resp.Pending != 1 {
		t.Errorf("pending must come from PendingCount: calls=%d pending=%d", svc.counted, resp.Pending)
	}

	svc.countErr = domain.ErrStorageRead
	rec, err = do(newTestEcho(), h.List, http.MethodGet, "/v1/shipments", "")
	if err != nil {
		t.Fatalf("count failure must not fail the list: %v", err)
	}
	resp = listShipmentsResponse{}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Pending != 0 || resp.Total != 2 {
		t.Errorf("unexpected response on count failure: %+v", resp)
	}
}

func TestShipmentHandler_List_EmptyIsArray(t *testing.T) {
	h := NewShipmentHandler(&stubShipmentService{})

	rec, _ := do(newTestEcho(), h.List, http.MethodGet, "/v1/shipments", "")
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("empty list must render as [], got %s", rec.Body.String())
	}
}

func TestShipmentHandler_Get(t *testing.T) {
	e := newTestEcho()
	h := NewShipmentHandler(seededService())

	req := httptest.NewRequest(http.MethodGet, "/v1/shipments/a", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("a")

	if err := h.Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp shipmentResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.ID != "a" || resp.Status != "synced" {
		t.Errorf("unexpected shipment: %+v", resp)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/shipments/zz", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("zz")
	if err := h.Get(c); !errors.Is(err, domain.ErrShipmentNotFound) {
		t.Errorf("expected ErrShipmentNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Sync
// ---------------------------------------------------------------------------

func TestSyncHandler_Offline(t *testing.T) {
	h := NewSyncHandler(&stubShipmentService{online: false})

	rec, err := do(newTestEcho(), h.Sync, http.MethodPost, "/v1/sync", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp syncResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Ran || resp.Report != nil {
		t.Errorf("offline sync must not run: %+v", resp)
	}
}

func TestSyncHandler_Online(t *testing.T) {
	svc := &stubShipmentService{online: true, report: domain.SyncReport{
		Attempted: 2, Synced: 1, Failed: 1,
		Results: []domain.DeliveryResult{
			{ShipmentID: "a", Outcome: domain.OutcomeSynced},
			{ShipmentID: "b", Outcome: domain.OutcomeFailed, Error: "boom"},
		},
	}}
	h := NewSyncHandler(svc)

	rec, err := do(newTestEcho(), h.Sync, http.MethodPost, "/v1/sync", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("delivery failures must not change the status code, got %d", rec.Code)
	}

	var resp syncResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if !resp.Ran || resp.Report == nil || resp.Report.Failed != 1 || len(resp.Report.Results) != 2 {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Report.Results[1].Error != "boom" {
		t.Errorf("per-record error not reported: %+v", resp.Report.Results[1])
	}
}
