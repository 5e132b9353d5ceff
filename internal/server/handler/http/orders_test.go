package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
	"github.com/abdullahbaig-27688/yemi-seller/internal/service"
)

// fakeOrderService implements OrderService for testing.
type fakeOrderService struct {
	orders     []models.Order
	order      *models.Order
	err        error
	gotStatus  models.OrderStatus
	statusErr  error
	statusCall bool
}

func (f *fakeOrderService) List(ctx context.Context, sellerID string, status models.OrderStatus) ([]models.Order, error) {
	f.gotStatus = status
	return f.orders, f.err
}
func (f *fakeOrderService) Get(ctx context.Context, sellerID, id string) (*models.Order, error) {
	return f.order, f.err
}
func (f *fakeOrderService) UpdateStatus(ctx context.Context, sellerID, id string, status models.OrderStatus) error {
	f.statusCall = true
	f.gotStatus = status
	return f.statusErr
}

func TestOrderHandler_List_PassesStatusFilter(t *testing.T) {
	svc := &fakeOrderService{orders: []models.Order{{ID: "o1", Status: models.OrderPending}}}
	h := &OrderHandler{Orders: svc}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/orders?status=pending", nil)
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", rec.Code)
	}
	if svc.gotStatus != models.OrderPending {
		t.Errorf("status filter = %q; want %q", svc.gotStatus, models.OrderPending)
	}

	// The list must be nested under orders.data.
	var resp struct {
		Orders struct {
			Data []models.Order `json:"data"`
		} `json:"orders"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Orders.Data) != 1 || resp.Orders.Data[0].ID != "o1" {
		t.Errorf("unexpected payload: %+v", resp)
	}
}

func TestOrderHandler_List_UnknownStatus(t *testing.T) {
	h := &OrderHandler{Orders: &fakeOrderService{err: service.ErrValidation}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/orders?status=misplaced", nil)
	h.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", rec.Code)
	}
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	svc := &fakeOrderService{}
	h := &OrderHandler{Orders: svc}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/orders/o1/status",
		bytes.NewBufferString(`{"status":"shipped"}`))
	req = withURLParam(req, "id", "o1")
	h.UpdateStatus(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", rec.Code)
	}
	if !svc.statusCall || svc.gotStatus != models.OrderShipped {
		t.Errorf("UpdateStatus call = %v status = %q", svc.statusCall, svc.gotStatus)
	}
}

func TestOrderHandler_UpdateStatus_NotFound(t *testing.T) {
	h := &OrderHandler{Orders: &fakeOrderService{statusErr: service.ErrNotFound}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/orders/missing/status",
		bytes.NewBufferString(`{"status":"shipped"}`))
	req = withURLParam(req, "id", "missing")
	h.UpdateStatus(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 Not Found, got %d", rec.Code)
	}
}
