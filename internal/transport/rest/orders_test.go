package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/craftshop/admin-backend/internal/domain"
	"github.com/craftshop/admin-backend/internal/service/order"
)

func TestOrderGet_WithCustomer(t *testing.T) {
	t.Parallel()

	orderID := uuid.New()
	svc := &orderServiceMock{
		GetOrderFunc: func(ctx context.Context, id uuid.UUID) (*order.Details, error) {
			return &order.Details{
				Order: &domain.Order{
					ID:          id,
					CustomerKey: "cust_1",
					TotalAmount: decimal.RequireFromString("49.99"),
					Items:       []domain.OrderItem{{ProductID: uuid.New(), Quantity: 2}},
				},
				Customer: &domain.Customer{Key: "cust_1", Name: "Jo", Email: "jo@example.com"},
			}, nil
		},
	}
	h := NewOrderHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/orders/"+orderID.String(), nil)
	req.SetPathValue("id", orderID.String())
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Order struct {
			TotalAmount string `json:"totalAmount"`
			ItemCount   int    `json:"itemCount"`
		} `json:"order"`
		Customer *struct {
			Name string `json:"name"`
		} `json:"customer"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Order.TotalAmount != "49.99" {
		t.Errorf("totalAmount = %q", resp.Order.TotalAmount)
	}
	if resp.Order.ItemCount != 2 {
		t.Errorf("itemCount = %d", resp.Order.ItemCount)
	}
	if resp.Customer == nil || resp.Customer.Name != "Jo" {
		t.Errorf("customer = %+v", resp.Customer)
	}
}

func TestOrderGet_MissingCustomerIsNull(t *testing.T) {
	t.Parallel()

	svc := &orderServiceMock{
		GetOrderFunc: func(ctx context.Context, id uuid.UUID) (*order.Details, error) {
			return &order.Details{Order: &domain.Order{ID: id}}, nil
		},
	}
	h := NewOrderHandler(svc, testLogger())

	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/orders/"+id, nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	var resp map[string]json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(resp["customer"]) != "null" {
		t.Errorf("expected customer null, got %s", resp["customer"])
	}
}

func TestOrderGet_NotFound(t *testing.T) {
	t.Parallel()

	h := NewOrderHandler(&orderServiceMock{}, testLogger())

	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/orders/"+id, nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
