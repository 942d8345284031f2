package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/craftshop/admin-backend/internal/domain"
	"github.com/craftshop/admin-backend/internal/service/order"
)

// orderService defines the minimal interface needed by OrderHandler.
type orderService interface {
	GetOrder(ctx context.Context, orderID uuid.UUID) (*order.Details, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
}

// OrderHandler serves the read-only order REST endpoints.
type OrderHandler struct {
	svc orderService
	log *slog.Logger
}

// NewOrderHandler creates an OrderHandler.
func NewOrderHandler(svc orderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, log: logger.With("handler", "orders")}
}

type addressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type orderItemResponse struct {
	ProductID string `json:"productId"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

type orderResponse struct {
	ID           string              `json:"id"`
	CustomerKey  string              `json:"customerKey"`
	Address      addressResponse     `json:"address"`
	Items        []orderItemResponse `json:"items,omitempty"`
	ItemCount    int                 `json:"itemCount"`
	TotalAmount  string              `json:"totalAmount"`
	ShippingRate string              `json:"shippingRate"`
	CreatedAt    time.Time           `json:"createdAt"`
}

type customerResponse struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type orderDetailsResponse struct {
	Order    orderResponse     `json:"order"`
	Customer *customerResponse `json:"customer"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	items := make([]orderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = orderItemResponse{
			ProductID: it.ProductID.String(),
			Color:     it.Color,
			Size:      it.Size,
			Quantity:  it.Quantity,
		}
	}

	return orderResponse{
		ID:          o.ID.String(),
		CustomerKey: o.CustomerKey,
		Address: addressResponse{
			Street:     o.Address.Street,
			City:       o.Address.City,
			State:      o.Address.State,
			PostalCode: o.Address.PostalCode,
			Country:    o.Address.Country,
		},
		Items:        items,
		ItemCount:    o.ItemCount(),
		TotalAmount:  o.TotalAmount.String(),
		ShippingRate: o.ShippingRate,
		CreatedAt:    o.CreatedAt,
	}
}

// Get handles GET /orders/{id}. The customer is null when the external
// identity record no longer exists.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	details, err := h.svc.GetOrder(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := orderDetailsResponse{Order: toOrderResponse(details.Order)}
	if details.Customer != nil {
		resp.Customer = &customerResponse{
			Key:   details.Customer.Key,
			Name:  details.Customer.Name,
			Email: details.Customer.Email,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// List handles GET /orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListOrders(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]orderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}

	writeJSON(w, http.StatusOK, out)
}
