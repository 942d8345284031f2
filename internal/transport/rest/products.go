package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/craftshop/admin-backend/internal/domain"
	"github.com/craftshop/admin-backend/internal/service/catalog"
)

// productService defines the minimal interface needed by ProductHandler.
type productService interface {
	CreateProduct(ctx context.Context, input catalog.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, input catalog.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID uuid.UUID) error
	GetProduct(ctx context.Context, productID uuid.UUID) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	SearchProducts(ctx context.Context, query string) ([]*domain.Product, error)
}

// ProductHandler serves product REST endpoints.
type ProductHandler struct {
	svc productService
	log *slog.Logger
}

// NewProductHandler creates a ProductHandler.
func NewProductHandler(svc productService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{svc: svc, log: logger.With("handler", "products")}
}

type productRequest struct {
	Title       string          `json:"title"`
	Status      string          `json:"status"`
	Description string          `json:"description"`
	Media       []string        `json:"media"`
	Price       decimal.Decimal `json:"price"`
	Expense     decimal.Decimal `json:"expense"`
	Collections []string        `json:"collections"`
}

// toInput converts the wire request into a typed service input. Malformed
// collection IDs become uuid.Nil so validation reports them as a field error
// instead of a generic decode failure.
func (req *productRequest) toInput() catalog.ProductInput {
	ids := make([]uuid.UUID, len(req.Collections))
	for i, raw := range req.Collections {
		id, err := uuid.Parse(raw)
		if err != nil {
			ids[i] = uuid.Nil
			continue
		}
		ids[i] = id
	}

	return catalog.ProductInput{
		Title:         req.Title,
		Status:        domain.ProductStatus(req.Status),
		Description:   req.Description,
		Media:         req.Media,
		Price:         req.Price,
		Expense:       req.Expense,
		CollectionIDs: ids,
	}
}

type collectionSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type productResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Status      string              `json:"status"`
	Description string              `json:"description"`
	Media       []string            `json:"media"`
	Collections []collectionSummary `json:"collections"`
	Price       string              `json:"price"`
	Expense     string              `json:"expense"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

func toProductResponse(p *domain.Product) productResponse {
	collections := make([]collectionSummary, len(p.Collections))
	for i, c := range p.Collections {
		collections[i] = collectionSummary{ID: c.ID.String(), Title: c.Title}
	}

	return productResponse{
		ID:          p.ID.String(),
		Title:       p.Title,
		Status:      p.Status.String(),
		Description: p.Description,
		Media:       p.Media,
		Collections: collections,
		Price:       p.Price.String(),
		Expense:     p.Expense.String(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(products []*domain.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}

// Create handles POST /products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateProduct(r.Context(), req.toInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(created))
}

// Update handles POST /products/{id}. The payload fully replaces the product.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateProduct(r.Context(), id, req.toInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(updated))
}

// Delete handles DELETE /products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.svc.DeleteProduct(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

// Get handles GET /products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	p, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(p))
}

// List handles GET /products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponses(products))
}

// Search handles GET /search/{query...}. An empty query returns the whole
// catalog, mirroring the listing.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.PathValue("query")

	products, err := h.svc.SearchProducts(r.Context(), query)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponses(products))
}
