package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/craftshop/admin-backend/internal/domain"
	"github.com/craftshop/admin-backend/internal/service/catalog"
)

// collectionService defines the minimal interface needed by CollectionHandler.
type collectionService interface {
	CreateCollection(ctx context.Context, input catalog.CollectionInput) (*domain.Collection, error)
	GetCollection(ctx context.Context, collectionID uuid.UUID) (*domain.Collection, error)
	UpdateCollection(ctx context.Context, collectionID uuid.UUID, input catalog.CollectionInput) (*domain.Collection, error)
	DeleteCollection(ctx context.Context, collectionID uuid.UUID) error
	ListCollections(ctx context.Context) ([]*domain.Collection, error)
}

// CollectionHandler serves collection REST endpoints.
type CollectionHandler struct {
	svc collectionService
	log *slog.Logger
}

// NewCollectionHandler creates a CollectionHandler.
func NewCollectionHandler(svc collectionService, logger *slog.Logger) *CollectionHandler {
	return &CollectionHandler{svc: svc, log: logger.With("handler", "collections")}
}

type collectionRequest struct {
	Title string `json:"title"`
}

type collectionResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Products  []productResponse `json:"products,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func toCollectionResponse(c *domain.Collection) collectionResponse {
	resp := collectionResponse{
		ID:        c.ID.String(),
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	for i := range c.Products {
		resp.Products = append(resp.Products, toProductResponse(&c.Products[i]))
	}
	return resp
}

// Create handles POST /collections.
func (h *CollectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req collectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateCollection(r.Context(), catalog.CollectionInput{Title: req.Title})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCollectionResponse(created))
}

// Get handles GET /collections/{id}. Linked products are resolved.
func (h *CollectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid collection id")
		return
	}

	c, err := h.svc.GetCollection(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCollectionResponse(c))
}

// Update handles POST /collections/{id}.
func (h *CollectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid collection id")
		return
	}

	var req collectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateCollection(r.Context(), id, catalog.CollectionInput{Title: req.Title})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCollectionResponse(updated))
}

// Delete handles DELETE /collections/{id}.
func (h *CollectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid collection id")
		return
	}

	if err := h.svc.DeleteCollection(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "collection deleted"})
}

// List handles GET /collections.
func (h *CollectionHandler) List(w http.ResponseWriter, r *http.Request) {
	collections, err := h.svc.ListCollections(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]collectionResponse, len(collections))
	for i, c := range collections {
		out[i] = toCollectionResponse(c)
	}

	writeJSON(w, http.StatusOK, out)
}
