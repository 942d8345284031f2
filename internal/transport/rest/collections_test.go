package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/craftshop/admin-backend/internal/domain"
	"github.com/craftshop/admin-backend/internal/service/catalog"
)

func TestCollectionGet_ResolvedProducts(t *testing.T) {
	t.Parallel()

	collID := uuid.New()
	svc := &collectionServiceMock{
		GetCollectionFunc: func(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
			return &domain.Collection{
				ID:    id,
				Title: "Rings",
				Products: []domain.Product{
					{ID: uuid.New(), Title: "Silver Ring"},
				},
			}, nil
		},
	}
	h := NewCollectionHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/collections/"+collID.String(), nil)
	req.SetPathValue("id", collID.String())
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Title    string `json:"title"`
		Products []struct {
			Title string `json:"title"`
		} `json:"products"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Title != "Rings" || len(resp.Products) != 1 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestCollectionCreate_Validation(t *testing.T) {
	t.Parallel()

	svc := &collectionServiceMock{
		CreateCollectionFunc: func(ctx context.Context, input catalog.CollectionInput) (*domain.Collection, error) {
			return nil, input.Validate()
		},
	}
	h := NewCollectionHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/collections", strings.NewReader(`{"title":""}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestCollectionDelete_NotFound(t *testing.T) {
	t.Parallel()

	svc := &collectionServiceMock{
		DeleteCollectionFunc: func(ctx context.Context, id uuid.UUID) error {
			return domain.ErrNotFound
		},
	}
	h := NewCollectionHandler(svc, testLogger())

	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodDelete, "/collections/"+id, nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestCollectionUpdate_Rename(t *testing.T) {
	t.Parallel()

	svc := &collectionServiceMock{
		UpdateCollectionFunc: func(ctx context.Context, id uuid.UUID, input catalog.CollectionInput) (*domain.Collection, error) {
			if input.Title != "Renamed" {
				t.Errorf("Title: got %q", input.Title)
			}
			return &domain.Collection{ID: id, Title: input.Title}, nil
		},
	}
	h := NewCollectionHandler(svc, testLogger())

	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodPost, "/collections/"+id, strings.NewReader(`{"title":"Renamed"}`))
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
