package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/craftshop/admin-backend/pkg/ctxutil"
)

// mediaStore defines the minimal interface needed by MediaHandler.
type mediaStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// MediaHandler serves product image uploads.
type MediaHandler struct {
	store   mediaStore
	maxSize int64
	log     *slog.Logger
}

// NewMediaHandler creates a MediaHandler.
func NewMediaHandler(store mediaStore, maxSize int64, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{store: store, maxSize: maxSize, log: logger.With("handler", "media")}
}

// Upload handles POST /media (multipart, field "file"). The returned
// reference goes into a product's media list.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctxutil.CallerIDFromCtx(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize)
	if err := r.ParseMultipartForm(h.maxSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	ref, err := h.store.Save(r.Context(), header.Filename, file)
	if err != nil {
		h.log.ErrorContext(r.Context(), "save media", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"media": ref})
}
