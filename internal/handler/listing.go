package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adboard/adboard-go/internal/middleware"
	"github.com/adboard/adboard-go/internal/model"
	"github.com/adboard/adboard-go/internal/service"
)

// ListingHandler handles HTTP requests for classified ads.
type ListingHandler struct {
	service *service.ListingService
	maxBody int64
}

// NewListingHandler creates a new ListingHandler. maxBody caps the request
// body size in bytes.
func NewListingHandler(svc *service.ListingService, maxBody int64) *ListingHandler {
	return &ListingHandler{service: svc, maxBody: maxBody}
}

// HandleCreate handles POST /api/listings requests. The owner identity comes
// from the verified session token, not from the request body.
func (h *ListingHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)

	var req model.CreateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDecodeError(w, err)
		return
	}

	resp, err := h.service.Create(r.Context(), ownerID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired),
			errors.Is(err, service.ErrOwnerNotFound):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrOwnerMismatch):
			writeJSON(w, http.StatusForbidden, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleList handles GET /api/listings requests.
func (h *ListingHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /api/listings/{listing_id} requests.
func (h *ListingHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "listing_id")
	if id == "" || len(id) > 36 {
		writeJSON(w, http.StatusNotFound, errorResponse("listing not found"))
		return
	}

	resp, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrListingNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
