package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/catalog-api/internal/catalog/usecase/command"
)

type createReviewRequest struct {
	SKU     string `json:"sku" validate:"required"`
	Rating  int    `json:"rating" validate:"gte=0,lte=10"`
	Comment string `json:"comment"`
}

type updateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,gte=0,lte=10"`
	Comment *string `json:"comment"`
}

// CreateReview handles POST /api/reviews
func (h *CatalogHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fieldErrors := h.validateRequest(req); fieldErrors != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": fieldErrors})
		return
	}

	userID, _ := callerFromContext(r.Context())

	review, err := h.createReview.Handle(r.Context(), command.CreateReviewCommand{
		ProductSKU: req.SKU,
		Rating:     req.Rating,
		Comment:    req.Comment,
		UserID:     userID,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, review)
}

// UpdateReview handles PATCH /api/reviews/{id}
func (h *CatalogHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid review ID")
		return
	}

	var req updateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fieldErrors := h.validateRequest(req); fieldErrors != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": fieldErrors})
		return
	}

	userID, _ := callerFromContext(r.Context())

	review, err := h.updateReview.Handle(r.Context(), command.UpdateReviewCommand{
		ID:      uint(id),
		Rating:  req.Rating,
		Comment: req.Comment,
		UserID:  userID,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, review)
}

// DeleteReview handles DELETE /api/reviews/{id}. Admins may delete any
// review, other callers only their own.
func (h *CatalogHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid review ID")
		return
	}

	userID, isAdmin := callerFromContext(r.Context())

	if err := h.deleteReview.Handle(r.Context(), command.DeleteReviewCommand{
		ID:      uint(id),
		UserID:  userID,
		IsAdmin: isAdmin,
	}); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
