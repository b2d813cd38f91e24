package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/catalog-api/internal/catalog/usecase/command"
	"github.com/tair/catalog-api/internal/catalog/usecase/query"
)

type createSupplierRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ContactInfo string `json:"contact_info"`
}

type updateSupplierRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ContactInfo *string `json:"contact_info"`
}

// CreateSupplier handles POST /api/suppliers
func (h *CatalogHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req createSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fieldErrors := h.validateRequest(req); fieldErrors != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": fieldErrors})
		return
	}

	cmd := command.CreateSupplierCommand{
		Name:        req.Name,
		Description: req.Description,
		ContactInfo: req.ContactInfo,
	}

	supplier, err := h.createSupplier.Handle(r.Context(), cmd)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, supplier)
}

// ListSuppliers handles GET /api/suppliers
func (h *CatalogHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	suppliers, err := h.listSuppliers.Handle(r.Context(), query.ListSuppliersQuery{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, suppliers)
}

// GetSupplier handles GET /api/suppliers/{id}
func (h *CatalogHandler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid supplier ID")
		return
	}

	supplier, err := h.getSupplier.Handle(r.Context(), query.GetSupplierQuery{ID: uint(id)})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, supplier)
}

// UpdateSupplier handles PATCH /api/suppliers/{id}
func (h *CatalogHandler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid supplier ID")
		return
	}

	var req updateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.UpdateSupplierCommand{
		ID:          uint(id),
		Name:        req.Name,
		Description: req.Description,
		ContactInfo: req.ContactInfo,
	}

	supplier, err := h.updateSupplier.Handle(r.Context(), cmd)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, supplier)
}

// DeleteSupplier handles DELETE /api/suppliers/{id}
func (h *CatalogHandler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid supplier ID")
		return
	}

	if err := h.deleteSupplier.Handle(r.Context(), command.DeleteSupplierCommand{ID: uint(id)}); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
