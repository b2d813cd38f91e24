package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/tair/catalog-api/internal/catalog/usecase/command"
	"github.com/tair/catalog-api/internal/catalog/usecase/query"
)

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ParentName  string `json:"parent_name"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ParentName  *string `json:"parent_name"`
}

// categoryDetail is the single-category representation with the parent
// resolved to its name
type categoryDetail struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	IsSubcategory  bool      `json:"is_subcategory"`
	ParentCategory *string   `json:"parent_category"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateCategory handles POST /api/categories
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fieldErrors := h.validateRequest(req); fieldErrors != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": fieldErrors})
		return
	}

	cmd := command.CreateCategoryCommand{
		Name:        req.Name,
		Description: req.Description,
		ParentName:  req.ParentName,
	}

	category, err := h.createCategory.Handle(r.Context(), cmd)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, category)
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	categories, err := h.listCategories.Handle(r.Context(), query.ListCategoriesQuery{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, categories)
}

// GetCategory handles GET /api/categories/{name}
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	result, err := h.getCategory.Handle(r.Context(), query.GetCategoryQuery{Name: name})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	detail := categoryDetail{
		ID:            result.Category.ID,
		Name:          result.Category.Name,
		Description:   result.Category.Description,
		IsSubcategory: result.Category.IsSubcategory(),
		CreatedAt:     result.Category.CreatedAt,
		UpdatedAt:     result.Category.UpdatedAt,
	}
	if result.Parent != nil {
		detail.ParentCategory = &result.Parent.Name
	}

	respondJSON(w, http.StatusOK, detail)
}

// UpdateCategory handles PATCH /api/categories/{name}
func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req updateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.UpdateCategoryCommand{
		Name:        name,
		NewName:     req.Name,
		Description: req.Description,
		ParentName:  req.ParentName,
	}

	category, err := h.updateCategory.Handle(r.Context(), cmd)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/categories/{name}
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.deleteCategory.Handle(r.Context(), command.DeleteCategoryCommand{Name: name}); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
