package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a product; its stock record and initial price history entry are created with it
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,description=string,price=number,sku=string,category=string,supplier_id=int} true "Product data"
// @Success 201 {object} object{id=int,name=string,price=number,sku=string}
// @Failure 400 {object} object{errors=object}
// @Failure 409 {object} object{error=string}
// @Router /api/products [post]
func (h *CatalogHandler) CreateProductDoc() {}

// ListProducts godoc
// @Summary List products
// @Description Get a paginated list of products
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {array} object
// @Router /api/products [get]
func (h *CatalogHandler) ListProductsDoc() {}

// GetProduct godoc
// @Summary Get product by SKU
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param sku path string true "Product SKU"
// @Success 200 {object} object
// @Failure 404 {object} object{error=string}
// @Router /api/products/{sku} [get]
func (h *CatalogHandler) GetProductDoc() {}

// UpdateProduct godoc
// @Summary Update a product
// @Description Partially update a product; a price change appends a price history entry
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param sku path string true "Product SKU"
// @Param request body object{name=string,description=string,price=number,sku=string,category=string,supplier_id=int} true "Fields to update"
// @Success 200 {object} object
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/products/{sku} [patch]
func (h *CatalogHandler) UpdateProductDoc() {}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete a product and its derived records; refused while stock is on hand
// @Tags Products
// @Security BearerAuth
// @Param sku path string true "Product SKU"
// @Success 204
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/products/{sku} [delete]
func (h *CatalogHandler) DeleteProductDoc() {}

// GetPriceHistory godoc
// @Summary List a product's price changes
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param sku path string true "Product SKU"
// @Success 200 {array} object
// @Failure 404 {object} object{error=string}
// @Router /api/products/{sku}/prices [get]
func (h *CatalogHandler) GetPriceHistoryDoc() {}

// GetProductRating godoc
// @Summary Get a product's rating aggregate
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param sku path string true "Product SKU"
// @Success 200 {object} object{sku=string,average_rating=number,ratings_count=int}
// @Failure 404 {object} object{error=string}
// @Router /api/products/{sku}/rating [get]
func (h *CatalogHandler) GetProductRatingDoc() {}

// CreateCategory godoc
// @Summary Create a category
// @Description Category names are case-insensitive and stored lowercased
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,description=string,parent_name=string} true "Category data"
// @Success 201 {object} object
// @Failure 409 {object} object{error=string}
// @Router /api/categories [post]
func (h *CatalogHandler) CreateCategoryDoc() {}

// ListCategories godoc
// @Summary List categories
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {array} object
// @Router /api/categories [get]
func (h *CatalogHandler) ListCategoriesDoc() {}

// GetCategory godoc
// @Summary Get category by name
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param name path string true "Category name"
// @Success 200 {object} object{id=int,name=string,is_subcategory=bool,parent_category=string}
// @Failure 404 {object} object{error=string}
// @Router /api/categories/{name} [get]
func (h *CatalogHandler) GetCategoryDoc() {}

// UpdateCategory godoc
// @Summary Update a category
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param name path string true "Category name"
// @Param request body object{name=string,description=string,parent_name=string} true "Fields to update"
// @Success 200 {object} object
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/categories/{name} [patch]
func (h *CatalogHandler) UpdateCategoryDoc() {}

// DeleteCategory godoc
// @Summary Delete a category and its subtree
// @Description Refused when any category in the subtree still has products
// @Tags Categories
// @Security BearerAuth
// @Param name path string true "Category name"
// @Success 204
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/categories/{name} [delete]
func (h *CatalogHandler) DeleteCategoryDoc() {}

// CreateSupplier godoc
// @Summary Create a supplier
// @Tags Suppliers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,description=string,contact_info=string} true "Supplier data"
// @Success 201 {object} object
// @Router /api/suppliers [post]
func (h *CatalogHandler) CreateSupplierDoc() {}

// ListSuppliers godoc
// @Summary List suppliers
// @Tags Suppliers
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {array} object
// @Router /api/suppliers [get]
func (h *CatalogHandler) ListSuppliersDoc() {}

// GetSupplier godoc
// @Summary Get supplier by ID
// @Tags Suppliers
// @Security BearerAuth
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} object
// @Failure 404 {object} object{error=string}
// @Router /api/suppliers/{id} [get]
func (h *CatalogHandler) GetSupplierDoc() {}

// UpdateSupplier godoc
// @Summary Update a supplier
// @Tags Suppliers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Supplier ID"
// @Param request body object{name=string,description=string,contact_info=string} true "Fields to update"
// @Success 200 {object} object
// @Failure 404 {object} object{error=string}
// @Router /api/suppliers/{id} [patch]
func (h *CatalogHandler) UpdateSupplierDoc() {}

// DeleteSupplier godoc
// @Summary Delete a supplier
// @Description Refused while products still reference the supplier
// @Tags Suppliers
// @Security BearerAuth
// @Param id path int true "Supplier ID"
// @Success 204
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/suppliers/{id} [delete]
func (h *CatalogHandler) DeleteSupplierDoc() {}

// ListStock godoc
// @Summary List stock levels
// @Tags Stock
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {array} object{sku=string,quantity=int,last_updated=string}
// @Router /api/stock [get]
func (h *CatalogHandler) ListStockDoc() {}

// GetStock godoc
// @Summary Get stock by product SKU
// @Tags Stock
// @Security BearerAuth
// @Produce json
// @Param sku path string true "Product SKU"
// @Success 200 {object} object{sku=string,quantity=int,last_updated=string}
// @Failure 404 {object} object{error=string}
// @Router /api/stock/{sku} [get]
func (h *CatalogHandler) GetStockDoc() {}

// UpdateStock godoc
// @Summary Set the stock quantity for a product
// @Tags Stock
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param sku path string true "Product SKU"
// @Param request body object{quantity=int} true "New quantity"
// @Success 200 {object} object{sku=string,quantity=int,last_updated=string}
// @Failure 400 {object} object{errors=object}
// @Failure 404 {object} object{error=string}
// @Router /api/stock/{sku} [patch]
func (h *CatalogHandler) UpdateStockDoc() {}

// CreateReview godoc
// @Summary Create a review
// @Description The product's rating aggregate is recomputed in the same transaction
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{sku=string,rating=int,comment=string} true "Review data"
// @Success 201 {object} object
// @Failure 400 {object} object{errors=object}
// @Failure 404 {object} object{error=string}
// @Router /api/reviews [post]
func (h *CatalogHandler) CreateReviewDoc() {}

// UpdateReview godoc
// @Summary Update a review
// @Description Only the review's author may update it
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param request body object{rating=int,comment=string} true "Fields to update"
// @Success 200 {object} object
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/reviews/{id} [patch]
func (h *CatalogHandler) UpdateReviewDoc() {}

// DeleteReview godoc
// @Summary Delete a review
// @Description Authors may delete their own reviews, admins any review
// @Tags Reviews
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 204
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/reviews/{id} [delete]
func (h *CatalogHandler) DeleteReviewDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{error=string}
// @Router /health [get]
func (h *CatalogHandler) HealthCheckDoc() {}
