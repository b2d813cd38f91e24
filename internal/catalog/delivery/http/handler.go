package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/catalog-api/internal/catalog/consistency"
	"github.com/tair/catalog-api/internal/catalog/domain"
	"github.com/tair/catalog-api/internal/catalog/usecase/command"
	"github.com/tair/catalog-api/internal/catalog/usecase/query"
	"github.com/tair/catalog-api/pkg/cache"
	"github.com/tair/catalog-api/pkg/logger"
)

// CatalogHandler handles HTTP requests for the catalog using CQRS handlers
type CatalogHandler struct {
	// Command handlers
	createProduct  *command.CreateProductHandler
	updateProduct  *command.UpdateProductHandler
	deleteProduct  *command.DeleteProductHandler
	createCategory *command.CreateCategoryHandler
	updateCategory *command.UpdateCategoryHandler
	deleteCategory *command.DeleteCategoryHandler
	createSupplier *command.CreateSupplierHandler
	updateSupplier *command.UpdateSupplierHandler
	deleteSupplier *command.DeleteSupplierHandler
	updateStock    *command.UpdateStockHandler
	createReview   *command.CreateReviewHandler
	updateReview   *command.UpdateReviewHandler
	deleteReview   *command.DeleteReviewHandler

	// Query handlers
	listProducts    *query.ListProductsHandler
	getProduct      *query.GetProductHandler
	listCategories  *query.ListCategoriesHandler
	getCategory     *query.GetCategoryHandler
	listSuppliers   *query.ListSuppliersHandler
	getSupplier     *query.GetSupplierHandler
	listStock       *query.ListStockHandler
	getStock        *query.GetStockHandler
	getRating       *query.GetRatingHandler
	getPriceHistory *query.GetPriceHistoryHandler

	store    domain.Store
	validate *validator.Validate

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	totalProducts  prometheus.Gauge
}

// NewCatalogHandler creates a catalog handler with all usecase handlers
// wired to the given store. Metrics register against reg so tests can use an
// isolated registry.
func NewCatalogHandler(
	store domain.Store,
	engine *consistency.Engine,
	ratings *cache.RatingCache,
	events command.EventPublisher,
	reg prometheus.Registerer,
) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_api_requests_total",
			Help: "Total number of requests to the catalog API",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_api_request_duration_seconds",
			Help:    "Duration of catalog API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Summary metric for client-side percentile calculation
	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "catalog_api_request_duration_summary",
			Help: "Summary of request durations with percentiles",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	totalProducts := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_api_total_products",
			Help: "Total number of products in the catalog",
		},
	)

	reg.MustRegister(requestCounter, requestLatency, requestSummary, totalProducts)

	return &CatalogHandler{
		createProduct:  command.NewCreateProductHandler(store, engine, events),
		updateProduct:  command.NewUpdateProductHandler(store, engine, events),
		deleteProduct:  command.NewDeleteProductHandler(store),
		createCategory: command.NewCreateCategoryHandler(store),
		updateCategory: command.NewUpdateCategoryHandler(store),
		deleteCategory: command.NewDeleteCategoryHandler(store),
		createSupplier: command.NewCreateSupplierHandler(store),
		updateSupplier: command.NewUpdateSupplierHandler(store),
		deleteSupplier: command.NewDeleteSupplierHandler(store),
		updateStock:    command.NewUpdateStockHandler(store),
		createReview:   command.NewCreateReviewHandler(store, engine, ratings, events),
		updateReview:   command.NewUpdateReviewHandler(store, engine, ratings),
		deleteReview:   command.NewDeleteReviewHandler(store, engine, ratings),

		listProducts:    query.NewListProductsHandler(store),
		getProduct:      query.NewGetProductHandler(store),
		listCategories:  query.NewListCategoriesHandler(store),
		getCategory:     query.NewGetCategoryHandler(store),
		listSuppliers:   query.NewListSuppliersHandler(store),
		getSupplier:     query.NewGetSupplierHandler(store),
		listStock:       query.NewListStockHandler(store),
		getStock:        query.NewGetStockHandler(store),
		getRating:       query.NewGetRatingHandler(store, ratings),
		getPriceHistory: query.NewGetPriceHistoryHandler(store),

		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),

		requestCounter: requestCounter,
		requestLatency: requestLatency,
		requestSummary: requestSummary,
		totalProducts:  totalProducts,
	}
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rec.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers all catalog routes. Every operation requires an
// authenticated caller.
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	route := func(endpoint string, fn http.HandlerFunc) http.HandlerFunc {
		return h.metricsMiddleware(endpoint, AuthMiddleware(fn))
	}

	// Products
	router.HandleFunc("/api/products", route("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products", route("/api/products", h.CreateProduct)).Methods("POST")
	router.HandleFunc("/api/products/{sku}", route("/api/products/{sku}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products/{sku}", route("/api/products/{sku}", h.UpdateProduct)).Methods("PATCH")
	router.HandleFunc("/api/products/{sku}", route("/api/products/{sku}", h.DeleteProduct)).Methods("DELETE")
	router.HandleFunc("/api/products/{sku}/prices", route("/api/products/{sku}/prices", h.GetPriceHistory)).Methods("GET")
	router.HandleFunc("/api/products/{sku}/rating", route("/api/products/{sku}/rating", h.GetProductRating)).Methods("GET")

	// Categories
	router.HandleFunc("/api/categories", route("/api/categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/api/categories", route("/api/categories", h.CreateCategory)).Methods("POST")
	router.HandleFunc("/api/categories/{name}", route("/api/categories/{name}", h.GetCategory)).Methods("GET")
	router.HandleFunc("/api/categories/{name}", route("/api/categories/{name}", h.UpdateCategory)).Methods("PATCH")
	router.HandleFunc("/api/categories/{name}", route("/api/categories/{name}", h.DeleteCategory)).Methods("DELETE")

	// Suppliers
	router.HandleFunc("/api/suppliers", route("/api/suppliers", h.ListSuppliers)).Methods("GET")
	router.HandleFunc("/api/suppliers", route("/api/suppliers", h.CreateSupplier)).Methods("POST")
	router.HandleFunc("/api/suppliers/{id}", route("/api/suppliers/{id}", h.GetSupplier)).Methods("GET")
	router.HandleFunc("/api/suppliers/{id}", route("/api/suppliers/{id}", h.UpdateSupplier)).Methods("PATCH")
	router.HandleFunc("/api/suppliers/{id}", route("/api/suppliers/{id}", h.DeleteSupplier)).Methods("DELETE")

	// Stock
	router.HandleFunc("/api/stock", route("/api/stock", h.ListStock)).Methods("GET")
	router.HandleFunc("/api/stock/{sku}", route("/api/stock/{sku}", h.GetStock)).Methods("GET")
	router.HandleFunc("/api/stock/{sku}", route("/api/stock/{sku}", h.UpdateStock)).Methods("PATCH")

	// Reviews
	router.HandleFunc("/api/reviews", route("/api/reviews", h.CreateReview)).Methods("POST")
	router.HandleFunc("/api/reviews/{id}", route("/api/reviews/{id}", h.UpdateReview)).Methods("PATCH")
	router.HandleFunc("/api/reviews/{id}", route("/api/reviews/{id}", h.DeleteReview)).Methods("DELETE")
}

// RegisterHealthCheck registers the health endpoint
func (h *CatalogHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondError(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
}

// updateProductsMetric refreshes the total products gauge
func (h *CatalogHandler) updateProductsMetric() {
	count, err := h.store.Products().Count()
	if err == nil {
		h.totalProducts.Set(float64(count))
	}
}

// validateRequest runs struct validation and shapes failures as a
// field-error map, or nil when the request is valid
func (h *CatalogHandler) validateRequest(req interface{}) map[string]string {
	err := h.validate.Struct(req)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fieldErrors[strings.ToLower(fe.Field())] = validationMessage(fe)
		}
	} else {
		fieldErrors["request"] = "invalid request"
	}
	return fieldErrors
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	default:
		return "is invalid"
	}
}

// respondDomainError maps domain errors to the HTTP error contract:
// not-found 404, business conflicts 409, validation failures 400 with a
// field-error payload, anything else 500.
func respondDomainError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"errors": map[string]string{ve.Field: ve.Message},
		})
	case domain.IsNotFound(err):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNotReviewOwner):
		respondError(w, http.StatusForbidden, err.Error())
	case domain.IsConflict(err):
		respondError(w, http.StatusConflict, err.Error())
	default:
		logger.Logger.Error().Err(err).Msg("Unhandled domain error")
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// respondError sends the single-key error payload
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
