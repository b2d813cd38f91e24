//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/tair/catalog-api/internal/catalog/consistency"
	"github.com/tair/catalog-api/internal/catalog/delivery/http"
	"github.com/tair/catalog-api/internal/catalog/domain"
	"github.com/tair/catalog-api/internal/catalog/repository"
	"github.com/tair/catalog-api/internal/catalog/usecase/command"
	"github.com/tair/catalog-api/pkg/cache"
)

// ProvideStore provides the transactional store, wrapped with tracing
func ProvideStore(db *gorm.DB) domain.Store {
	return repository.NewTracingStore(repository.NewGormStore(db))
}

// Wire sets
var StoreSet = wire.NewSet(
	ProvideStore,
	consistency.NewEngine,
)

// InitializeHTTPHandler initializes the catalog HTTP handler with all
// dependencies
func InitializeHTTPHandler(
	db *gorm.DB,
	ratings *cache.RatingCache,
	events command.EventPublisher,
	reg prometheus.Registerer,
) (*http.CatalogHandler, error) {
	wire.Build(
		StoreSet,
		http.NewCatalogHandler,
	)
	return nil, nil
}
