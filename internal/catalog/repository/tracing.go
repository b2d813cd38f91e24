package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// TracingStore wraps a domain.Store and records a span around every unit of
// work. The span inherits whatever request context the store was bound to via
// WithContext.
type TracingStore struct {
	inner domain.Store
	ctx   context.Context
}

// NewTracingStore creates a store decorator that traces transactions
func NewTracingStore(inner domain.Store) *TracingStore {
	return &TracingStore{inner: inner, ctx: context.Background()}
}

func (s *TracingStore) WithContext(ctx context.Context) domain.Store {
	return &TracingStore{inner: s.inner.WithContext(ctx), ctx: ctx}
}

func (s *TracingStore) InTransaction(fn func(tx domain.Store) error) error {
	ctx, span := tracer.Start(s.ctx, "store.transaction")
	defer span.End()

	err := s.inner.InTransaction(func(tx domain.Store) error {
		return fn(&TracingStore{inner: tx, ctx: ctx})
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

func (s *TracingStore) Products() domain.ProductRepository {
	return s.inner.Products()
}

func (s *TracingStore) Categories() domain.CategoryRepository {
	return s.inner.Categories()
}

func (s *TracingStore) Suppliers() domain.SupplierRepository {
	return s.inner.Suppliers()
}

func (s *TracingStore) Stock() domain.StockRepository {
	return s.inner.Stock()
}

func (s *TracingStore) Reviews() domain.ReviewRepository {
	return s.inner.Reviews()
}

func (s *TracingStore) Ratings() domain.RatingRepository {
	return s.inner.Ratings()
}

func (s *TracingStore) PriceHistory() domain.PriceHistoryRepository {
	return s.inner.PriceHistory()
}
