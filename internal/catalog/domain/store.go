package domain

import "context"

// Store bundles the per-entity repositories behind one unit-of-work boundary.
// InTransaction runs fn against a Store bound to a single database
// transaction: every repository obtained inside fn reads and writes through
// that transaction, and any error rolls the whole unit back. Derived-state
// writes (stock creation, rating recomputation, price history) always run in
// the same transaction as the triggering entity write.
type Store interface {
	// WithContext returns a Store whose operations carry the given context
	// (cancellation and trace propagation)
	WithContext(ctx context.Context) Store

	Products() ProductRepository
	Categories() CategoryRepository
	Suppliers() SupplierRepository
	Stock() StockRepository
	Reviews() ReviewRepository
	Ratings() RatingRepository
	PriceHistory() PriceHistoryRepository

	InTransaction(fn func(tx Store) error) error
}
