// Package storetest provides a map-backed domain.Store for tests. It applies
// the same sentinel-error semantics as the GORM-backed store but keeps
// everything in memory, so command and query handlers can be exercised
// without a database.
package storetest

import (
	"context"
	"sort"
	"time"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

// Store is an in-memory implementation of domain.Store. Transactions are not
// isolated: InTransaction simply runs the function against the same state, so
// tests observe writes immediately. It is not safe for concurrent use.
type Store struct {
	products map[uint]domain.Product
	nextID   uint

	categories     map[uint]domain.Category
	nextCategoryID uint

	suppliers      map[uint]domain.Supplier
	nextSupplierID uint

	stock map[uint]domain.ProductStock // keyed by product id

	reviews      map[uint]domain.Review
	nextReviewID uint

	ratings map[uint]domain.ProductRating // keyed by product id

	priceHistory []domain.PriceHistory
	nextEntryID  uint
}

// New creates an empty in-memory store
func New() *Store {
	return &Store{
		products:       make(map[uint]domain.Product),
		nextID:         1,
		categories:     make(map[uint]domain.Category),
		nextCategoryID: 1,
		suppliers:      make(map[uint]domain.Supplier),
		nextSupplierID: 1,
		stock:          make(map[uint]domain.ProductStock),
		reviews:        make(map[uint]domain.Review),
		nextReviewID:   1,
		ratings:        make(map[uint]domain.ProductRating),
		nextEntryID:    1,
	}
}

func (s *Store) WithContext(ctx context.Context) domain.Store { return s }

func (s *Store) InTransaction(fn func(tx domain.Store) error) error { return fn(s) }

func (s *Store) Products() domain.ProductRepository         { return &productRepo{s} }
func (s *Store) Categories() domain.CategoryRepository      { return &categoryRepo{s} }
func (s *Store) Suppliers() domain.SupplierRepository       { return &supplierRepo{s} }
func (s *Store) Stock() domain.StockRepository              { return &stockRepo{s} }
func (s *Store) Reviews() domain.ReviewRepository           { return &reviewRepo{s} }
func (s *Store) Ratings() domain.RatingRepository           { return &ratingRepo{s} }
func (s *Store) PriceHistory() domain.PriceHistoryRepository { return &priceHistoryRepo{s} }

// --- products ---

type productRepo struct{ s *Store }

func (r *productRepo) Create(product *domain.Product) error {
	product.ID = r.s.nextID
	r.s.nextID++
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.s.products[product.ID] = *product
	return nil
}

func (r *productRepo) FindByID(id uint) (*domain.Product, error) {
	product, ok := r.s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &product, nil
}

func (r *productRepo) FindByIDForUpdate(id uint) (*domain.Product, error) {
	return r.FindByID(id)
}

func (r *productRepo) FindBySKU(sku string) (*domain.Product, error) {
	for _, product := range r.s.products {
		if product.SKU == sku {
			p := product
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *productRepo) FindAll(limit, offset int) ([]domain.Product, error) {
	all := make([]domain.Product, 0, len(r.s.products))
	for _, product := range r.s.products {
		all = append(all, product)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return paginate(all, limit, offset), nil
}

func (r *productRepo) Update(product *domain.Product) error {
	if _, ok := r.s.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	product.UpdatedAt = time.Now()
	r.s.products[product.ID] = *product
	return nil
}

func (r *productRepo) Delete(id uint) error {
	delete(r.s.products, id)
	return nil
}

func (r *productRepo) Count() (int64, error) {
	return int64(len(r.s.products)), nil
}

func (r *productRepo) CountBySupplier(supplierID uint) (int64, error) {
	var count int64
	for _, product := range r.s.products {
		if product.SupplierID != nil && *product.SupplierID == supplierID {
			count++
		}
	}
	return count, nil
}

func (r *productRepo) CountByCategories(categoryIDs []uint) (int64, error) {
	if len(categoryIDs) == 0 {
		return 0, nil
	}
	ids := make(map[uint]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		ids[id] = true
	}
	var count int64
	for _, product := range r.s.products {
		if product.CategoryID != nil && ids[*product.CategoryID] {
			count++
		}
	}
	return count, nil
}

// --- categories ---

type categoryRepo struct{ s *Store }

func (r *categoryRepo) Create(category *domain.Category) error {
	category.ID = r.s.nextCategoryID
	r.s.nextCategoryID++
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now
	r.s.categories[category.ID] = *category
	return nil
}

func (r *categoryRepo) FindByID(id uint) (*domain.Category, error) {
	category, ok := r.s.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return &category, nil
}

func (r *categoryRepo) FindByName(name string) (*domain.Category, error) {
	for _, category := range r.s.categories {
		if category.Name == name {
			c := category
			return &c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *categoryRepo) FindAll(limit, offset int) ([]domain.Category, error) {
	all := make([]domain.Category, 0, len(r.s.categories))
	for _, category := range r.s.categories {
		all = append(all, category)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return paginate(all, limit, offset), nil
}

func (r *categoryRepo) FindChildren(parentID uint) ([]domain.Category, error) {
	var children []domain.Category
	for _, category := range r.s.categories {
		if category.ParentID != nil && *category.ParentID == parentID {
			children = append(children, category)
		}
	}
	sort.Slice(children, func(i, j int) bool { return children[i].ID < children[j].ID })
	return children, nil
}

func (r *categoryRepo) Update(category *domain.Category) error {
	if _, ok := r.s.categories[category.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	category.UpdatedAt = time.Now()
	r.s.categories[category.ID] = *category
	return nil
}

func (r *categoryRepo) DeleteByIDs(ids []uint) error {
	for _, id := range ids {
		delete(r.s.categories, id)
	}
	return nil
}

// --- suppliers ---

type supplierRepo struct{ s *Store }

func (r *supplierRepo) Create(supplier *domain.Supplier) error {
	supplier.ID = r.s.nextSupplierID
	r.s.nextSupplierID++
	now := time.Now()
	supplier.CreatedAt = now
	supplier.UpdatedAt = now
	r.s.suppliers[supplier.ID] = *supplier
	return nil
}

func (r *supplierRepo) FindByID(id uint) (*domain.Supplier, error) {
	supplier, ok := r.s.suppliers[id]
	if !ok {
		return nil, domain.ErrSupplierNotFound
	}
	return &supplier, nil
}

func (r *supplierRepo) FindAll(limit, offset int) ([]domain.Supplier, error) {
	all := make([]domain.Supplier, 0, len(r.s.suppliers))
	for _, supplier := range r.s.suppliers {
		all = append(all, supplier)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return paginate(all, limit, offset), nil
}

func (r *supplierRepo) Update(supplier *domain.Supplier) error {
	if _, ok := r.s.suppliers[supplier.ID]; !ok {
		return domain.ErrSupplierNotFound
	}
	supplier.UpdatedAt = time.Now()
	r.s.suppliers[supplier.ID] = *supplier
	return nil
}

func (r *supplierRepo) Delete(id uint) error {
	delete(r.s.suppliers, id)
	return nil
}

// --- stock ---

type stockRepo struct{ s *Store }

func (r *stockRepo) Create(stock *domain.ProductStock) error {
	stock.ID = stock.ProductID
	stock.LastUpdated = time.Now()
	r.s.stock[stock.ProductID] = *stock
	return nil
}

func (r *stockRepo) FindByProductID(productID uint) (*domain.ProductStock, error) {
	stock, ok := r.s.stock[productID]
	if !ok {
		return nil, domain.ErrStockNotFound
	}
	return &stock, nil
}

func (r *stockRepo) FindAll(limit, offset int) ([]domain.ProductStock, error) {
	all := make([]domain.ProductStock, 0, len(r.s.stock))
	for _, stock := range r.s.stock {
		all = append(all, stock)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ProductID < all[j].ProductID })
	return paginate(all, limit, offset), nil
}

func (r *stockRepo) Update(stock *domain.ProductStock) error {
	if _, ok := r.s.stock[stock.ProductID]; !ok {
		return domain.ErrStockNotFound
	}
	stock.LastUpdated = time.Now()
	r.s.stock[stock.ProductID] = *stock
	return nil
}

func (r *stockRepo) DeleteByProductID(productID uint) error {
	delete(r.s.stock, productID)
	return nil
}

// --- reviews ---

type reviewRepo struct{ s *Store }

func (r *reviewRepo) Create(review *domain.Review) error {
	review.ID = r.s.nextReviewID
	r.s.nextReviewID++
	review.ReviewDate = time.Now()
	r.s.reviews[review.ID] = *review
	return nil
}

func (r *reviewRepo) FindByID(id uint) (*domain.Review, error) {
	review, ok := r.s.reviews[id]
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	return &review, nil
}

func (r *reviewRepo) FindByProductID(productID uint) ([]domain.Review, error) {
	var reviews []domain.Review
	for _, review := range r.s.reviews {
		if review.ProductID == productID {
			reviews = append(reviews, review)
		}
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ID < reviews[j].ID })
	return reviews, nil
}

func (r *reviewRepo) Update(review *domain.Review) error {
	if _, ok := r.s.reviews[review.ID]; !ok {
		return domain.ErrReviewNotFound
	}
	r.s.reviews[review.ID] = *review
	return nil
}

func (r *reviewRepo) Delete(id uint) error {
	delete(r.s.reviews, id)
	return nil
}

func (r *reviewRepo) DeleteByProductID(productID uint) error {
	for id, review := range r.s.reviews {
		if review.ProductID == productID {
			delete(r.s.reviews, id)
		}
	}
	return nil
}

// --- ratings ---

type ratingRepo struct{ s *Store }

func (r *ratingRepo) FindByProductID(productID uint) (*domain.ProductRating, error) {
	rating, ok := r.s.ratings[productID]
	if !ok {
		return nil, domain.ErrRatingNotFound
	}
	return &rating, nil
}

func (r *ratingRepo) Upsert(rating *domain.ProductRating) error {
	existing, ok := r.s.ratings[rating.ProductID]
	if ok {
		rating.ID = existing.ID
	} else {
		rating.ID = rating.ProductID
	}
	r.s.ratings[rating.ProductID] = *rating
	return nil
}

func (r *ratingRepo) DeleteByProductID(productID uint) error {
	delete(r.s.ratings, productID)
	return nil
}

// --- price history ---

type priceHistoryRepo struct{ s *Store }

func (r *priceHistoryRepo) Create(entry *domain.PriceHistory) error {
	entry.ID = r.s.nextEntryID
	r.s.nextEntryID++
	entry.ChangeDate = time.Now()
	r.s.priceHistory = append(r.s.priceHistory, *entry)
	return nil
}

func (r *priceHistoryRepo) FindByProductID(productID uint) ([]domain.PriceHistory, error) {
	var entries []domain.PriceHistory
	for _, entry := range r.s.priceHistory {
		if entry.ProductID == productID {
			entries = append(entries, entry)
		}
	}
	// newest first, matching the SQL ordering
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID > entries[j].ID })
	return entries, nil
}

func (r *priceHistoryRepo) DeleteByProductID(productID uint) error {
	kept := r.s.priceHistory[:0]
	for _, entry := range r.s.priceHistory {
		if entry.ProductID != productID {
			kept = append(kept, entry)
		}
	}
	r.s.priceHistory = kept
	return nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
