package catalog

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemStore struct {
	mu sync.RWMutex

	categories map[int]Category
	products   map[int]Product

	nextCategoryID int
	nextProductID  int
}

func NewMemStore() *MemStore {
	return &MemStore{
		categories:     map[int]Category{},
		products:       map[int]Product{},
		nextCategoryID: 1,
		nextProductID:  1,
	}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) ListCategories(ctx context.Context) ([]Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) GetCategoryBySlug(ctx context.Context, slug string) (Category, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Slug == slug {
			return c, true, nil
		}
	}
	return Category{}, false, nil
}

func (s *MemStore) CreateCategory(ctx context.Context, nc NewCategory) (Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := Category{
		ID:       s.nextCategoryID,
		Name:     nc.Name,
		Slug:     nc.Slug,
		ImageURL: nc.ImageURL,
	}
	s.nextCategoryID++
	s.categories[c.ID] = c
	return c, nil
}

func (s *MemStore) ListProducts(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listProductsLocked(func(Product) bool { return true }), nil
}

func (s *MemStore) ListProductsByCategory(ctx context.Context, categoryID int) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listProductsLocked(func(p Product) bool { return p.CategoryID == categoryID }), nil
}

func (s *MemStore) ListFeaturedProducts(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listProductsLocked(func(p Product) bool { return p.Featured }), nil
}

func (s *MemStore) GetProductByID(ctx context.Context, id int) (Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	return p, ok, nil
}

func (s *MemStore) GetProductBySlug(ctx context.Context, slug string) (Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.Slug == slug {
			return p, true, nil
		}
	}
	return Product{}, false, nil
}

func (s *MemStore) CreateProduct(ctx context.Context, np NewProduct) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Product{
		ID:          s.nextProductID,
		Name:        np.Name,
		Slug:        np.Slug,
		Description: np.Description,
		Price:       np.Price,
		ImageURL:    np.ImageURL,
		CategoryID:  np.CategoryID,
		Featured:    np.Featured,
		Rating:      np.Rating,
		Stock:       np.Stock,
		CreatedAt:   time.Now().UTC(),
	}
	s.nextProductID++
	s.products[p.ID] = p
	return p, nil
}

// listProductsLocked assumes at least a read lock and returns matching
// products sorted by id, which preserves insertion order.
func (s *MemStore) listProductsLocked(match func(Product) bool) []Product {
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if match(p) {
			out = append(out, p)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
