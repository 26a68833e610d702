package catalog

import (
	"context"
	"time"
)

type Category struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ImageURL string `json:"imageUrl"`
}

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	CategoryID  int       `json:"categoryId"`
	Featured    bool      `json:"featured"`
	Rating      string    `json:"rating"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewCategory carries the caller-supplied fields of a category; the store
// assigns the id.
type NewCategory struct {
	Name     string
	Slug     string
	ImageURL string
}

type NewProduct struct {
	Name        string
	Slug        string
	Description string
	Price       string
	ImageURL    string
	CategoryID  int
	Featured    bool
	Rating      string
	Stock       int
}

// Store gives access to the catalog. Slug uniqueness is a property the seed
// data guarantees, not something Create enforces.
type Store interface {
	Ping(ctx context.Context) error

	ListCategories(ctx context.Context) ([]Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (Category, bool, error)
	CreateCategory(ctx context.Context, nc NewCategory) (Category, error)

	ListProducts(ctx context.Context) ([]Product, error)
	ListProductsByCategory(ctx context.Context, categoryID int) ([]Product, error)
	ListFeaturedProducts(ctx context.Context) ([]Product, error)
	GetProductByID(ctx context.Context, id int) (Product, bool, error)
	GetProductBySlug(ctx context.Context, slug string) (Product, bool, error)
	CreateProduct(ctx context.Context, np NewProduct) (Product, error)
}
