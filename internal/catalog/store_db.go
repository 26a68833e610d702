package catalog

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresStore) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT id, name, slug, image_url
			FROM categories
			ORDER BY id ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Category, 0, 8)
		for rows.Next() {
			var c Category
			if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.ImageURL); err != nil {
				return err
			}
			out = append(out, c)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) GetCategoryBySlug(ctx context.Context, slug string) (Category, bool, error) {
	var c Category

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT id, name, slug, image_url
			FROM categories
			WHERE slug = $1
		`, slug).Scan(&c.ID, &c.Name, &c.Slug, &c.ImageURL)
	})

	if errors.Is(err, sql.ErrNoRows) {
		return Category{}, false, nil
	}
	if err != nil {
		return Category{}, false, err
	}
	return c, true, nil
}

func (s *PostgresStore) CreateCategory(ctx context.Context, nc NewCategory) (Category, error) {
	c := Category{
		Name:     nc.Name,
		Slug:     nc.Slug,
		ImageURL: nc.ImageURL,
	}

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			INSERT INTO categories (name, slug, image_url)
			VALUES ($1, $2, $3)
			RETURNING id
		`, nc.Name, nc.Slug, nc.ImageURL).Scan(&c.ID)
	})

	if err != nil {
		return Category{}, err
	}
	return c, nil
}

const productColumns = `
	id, name, slug, description, price::text, image_url,
	category_id, featured, rating::text, stock, created_at
`

func (s *PostgresStore) ListProducts(ctx context.Context) ([]Product, error) {
	return s.listProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY id ASC
	`)
}

func (s *PostgresStore) ListProductsByCategory(ctx context.Context, categoryID int) ([]Product, error) {
	return s.listProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE category_id = $1
		ORDER BY id ASC
	`, categoryID)
}

func (s *PostgresStore) ListFeaturedProducts(ctx context.Context) ([]Product, error) {
	return s.listProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE featured
		ORDER BY id ASC
	`)
}

func (s *PostgresStore) GetProductByID(ctx context.Context, id int) (Product, bool, error) {
	return s.getProduct(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1
	`, id)
}

func (s *PostgresStore) GetProductBySlug(ctx context.Context, slug string) (Product, bool, error) {
	return s.getProduct(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE slug = $1
	`, slug)
}

func (s *PostgresStore) CreateProduct(ctx context.Context, np NewProduct) (Product, error) {
	p := Product{
		Name:        np.Name,
		Slug:        np.Slug,
		Description: np.Description,
		Price:       np.Price,
		ImageURL:    np.ImageURL,
		CategoryID:  np.CategoryID,
		Featured:    np.Featured,
		Rating:      np.Rating,
		Stock:       np.Stock,
	}

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			INSERT INTO products
				(name, slug, description, price, image_url, category_id, featured, rating, stock)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, created_at
		`, np.Name, np.Slug, np.Description, np.Price, np.ImageURL,
			np.CategoryID, np.Featured, np.Rating, np.Stock,
		).Scan(&p.ID, &p.CreatedAt)
	})

	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *PostgresStore) listProducts(ctx context.Context, query string, args ...any) ([]Product, error) {
	var out []Product

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Product, 0, 16)
		for rows.Next() {
			p, err := scanProduct(rows)
			if err != nil {
				return err
			}
			out = append(out, p)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) getProduct(ctx context.Context, query string, args ...any) (Product, bool, error) {
	var (
		p   Product
		err error
	)

	err = withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		row := s.db.QueryRowContext(ctx, query, args...)
		p, err = scanProduct(row)
		return err
	})

	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, false, nil
	}
	if err != nil {
		return Product{}, false, err
	}
	return p, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.ImageURL,
		&p.CategoryID, &p.Featured, &p.Rating, &p.Stock, &p.CreatedAt,
	)
	return p, err
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
