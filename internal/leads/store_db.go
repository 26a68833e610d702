package leads

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
	pgUniqueCode = "23505"
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

func (s *PostgresStore) CreateCustomOrder(ctx context.Context, no NewCustomOrder) (CustomOrder, error) {
	o := CustomOrder{
		Reference:   no.Reference,
		Name:        no.Name,
		Email:       no.Email,
		Phone:       no.Phone,
		JewelryType: no.JewelryType,
		Budget:      no.Budget,
		Description: no.Description,
	}

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			INSERT INTO custom_orders
				(reference, name, email, phone, jewelry_type, budget, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at
		`, no.Reference, no.Name, no.Email, no.Phone, no.JewelryType, no.Budget, no.Description).
			Scan(&o.ID, &o.CreatedAt)
	})

	if err != nil {
		return CustomOrder{}, err
	}
	return o, nil
}

func (s *PostgresStore) ListCustomOrders(ctx context.Context) ([]CustomOrder, error) {
	var out []CustomOrder

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT id, reference, name, email, phone, jewelry_type, budget, description, created_at
			FROM custom_orders
			ORDER BY id ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]CustomOrder, 0, 8)
		for rows.Next() {
			var o CustomOrder
			if err := rows.Scan(
				&o.ID, &o.Reference, &o.Name, &o.Email, &o.Phone,
				&o.JewelryType, &o.Budget, &o.Description, &o.CreatedAt,
			); err != nil {
				return err
			}
			out = append(out, o)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) ListTestimonials(ctx context.Context) ([]Testimonial, error) {
	var out []Testimonial

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT id, name, location, content, rating, avatar_url
			FROM testimonials
			ORDER BY id ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Testimonial, 0, 8)
		for rows.Next() {
			var t Testimonial
			if err := rows.Scan(&t.ID, &t.Name, &t.Location, &t.Content, &t.Rating, &t.AvatarURL); err != nil {
				return err
			}
			out = append(out, t)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) CreateTestimonial(ctx context.Context, nt NewTestimonial) (Testimonial, error) {
	t := Testimonial{
		Name:      nt.Name,
		Location:  nt.Location,
		Content:   nt.Content,
		Rating:    nt.Rating,
		AvatarURL: nt.AvatarURL,
	}

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			INSERT INTO testimonials (name, location, content, rating, avatar_url)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, nt.Name, nt.Location, nt.Content, nt.Rating, nt.AvatarURL).Scan(&t.ID)
	})

	if err != nil {
		return Testimonial{}, err
	}
	return t, nil
}

func (s *PostgresStore) Subscribe(ctx context.Context, email string) (Subscription, error) {
	var sub Subscription

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		err := s.db.QueryRowContext(ctx, `
			INSERT INTO subscriptions (email)
			VALUES ($1)
			RETURNING id, email, created_at
		`, email).Scan(&sub.ID, &sub.Email, &sub.CreatedAt)

		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return err
		}

		// Already on the list; hand back the existing row.
		return s.db.QueryRowContext(ctx, `
			SELECT id, email, created_at
			FROM subscriptions
			WHERE email = $1
		`, email).Scan(&sub.ID, &sub.Email, &sub.CreatedAt)
	})

	if err != nil {
		return Subscription{}, err
	}
	return sub, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueCode
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
