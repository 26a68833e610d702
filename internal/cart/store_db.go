package cart

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

func (s *PostgresStore) ListItems(ctx context.Context, userID int) ([]Item, error) {
	var out []Item

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT id, user_id, product_id, quantity, size, color
			FROM cart_items
			WHERE user_id = $1
			ORDER BY id ASC
		`, userID)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Item, 0, 8)
		for rows.Next() {
			var it Item
			if err := rows.Scan(&it.ID, &it.UserID, &it.ProductID, &it.Quantity, &it.Size, &it.Color); err != nil {
				return err
			}
			out = append(out, it)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) GetItem(ctx context.Context, id int) (Item, bool, error) {
	var it Item

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT id, user_id, product_id, quantity, size, color
			FROM cart_items
			WHERE id = $1
		`, id).Scan(&it.ID, &it.UserID, &it.ProductID, &it.Quantity, &it.Size, &it.Color)
	})

	if errors.Is(err, sql.ErrNoRows) {
		return Item{}, false, nil
	}
	if err != nil {
		return Item{}, false, err
	}
	return it, true, nil
}

func (s *PostgresStore) AddItem(ctx context.Context, ni NewItem) (Item, error) {
	qty := ni.Quantity
	if qty <= 0 {
		qty = 1
	}

	var it Item
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		err := s.db.QueryRowContext(ctx, `
			UPDATE cart_items
			SET quantity = quantity + $1
			WHERE user_id = $2
			  AND product_id = $3
			  AND size IS NOT DISTINCT FROM $4
			  AND color IS NOT DISTINCT FROM $5
			RETURNING id, user_id, product_id, quantity, size, color
		`, qty, ni.UserID, ni.ProductID, ni.Size, ni.Color).
			Scan(&it.ID, &it.UserID, &it.ProductID, &it.Quantity, &it.Size, &it.Color)

		if err == nil {
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		return s.db.QueryRowContext(ctx, `
			INSERT INTO cart_items (user_id, product_id, quantity, size, color)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, user_id, product_id, quantity, size, color
		`, ni.UserID, ni.ProductID, qty, ni.Size, ni.Color).
			Scan(&it.ID, &it.UserID, &it.ProductID, &it.Quantity, &it.Size, &it.Color)
	})

	if err != nil {
		return Item{}, err
	}
	return it, nil
}

func (s *PostgresStore) UpdateQuantity(ctx context.Context, id, quantity int) (Item, bool, error) {
	if quantity <= 0 {
		_, err := s.RemoveItem(ctx, id)
		return Item{}, false, err
	}

	var it Item
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			UPDATE cart_items
			SET quantity = $1
			WHERE id = $2
			RETURNING id, user_id, product_id, quantity, size, color
		`, quantity, id).
			Scan(&it.ID, &it.UserID, &it.ProductID, &it.Quantity, &it.Size, &it.Color)
	})

	if errors.Is(err, sql.ErrNoRows) {
		return Item{}, false, nil
	}
	if err != nil {
		return Item{}, false, err
	}
	return it, true, nil
}

func (s *PostgresStore) RemoveItem(ctx context.Context, id int) (bool, error) {
	var removed bool

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		res, err := s.db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
		if err != nil {
			return err
		}

		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		removed = n > 0
		return nil
	})

	if err != nil {
		return false, err
	}
	return removed, nil
}

func (s *PostgresStore) ClearItems(ctx context.Context, userID int) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
		return err
	})
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
