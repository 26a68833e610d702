package account

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

func (s *PostgresStore) GetUser(ctx context.Context, id int) (User, bool, error) {
	return s.getUser(ctx, `
		SELECT id, username, password
		FROM users
		WHERE id = $1
	`, id)
}

func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (User, bool, error) {
	return s.getUser(ctx, `
		SELECT id, username, password
		FROM users
		WHERE username = $1
	`, username)
}

func (s *PostgresStore) CreateUser(ctx context.Context, nu NewUser) (User, error) {
	u := User{
		Username: nu.Username,
		Password: nu.Password,
	}

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			INSERT INTO users (username, password)
			VALUES ($1, $2)
			RETURNING id
		`, nu.Username, nu.Password).Scan(&u.ID)
	})

	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *PostgresStore) getUser(ctx context.Context, query string, arg any) (User, bool, error) {
	var u User

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Username, &u.Password)
	})

	if errors.Is(err, sql.ErrNoRows) {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, err
	}
	return u, true, nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
