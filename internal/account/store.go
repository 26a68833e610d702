// Package account holds the user records carts belong to. There is no
// login flow; the storefront operates as a single seeded demo user.
package account

import "context"

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	// Password is a plaintext demo value; this service has no
	// authentication model.
	Password string `json:"-"`
}

type NewUser struct {
	Username string
	Password string
}

type Store interface {
	Ping(ctx context.Context) error

	GetUser(ctx context.Context, id int) (User, bool, error)
	GetUserByUsername(ctx context.Context, username string) (User, bool, error)
	CreateUser(ctx context.Context, nu NewUser) (User, error)
}
