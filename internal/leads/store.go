package leads

import (
	"context"
	"time"
)

// CustomOrder is a bespoke-design request, a lead rather than a fulfillable
// purchase order. Reference is the public id quoted back to the customer.
type CustomOrder struct {
	ID          int       `json:"id"`
	Reference   string    `json:"reference"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	JewelryType string    `json:"jewelryType"`
	Budget      string    `json:"budget"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Testimonial struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Location  string  `json:"location"`
	Content   string  `json:"content"`
	Rating    int     `json:"rating"`
	AvatarURL *string `json:"avatarUrl"`
}

type Subscription struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewCustomOrder struct {
	Reference   string
	Name        string
	Email       string
	Phone       *string
	JewelryType string
	Budget      string
	Description string
}

type NewTestimonial struct {
	Name      string
	Location  string
	Content   string
	Rating    int
	AvatarURL *string
}

// Store holds the lead-generation records. Custom orders and subscriptions
// are never updated or deleted once created.
type Store interface {
	Ping(ctx context.Context) error

	CreateCustomOrder(ctx context.Context, no NewCustomOrder) (CustomOrder, error)
	ListCustomOrders(ctx context.Context) ([]CustomOrder, error)

	ListTestimonials(ctx context.Context) ([]Testimonial, error)
	CreateTestimonial(ctx context.Context, nt NewTestimonial) (Testimonial, error)

	// Subscribe returns the existing subscription when the email is
	// already on the list.
	Subscribe(ctx context.Context, email string) (Subscription, error)
}
