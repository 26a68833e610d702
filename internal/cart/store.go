package cart

import "context"

type Item struct {
	ID        int     `json:"id"`
	UserID    int     `json:"userId"`
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	Size      *string `json:"size"`
	Color     *string `json:"color"`
}

// NewItem carries an add-to-cart request. A zero Quantity defaults to 1.
type NewItem struct {
	UserID    int
	ProductID int
	Quantity  int
	Size      *string
	Color     *string
}

// Store holds cart rows. An item's quantity is at least 1 while the row
// exists; UpdateQuantity deletes the row instead of persisting a
// non-positive value.
type Store interface {
	Ping(ctx context.Context) error

	ListItems(ctx context.Context, userID int) ([]Item, error)
	GetItem(ctx context.Context, id int) (Item, bool, error)

	// AddItem merges into an existing row with the same
	// (userID, productID, size, color) by incrementing its quantity, or
	// inserts a new row.
	AddItem(ctx context.Context, ni NewItem) (Item, error)

	// UpdateQuantity returns (item, true) on success. A quantity <= 0
	// removes the row and returns false, as does an absent id.
	UpdateQuantity(ctx context.Context, id, quantity int) (Item, bool, error)

	RemoveItem(ctx context.Context, id int) (bool, error)
	ClearItems(ctx context.Context, userID int) error
}

func sameVariant(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
