package leads

import (
	"context"
	"testing"
)

func TestMemStore_Subscribe_DuplicateReturnsExisting(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	first, err := s.Subscribe(ctx, "gem@example.com")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	second, err := s.Subscribe(ctx, "gem@example.com")
	if err != nil {
		t.Fatalf("subscribe again: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("ids differ: %d vs %d", first.ID, second.ID)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("created_at changed on duplicate subscribe")
	}

	third, err := s.Subscribe(ctx, "other@example.com")
	if err != nil {
		t.Fatalf("subscribe other: %v", err)
	}
	if third.ID == first.ID {
		t.Fatalf("distinct email reused id %d", first.ID)
	}
}

func TestMemStore_CreateCustomOrder(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	phone := "+1 555 0100"
	o, err := s.CreateCustomOrder(ctx, NewCustomOrder{
		Reference:   "co_test",
		Name:        "Ada",
		Email:       "ada@example.com",
		Phone:       &phone,
		JewelryType: "ring",
		Budget:      "1000-2500",
		Description: "A sapphire ring with a vine-engraved band.",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if o.ID != 1 {
		t.Fatalf("id=%d, want 1", o.ID)
	}
	if o.CreatedAt.IsZero() {
		t.Fatalf("created_at not set")
	}

	orders, err := s.ListCustomOrders(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 1 || orders[0].Reference != "co_test" {
		t.Fatalf("unexpected orders: %+v", orders)
	}
}

func TestMemStore_Testimonials(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	if _, err := s.CreateTestimonial(ctx, NewTestimonial{Name: "A", Location: "NY", Content: "Lovely.", Rating: 5}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.CreateTestimonial(ctx, NewTestimonial{Name: "B", Location: "LA", Content: "Stunning.", Rating: 4}); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := s.ListTestimonials(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len=%d, want 2", len(list))
	}
	if list[0].ID > list[1].ID {
		t.Fatalf("not in id order")
	}
}
