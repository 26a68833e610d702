package leads

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemStore struct {
	mu sync.RWMutex

	customOrders  map[int]CustomOrder
	testimonials  map[int]Testimonial
	subscriptions map[int]Subscription

	nextCustomOrderID  int
	nextTestimonialID  int
	nextSubscriptionID int
}

func NewMemStore() *MemStore {
	return &MemStore{
		customOrders:       map[int]CustomOrder{},
		testimonials:       map[int]Testimonial{},
		subscriptions:      map[int]Subscription{},
		nextCustomOrderID:  1,
		nextTestimonialID:  1,
		nextSubscriptionID: 1,
	}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) CreateCustomOrder(ctx context.Context, no NewCustomOrder) (CustomOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := CustomOrder{
		ID:          s.nextCustomOrderID,
		Reference:   no.Reference,
		Name:        no.Name,
		Email:       no.Email,
		Phone:       no.Phone,
		JewelryType: no.JewelryType,
		Budget:      no.Budget,
		Description: no.Description,
		CreatedAt:   time.Now().UTC(),
	}
	s.nextCustomOrderID++
	s.customOrders[o.ID] = o
	return o, nil
}

func (s *MemStore) ListCustomOrders(ctx context.Context) ([]CustomOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]CustomOrder, 0, len(s.customOrders))
	for _, o := range s.customOrders {
		out = append(out, o)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) ListTestimonials(ctx context.Context) ([]Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Testimonial, 0, len(s.testimonials))
	for _, t := range s.testimonials {
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) CreateTestimonial(ctx context.Context, nt NewTestimonial) (Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := Testimonial{
		ID:        s.nextTestimonialID,
		Name:      nt.Name,
		Location:  nt.Location,
		Content:   nt.Content,
		Rating:    nt.Rating,
		AvatarURL: nt.AvatarURL,
	}
	s.nextTestimonialID++
	s.testimonials[t.ID] = t
	return t, nil
}

func (s *MemStore) Subscribe(ctx context.Context, email string) (Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sub := range s.subscriptions {
		if sub.Email == email {
			return sub, nil
		}
	}

	sub := Subscription{
		ID:        s.nextSubscriptionID,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	s.nextSubscriptionID++
	s.subscriptions[sub.ID] = sub
	return sub, nil
}
