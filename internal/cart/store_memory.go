package cart

import (
	"context"
	"sort"
	"sync"
)

type MemStore struct {
	mu     sync.RWMutex
	items  map[int]Item
	nextID int
}

func NewMemStore() *MemStore {
	return &MemStore{
		items:  map[int]Item{},
		nextID: 1,
	}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) ListItems(ctx context.Context, userID int) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) GetItem(ctx context.Context, id int) (Item, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	return it, ok, nil
}

func (s *MemStore) AddItem(ctx context.Context, ni NewItem) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	qty := ni.Quantity
	if qty <= 0 {
		qty = 1
	}

	for id, it := range s.items {
		if it.UserID != ni.UserID || it.ProductID != ni.ProductID {
			continue
		}
		if !sameVariant(it.Size, ni.Size) || !sameVariant(it.Color, ni.Color) {
			continue
		}

		it.Quantity += qty
		s.items[id] = it
		return it, nil
	}

	it := Item{
		ID:        s.nextID,
		UserID:    ni.UserID,
		ProductID: ni.ProductID,
		Quantity:  qty,
		Size:      ni.Size,
		Color:     ni.Color,
	}
	s.nextID++
	s.items[it.ID] = it
	return it, nil
}

func (s *MemStore) UpdateQuantity(ctx context.Context, id, quantity int) (Item, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return Item{}, false, nil
	}

	if quantity <= 0 {
		delete(s.items, id)
		return Item{}, false, nil
	}

	it.Quantity = quantity
	s.items[id] = it
	return it, true, nil
}

func (s *MemStore) RemoveItem(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

func (s *MemStore) ClearItems(ctx context.Context, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, it := range s.items {
		if it.UserID == userID {
			delete(s.items, id)
		}
	}
	return nil
}
