package account

import (
	"context"
	"sync"
)

type MemStore struct {
	mu     sync.RWMutex
	users  map[int]User
	nextID int
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:  map[int]User{},
		nextID: 1,
	}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) GetUser(ctx context.Context, id int) (User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	return u, ok, nil
}

func (s *MemStore) GetUserByUsername(ctx context.Context, username string) (User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, true, nil
		}
	}
	return User{}, false, nil
}

func (s *MemStore) CreateUser(ctx context.Context, nu NewUser) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := User{
		ID:       s.nextID,
		Username: nu.Username,
		Password: nu.Password,
	}
	s.nextID++
	s.users[u.ID] = u
	return u, nil
}
