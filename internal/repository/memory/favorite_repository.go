package memory

import (
	"context"
	"sync"

	"phonefinder-be/internal/repository/contract"
)

// FavoriteRepository is the in-memory favorites store, used when no Redis URL
// is configured and as the fake in service tests.
type FavoriteRepository struct {
	mu  sync.Mutex
	ids []string
}

var _ contract.FavoriteRepository = &FavoriteRepository{}

func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{ids: []string{}}
}

func (r *FavoriteRepository) Load(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.ids...), nil
}

func (r *FavoriteRepository) Save(_ context.Context, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append([]string{}, ids...)
	return nil
}
