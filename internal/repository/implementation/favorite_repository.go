package implementation

import (
	"context"
	"encoding/json"
	"fmt"

	"phonefinder-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const favoritesKey = "phonefinder:favorites"

// FavoriteRepository stores the favorites set as a JSON-encoded id list under
// a single Redis key.
type FavoriteRepository struct {
	rdb *redis.Client
}

var _ contract.FavoriteRepository = &FavoriteRepository{}

func NewFavoriteRepository(rdb *redis.Client) *FavoriteRepository {
	return &FavoriteRepository{rdb: rdb}
}

func (r *FavoriteRepository) Load(ctx context.Context) ([]string, error) {
	raw, err := r.rdb.Get(ctx, favoritesKey).Result()
	if err == redis.Nil {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("decode favorites: %w", err)
	}
	return ids, nil
}

func (r *FavoriteRepository) Save(ctx context.Context, ids []string) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	if err := r.rdb.Set(ctx, favoritesKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}
