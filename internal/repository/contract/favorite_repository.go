package contract

import "context"

// FavoriteRepository persists the favorites set as one durable keyed value.
// It is injected so the toggle logic tests without a real storage backend.
type FavoriteRepository interface {
	// Load reads the persisted favorite ids. A missing entry is an empty set.
	Load(ctx context.Context) ([]string, error)

	// Save overwrites the persisted set. Called on every mutation.
	Save(ctx context.Context, ids []string) error
}
