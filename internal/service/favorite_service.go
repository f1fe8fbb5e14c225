package service

import (
	"context"
	"sync"

	"phonefinder-be/internal/dto"
	"phonefinder-be/internal/pkg/serverutils"
	"phonefinder-be/internal/repository/contract"

	"github.com/gofiber/fiber/v2"
)

// IFavoriteService maintains the persisted favorites set.
type IFavoriteService interface {
	Toggle(ctx context.Context, id string) (*dto.FavoritesResponse, error)
	List(ctx context.Context) (*dto.FavoritesResponse, error)
}

type favoriteService struct {
	repo contract.FavoriteRepository

	// mu makes load-toggle-save atomic across requests.
	mu sync.Mutex
}

func NewFavoriteService(repo contract.FavoriteRepository) IFavoriteService {
	return &favoriteService{repo: repo}
}

func (s *favoriteService) Toggle(ctx context.Context, id string) (*dto.FavoritesResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.repo.Load(ctx)
	if err != nil {
		return nil, serverutils.NewAppError(fiber.StatusInternalServerError, "Could not load favorites.", err)
	}

	ids = toggleId(ids, id)

	// Flush on every mutation so favorites survive a restart.
	if err := s.repo.Save(ctx, ids); err != nil {
		return nil, serverutils.NewAppError(fiber.StatusInternalServerError, "Could not save favorites.", err)
	}

	return &dto.FavoritesResponse{Ids: ids}, nil
}

func (s *favoriteService) List(ctx context.Context) (*dto.FavoritesResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.repo.Load(ctx)
	if err != nil {
		return nil, serverutils.NewAppError(fiber.StatusInternalServerError, "Could not load favorites.", err)
	}
	return &dto.FavoritesResponse{Ids: ids}, nil
}

func toggleId(ids []string, id string) []string {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}
