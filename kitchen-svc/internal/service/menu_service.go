package service

import (
	"context"
	"strings"
	"time"

	"tiffin-finder/kitchen-svc/internal/domain"

	"github.com/google/uuid"
)

type MenuService struct {
	repo     MenuRepository
	kitchens KitchenServiceInterface
	cache    KitchenCache
}

func NewMenuService(repo MenuRepository, kitchens KitchenServiceInterface, cache KitchenCache) *MenuService {
	return &MenuService{repo: repo, kitchens: kitchens, cache: cache}
}

func validateMenuItem(item *domain.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" || item.Price <= 0 || !item.Category.Valid() {
		return domain.ErrInvalidMenuItem
	}
	return nil
}

func (s *MenuService) Create(ctx context.Context, actor domain.Actor, item *domain.MenuItem) error {
	if err := validateMenuItem(item); err != nil {
		return err
	}
	if err := s.kitchens.AuthorizeOwner(ctx, actor, item.KitchenID); err != nil {
		return err
	}
	now := time.Now()
	item.ID = uuid.New()
	item.CreatedAt = now
	item.UpdatedAt = now
	if item.DietaryInfo.Allergens == nil {
		item.DietaryInfo.Allergens = []string{}
	}
	if err := s.repo.CreateMenuItem(ctx, item); err != nil {
		return err
	}
	s.dropCache(ctx)
	return nil
}

func (s *MenuService) List(ctx context.Context, kitchenID uuid.UUID) ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems(ctx, kitchenID)
}

func (s *MenuService) Update(ctx context.Context, actor domain.Actor, item *domain.MenuItem) error {
	if err := validateMenuItem(item); err != nil {
		return err
	}
	if err := s.kitchens.AuthorizeOwner(ctx, actor, item.KitchenID); err != nil {
		return err
	}
	item.UpdatedAt = time.Now()
	rows, err := s.repo.UpdateMenuItem(ctx, item)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMenuItemNotFound
	}
	s.dropCache(ctx)
	return nil
}

func (s *MenuService) Delete(ctx context.Context, actor domain.Actor, kitchenID, itemID uuid.UUID) error {
	if err := s.kitchens.AuthorizeOwner(ctx, actor, kitchenID); err != nil {
		return err
	}
	rows, err := s.repo.DeleteMenuItem(ctx, kitchenID, itemID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMenuItemNotFound
	}
	s.dropCache(ctx)
	return nil
}

func (s *MenuService) dropCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateNearby(ctx)
	}
}
