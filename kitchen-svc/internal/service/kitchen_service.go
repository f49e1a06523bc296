package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"tiffin-finder/kitchen-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type KitchenService struct {
	repo   KitchenRepository
	menu   MenuRepository
	cache  KitchenCache
	images ImageStore
	log    logrus.FieldLogger
}

func NewKitchenService(repo KitchenRepository, menu MenuRepository, cache KitchenCache, images ImageStore, log logrus.FieldLogger) *KitchenService {
	return &KitchenService{repo: repo, menu: menu, cache: cache, images: images, log: log}
}

// Nearby lists active, approved kitchens ordered by rating, highest first.
// Distance filtering is left to the caller.
func (s *KitchenService) Nearby(ctx context.Context) ([]domain.Kitchen, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.GetNearby(ctx)
		if err != nil {
			s.log.WithError(err).Warn("nearby kitchens cache read failed")
		}
		if ok {
			return cached, nil
		}
	}

	kitchens, err := s.repo.ListActiveApproved(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list kitchens: %w", err)
	}
	for i := range kitchens {
		items, err := s.menu.ListMenuItems(ctx, kitchens[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list menu of kitchen %s: %w", kitchens[i].ID, err)
		}
		kitchens[i].MenuItems = items
	}

	if s.cache != nil {
		if err := s.cache.SetNearby(ctx, kitchens); err != nil {
			s.log.WithError(err).Warn("nearby kitchens cache write failed")
		}
	}
	return kitchens, nil
}

func (s *KitchenService) Get(ctx context.Context, id uuid.UUID) (*domain.Kitchen, error) {
	kitchen, err := s.repo.GetKitchen(ctx, id)
	if err != nil {
		return nil, err
	}
	if kitchen.MenuItems, err = s.menu.ListMenuItems(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to list menu: %w", err)
	}
	if kitchen.Reviews, err = s.repo.ListKitchenReviews(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return kitchen, nil
}

// Create registers a kitchen for the caller. New kitchens wait for approval.
func (s *KitchenService) Create(ctx context.Context, actor domain.Actor, kitchen *domain.Kitchen) error {
	if strings.TrimSpace(kitchen.Name) == "" || strings.TrimSpace(kitchen.CuisineType) == "" {
		return domain.ErrInvalidKitchen
	}
	now := time.Now()
	kitchen.ID = uuid.New()
	kitchen.UserID = actor.UserID
	kitchen.Status = domain.KitchenPending
	kitchen.IsActive = true
	kitchen.Rating = 0
	kitchen.ReviewCount = 0
	kitchen.CreatedAt = now
	kitchen.UpdatedAt = now
	if kitchen.GalleryImages == nil {
		kitchen.GalleryImages = []string{}
	}
	return s.repo.CreateKitchen(ctx, kitchen)
}

func (s *KitchenService) SetStatus(ctx context.Context, id uuid.UUID, status domain.KitchenStatus, isActive bool) error {
	switch status {
	case domain.KitchenPending, domain.KitchenApproved, domain.KitchenRejected:
	default:
		return domain.ErrInvalidKitchen
	}
	if err := s.repo.UpdateKitchenStatus(ctx, id, status, isActive); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *KitchenService) UploadCover(ctx context.Context, actor domain.Actor, id uuid.UUID, filename, contentType string, body io.Reader) (string, error) {
	if !allowedImageTypes[contentType] {
		return "", fmt.Errorf("%w: only JPEG, PNG, GIF, WebP allowed", domain.ErrInvalidKitchen)
	}
	if err := s.AuthorizeOwner(ctx, actor, id); err != nil {
		return "", err
	}

	key := "kitchen_" + id.String() + "_" + filepath.Base(filename)
	imageURL, err := s.images.Save(ctx, key, contentType, body)
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	if err := s.repo.UpdateKitchenImage(ctx, id, imageURL); err != nil {
		return "", err
	}
	s.invalidate(ctx)
	return imageURL, nil
}

// AuthorizeOwner succeeds for admins and for the user owning the kitchen.
func (s *KitchenService) AuthorizeOwner(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	kitchen, err := s.repo.GetKitchen(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && kitchen.UserID != actor.UserID {
		return domain.ErrForbidden
	}
	return nil
}

func (s *KitchenService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateNearby(ctx); err != nil {
		s.log.WithError(err).Warn("failed to invalidate nearby kitchens cache")
	}
}
