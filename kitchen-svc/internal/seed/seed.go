// Package seed fills an empty database with demonstration kitchens.
package seed

import (
	"context"
	"fmt"
	"time"

	"tiffin-finder/kitchen-svc/internal/domain"
	"tiffin-finder/kitchen-svc/internal/service"

	"github.com/google/uuid"
	"github.com/jaswdr/faker"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/crypto/bcrypt"
)

// Delhi is the centre the generated kitchens are scattered around.
var Delhi = domain.Coordinates{Lat: 28.6139, Lng: 77.2090}

var Cuisines = []string{
	"North Indian", "South Indian", "Punjabi", "Gujarati", "Bengali", "Maharashtrian", "Rajasthani",
}

var dishes = map[domain.MenuCategory][]string{
	domain.CategoryBreakfast: {"Aloo Paratha", "Poha", "Idli Sambar", "Masala Dosa", "Upma"},
	domain.CategoryLunch:     {"Rajma Chawal", "Dal Tadka Thali", "Chole Bhature", "Veg Biryani", "Kadhi Chawal"},
	domain.CategoryDinner:    {"Paneer Butter Masala", "Dal Makhani", "Baingan Bharta", "Macher Jhol", "Dal Baati Churma"},
	domain.CategorySnack:     {"Samosa", "Dhokla", "Kachori", "Vada Pav", "Pakora"},
	domain.CategoryBeverage:  {"Masala Chai", "Lassi", "Filter Coffee", "Nimbu Pani", "Chaas"},
}

type Seeder struct {
	users    service.UserRepository
	kitchens service.KitchenRepository
	menu     service.MenuRepository
	fake     faker.Faker
	password string
}

func New(users service.UserRepository, kitchens service.KitchenRepository, menu service.MenuRepository, password string) *Seeder {
	return &Seeder{users: users, kitchens: kitchens, menu: menu, fake: faker.New(), password: password}
}

// Run creates count approved kitchens, each owned by a fresh home_kitchen
// account sharing the seed password.
func (s *Seeder) Run(ctx context.Context, count int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	bar := progressbar.Default(int64(count), "seeding kitchens")
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.seedKitchen(ctx, string(hash)); err != nil {
			return err
		}
		_ = bar.Add(1)
	}
	return nil
}

func (s *Seeder) seedKitchen(ctx context.Context, passwordHash string) error {
	now := time.Now()
	ownerName := s.fake.Person().Name()
	owner := &domain.User{
		ID:           uuid.New(),
		Email:        s.fake.Internet().Email(),
		PasswordHash: passwordHash,
		Metadata: domain.UserMetadata{
			Name:  ownerName,
			Phone: fmt.Sprintf("9%09d", s.fake.IntBetween(0, 999999999)),
			Role:  domain.RoleHomeKitchen,
		},
		CreatedAt: now,
	}
	if err := s.users.CreateUser(ctx, owner); err != nil {
		return fmt.Errorf("failed to seed owner: %w", err)
	}

	cuisine := Cuisines[s.fake.IntBetween(0, len(Cuisines)-1)]
	kitchen := &domain.Kitchen{
		ID:          uuid.New(),
		UserID:      owner.ID,
		Name:        s.fake.Person().LastName() + " ki Rasoi",
		OwnerName:   ownerName,
		Story:       s.fake.Lorem().Sentence(12),
		CuisineType: cuisine,
		Description: s.fake.Lorem().Sentence(10),
		Phone:       owner.Metadata.Phone,
		Email:       owner.Email,
		Address: domain.Address{
			Street:  s.fake.Address().StreetAddress(),
			City:    "Delhi",
			State:   "Delhi",
			ZipCode: fmt.Sprintf("110%03d", s.fake.IntBetween(1, 99)),
			Coordinates: &domain.Coordinates{
				Lat: Delhi.Lat + offset(s.fake),
				Lng: Delhi.Lng + offset(s.fake),
			},
		},
		IsActive:      true,
		Status:        domain.KitchenApproved,
		OpeningTime:   "08:00:00",
		ClosingTime:   "20:00:00",
		GalleryImages: []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.kitchens.CreateKitchen(ctx, kitchen); err != nil {
		return fmt.Errorf("failed to seed kitchen: %w", err)
	}

	for category, names := range dishes {
		item := &domain.MenuItem{
			ID:          uuid.New(),
			KitchenID:   kitchen.ID,
			Name:        names[s.fake.IntBetween(0, len(names)-1)],
			Description: s.fake.Lorem().Sentence(8),
			Price:       float64(s.fake.IntBetween(4, 30) * 10),
			Category:    category,
			IsAvailable: true,
			DietaryInfo: domain.DietaryInfo{
				IsVeg:     category != domain.CategoryDinner || s.fake.Bool(),
				IsSpicy:   s.fake.Bool(),
				Allergens: []string{},
			},
			PreparationTime: s.fake.IntBetween(10, 45),
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := s.menu.CreateMenuItem(ctx, item); err != nil {
			return fmt.Errorf("failed to seed menu item: %w", err)
		}
	}
	return nil
}

// offset spreads kitchens up to roughly 12 km from the centre.
func offset(f faker.Faker) float64 {
	return f.Float64(4, -11, 11) / 100
}
