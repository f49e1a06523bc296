package discovery

import (
	"time"

	"tiffin-finder/storefront/internal/model"
)

// DemoKitchens is the sample listing shown when the backend cannot be
// reached.
func DemoKitchens() []model.Kitchen {
	now := time.Now()
	return []model.Kitchen{
		{
			ID:          "1",
			UserID:      "1",
			Name:        "Maa ki Rasoi",
			OwnerName:   "Sunita Sharma",
			Story:       "I started cooking for my family 20 years ago, and now I want to share the same love and warmth with my neighborhood.",
			CuisineType: "North Indian",
			Description: "Authentic North Indian home cooking with love and traditional recipes passed down through generations.",
			Phone:       "+91 98765 43210",
			Email:       "sunita@maakirasoi.com",
			Address: model.Address{
				Street:      "123 Gali No. 5, Krishna Nagar",
				City:        "Delhi",
				State:       "Delhi",
				ZipCode:     "110051",
				Coordinates: &model.Coordinates{Lat: 28.6139, Lng: 77.2090},
			},
			IsActive:      true,
			Status:        "approved",
			OpeningTime:   "08:00:00",
			ClosingTime:   "20:00:00",
			Rating:        4.8,
			ReviewCount:   24,
			CoverImage:    "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			GalleryImages: []string{},
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
}
