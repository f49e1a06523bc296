package discovery

import (
	"math"
	"strings"

	"tiffin-finder/storefront/internal/model"
)

const earthRadius = 6371e3 // meters

// DefaultOrigin is used when the caller has no location of its own.
var DefaultOrigin = model.Coordinates{Lat: 28.6139, Lng: 77.2090}

const DefaultRadius = 15000.0

// Distance returns the great-circle distance between a and b in meters.
func Distance(a, b model.Coordinates) float64 {
	phi1 := a.Lat * math.Pi / 180
	phi2 := b.Lat * math.Pi / 180
	dPhi := (b.Lat - a.Lat) * math.Pi / 180
	dLambda := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return earthRadius * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

type Query struct {
	Origin   model.Coordinates
	Radius   float64
	Text     string
	Category string
}

// WithinRadius keeps kitchens no further than radius meters from origin.
// Kitchens without coordinates are dropped.
func WithinRadius(kitchens []model.Kitchen, origin model.Coordinates, radius float64) []model.Kitchen {
	out := make([]model.Kitchen, 0, len(kitchens))
	for _, k := range kitchens {
		if k.Address.Coordinates == nil {
			continue
		}
		if Distance(origin, *k.Address.Coordinates) <= radius {
			out = append(out, k)
		}
	}
	return out
}

// Matching applies the text and category parts of q, keeping order.
func Matching(kitchens []model.Kitchen, q Query) []model.Kitchen {
	text := strings.ToLower(q.Text)
	out := make([]model.Kitchen, 0, len(kitchens))
	for _, k := range kitchens {
		if !matchesText(k, text) {
			continue
		}
		if q.Category != "" && k.CuisineType != q.Category {
			continue
		}
		out = append(out, k)
	}
	return out
}

// Filter is WithinRadius followed by Matching.
func Filter(kitchens []model.Kitchen, q Query) []model.Kitchen {
	return Matching(WithinRadius(kitchens, q.Origin, q.Radius), q)
}

func matchesText(k model.Kitchen, lowered string) bool {
	if lowered == "" {
		return true
	}
	return strings.Contains(strings.ToLower(k.Name), lowered) ||
		strings.Contains(strings.ToLower(k.CuisineType), lowered) ||
		strings.Contains(strings.ToLower(k.Description), lowered)
}
