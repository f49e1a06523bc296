package tests

import (
	"io"

	"tiffin-finder/storefront/internal/model"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func menuItem(id, kitchenID string, price float64) model.MenuItem {
	return model.MenuItem{
		ID:          id,
		KitchenID:   kitchenID,
		Name:        "Item " + id,
		Price:       price,
		Category:    "lunch",
		IsAvailable: true,
	}
}

func kitchenAt(id, name, cuisine string, lat, lng float64) model.Kitchen {
	return model.Kitchen{
		ID:          id,
		Name:        name,
		CuisineType: cuisine,
		Description: name + " home cooking",
		IsActive:    true,
		Status:      "approved",
		Address: model.Address{
			City:        "Delhi",
			Coordinates: &model.Coordinates{Lat: lat, Lng: lng},
		},
	}
}
