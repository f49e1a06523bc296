package backend

import (
	"context"
	"net/http"
	"net/url"

	"tiffin-finder/storefront/internal/model"
)

// NearbyKitchens lists active, approved kitchens, best rated first.
func (c *Client) NearbyKitchens(ctx context.Context) ([]model.Kitchen, error) {
	var kitchens []model.Kitchen
	if err := c.do(ctx, http.MethodGet, "/api/kitchens/nearby", nil, &kitchens); err != nil {
		return nil, err
	}
	return kitchens, nil
}

// Kitchen returns a kitchen with its menu and reviews.
func (c *Client) Kitchen(ctx context.Context, id string) (*model.Kitchen, error) {
	var kitchen model.Kitchen
	if err := c.do(ctx, http.MethodGet, "/api/kitchens/"+url.PathEscape(id), nil, &kitchen); err != nil {
		return nil, err
	}
	return &kitchen, nil
}

func (c *Client) CreateOrder(ctx context.Context, order model.NewOrder) (*model.Order, error) {
	var created model.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", order, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UserOrders lists the signed-in user's orders, newest first.
func (c *Client) UserOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) CreateReview(ctx context.Context, kitchenID string, review model.NewReview) (*model.Review, error) {
	if review.Photos == nil {
		review.Photos = []string{}
	}
	var created model.Review
	path := "/api/kitchens/" + url.PathEscape(kitchenID) + "/reviews"
	if err := c.do(ctx, http.MethodPost, path, review, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
