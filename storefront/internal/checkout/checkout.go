package checkout

import (
	"context"
	"errors"
	"time"

	"tiffin-finder/storefront/internal/cart"
	"tiffin-finder/storefront/internal/model"

	"github.com/sirupsen/logrus"
)

const (
	DeliveryFee = 30.0
	TaxRate     = 0.05
)

var ErrEmptyCart = errors.New("your cart is empty")

type Summary struct {
	Subtotal    float64
	DeliveryFee float64
	Tax         float64
	Total       float64
}

// Summarize prices a cart subtotal. An empty cart costs nothing.
func Summarize(subtotal float64) Summary {
	if subtotal <= 0 {
		return Summary{}
	}
	tax := subtotal * TaxRate
	return Summary{
		Subtotal:    subtotal,
		DeliveryFee: DeliveryFee,
		Tax:         tax,
		Total:       subtotal + DeliveryFee + tax,
	}
}

type OrderPlacer interface {
	CreateOrder(ctx context.Context, order model.NewOrder) (*model.Order, error)
}

type Request struct {
	DeliveryAddress     *model.Address
	ScheduledTime       *time.Time
	SpecialInstructions string
	PaymentMethod       string
}

type Service struct {
	cart   *cart.Store
	orders OrderPlacer
	log    logrus.FieldLogger
}

func NewService(cart *cart.Store, orders OrderPlacer, log logrus.FieldLogger) *Service {
	return &Service{cart: cart, orders: orders, log: log}
}

// PlaceOrder sends the cart as an order. On success the order becomes the
// current order and the cart is emptied; on failure the cart is untouched.
func (s *Service) PlaceOrder(ctx context.Context, req Request) (*model.Order, error) {
	lines := s.cart.Lines()
	kitchenID, ok := s.cart.KitchenID()
	if !ok || len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	method := req.PaymentMethod
	if method == "" {
		method = "cod"
	}

	order := model.NewOrder{
		KitchenID:           kitchenID,
		TotalAmount:         Summarize(s.cart.Total()).Total,
		DeliveryAddress:     req.DeliveryAddress,
		ScheduledTime:       req.ScheduledTime,
		SpecialInstructions: req.SpecialInstructions,
		PaymentMethod:       method,
		Items:               make([]model.NewOrderItem, 0, len(lines)),
	}
	for _, line := range lines {
		order.Items = append(order.Items, model.NewOrderItem{
			MenuItemID:          line.MenuItem.ID,
			Quantity:            line.Quantity,
			SpecialInstructions: line.SpecialInstructions,
		})
	}

	placed, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	s.cart.SetCurrentOrder(*placed)
	s.cart.Clear()
	s.log.WithFields(logrus.Fields{"order_id": placed.ID, "reference": placed.Reference}).Info("order placed")
	return placed, nil
}
