package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tiffin-finder/kitchen-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/lucsky/cuid"
	"github.com/sirupsen/logrus"
)

const (
	PaymentPending = "pending"
	PaymentCOD     = "cod"
	PaymentOnline  = "online"
)

type OrderService struct {
	repo      OrderRepository
	kitchens  KitchenRepository
	menu      MenuRepository
	qrEncoder QRGenerator
	notifier  Notifier
	log       logrus.FieldLogger
}

func NewOrderService(repo OrderRepository, kitchens KitchenRepository, menu MenuRepository, qr QRGenerator, notifier Notifier, log logrus.FieldLogger) *OrderService {
	return &OrderService{
		repo:      repo,
		kitchens:  kitchens,
		menu:      menu,
		qrEncoder: qr,
		notifier:  notifier,
		log:       log,
	}
}

// Create places an order for the caller. Item prices are taken from the
// menu; a total lower than the item subtotal is rejected.
func (s *OrderService) Create(ctx context.Context, actor domain.Actor, order *domain.Order) error {
	if order.KitchenID == uuid.Nil || len(order.Items) == 0 {
		return domain.ErrInvalidOrder
	}
	switch order.PaymentMethod {
	case "":
		order.PaymentMethod = PaymentCOD
	case PaymentCOD, PaymentOnline:
	default:
		return fmt.Errorf("%w: unknown payment method %q", domain.ErrInvalidOrder, order.PaymentMethod)
	}

	kitchen, err := s.kitchens.GetKitchen(ctx, order.KitchenID)
	if err != nil {
		return err
	}
	if !kitchen.IsActive || kitchen.Status != domain.KitchenApproved {
		return domain.ErrKitchenUnavailable
	}

	ids := make([]uuid.UUID, 0, len(order.Items))
	for _, item := range order.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidOrder)
		}
		ids = append(ids, item.MenuItemID)
	}
	menuItems, err := s.menu.GetMenuItems(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load menu items: %w", err)
	}
	byID := make(map[uuid.UUID]domain.MenuItem, len(menuItems))
	for _, mi := range menuItems {
		byID[mi.ID] = mi
	}

	now := time.Now()
	order.ID = uuid.New()
	var subtotal float64
	for i := range order.Items {
		mi, ok := byID[order.Items[i].MenuItemID]
		if !ok || mi.KitchenID != order.KitchenID || !mi.IsAvailable {
			return fmt.Errorf("%w: menu item %s is not available", domain.ErrInvalidOrder, order.Items[i].MenuItemID)
		}
		order.Items[i].ID = uuid.New()
		order.Items[i].OrderID = order.ID
		order.Items[i].Price = mi.Price
		order.Items[i].MenuItemName = mi.Name
		order.Items[i].CreatedAt = now
		subtotal += mi.Price * float64(order.Items[i].Quantity)
	}
	if order.TotalAmount == 0 {
		order.TotalAmount = subtotal
	}
	if order.TotalAmount < subtotal {
		return fmt.Errorf("%w: total below item subtotal", domain.ErrInvalidOrder)
	}

	order.UserID = actor.UserID
	order.KitchenName = kitchen.Name
	order.Reference = "TF-" + strings.ToUpper(cuid.Slug())
	order.Status = domain.OrderPending
	order.PaymentStatus = PaymentPending
	order.CreatedAt = now
	order.UpdatedAt = now

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID, order.KitchenID); err != nil {
			s.log.WithError(err).WithField("order_id", order.ID).Warn("failed to generate qr code")
		} else if err := s.repo.SaveQRCode(ctx, order.ID, qr); err != nil {
			s.log.WithError(err).WithField("order_id", order.ID).Warn("failed to save qr code")
		}
	}
	order.QRCode = s.QRLink(order.ID)

	publish(ctx, s.notifier, s.log, KitchenChannel(order.KitchenID), domain.ChangeEvent{
		Type:   "INSERT",
		Table:  ordersTable,
		Record: *order,
	})
	s.log.WithFields(logrus.Fields{"order_id": order.ID, "kitchen_id": order.KitchenID, "reference": order.Reference}).Info("order placed")
	return nil
}

func (s *OrderService) Get(ctx context.Context, actor domain.Actor, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() || order.UserID == actor.UserID {
		return order, nil
	}
	kitchen, err := s.kitchens.GetKitchen(ctx, order.KitchenID)
	if err != nil {
		return nil, err
	}
	if kitchen.UserID != actor.UserID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func (s *OrderService) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	return s.repo.ListUserOrders(ctx, userID)
}

// UpdateStatus moves an order along its lifecycle. Kitchen owners and admins
// drive every step; customers may only cancel their own pending orders.
func (s *OrderService) UpdateStatus(ctx context.Context, actor domain.Actor, orderID uuid.UUID, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	allowed := actor.IsAdmin()
	if !allowed {
		kitchen, err := s.kitchens.GetKitchen(ctx, order.KitchenID)
		if err != nil {
			return nil, err
		}
		allowed = kitchen.UserID == actor.UserID
	}
	if !allowed && order.UserID == actor.UserID {
		allowed = order.Status == domain.OrderPending && status == domain.OrderCancelled
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	if !order.Status.CanTransition(status) {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, order.Status, status)
	}
	if err := s.repo.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	order.Status = status
	order.UpdatedAt = time.Now()

	publish(ctx, s.notifier, s.log, OrderChannel(orderID), domain.ChangeEvent{
		Type:   "UPDATE",
		Table:  ordersTable,
		Record: *order,
	})
	return order, nil
}

func (s *OrderService) GetQRCode(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	qr, err := s.repo.GetQRCode(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		order, err := s.repo.GetOrder(ctx, orderID)
		if err != nil {
			return nil, err
		}
		regenerated, err := s.qrEncoder.Generate(orderID, order.KitchenID)
		if err != nil {
			s.log.WithError(err).WithField("order_id", orderID).Warn("failed to regenerate qr code")
			return qr, nil
		}
		if err := s.repo.SaveQRCode(ctx, orderID, regenerated); err != nil {
			s.log.WithError(err).WithField("order_id", orderID).Warn("failed to save qr code")
		}
		return regenerated, nil
	}
	return qr, nil
}

func (s *OrderService) QRLink(orderID uuid.UUID) string {
	return fmt.Sprintf("/api/orders/%s/qrcode", orderID)
}
