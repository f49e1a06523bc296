package service

import (
	"context"
	"io"
	"time"

	"tiffin-finder/kitchen-svc/internal/domain"
	"tiffin-finder/token"

	"github.com/google/uuid"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateUserMetadata(ctx context.Context, id uuid.UUID, meta domain.UserMetadata) (*domain.User, error)
}

type KitchenRepository interface {
	ListActiveApproved(ctx context.Context) ([]domain.Kitchen, error)
	GetKitchen(ctx context.Context, id uuid.UUID) (*domain.Kitchen, error)
	CreateKitchen(ctx context.Context, kitchen *domain.Kitchen) error
	UpdateKitchenStatus(ctx context.Context, id uuid.UUID, status domain.KitchenStatus, isActive bool) error
	UpdateKitchenImage(ctx context.Context, id uuid.UUID, imageURL string) error
	ListKitchenReviews(ctx context.Context, kitchenID uuid.UUID) ([]domain.Review, error)
}

type MenuRepository interface {
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	ListMenuItems(ctx context.Context, kitchenID uuid.UUID) ([]domain.MenuItem, error)
	GetMenuItems(ctx context.Context, ids []uuid.UUID) ([]domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) (int64, error)
	DeleteMenuItem(ctx context.Context, kitchenID, itemID uuid.UUID) (int64, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	SaveQRCode(ctx context.Context, orderID uuid.UUID, qr []byte) error
	GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	ListUserOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error
	GetQRCode(ctx context.Context, orderID uuid.UUID) ([]byte, error)
}

type KitchenCache interface {
	GetNearby(ctx context.Context) ([]domain.Kitchen, bool, error)
	SetNearby(ctx context.Context, kitchens []domain.Kitchen) error
	InvalidateNearby(ctx context.Context) error
}

type SessionStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Notifier fans realtime events out to websocket subscribers.
type Notifier interface {
	Publish(ctx context.Context, channel string, payload interface{}) error
	Subscribe(ctx context.Context, channel string) (<-chan []byte, func(), error)
}

type ImageStore interface {
	Save(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type TokenIssuer interface {
	Issue(userID uuid.UUID, role string) (*token.Pair, error)
	Parse(tokenStr, kind string) (*token.Claims, error)
}

type AuthServiceInterface interface {
	SignUp(ctx context.Context, email, password string, meta domain.UserMetadata) (*domain.AuthResult, error)
	SignIn(ctx context.Context, email, password string) (*domain.AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
	SignOut(ctx context.Context, claims *token.Claims) error
	CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, meta domain.UserMetadata) (*domain.User, error)
}

type KitchenServiceInterface interface {
	Nearby(ctx context.Context) ([]domain.Kitchen, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Kitchen, error)
	Create(ctx context.Context, actor domain.Actor, kitchen *domain.Kitchen) error
	SetStatus(ctx context.Context, id uuid.UUID, status domain.KitchenStatus, isActive bool) error
	UploadCover(ctx context.Context, actor domain.Actor, id uuid.UUID, filename, contentType string, body io.Reader) (string, error)
	AuthorizeOwner(ctx context.Context, actor domain.Actor, id uuid.UUID) error
}

type MenuServiceInterface interface {
	Create(ctx context.Context, actor domain.Actor, item *domain.MenuItem) error
	List(ctx context.Context, kitchenID uuid.UUID) ([]domain.MenuItem, error)
	Update(ctx context.Context, actor domain.Actor, item *domain.MenuItem) error
	Delete(ctx context.Context, actor domain.Actor, kitchenID, itemID uuid.UUID) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, actor domain.Actor, order *domain.Order) error
	Get(ctx context.Context, actor domain.Actor, orderID uuid.UUID) (*domain.Order, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, actor domain.Actor, orderID uuid.UUID, status domain.OrderStatus) (*domain.Order, error)
	GetQRCode(ctx context.Context, orderID uuid.UUID) ([]byte, error)
	QRLink(orderID uuid.UUID) string
}

var (
	_ AuthServiceInterface    = (*AuthService)(nil)
	_ KitchenServiceInterface = (*KitchenService)(nil)
	_ MenuServiceInterface    = (*MenuService)(nil)
	_ OrderServiceInterface   = (*OrderService)(nil)
)
