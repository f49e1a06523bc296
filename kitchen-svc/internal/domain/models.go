package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleFoodSeeker  Role = "food_seeker"
	RoleHomeKitchen Role = "home_kitchen"
	RoleAdmin       Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleFoodSeeker, RoleHomeKitchen, RoleAdmin:
		return true
	}
	return false
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Address struct {
	Street      string       `json:"street"`
	City        string       `json:"city"`
	State       string       `json:"state"`
	ZipCode     string       `json:"zipCode"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Value stores the address as a jsonb column.
func (a Address) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *Address) Scan(value interface{}) error {
	return scanJSON(value, a)
}

type UserMetadata struct {
	Name    string   `json:"name,omitempty"`
	Phone   string   `json:"phone,omitempty"`
	Role    Role     `json:"role,omitempty"`
	Address *Address `json:"address,omitempty"`
}

type User struct {
	ID           uuid.UUID    `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Metadata     UserMetadata `json:"user_metadata"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    *time.Time   `json:"updated_at,omitempty"`
}

type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type AuthResult struct {
	User    *User    `json:"user"`
	Session *Session `json:"session"`
}

type KitchenStatus string

const (
	KitchenPending  KitchenStatus = "pending"
	KitchenApproved KitchenStatus = "approved"
	KitchenRejected KitchenStatus = "rejected"
)

type Kitchen struct {
	ID            uuid.UUID     `json:"id"`
	UserID        uuid.UUID     `json:"user_id"`
	Name          string        `json:"name"`
	OwnerName     string        `json:"owner_name"`
	Story         string        `json:"story"`
	CuisineType   string        `json:"cuisine_type"`
	Description   string        `json:"description"`
	Phone         string        `json:"phone"`
	Email         string        `json:"email"`
	Address       Address       `json:"address"`
	IsActive      bool          `json:"is_active"`
	Status        KitchenStatus `json:"status"`
	OpeningTime   string        `json:"opening_time"`
	ClosingTime   string        `json:"closing_time"`
	Rating        float64       `json:"rating"`
	ReviewCount   int           `json:"review_count"`
	CoverImage    string        `json:"cover_image"`
	GalleryImages []string      `json:"gallery_images"`
	MenuItems     []MenuItem    `json:"menu_items,omitempty"`
	Reviews       []Review      `json:"reviews,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type MenuCategory string

const (
	CategoryBreakfast MenuCategory = "breakfast"
	CategoryLunch     MenuCategory = "lunch"
	CategoryDinner    MenuCategory = "dinner"
	CategorySnack     MenuCategory = "snack"
	CategoryBeverage  MenuCategory = "beverage"
)

func (c MenuCategory) Valid() bool {
	switch c {
	case CategoryBreakfast, CategoryLunch, CategoryDinner, CategorySnack, CategoryBeverage:
		return true
	}
	return false
}

type DietaryInfo struct {
	IsVeg        bool     `json:"is_veg"`
	IsVegan      bool     `json:"is_vegan"`
	IsGlutenFree bool     `json:"is_gluten_free"`
	IsSpicy      bool     `json:"is_spicy"`
	Allergens    []string `json:"allergens"`
}

func (d DietaryInfo) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *DietaryInfo) Scan(value interface{}) error {
	return scanJSON(value, d)
}

type MenuItem struct {
	ID              uuid.UUID    `json:"id"`
	KitchenID       uuid.UUID    `json:"kitchen_id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Price           float64      `json:"price"`
	Category        MenuCategory `json:"category"`
	IsAvailable     bool         `json:"is_available"`
	DietaryInfo     DietaryInfo  `json:"dietary_info"`
	ImageURL        string       `json:"image_url"`
	PreparationTime int          `json:"preparation_time"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderReady, OrderCancelled},
	OrderReady:     {OrderDelivered},
}

// CanTransition reports whether an order may move from s to next.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Order struct {
	ID                  uuid.UUID   `json:"id"`
	Reference           string      `json:"reference"`
	UserID              uuid.UUID   `json:"user_id"`
	KitchenID           uuid.UUID   `json:"kitchen_id"`
	KitchenName         string      `json:"kitchen_name,omitempty"`
	Status              OrderStatus `json:"status"`
	TotalAmount         float64     `json:"total_amount"`
	DeliveryAddress     *Address    `json:"delivery_address,omitempty"`
	ScheduledTime       *time.Time  `json:"scheduled_time,omitempty"`
	SpecialInstructions string      `json:"special_instructions"`
	PaymentStatus       string      `json:"payment_status"`
	PaymentMethod       string      `json:"payment_method"`
	QRCode              string      `json:"qr_code,omitempty"`
	Items               []OrderItem `json:"items"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID                  uuid.UUID `json:"id"`
	OrderID             uuid.UUID `json:"order_id"`
	MenuItemID          uuid.UUID `json:"menu_item_id"`
	MenuItemName        string    `json:"menu_item_name,omitempty"`
	Quantity            int       `json:"quantity"`
	Price               float64   `json:"price"`
	SpecialInstructions string    `json:"special_instructions"`
	CreatedAt           time.Time `json:"created_at"`
}

type Review struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	KitchenID uuid.UUID `json:"kitchen_id"`
	OrderID   uuid.UUID `json:"order_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Photos    []string  `json:"photos"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthEventType string

const (
	EventSignedIn       AuthEventType = "SIGNED_IN"
	EventSignedOut      AuthEventType = "SIGNED_OUT"
	EventTokenRefreshed AuthEventType = "TOKEN_REFRESHED"
	EventUserUpdated    AuthEventType = "USER_UPDATED"
)

type AuthEvent struct {
	Type    AuthEventType `json:"type"`
	User    *User         `json:"user,omitempty"`
	Session *Session      `json:"session,omitempty"`
}

type ChangeEvent struct {
	Type   string `json:"type"`
	Table  string `json:"table"`
	Record Order  `json:"record"`
}

func scanJSON(value interface{}, dst interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return errors.New("unsupported jsonb value")
	}
}
