package model

import "time"

type Role string

const (
	RoleFoodSeeker  Role = "food_seeker"
	RoleHomeKitchen Role = "home_kitchen"
	RoleAdmin       Role = "admin"
)

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

// UserSession is the signed-in user as the application sees it.
type UserSession struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Role      Role      `json:"role"`
	Address   *Address  `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserMetadata struct {
	Name    string   `json:"name,omitempty"`
	Phone   string   `json:"phone,omitempty"`
	Role    Role     `json:"role,omitempty"`
	Address *Address `json:"address,omitempty"`
}

// Principal is the user record returned by the auth endpoints.
type Principal struct {
	ID        string       `json:"id"`
	Email     string       `json:"email"`
	Metadata  UserMetadata `json:"user_metadata"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt *time.Time   `json:"updated_at,omitempty"`
}

type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type AuthResult struct {
	User    *Principal `json:"user"`
	Session *Session   `json:"session"`
}

type Kitchen struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Name          string     `json:"name"`
	OwnerName     string     `json:"owner_name"`
	Story         string     `json:"story"`
	CuisineType   string     `json:"cuisine_type"`
	Description   string     `json:"description"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email"`
	Address       Address    `json:"address"`
	IsActive      bool       `json:"is_active"`
	Status        string     `json:"status"`
	OpeningTime   string     `json:"opening_time"`
	ClosingTime   string     `json:"closing_time"`
	Rating        float64    `json:"rating"`
	ReviewCount   int        `json:"review_count"`
	CoverImage    string     `json:"cover_image"`
	GalleryImages []string   `json:"gallery_images"`
	MenuItems     []MenuItem `json:"menu_items,omitempty"`
	Reviews       []Review   `json:"reviews,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type DietaryInfo struct {
	IsVeg        bool     `json:"is_veg"`
	IsVegan      bool     `json:"is_vegan"`
	IsGlutenFree bool     `json:"is_gluten_free"`
	IsSpicy      bool     `json:"is_spicy"`
	Allergens    []string `json:"allergens"`
}

type MenuItem struct {
	ID              string      `json:"id"`
	KitchenID       string      `json:"kitchen_id"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Price           float64     `json:"price"`
	Category        string      `json:"category"`
	IsAvailable     bool        `json:"is_available"`
	DietaryInfo     DietaryInfo `json:"dietary_info"`
	ImageURL        string      `json:"image_url"`
	PreparationTime int         `json:"preparation_time"`
}

type Order struct {
	ID                  string      `json:"id"`
	Reference           string      `json:"reference"`
	UserID              string      `json:"user_id"`
	KitchenID           string      `json:"kitchen_id"`
	KitchenName         string      `json:"kitchen_name,omitempty"`
	Status              string      `json:"status"`
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
	ID                  string  `json:"id,omitempty"`
	OrderID             string  `json:"order_id,omitempty"`
	MenuItemID          string  `json:"menu_item_id"`
	MenuItemName        string  `json:"menu_item_name,omitempty"`
	Quantity            int     `json:"quantity"`
	Price               float64 `json:"price"`
	SpecialInstructions string  `json:"special_instructions"`
}

// NewOrder is the payload that places an order.
type NewOrder struct {
	KitchenID           string         `json:"kitchen_id"`
	TotalAmount         float64        `json:"total_amount"`
	DeliveryAddress     *Address       `json:"delivery_address,omitempty"`
	ScheduledTime       *time.Time     `json:"scheduled_time,omitempty"`
	SpecialInstructions string         `json:"special_instructions,omitempty"`
	PaymentMethod       string         `json:"payment_method"`
	Items               []NewOrderItem `json:"items"`
}

type NewOrderItem struct {
	MenuItemID          string `json:"menu_item_id"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

type NewReview struct {
	OrderID string   `json:"order_id"`
	Rating  int      `json:"rating"`
	Comment string   `json:"comment"`
	Photos  []string `json:"photos"`
}

type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	KitchenID string    `json:"kitchen_id"`
	OrderID   string    `json:"order_id"`
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
	User    *Principal    `json:"user,omitempty"`
	Session *Session      `json:"session,omitempty"`
}

// ChangeEvent is a realtime row change pushed for an order.
type ChangeEvent struct {
	Type   string `json:"type"`
	Table  string `json:"table"`
	Record Order  `json:"record"`
}
