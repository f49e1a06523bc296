package domain

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrInvalidSignup      = errors.New("email and a password of at least 6 characters are required")
	ErrInvalidRole        = errors.New("role is not allowed")
	ErrKitchenNotFound    = errors.New("kitchen not found")
	ErrKitchenUnavailable = errors.New("kitchen is not accepting orders")
	ErrInvalidKitchen     = errors.New("kitchen name and cuisine type are required")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrInvalidMenuItem    = errors.New("menu item needs a name, a positive price and a known category")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrder       = errors.New("invalid order payload")
	ErrInvalidTransition  = errors.New("order status change not allowed")
	ErrForbidden          = errors.New("forbidden")
)

// Actor is the authenticated caller of a service operation.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
