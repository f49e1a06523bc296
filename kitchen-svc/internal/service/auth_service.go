package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tiffin-finder/kitchen-svc/internal/domain"
	"tiffin-finder/token"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type AuthService struct {
	users    UserRepository
	tokens   TokenIssuer
	sessions SessionStore
	notifier Notifier
	log      logrus.FieldLogger
	now      func() time.Time
}

func NewAuthService(users UserRepository, tokens TokenIssuer, sessions SessionStore, notifier Notifier, log logrus.FieldLogger) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		sessions: sessions,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

func (s *AuthService) SignUp(ctx context.Context, email, password string, meta domain.UserMetadata) (*domain.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(password) < minPasswordLength {
		return nil, domain.ErrInvalidSignup
	}
	if meta.Role == "" {
		meta.Role = domain.RoleFoodSeeker
	}
	if meta.Role != domain.RoleFoodSeeker && meta.Role != domain.RoleHomeKitchen {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Metadata:     meta,
		CreatedAt:    s.now(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return s.startSession(ctx, user, domain.EventSignedIn)
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.startSession(ctx, user, domain.EventSignedIn)
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	claims, err := s.tokens.Parse(refreshToken, token.KindRefresh)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if s.sessions != nil {
		revoked, err := token.IsRevoked(ctx, s.sessions, claims)
		if err != nil {
			return nil, fmt.Errorf("failed to check session: %w", err)
		}
		if revoked {
			return nil, domain.ErrInvalidCredentials
		}
	}
	user, err := s.users.GetUser(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	return s.startSession(ctx, user, domain.EventTokenRefreshed)
}

// SignOut ends the session the access token belongs to. The refresh token
// issued with it stops working too.
func (s *AuthService) SignOut(ctx context.Context, claims *token.Claims) error {
	if s.sessions != nil {
		id, ttl := claims.SessionID, claims.SessionRemaining(s.now())
		if id == "" {
			id, ttl = claims.ID, claims.Remaining(s.now())
		}
		if err := s.sessions.Revoke(ctx, id, ttl); err != nil {
			return fmt.Errorf("failed to revoke session: %w", err)
		}
	}
	publish(ctx, s.notifier, s.log, UserChannel(claims.UserID), domain.AuthEvent{Type: domain.EventSignedOut})
	return nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.users.GetUser(ctx, userID)
}

// UpdateProfile merges the non-empty fields of meta into the stored profile.
// The role is fixed at sign-up.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, meta domain.UserMetadata) (*domain.User, error) {
	current, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := current.Metadata
	if meta.Name != "" {
		merged.Name = meta.Name
	}
	if meta.Phone != "" {
		merged.Phone = meta.Phone
	}
	if meta.Address != nil {
		merged.Address = meta.Address
	}

	user, err := s.users.UpdateUserMetadata(ctx, userID, merged)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.notifier, s.log, UserChannel(userID), domain.AuthEvent{Type: domain.EventUserUpdated, User: user})
	return user, nil
}

func (s *AuthService) startSession(ctx context.Context, user *domain.User, event domain.AuthEventType) (*domain.AuthResult, error) {
	role := user.Metadata.Role
	if role == "" {
		role = domain.RoleFoodSeeker
	}
	pair, err := s.tokens.Issue(user.ID, string(role))
	if err != nil {
		return nil, fmt.Errorf("failed to issue session: %w", err)
	}

	result := &domain.AuthResult{
		User: user,
		Session: &domain.Session{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			ExpiresAt:    pair.ExpiresAt,
		},
	}
	publish(ctx, s.notifier, s.log, UserChannel(user.ID), domain.AuthEvent{Type: event, User: user})
	s.log.WithFields(logrus.Fields{"user_id": user.ID, "event": event}).Info("session started")
	return result, nil
}
