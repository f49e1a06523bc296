package tests

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tiffin-finder/kitchen-svc/internal/domain"
	"tiffin-finder/kitchen-svc/internal/mocks"
	"tiffin-finder/kitchen-svc/internal/service"
	"tiffin-finder/kitchen-svc/internal/storage"
	"tiffin-finder/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func userChannel(channel string) bool {
	return strings.HasPrefix(channel, "user:")
}

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		email         string
		password      string
		meta          domain.UserMetadata
		prepareMocks  func(users *mocks.UserRepository, notifier *mocks.Notifier)
		expectedRole  domain.Role
		expectedError error
	}{
		{
			name:     "success_defaults_role",
			email:    " Asha@Example.com ",
			password: "secret1",
			meta:     domain.UserMetadata{Name: "Asha", Phone: "9876543210"},
			prepareMocks: func(users *mocks.UserRepository, notifier *mocks.Notifier) {
				users.On("CreateUser", ctx, mock.MatchedBy(func(u *domain.User) bool {
					return u.Email == "asha@example.com" && u.PasswordHash != "secret1"
				})).Return(nil).Once()
				notifier.On("Publish", ctx, mock.MatchedBy(userChannel), mock.Anything).Return(nil).Once()
			},
			expectedRole: domain.RoleFoodSeeker,
		},
		{
			name:     "success_home_kitchen",
			email:    "sunita@maakirasoi.com",
			password: "secret1",
			meta:     domain.UserMetadata{Name: "Sunita", Role: domain.RoleHomeKitchen},
			prepareMocks: func(users *mocks.UserRepository, notifier *mocks.Notifier) {
				users.On("CreateUser", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Once()
				notifier.On("Publish", ctx, mock.MatchedBy(userChannel), mock.Anything).Return(nil).Once()
			},
			expectedRole: domain.RoleHomeKitchen,
		},
		{
			name:          "error_short_password",
			email:         "a@b.co",
			password:      "123",
			prepareMocks:  func(*mocks.UserRepository, *mocks.Notifier) {},
			expectedError: domain.ErrInvalidSignup,
		},
		{
			name:          "error_admin_role",
			email:         "a@b.co",
			password:      "secret1",
			meta:          domain.UserMetadata{Role: domain.RoleAdmin},
			prepareMocks:  func(*mocks.UserRepository, *mocks.Notifier) {},
			expectedError: domain.ErrInvalidRole,
		},
		{
			name:     "error_email_taken",
			email:    "a@b.co",
			password: "secret1",
			prepareMocks: func(users *mocks.UserRepository, notifier *mocks.Notifier) {
				users.On("CreateUser", ctx, mock.Anything).Return(domain.ErrEmailTaken).Once()
			},
			expectedError: domain.ErrEmailTaken,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			users := mocks.NewUserRepository(t)
			notifier := mocks.NewNotifier(t)
			svc := service.NewAuthService(users, testIssuer(), nil, notifier, quietLogger())
			testCase.prepareMocks(users, notifier)

			result, err := svc.SignUp(ctx, testCase.email, testCase.password, testCase.meta)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expectedRole, result.User.Metadata.Role)
			assert.NotEmpty(t, result.Session.AccessToken)
			assert.NotEmpty(t, result.Session.RefreshToken)
		})
	}
}

func TestAuthService_SignIn(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.User{ID: uuid.New(), Email: "asha@example.com", PasswordHash: string(hash)}

	tests := []struct {
		name          string
		password      string
		prepareMocks  func(users *mocks.UserRepository, notifier *mocks.Notifier)
		expectedError error
	}{
		{
			name:     "success",
			password: "secret1",
			prepareMocks: func(users *mocks.UserRepository, notifier *mocks.Notifier) {
				users.On("GetUserByEmail", ctx, "asha@example.com").Return(stored, nil).Once()
				notifier.On("Publish", ctx, "user:"+stored.ID.String(), mock.Anything).Return(nil).Once()
			},
		},
		{
			name:     "wrong_password",
			password: "nope",
			prepareMocks: func(users *mocks.UserRepository, notifier *mocks.Notifier) {
				users.On("GetUserByEmail", ctx, "asha@example.com").Return(stored, nil).Once()
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "unknown_user",
			password: "secret1",
			prepareMocks: func(users *mocks.UserRepository, notifier *mocks.Notifier) {
				users.On("GetUserByEmail", ctx, "asha@example.com").Return(nil, domain.ErrUserNotFound).Once()
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "repository_failure",
			password: "secret1",
			prepareMocks: func(users *mocks.UserRepository, notifier *mocks.Notifier) {
				users.On("GetUserByEmail", ctx, "asha@example.com").Return(nil, errors.New("db down")).Once()
			},
			expectedError: assert.AnError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			users := mocks.NewUserRepository(t)
			notifier := mocks.NewNotifier(t)
			svc := service.NewAuthService(users, testIssuer(), nil, notifier, quietLogger())
			testCase.prepareMocks(users, notifier)

			result, err := svc.SignIn(ctx, "Asha@example.com", testCase.password)
			switch testCase.expectedError {
			case nil:
				require.NoError(t, err)
				assert.Equal(t, stored.ID, result.User.ID)
			case assert.AnError:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
			default:
				assert.ErrorIs(t, err, testCase.expectedError)
			}
		})
	}
}

func TestAuthService_RefreshAndSignOut(t *testing.T) {
	ctx := context.Background()
	issuer := testIssuer()
	users := mocks.NewUserRepository(t)
	sessions := mocks.NewSessionStore(t)
	notifier := mocks.NewNotifier(t)
	svc := service.NewAuthService(users, issuer, sessions, notifier, quietLogger())

	user := &domain.User{ID: uuid.New(), Email: "asha@example.com", Metadata: domain.UserMetadata{Role: domain.RoleFoodSeeker}}
	pair, err := issuer.Issue(user.ID, string(domain.RoleFoodSeeker))
	require.NoError(t, err)

	users.On("GetUser", ctx, user.ID).Return(user, nil).Once()
	sessions.On("IsRevoked", ctx, mock.AnythingOfType("string")).Return(false, nil).Twice()
	notifier.On("Publish", ctx, "user:"+user.ID.String(), mock.MatchedBy(func(ev domain.AuthEvent) bool {
		return ev.Type == domain.EventTokenRefreshed
	})).Return(nil).Once()

	refreshed, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.Session.AccessToken)

	_, err = svc.Refresh(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	claims, err := issuer.Parse(pair.AccessToken, token.KindAccess)
	require.NoError(t, err)
	sessions.On("Revoke", ctx, pair.SessionID, mock.AnythingOfType("time.Duration")).Return(nil).Once()
	notifier.On("Publish", ctx, "user:"+user.ID.String(), domain.AuthEvent{Type: domain.EventSignedOut}).Return(nil).Once()

	assert.NoError(t, svc.SignOut(ctx, claims))
}

func TestAuthService_SignOutEndsRefresh(t *testing.T) {
	ctx := context.Background()
	client, _ := setupTestRedis(t)
	issuer := testIssuer()
	users := mocks.NewUserRepository(t)
	svc := service.NewAuthService(users, issuer, storage.NewRedisCache(client, time.Minute), nil, quietLogger())

	user := &domain.User{ID: uuid.New(), Email: "ravi@example.com", Metadata: domain.UserMetadata{Role: domain.RoleFoodSeeker}}
	pair, err := issuer.Issue(user.ID, string(domain.RoleFoodSeeker))
	require.NoError(t, err)
	other, err := issuer.Issue(user.ID, string(domain.RoleFoodSeeker))
	require.NoError(t, err)

	claims, err := issuer.Parse(pair.AccessToken, token.KindAccess)
	require.NoError(t, err)
	require.NoError(t, svc.SignOut(ctx, claims))

	refreshed, err := svc.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, refreshed)

	// a session started on another device is unaffected
	users.On("GetUser", ctx, user.ID).Return(user, nil).Once()
	refreshed, err = svc.Refresh(ctx, other.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.Session.RefreshToken)
}

func TestAuthService_UpdateProfileKeepsRole(t *testing.T) {
	ctx := context.Background()
	users := mocks.NewUserRepository(t)
	notifier := mocks.NewNotifier(t)
	svc := service.NewAuthService(users, testIssuer(), nil, notifier, quietLogger())

	id := uuid.New()
	current := &domain.User{ID: id, Metadata: domain.UserMetadata{Name: "Old", Phone: "9876543210", Role: domain.RoleHomeKitchen}}
	expectedMeta := domain.UserMetadata{Name: "New", Phone: "9876543210", Role: domain.RoleHomeKitchen}
	updated := &domain.User{ID: id, Metadata: expectedMeta}

	users.On("GetUser", ctx, id).Return(current, nil).Once()
	users.On("UpdateUserMetadata", ctx, id, expectedMeta).Return(updated, nil).Once()
	notifier.On("Publish", ctx, "user:"+id.String(), mock.Anything).Return(errors.New("redis down")).Once()

	user, err := svc.UpdateProfile(ctx, id, domain.UserMetadata{Name: "New", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, expectedMeta, user.Metadata)
}
