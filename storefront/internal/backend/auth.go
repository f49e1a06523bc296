package backend

import (
	"context"
	"errors"
	"net/http"

	"tiffin-finder/storefront/internal/model"
)

var ErrNoSession = errors.New("not signed in")

type credentials struct {
	Email    string             `json:"email"`
	Password string             `json:"password"`
	Data     model.UserMetadata `json:"data"`
}

func (c *Client) SignUp(ctx context.Context, email, password string, profile model.UserMetadata) (*model.AuthResult, error) {
	var result model.AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", credentials{Email: email, Password: password, Data: profile}, &result); err != nil {
		return nil, err
	}
	c.signedIn(&result)
	return &result, nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*model.AuthResult, error) {
	var result model.AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/signin", credentials{Email: email, Password: password}, &result); err != nil {
		return nil, err
	}
	c.signedIn(&result)
	return &result, nil
}

func (c *Client) signedIn(result *model.AuthResult) {
	c.setSession(result.Session)
	c.emit(model.AuthEvent{Type: model.EventSignedIn, User: result.User, Session: result.Session})
}

// SignOut ends the session on the backend, then forgets it locally.
func (c *Client) SignOut(ctx context.Context) error {
	if c.accessToken() != "" {
		if err := c.do(ctx, http.MethodPost, "/api/auth/signout", nil, nil); err != nil {
			return err
		}
	}
	c.setSession(nil)
	c.emit(model.AuthEvent{Type: model.EventSignedOut})
	return nil
}

// RefreshSession trades the refresh token for a new session.
func (c *Client) RefreshSession(ctx context.Context) (*model.AuthResult, error) {
	current, ok := c.CurrentSession()
	if !ok || current.RefreshToken == "" {
		return nil, ErrNoSession
	}

	var result model.AuthResult
	body := map[string]string{"refresh_token": current.RefreshToken}
	if err := c.do(ctx, http.MethodPost, "/api/auth/refresh", body, &result); err != nil {
		return nil, err
	}
	c.setSession(result.Session)
	c.emit(model.AuthEvent{Type: model.EventTokenRefreshed, User: result.User, Session: result.Session})
	return &result, nil
}

// GetSession asks the backend who the current token belongs to. It returns
// nil without error when there is no session to check.
func (c *Client) GetSession(ctx context.Context) (*model.AuthResult, error) {
	current, ok := c.CurrentSession()
	if !ok {
		return nil, nil
	}

	var result model.AuthResult
	if err := c.do(ctx, http.MethodGet, "/api/auth/session", nil, &result); err != nil {
		return nil, err
	}
	if result.Session != nil && result.Session.RefreshToken == "" {
		result.Session.RefreshToken = current.RefreshToken
	}
	return &result, nil
}

func (c *Client) UpdateProfile(ctx context.Context, profile model.UserMetadata) (*model.Principal, error) {
	var user model.Principal
	body := map[string]model.UserMetadata{"data": profile}
	if err := c.do(ctx, http.MethodPut, "/api/auth/user", body, &user); err != nil {
		return nil, err
	}
	c.emit(model.AuthEvent{Type: model.EventUserUpdated, User: &user})
	return &user, nil
}
