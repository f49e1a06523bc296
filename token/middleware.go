package token

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// Revocations reports token and session ids that were signed out before
// expiry.
type Revocations interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

func Middleware(issuer *Issuer, revocations Revocations) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := ExtractBearer(r)
			if err != nil {
				http.Error(w, "unauthorized: missing token", http.StatusUnauthorized)
				return
			}

			claims, err := issuer.Parse(tokenStr, KindAccess)
			if err != nil {
				http.Error(w, "unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			if revocations != nil {
				revoked, err := IsRevoked(r.Context(), revocations, claims)
				if err != nil {
					http.Error(w, "failed to check session", http.StatusInternalServerError)
					return
				}
				if revoked {
					http.Error(w, "unauthorized: session ended", http.StatusUnauthorized)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := FromContext(r.Context())
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !allowed[claims.Role] {
				http.Error(w, "forbidden: insufficient role", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

func FromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	return claims, ok
}

// ExtractBearer reads the token from the Authorization header, falling back
// to the access_token query parameter used by browser websocket clients.
func ExtractBearer(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		if q := r.URL.Query().Get("access_token"); q != "" {
			return q, nil
		}
		return "", errors.New("authorization header missing")
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization format")
	}
	return parts[1], nil
}

// IsRevoked reports whether the token itself or the session it belongs to
// has been revoked.
func IsRevoked(ctx context.Context, revocations Revocations, claims *Claims) (bool, error) {
	for _, id := range []string{claims.ID, claims.SessionID} {
		if id == "" {
			continue
		}
		revoked, err := revocations.IsRevoked(ctx, id)
		if err != nil || revoked {
			return revoked, err
		}
	}
	return false, nil
}

// SessionRemaining is how long the session can still be refreshed; zero
// when it has ended.
func (c *Claims) SessionRemaining(now time.Time) time.Duration {
	if c.SessionExpiresAt == nil {
		return c.Remaining(now)
	}
	if d := c.SessionExpiresAt.Time.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Remaining is how long the token stays valid; zero when already expired.
func (c *Claims) Remaining(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	if d := c.ExpiresAt.Time.Sub(now); d > 0 {
		return d
	}
	return 0
}
